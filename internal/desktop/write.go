package desktop

import (
	"fmt"
	"os"
	"strings"
)

// KV is an ordered key/value pair carried over from a source document.
type KV struct {
	Key   string
	Value string
}

// Document describes a fresh autostart entry to be written. Meta holds
// cosmetic keys copied from the application's source document; Comment is
// a fallback used only when Meta carries no Comment of its own.
type Document struct {
	Name    string
	Exec    string // unwrapped command
	Delay   int    // seconds, wraps Exec when > 0
	Meta    []KV
	Comment string
}

// Render produces the document text. Key order is fixed.
func (d *Document) Render() string {
	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	fmt.Fprintf(&b, "Name=%s\n", d.Name)
	fmt.Fprintf(&b, "Exec=%s\n", WrapDelay(d.Exec, d.Delay))
	b.WriteString("Hidden=false\n")
	b.WriteString("X-GNOME-Autostart-enabled=true\n")

	hasComment := false
	for _, kv := range d.Meta {
		fmt.Fprintf(&b, "%s=%s\n", kv.Key, kv.Value)
		if kv.Key == "Comment" {
			hasComment = true
		}
	}
	if d.Comment != "" && !hasComment {
		fmt.Fprintf(&b, "Comment=%s\n", d.Comment)
	}

	if d.Delay > 0 {
		fmt.Fprintf(&b, "X-GNOME-Autostart-Delay=%d\n", d.Delay)
	}
	return b.String()
}

// WriteFile renders the document to path. Autostart entries are written
// executable regardless of the process umask.
func (d *Document) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(d.Render()), 0o755); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Chmod(path, 0o755); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return nil
}
