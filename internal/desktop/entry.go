// Package desktop reads and writes desktop-entry documents, the sectioned
// key=value format used for application launchers and autostart entries.
package desktop

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"gopkg.in/ini.v1"
)

// primarySection is the one section name the format defines for launchers.
const primarySection = "Desktop Entry"

func init() {
	// Write key=value without padded delimiters
	ini.PrettyFormat = false
}

var loadOptions = ini.LoadOptions{
	IgnoreInlineComment: true,
	IgnoreContinuation:  true,
	AllowBooleanKeys:    true,
}

// Entry is the launchable application described by one document
type Entry struct {
	Name string // Display name, defaulted from the file name when blank
	Exec string // Launch command with field codes stripped
	Icon string // Raw Icon value, may be empty
	Path string // Document the entry was parsed from
}

// fieldCodes is the closed set of launch-time placeholders. They stand for
// files, URLs or launcher metadata passed at interactive launch time and
// mean nothing to an autostart invocation.
var fieldCodes = []string{
	"%F", "%f", "%U", "%u", "%d", "%D",
	"%n", "%N", "%i", "%c", "%k", "%v",
}

// StripFieldCodes removes every recognized placeholder token and trims the
// surrounding whitespace.
func StripFieldCodes(exec string) string {
	for _, code := range fieldCodes {
		exec = strings.ReplaceAll(exec, code, "")
	}
	return strings.TrimSpace(exec)
}

// AutostartFileName derives the deterministic file name for an application
// name: every rune other than letters, digits, '-' and '_' becomes '_'.
func AutostartFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String() + ".desktop"
}

// Parse reads the document at path and returns its launchable entry.
// Documents that do not describe a displayable application are rejected
// with an error saying why; callers treat every error as "skip this file".
func Parse(path string) (*Entry, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	if typ := f.Get("Type"); typ != "Application" {
		return nil, fmt.Errorf("%s: type %q is not launchable", path, typ)
	}
	if strings.EqualFold(f.Get("NoDisplay"), "true") {
		return nil, fmt.Errorf("%s: marked NoDisplay", path)
	}
	if strings.EqualFold(f.Get("Hidden"), "true") {
		return nil, fmt.Errorf("%s: marked Hidden", path)
	}
	exec := f.Get("Exec")
	if exec == "" {
		return nil, fmt.Errorf("%s: no Exec value", path)
	}

	name := strings.TrimSpace(f.Get("Name"))
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), ".desktop")
	}

	return &Entry{
		Name: name,
		Exec: StripFieldCodes(exec),
		Icon: f.Get("Icon"),
		Path: path,
	}, nil
}
