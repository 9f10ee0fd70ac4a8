package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"startmgr/internal/desktop"
)

// ErrIncompleteEntry marks an import entry with no usable name or command.
var ErrIncompleteEntry = errors.New("entry is missing a name or command")

// Importer writes entries from an export document into the autostart
// directory. The caller reloads the inventory afterwards so every record
// is re-derived from disk.
type Importer struct {
	dir string
}

// NewImporter creates a new Importer
func NewImporter(autostartDir string) *Importer {
	return &Importer{dir: autostartDir}
}

// ImportResult holds the outcome for one entry of the document.
type ImportResult struct {
	Entry   Entry
	Success bool
	Error   error
}

// Read parses an export document from path. Unknown versions are accepted;
// a document without a startup_apps list yields zero entries.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse import file: %w", err)
	}
	return &doc, nil
}

// Import reads the document at path and writes one enabled autostart entry
// per listed application. Entries are written as-is; commands are not
// checked for validity.
func (i *Importer) Import(path string) ([]ImportResult, error) {
	doc, err := Read(path)
	if err != nil {
		return nil, err
	}
	return i.ImportDocument(doc), nil
}

// ImportDocument writes the document's entries. One bad entry does not stop
// the rest.
func (i *Importer) ImportDocument(doc *Document) []ImportResult {
	var results []ImportResult

	for _, entry := range doc.StartupApps {
		result := ImportResult{Entry: entry}

		name := strings.TrimSpace(entry.Name)
		command := strings.TrimSpace(entry.Exec)
		if name == "" || command == "" {
			result.Error = ErrIncompleteEntry
			results = append(results, result)
			continue
		}

		delay := entry.Delay
		if delay < 0 {
			delay = 0
		}

		target := filepath.Join(i.dir, desktop.AutostartFileName(name))
		written := &desktop.Document{Name: name, Exec: command, Delay: delay}
		if err := written.WriteFile(target); err != nil {
			result.Error = fmt.Errorf("failed to write autostart entry: %w", err)
			results = append(results, result)
			continue
		}

		result.Success = true
		results = append(results, result)
	}

	return results
}

// Imported counts the successful results.
func Imported(results []ImportResult) int {
	n := 0
	for _, r := range results {
		if r.Success {
			n++
		}
	}
	return n
}
