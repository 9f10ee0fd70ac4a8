package transfer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"startmgr/internal/inventory"
)

// DocumentVersion identifies the export format written by this build.
const DocumentVersion = "1.0"

// Document is the versioned export format.
type Document struct {
	Version     string  `json:"version"`
	StartupApps []Entry `json:"startup_apps"`
}

// Entry is one exported startup application.
type Entry struct {
	Name  string `json:"name"`
	Exec  string `json:"exec"`
	Type  string `json:"type"`
	Delay int    `json:"delay"`
}

// Exporter serializes the enabled records of an inventory.
type Exporter struct {
	inv *inventory.Inventory
}

// NewExporter creates a new Exporter
func NewExporter(inv *inventory.Inventory) *Exporter {
	return &Exporter{inv: inv}
}

// Document builds the export document from the current inventory state.
// Only records enabled for startup are included.
func (e *Exporter) Document() *Document {
	doc := &Document{
		Version:     DocumentVersion,
		StartupApps: []Entry{},
	}

	for _, app := range e.inv.All() {
		if !app.Enabled {
			continue
		}
		doc.StartupApps = append(doc.StartupApps, Entry{
			Name:  app.Name,
			Exec:  app.Exec,
			Type:  app.Origin.String(),
			Delay: app.Delay,
		})
	}

	return doc
}

// Export writes the document to path and returns the number of entries.
func (e *Exporter) Export(path string) (int, error) {
	doc := e.Document()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to encode export document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, fmt.Errorf("failed to write export file: %w", err)
	}

	return len(doc.StartupApps), nil
}
