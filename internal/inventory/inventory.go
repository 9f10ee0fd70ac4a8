// Package inventory holds the merged application collection and the
// read-only projections the views consume.
package inventory

import (
	"fmt"
	"sort"
	"strings"

	"startmgr/internal/models"
)

// Inventory is the name-keyed application collection produced by a scan
// pass. It has a single logical owner; a reload builds a fresh Inventory
// and replaces the old one wholesale.
type Inventory struct {
	apps map[string]*models.App
}

// New returns an empty inventory.
func New() *Inventory {
	return &Inventory{apps: make(map[string]*models.App)}
}

// Add inserts the app only when its name is not present yet and reports
// whether it was inserted. Providers run in precedence order, so keeping
// the first occurrence is the whole merge rule.
func (inv *Inventory) Add(app *models.App) bool {
	if _, exists := inv.apps[app.Name]; exists {
		return false
	}
	inv.apps[app.Name] = app
	return true
}

// Put inserts or replaces unconditionally. Reserved for records derived
// from autostart entries, which have no competing provider record.
func (inv *Inventory) Put(app *models.App) {
	inv.apps[app.Name] = app
}

// Get looks up a record by name.
func (inv *Inventory) Get(name string) (*models.App, bool) {
	app, ok := inv.apps[name]
	return app, ok
}

// Len returns the number of records.
func (inv *Inventory) Len() int {
	return len(inv.apps)
}

// All returns the records sorted by name.
func (inv *Inventory) All() []*models.App {
	apps := make([]*models.App, 0, len(inv.apps))
	for _, app := range inv.apps {
		apps = append(apps, app)
	}
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].Name < apps[j].Name
	})
	return apps
}

// Category selects which slice of the inventory a view shows.
type Category string

const (
	CategoryAll      Category = "all"
	CategoryEnabled  Category = "enabled"
	CategoryDisabled Category = "disabled"
	CategoryNative   Category = "native"
	CategoryFlatpak  Category = "flatpak"
	CategorySnap     Category = "snap"
	CategoryCustom   Category = "custom"
)

// Categories is the filter cycle order shown in the UI.
var Categories = []Category{
	CategoryAll,
	CategoryEnabled,
	CategoryDisabled,
	CategoryNative,
	CategoryFlatpak,
	CategorySnap,
	CategoryCustom,
}

// Filter projects apps down to those matching a search term and category.
// The term matches name, command and origin tag case-insensitively; the
// category applies after the term. The input slice is never modified.
func Filter(apps []*models.App, term string, cat Category) []*models.App {
	term = strings.ToLower(strings.TrimSpace(term))
	var out []*models.App
	for _, app := range apps {
		if term != "" && !matchesTerm(app, term) {
			continue
		}
		if !matchesCategory(app, cat) {
			continue
		}
		out = append(out, app)
	}
	return out
}

func matchesTerm(app *models.App, term string) bool {
	return strings.Contains(strings.ToLower(app.Name), term) ||
		strings.Contains(strings.ToLower(app.Exec), term) ||
		strings.Contains(app.Origin.String(), term)
}

func matchesCategory(app *models.App, cat Category) bool {
	switch cat {
	case CategoryEnabled:
		return app.Enabled
	case CategoryDisabled:
		return !app.Enabled
	case CategoryNative, CategoryFlatpak, CategorySnap, CategoryCustom:
		return app.Origin.String() == string(cat)
	default:
		return true
	}
}

// Stats summarizes a record slice for the status bar.
type Stats struct {
	Total   int
	Enabled int
	Flatpak int
	Snap    int
	Custom  int
}

// Collect counts enabled and per-origin records.
func Collect(apps []*models.App) Stats {
	var s Stats
	s.Total = len(apps)
	for _, app := range apps {
		if app.Enabled {
			s.Enabled++
		}
		switch app.Origin {
		case models.OriginFlatpak:
			s.Flatpak++
		case models.OriginSnap:
			s.Snap++
		case models.OriginCustom:
			s.Custom++
		}
	}
	return s
}

// String renders the stats line, e.g. "12/80 enabled • 3 Flatpak, 1 Custom".
func (s Stats) String() string {
	line := fmt.Sprintf("%d/%d enabled", s.Enabled, s.Total)

	var parts []string
	if s.Flatpak > 0 {
		parts = append(parts, fmt.Sprintf("%d Flatpak", s.Flatpak))
	}
	if s.Snap > 0 {
		parts = append(parts, fmt.Sprintf("%d Snap", s.Snap))
	}
	if s.Custom > 0 {
		parts = append(parts, fmt.Sprintf("%d Custom", s.Custom))
	}
	if len(parts) > 0 {
		line += " • " + strings.Join(parts, ", ")
	}
	return line
}
