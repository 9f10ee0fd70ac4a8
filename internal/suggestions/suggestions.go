// Package suggestions provides contextual hints based on inventory state.
package suggestions

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"startmgr/internal/models"
)

// SuggestionType represents the type of suggestion
type SuggestionType int

const (
	// TypeAllGood indicates nothing needs attention
	TypeAllGood SuggestionType = iota
	// TypeBrokenCommands indicates enabled custom entries whose command is missing
	TypeBrokenCommands
	// TypeToolMissing indicates flatpak or snap is not installed
	TypeToolMissing
	// TypeHistoryOff indicates snapshot history is disabled
	TypeHistoryOff
	// TypeFirstRun indicates this is the first run
	TypeFirstRun
)

// String returns the string representation of the suggestion type
func (t SuggestionType) String() string {
	switch t {
	case TypeAllGood:
		return "all_good"
	case TypeBrokenCommands:
		return "broken_commands"
	case TypeToolMissing:
		return "tool_missing"
	case TypeHistoryOff:
		return "history_off"
	case TypeFirstRun:
		return "first_run"
	default:
		return "unknown"
	}
}

// Action represents a suggested action
type Action struct {
	Key         string // Keyboard shortcut (e.g., "a", "space")
	Label       string // Display label (e.g., "Add custom")
	Description string // Longer description
}

// Suggestion represents a contextual hint for the user
type Suggestion struct {
	Type    SuggestionType
	Message string   // Main message to display
	Actions []Action // Available actions
	Apps    []string // Affected app names
	Count   int      // Number of affected items
}

// Icon returns an appropriate icon for the suggestion type
func (s *Suggestion) Icon() string {
	switch s.Type {
	case TypeAllGood:
		return "✅"
	case TypeBrokenCommands:
		return "⚠️"
	case TypeToolMissing:
		return "📦"
	case TypeHistoryOff:
		return "💾"
	case TypeFirstRun:
		return "👋"
	default:
		return "ℹ️"
	}
}

// IsEmpty returns true if there's no actionable suggestion
func (s *Suggestion) IsEmpty() bool {
	return s.Type == TypeAllGood && len(s.Apps) == 0
}

// State captures everything the analyzer looks at
type State struct {
	Apps            []models.App
	IsFirstRun      bool
	FlatpakMissing  bool // flatpak binary not on PATH
	SnapMissing     bool // snap binary not on PATH
	HistoryDisabled bool // snapshots turned off in config
}

// Analyzer inspects inventory state and generates suggestions
type Analyzer struct {
	lookPath func(string) (string, error)
	stat     func(string) (os.FileInfo, error)
}

// NewAnalyzer creates a new suggestion analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		lookPath: exec.LookPath,
		stat:     os.Stat,
	}
}

// Analyze returns the most pressing suggestion for the current state.
// Priority: first run > broken commands > missing tools > history off.
func (a *Analyzer) Analyze(state *State) *Suggestion {
	if state.IsFirstRun {
		return a.firstRunSuggestion()
	}

	if broken := a.brokenCommands(state.Apps); len(broken) > 0 {
		return a.brokenCommandsSuggestion(broken)
	}

	if state.FlatpakMissing || state.SnapMissing {
		return a.toolMissingSuggestion(state.FlatpakMissing, state.SnapMissing)
	}

	if state.HistoryDisabled {
		return a.historyOffSuggestion()
	}

	return a.allGoodSuggestion()
}

// brokenCommands returns enabled custom entries whose command cannot be
// found, either as an absolute path or on PATH.
func (a *Analyzer) brokenCommands(apps []models.App) []string {
	var broken []string
	for _, app := range apps {
		if app.Origin != models.OriginCustom || !app.Enabled {
			continue
		}
		fields := strings.Fields(app.Exec)
		if len(fields) == 0 {
			broken = append(broken, app.Name)
			continue
		}
		bin := fields[0]
		if strings.Contains(bin, "/") {
			if _, err := a.stat(bin); err != nil {
				broken = append(broken, app.Name)
			}
		} else if _, err := a.lookPath(bin); err != nil {
			broken = append(broken, app.Name)
		}
	}
	return broken
}

// firstRunSuggestion creates a suggestion for first-time users
func (a *Analyzer) firstRunSuggestion() *Suggestion {
	return &Suggestion{
		Type:    TypeFirstRun,
		Message: "Welcome! Press space to toggle startup for the selected app",
		Count:   0,
		Actions: []Action{
			{Key: "space", Label: "Toggle", Description: "Enable or disable the selected app"},
			{Key: "a", Label: "Add custom", Description: "Add your own startup command"},
			{Key: "?", Label: "Help", Description: "View help"},
		},
	}
}

// brokenCommandsSuggestion creates a suggestion for entries whose command is gone
func (a *Analyzer) brokenCommandsSuggestion(apps []string) *Suggestion {
	msg := fmt.Sprintf("%d custom entries point at missing commands", len(apps))
	if len(apps) == 1 {
		msg = fmt.Sprintf("%s points at a missing command", apps[0])
	}

	return &Suggestion{
		Type:    TypeBrokenCommands,
		Message: msg,
		Apps:    apps,
		Count:   len(apps),
		Actions: []Action{
			{Key: "space", Label: "Disable", Description: "Disable the broken entry"},
			{Key: "n", Label: "Run now", Description: "Try launching it"},
		},
	}
}

// toolMissingSuggestion creates a suggestion when flatpak or snap is absent
func (a *Analyzer) toolMissingSuggestion(flatpak, snap bool) *Suggestion {
	var msg string
	switch {
	case flatpak && snap:
		msg = "flatpak and snap not installed, their apps are not listed"
	case flatpak:
		msg = "flatpak not installed, Flatpak apps are not listed"
	default:
		msg = "snap not installed, Snap apps are not listed"
	}

	return &Suggestion{
		Type:    TypeToolMissing,
		Message: msg,
		Count:   0,
		Actions: []Action{
			{Key: "r", Label: "Refresh", Description: "Rescan after installing the tool"},
		},
	}
}

// historyOffSuggestion creates a suggestion when snapshots are disabled
func (a *Analyzer) historyOffSuggestion() *Suggestion {
	return &Suggestion{
		Type:    TypeHistoryOff,
		Message: "Snapshot history is disabled, changes cannot be restored",
		Count:   0,
		Actions: []Action{
			{Key: "g", Label: "History", Description: "View snapshot history"},
		},
	}
}

// allGoodSuggestion creates a suggestion when nothing needs attention
func (a *Analyzer) allGoodSuggestion() *Suggestion {
	return &Suggestion{
		Type:    TypeAllGood,
		Message: "Everything looks good",
		Count:   0,
		Actions: []Action{
			{Key: "r", Label: "Refresh", Description: "Rescan installed apps"},
			{Key: "g", Label: "History", Description: "View snapshot history"},
		},
	}
}
