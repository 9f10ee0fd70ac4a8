package components

import (
	"fmt"
	"strings"

	"startmgr/internal/suggestions"
	"startmgr/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

// SuggestionBar displays contextual hints at the top of the screen
type SuggestionBar struct {
	Suggestion *suggestions.Suggestion
	Width      int
	Visible    bool
}

// NewSuggestionBar creates a new suggestion bar
func NewSuggestionBar() *SuggestionBar {
	return &SuggestionBar{
		Suggestion: nil,
		Width:      80,
		Visible:    true,
	}
}

// SetSuggestion updates the current suggestion
func (s *SuggestionBar) SetSuggestion(suggestion *suggestions.Suggestion) {
	s.Suggestion = suggestion
}

// SetWidth sets the width of the bar
func (s *SuggestionBar) SetWidth(width int) {
	s.Width = width
}

// Show shows the suggestion bar
func (s *SuggestionBar) Show() {
	s.Visible = true
}

// Hide hides the suggestion bar
func (s *SuggestionBar) Hide() {
	s.Visible = false
}

// IsVisible returns whether the bar is visible
func (s *SuggestionBar) IsVisible() bool {
	return s.Visible && s.Suggestion != nil && !s.Suggestion.IsEmpty()
}

// View renders the suggestion bar
func (s *SuggestionBar) View() string {
	if !s.IsVisible() {
		return ""
	}

	var b strings.Builder

	// Build content
	b.WriteString("  ")
	b.WriteString(s.renderIcon())
	b.WriteString(" ")
	b.WriteString(s.Suggestion.Message)

	// Add action buttons
	if len(s.Suggestion.Actions) > 0 {
		b.WriteString("   ")
		for i, action := range s.Suggestion.Actions {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(s.renderAction(action))
		}
	}

	// Create styled box
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.borderColor()).
		Padding(0, 1).
		Width(s.Width - 2)

	return style.Render(b.String())
}

// borderColor picks the border color for the suggestion type
func (s *SuggestionBar) borderColor() lipgloss.Color {
	switch s.Suggestion.Type {
	case suggestions.TypeBrokenCommands:
		return ui.Error
	case suggestions.TypeToolMissing:
		return ui.Warning
	case suggestions.TypeHistoryOff:
		return ui.Secondary
	case suggestions.TypeFirstRun:
		return ui.Primary
	case suggestions.TypeAllGood:
		return ui.Success
	default:
		return ui.Muted
	}
}

// renderIcon renders the icon with appropriate styling
func (s *SuggestionBar) renderIcon() string {
	var style lipgloss.Style

	switch s.Suggestion.Type {
	case suggestions.TypeBrokenCommands:
		style = ui.MissingStyle
	case suggestions.TypeToolMissing:
		style = ui.DelayStyle
	case suggestions.TypeHistoryOff:
		style = ui.OriginStyle
	case suggestions.TypeFirstRun:
		style = lipgloss.NewStyle().Foreground(ui.Primary)
	case suggestions.TypeAllGood:
		style = ui.EnabledStyle
	default:
		style = ui.MutedStyle
	}

	return style.Bold(true).Render(s.Suggestion.Icon())
}

// renderAction renders an action button
func (s *SuggestionBar) renderAction(action suggestions.Action) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(ui.Foreground).
		Background(ui.Border).
		Padding(0, 1).
		Bold(true)

	labelStyle := ui.MutedStyle

	return fmt.Sprintf("%s %s", keyStyle.Render(action.Key), labelStyle.Render(action.Label))
}

// CompactView renders a compact version for smaller widths
func (s *SuggestionBar) CompactView() string {
	if !s.IsVisible() {
		return ""
	}

	var b strings.Builder

	b.WriteString(s.renderIcon())
	b.WriteString(" ")

	// Truncate message if needed
	msg := s.Suggestion.Message
	maxLen := s.Width - 20
	if len(msg) > maxLen && maxLen > 0 {
		msg = msg[:maxLen-3] + "..."
	}
	b.WriteString(msg)

	// Show first action only
	if len(s.Suggestion.Actions) > 0 {
		b.WriteString(" ")
		b.WriteString(ui.HelpKeyStyle.Render("[" + s.Suggestion.Actions[0].Key + "]"))
	}

	return ui.MutedStyle.Render(b.String())
}

// Height returns the height of the suggestion bar
func (s *SuggestionBar) Height() int {
	if !s.IsVisible() {
		return 0
	}
	return 3 // Border top + content + border bottom
}
