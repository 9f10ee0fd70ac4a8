package components

import (
	"fmt"
	"strings"

	"startmgr/internal/definitions"
	"startmgr/internal/models"
	"startmgr/internal/ui"
)

// AppList is a list component for startup applications
type AppList struct {
	Apps    []models.App
	Cursor  int
	Width   int
	Height  int
	Focused bool
	Title   string
	Rules   *definitions.Rules
}

// NewAppList creates a new app list
func NewAppList(apps []models.App) *AppList {
	return &AppList{
		Apps:    apps,
		Cursor:  0,
		Width:   30,
		Height:  15,
		Focused: true,
		Title:   "Startup Applications",
		Rules:   definitions.Defaults(),
	}
}

// SetApps updates the apps list
func (l *AppList) SetApps(apps []models.App) {
	l.Apps = apps
	if l.Cursor >= len(apps) {
		l.Cursor = max(0, len(apps)-1)
	}
}

// SetRules sets the icon definitions
func (l *AppList) SetRules(rules *definitions.Rules) {
	if rules != nil {
		l.Rules = rules
	}
}

// MoveUp moves cursor up
func (l *AppList) MoveUp() {
	if l.Cursor > 0 {
		l.Cursor--
	}
}

// MoveDown moves cursor down
func (l *AppList) MoveDown() {
	if l.Cursor < len(l.Apps)-1 {
		l.Cursor++
	}
}

// PageUp moves cursor up by a page
func (l *AppList) PageUp() {
	pageSize := l.Height - 3
	if pageSize < 1 {
		pageSize = 10
	}
	l.Cursor -= pageSize
	if l.Cursor < 0 {
		l.Cursor = 0
	}
}

// PageDown moves cursor down by a page
func (l *AppList) PageDown() {
	pageSize := l.Height - 3
	if pageSize < 1 {
		pageSize = 10
	}
	l.Cursor += pageSize
	if l.Cursor >= len(l.Apps) {
		l.Cursor = max(0, len(l.Apps)-1)
	}
}

// GoToFirst moves cursor to the first item
func (l *AppList) GoToFirst() {
	l.Cursor = 0
}

// GoToLast moves cursor to the last item
func (l *AppList) GoToLast() {
	if len(l.Apps) > 0 {
		l.Cursor = len(l.Apps) - 1
	}
}

// Current returns the app under the cursor
func (l *AppList) Current() *models.App {
	if len(l.Apps) > 0 && l.Cursor < len(l.Apps) {
		return &l.Apps[l.Cursor]
	}
	return nil
}

// Select moves the cursor to the app with the given name
func (l *AppList) Select(name string) {
	for i, app := range l.Apps {
		if app.Name == name {
			l.Cursor = i
			return
		}
	}
}

// View renders the app list
func (l *AppList) View() string {
	var b strings.Builder

	// Title with counts
	enabledCount := 0
	for _, app := range l.Apps {
		if app.Enabled {
			enabledCount++
		}
	}

	title := l.Title
	if len(l.Apps) > 0 {
		title = fmt.Sprintf("%s (%d/%d)", l.Title, enabledCount, len(l.Apps))
	}
	b.WriteString(ui.PanelTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(ui.DividerStyle.Render(strings.Repeat("─", max(1, l.Width-2))))
	b.WriteString("\n")

	if len(l.Apps) == 0 {
		b.WriteString(ui.ItemStyle.Render("No applications found"))
		return l.wrapInPanel(b.String())
	}

	// Calculate visible range
	visibleHeight := l.Height - 3 // Minus title and divider
	startIdx := 0
	if l.Cursor >= visibleHeight {
		startIdx = l.Cursor - visibleHeight + 1
	}
	endIdx := min(startIdx+visibleHeight, len(l.Apps))

	// Show scroll indicator at top
	if startIdx > 0 {
		b.WriteString(ui.MutedStyle.Render("  ↑ more"))
		b.WriteString("\n")
	}

	// Render visible items
	for i := startIdx; i < endIdx; i++ {
		line := l.renderItem(&l.Apps[i], i == l.Cursor)
		b.WriteString(line)
		if i < endIdx-1 {
			b.WriteString("\n")
		}
	}

	// Show scroll indicator at bottom with position info
	if endIdx < len(l.Apps) {
		b.WriteString("\n")
		b.WriteString(ui.MutedStyle.Render("  ↓ more"))
	}

	// Add position indicator when scrolling
	if len(l.Apps) > visibleHeight {
		position := fmt.Sprintf(" %d/%d ", l.Cursor+1, len(l.Apps))
		b.WriteString("\n")
		b.WriteString(ui.MutedStyle.Render(strings.Repeat(" ", max(0, (l.Width-len(position)-4)/2)) + position))
	}

	return l.wrapInPanel(b.String())
}

// renderItem renders a single app row
func (l *AppList) renderItem(app *models.App, isCursor bool) string {
	status := ui.RenderStatus(app.Enabled)
	icon := l.Rules.IconFor(app.Exec)

	name := app.Name
	maxNameLen := l.Width - 24
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	origin := ui.OriginStyle.Render(app.Origin.Icon() + " " + app.Origin.Title())

	delay := ""
	if app.Delay > 0 {
		delay = ui.DelayStyle.Render("⏱ " + app.DelayDisplay())
	}

	content := fmt.Sprintf("%s %s %s %s %s", status, icon, ui.AppNameStyle.Render(name), origin, delay)

	if isCursor && l.Focused {
		return ui.SelectedItemStyle.Width(l.Width - 4).Render(content)
	}
	return ui.ItemStyle.Render(content)
}

// wrapInPanel wraps content in a panel border
func (l *AppList) wrapInPanel(content string) string {
	style := ui.PanelStyle
	if l.Focused {
		style = ui.ActivePanelStyle
	}
	return style.Width(l.Width).Height(l.Height).Render(content)
}
