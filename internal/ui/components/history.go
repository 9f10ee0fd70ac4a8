package components

import (
	"fmt"
	"strings"

	"startmgr/internal/backup"
	"startmgr/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

// historyLimit is how many snapshots the panel loads at a time
const historyLimit = 20

// HistoryPanel displays autostart snapshots and lets one be restored
type HistoryPanel struct {
	Width  int
	Height int

	History *backup.History
	Entries []backup.Entry
	Cursor  int

	// Styles
	headerStyle lipgloss.Style
	hashStyle   lipgloss.Style
	ageStyle    lipgloss.Style
	cursorStyle lipgloss.Style
}

// NewHistoryPanel creates a new HistoryPanel
func NewHistoryPanel() *HistoryPanel {
	return &HistoryPanel{
		Width:  80,
		Height: 20,
		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#89b4fa")),
		hashStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6c7086")),
		ageStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f9e2af")),
		cursorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#89b4fa")),
	}
}

// SetHistory sets the snapshot store
func (p *HistoryPanel) SetHistory(h *backup.History) {
	p.History = h
	p.Refresh()
}

// Refresh reloads the snapshot list
func (p *HistoryPanel) Refresh() error {
	if p.History == nil {
		return nil
	}

	entries, err := p.History.Entries(historyLimit)
	if err != nil {
		return err
	}
	p.Entries = entries
	if p.Cursor >= len(p.Entries) {
		p.Cursor = max(0, len(p.Entries)-1)
	}
	return nil
}

// MoveUp moves cursor up
func (p *HistoryPanel) MoveUp() {
	if p.Cursor > 0 {
		p.Cursor--
	}
}

// MoveDown moves cursor down
func (p *HistoryPanel) MoveDown() {
	if p.Cursor < len(p.Entries)-1 {
		p.Cursor++
	}
}

// Selected returns the snapshot under the cursor
func (p *HistoryPanel) Selected() *backup.Entry {
	if len(p.Entries) == 0 || p.Cursor >= len(p.Entries) {
		return nil
	}
	return &p.Entries[p.Cursor]
}

// Restore writes the selected snapshot back to the autostart directory
// and returns the number of entries written
func (p *HistoryPanel) Restore() (int, error) {
	if p.History == nil {
		return 0, fmt.Errorf("snapshot history is disabled")
	}
	entry := p.Selected()
	if entry == nil {
		return 0, fmt.Errorf("no snapshot selected")
	}
	restored, err := p.History.Restore(entry.Hash)
	if err == nil {
		p.Refresh()
	}
	return restored, err
}

// View renders the history panel
func (p *HistoryPanel) View() string {
	if p.History == nil {
		return "Snapshot history is disabled"
	}

	var b strings.Builder

	b.WriteString(p.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(p.renderEntries())
	b.WriteString("\n")
	b.WriteString(p.renderFooter())

	return b.String()
}

func (p *HistoryPanel) renderHeader() string {
	title := p.headerStyle.Render("💾 Snapshot History")
	count := fmt.Sprintf("%d snapshots", len(p.Entries))
	if len(p.Entries) == 1 {
		count = "1 snapshot"
	}
	return fmt.Sprintf("%s  %s", title, ui.MutedStyle.Render(count))
}

func (p *HistoryPanel) renderEntries() string {
	if len(p.Entries) == 0 {
		return ui.MutedStyle.Render("  No snapshots yet")
	}

	visible := p.Height - 6
	if visible < 1 {
		visible = 10
	}

	start := 0
	if p.Cursor >= visible {
		start = p.Cursor - visible + 1
	}
	end := min(start+visible, len(p.Entries))

	var b strings.Builder
	for i := start; i < end; i++ {
		entry := p.Entries[i]

		prefix := "  "
		if i == p.Cursor {
			prefix = "▸ "
		}

		msg := entry.Message
		if len(msg) > 40 {
			msg = msg[:37] + "..."
		}
		if i == p.Cursor {
			msg = p.cursorStyle.Render(msg)
		}

		b.WriteString(fmt.Sprintf("%s%s  %s  %s  %s\n",
			prefix,
			p.hashStyle.Render(entry.Hash),
			entry.Date(),
			msg,
			p.ageStyle.Render(entry.Age())))
	}

	if end < len(p.Entries) {
		b.WriteString(ui.MutedStyle.Render(fmt.Sprintf("  ↓ %d more", len(p.Entries)-end)))
		b.WriteString("\n")
	}

	return b.String()
}

func (p *HistoryPanel) renderFooter() string {
	items := []string{
		ui.RenderHelpItem("↑/↓", "navigate"),
		ui.RenderHelpItem("R", "restore"),
		ui.RenderHelpItem("r", "refresh"),
		ui.RenderHelpItem("ESC", "back"),
	}
	return ui.HelpBarStyle.Render(strings.Join(items, "  "))
}
