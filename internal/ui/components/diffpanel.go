package components

import (
	"fmt"
	"strings"

	"startmgr/internal/autostart"
	"startmgr/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

// DiffPanel displays what applying a pending change would write to the
// autostart directory
type DiffPanel struct {
	Width  int
	Height int

	AppName    string
	DiffResult *autostart.DiffResult

	// Navigation
	ScrollOffset int

	// Syntax highlighting
	highlighter     *ui.Highlighter
	enableHighlight bool

	// Styles
	addStyle     lipgloss.Style
	deleteStyle  lipgloss.Style
	contextStyle lipgloss.Style
	headerStyle  lipgloss.Style
}

// NewDiffPanel creates a new DiffPanel
func NewDiffPanel() *DiffPanel {
	return &DiffPanel{
		Width:           80,
		Height:          20,
		highlighter:     ui.NewHighlighter(),
		enableHighlight: true,
		addStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a6e3a1")),
		deleteStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f38ba8")),
		contextStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6c7086")),
		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#89b4fa")),
	}
}

// SetDiff sets the diff result to display
func (d *DiffPanel) SetDiff(result *autostart.DiffResult, appName string) {
	d.DiffResult = result
	d.AppName = appName
	d.ScrollOffset = 0
}

// ScrollUp scrolls the view up
func (d *DiffPanel) ScrollUp() {
	if d.ScrollOffset > 0 {
		d.ScrollOffset--
	}
}

// ScrollDown scrolls the view down
func (d *DiffPanel) ScrollDown() {
	d.ScrollOffset++
}

// ToggleHighlight toggles syntax highlighting
func (d *DiffPanel) ToggleHighlight() {
	d.enableHighlight = !d.enableHighlight
}

// View renders the diff panel
func (d *DiffPanel) View() string {
	if d.DiffResult == nil {
		return "No changes to preview"
	}

	var b strings.Builder

	// Header
	header := d.renderHeader()
	b.WriteString(header)
	b.WriteString("\n\n")

	// Stats
	stats := d.renderStats()
	b.WriteString(stats)
	b.WriteString("\n\n")

	// Diff content
	content := d.renderDiff()
	b.WriteString(content)

	// Footer
	b.WriteString("\n")
	b.WriteString(d.renderFooter())

	return b.String()
}

func (d *DiffPanel) renderHeader() string {
	title := d.headerStyle.Render("📊 Preview Changes")

	fileName := d.DiffResult.NewPath
	if fileName == "" {
		fileName = d.DiffResult.OldPath
	}

	fileType := ui.GetFileType(fileName)
	highlightStatus := ""
	if d.enableHighlight {
		highlightStatus = " [syntax on]"
	}

	name := ""
	if d.AppName != "" {
		name = ui.AppNameStyle.Render(d.AppName) + "  "
	}

	return fmt.Sprintf("%s  %s%s  %s%s", title, name, ui.MutedStyle.Render(fileName),
		ui.OriginStyle.Render(fileType), ui.MutedStyle.Render(highlightStatus))
}

func (d *DiffPanel) renderStats() string {
	if d.DiffResult.Identical {
		return ui.EnabledStyle.Render("✓ No changes to apply")
	}

	var parts []string
	if d.DiffResult.Added > 0 {
		parts = append(parts, d.addStyle.Render(fmt.Sprintf("+%d", d.DiffResult.Added)))
	}
	if d.DiffResult.Removed > 0 {
		parts = append(parts, d.deleteStyle.Render(fmt.Sprintf("-%d", d.DiffResult.Removed)))
	}

	note := fmt.Sprintf("%d lines", len(d.DiffResult.Lines))
	if !d.DiffResult.OldExists {
		note = "file will be created"
	}
	return strings.Join(parts, " ") + "  " + ui.MutedStyle.Render(note)
}

func (d *DiffPanel) renderDiff() string {
	if d.DiffResult.Identical {
		return ui.MutedStyle.Render("The entry on disk already matches")
	}

	var lines []string
	lineWidth := d.Width - 4 // Padding

	for _, diffLine := range d.DiffResult.Lines {
		lines = append(lines, d.formatDiffLine(diffLine, lineWidth))
	}

	// Apply scroll offset
	visibleLines := d.Height - 8 // Reserve space for header/footer
	if visibleLines < 1 {
		visibleLines = 10
	}

	start := d.ScrollOffset
	if start >= len(lines) {
		start = 0
	}
	end := start + visibleLines
	if end > len(lines) {
		end = len(lines)
	}

	return strings.Join(lines[start:end], "\n")
}

func (d *DiffPanel) formatDiffLine(line autostart.DiffLine, maxWidth int) string {
	content := line.Content
	if len(content) > maxWidth-2 {
		content = content[:maxWidth-5] + "..."
	}

	// Get filename for syntax highlighting
	fileName := d.DiffResult.NewPath
	if fileName == "" {
		fileName = d.DiffResult.OldPath
	}

	// Apply syntax highlighting to context lines if enabled
	if d.enableHighlight && line.Type == autostart.DiffEqual && d.highlighter != nil {
		content = d.highlighter.HighlightLine(content, fileName)
	}

	switch line.Type {
	case autostart.DiffInsert:
		return d.addStyle.Render("+ " + content)
	case autostart.DiffDelete:
		return d.deleteStyle.Render("- " + content)
	default:
		return d.contextStyle.Render("  ") + content
	}
}

func (d *DiffPanel) renderFooter() string {
	items := []string{
		ui.RenderHelpItem("j/k", "scroll"),
		ui.RenderHelpItem("h", "highlight"),
		ui.RenderHelpItem("ESC", "close"),
	}
	return ui.HelpBarStyle.Render(strings.Join(items, "  "))
}

// HasChanges returns true if there are differences
func (d *DiffPanel) HasChanges() bool {
	return d.DiffResult != nil && !d.DiffResult.Identical
}

// LineCount returns the number of diff lines
func (d *DiffPanel) LineCount() int {
	if d.DiffResult == nil {
		return 0
	}
	return len(d.DiffResult.Lines)
}
