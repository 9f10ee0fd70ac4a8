package components

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"startmgr/internal/models"
	"startmgr/internal/ui"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Detail displays the selected app's info and a highlighted preview of its
// desktop file
type Detail struct {
	viewport    viewport.Model
	highlighter *ui.Highlighter

	// Current selection
	App        *models.App
	FilePath   string
	FileSize   int64
	TotalLines int

	// Dimensions
	Width  int
	Height int

	// State
	ready bool

	// Styles
	lineNumStyle lipgloss.Style
	headerStyle  lipgloss.Style
	infoStyle    lipgloss.Style
	borderStyle  lipgloss.Style
}

// NewDetail creates a new detail panel with viewport
func NewDetail() *Detail {
	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &Detail{
		viewport:    vp,
		highlighter: ui.NewHighlighter(),
		Width:       80,
		Height:      20,
		lineNumStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")).
			Width(5).
			Align(lipgloss.Right),
		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#89B4FA")),
		infoStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")),
		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#89B4FA")).
			Padding(0, 1),
	}
}

// SetSize updates the viewport dimensions
func (p *Detail) SetSize(width, height int) {
	p.Width = width
	p.Height = height

	// Account for the info block (6 lines) and border (2 lines)
	contentHeight := height - 8
	if contentHeight < 5 {
		contentHeight = 5
	}
	contentWidth := width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	p.viewport.Width = contentWidth
	p.viewport.Height = contentHeight
	p.ready = true
}

// SetApp updates the panel for the given app. path is the desktop file to
// preview, empty when the entry has no file on disk.
func (p *Detail) SetApp(app *models.App, path string) error {
	p.App = app
	if app == nil {
		p.setMessage("", 0, []string{"", "  Select an application"})
		return nil
	}
	if path == "" {
		p.setMessage("", 0, []string{"", "  No desktop file on disk for this entry"})
		return nil
	}
	return p.load(path)
}

// load reads the desktop file into the preview viewport
func (p *Detail) load(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		p.setMessage(path, 0, []string{"", "  ⚠️  Cannot read " + filepath.Base(path)})
		return err
	}

	// Desktop entries are tiny; anything big is not one
	if info.Size() > 1024*1024 {
		p.setMessage(path, info.Size(), []string{
			"",
			"  ⚠️  File is too large to preview",
			fmt.Sprintf("  Size: %s", formatBytes(info.Size())),
		})
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if isBinaryContent(data) {
		p.setMessage(path, info.Size(), []string{
			"",
			"  ⚠️  Binary file - cannot preview",
			fmt.Sprintf("  Size: %s", formatBytes(info.Size())),
		})
		return nil
	}

	lines := strings.Split(string(data), "\n")

	// Build content with line numbers and syntax highlighting
	var b strings.Builder
	for i, line := range lines {
		lineNum := p.lineNumStyle.Render(fmt.Sprintf("%d", i+1))
		highlighted := p.highlighter.HighlightLine(line, path)

		// Truncate very long lines for display
		maxWidth := p.viewport.Width - 10
		if maxWidth < 40 {
			maxWidth = 40
		}
		visibleLine := stripAnsi(highlighted)
		if len(visibleLine) > maxWidth {
			truncated := line
			if len(line) > maxWidth-3 {
				truncated = line[:maxWidth-3] + "..."
			}
			highlighted = p.highlighter.HighlightLine(truncated, path)
		}

		b.WriteString(lineNum + " │ " + highlighted)
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}

	p.FilePath = path
	p.FileSize = info.Size()
	p.TotalLines = len(lines)
	p.viewport.SetContent(b.String())
	p.viewport.GotoTop()

	return nil
}

// setMessage sets a simple message content
func (p *Detail) setMessage(path string, size int64, lines []string) {
	p.FilePath = path
	p.FileSize = size
	p.TotalLines = len(lines)
	p.viewport.SetContent(strings.Join(lines, "\n"))
	p.viewport.GotoTop()
}

// Update handles messages for viewport scrolling
func (p *Detail) Update(msg tea.Msg) (*Detail, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View renders the detail panel
func (p *Detail) View() string {
	var b strings.Builder

	if p.App == nil {
		b.WriteString(p.infoStyle.Render("Select an application"))
		return p.borderStyle.Width(p.Width).Height(p.Height).Render(b.String())
	}

	app := p.App

	// Header and info rows
	status := app.StatusIcon() + " " + app.StatusString()
	if app.Enabled && app.Delay > 0 {
		status += fmt.Sprintf(" (delayed %s)", app.DelayDisplay())
	}

	b.WriteString(p.headerStyle.Render("📍 "+app.Name) + "  " + status + "\n")
	b.WriteString(p.infoStyle.Render("💻 Command: ") + app.Exec + "\n")

	origin := app.Origin.Icon() + " Type: " + app.Origin.Title()
	if app.PackageID != "" {
		origin += " (" + app.PackageID + ")"
	}
	b.WriteString(p.infoStyle.Render(origin) + "\n")

	if app.Icon != "" {
		b.WriteString(p.infoStyle.Render("🎨 Icon: "+app.Icon) + "\n")
	}
	if p.FilePath != "" {
		b.WriteString(p.infoStyle.Render("📁 Source: "+p.FilePath) + "\n")
	}

	// Separator
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color("#313244")).
		Render(strings.Repeat("─", max(1, p.Width-4))) + "\n")

	// Viewport content
	b.WriteString(p.viewport.View())

	// Scroll indicator
	if p.TotalLines > p.viewport.Height {
		scrollPercent := p.viewport.ScrollPercent() * 100
		scrollInfo := fmt.Sprintf("─── %.0f%% ───", scrollPercent)
		b.WriteString("\n" + p.infoStyle.Render(scrollInfo))
	}

	return p.borderStyle.
		Width(p.Width).
		Height(p.Height).
		Render(b.String())
}

// ScrollUp scrolls up one line
func (p *Detail) ScrollUp() {
	p.viewport.LineUp(1)
}

// ScrollDown scrolls down one line
func (p *Detail) ScrollDown() {
	p.viewport.LineDown(1)
}

// PageUp scrolls up by a page
func (p *Detail) PageUp() {
	p.viewport.ViewUp()
}

// PageDown scrolls down by a page
func (p *Detail) PageDown() {
	p.viewport.ViewDown()
}

// GoToTop goes to the beginning
func (p *Detail) GoToTop() {
	p.viewport.GotoTop()
}

// GoToBottom goes to the end
func (p *Detail) GoToBottom() {
	p.viewport.GotoBottom()
}

// isBinaryContent checks if content appears to be binary
func isBinaryContent(data []byte) bool {
	// Check first 512 bytes for null bytes or high proportion of non-printable chars
	checkLen := 512
	if len(data) < checkLen {
		checkLen = len(data)
	}

	nonPrintable := 0
	for i := 0; i < checkLen; i++ {
		if data[i] == 0 {
			return true // Null byte = binary
		}
		if data[i] < 32 && data[i] != '\n' && data[i] != '\r' && data[i] != '\t' {
			nonPrintable++
		}
	}

	// If more than 30% non-printable, consider binary
	return float64(nonPrintable)/float64(checkLen) > 0.3
}

// formatBytes formats bytes to human readable string
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// stripAnsi removes ANSI escape codes from a string
func stripAnsi(str string) string {
	var result strings.Builder
	inEscape := false

	for i := 0; i < len(str); i++ {
		if str[i] == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if str[i] == 'm' {
				inEscape = false
			}
			continue
		}
		result.WriteByte(str[i])
	}

	return result.String()
}
