package components

import (
	"strings"

	"startmgr/internal/ui"
)

// Confirm is a modal yes/no prompt. The caller sets a tag when showing
// it so the answer can be routed back to the right operation.
type Confirm struct {
	Title   string
	Message string
	Tag     string
	Width   int
	Yes     bool
	Visible bool
}

// NewConfirm creates a new confirm dialog
func NewConfirm() *Confirm {
	return &Confirm{
		Width: 60,
	}
}

// Show opens the dialog. The focused button starts on No.
func (c *Confirm) Show(title, message, tag string) {
	c.Title = title
	c.Message = message
	c.Tag = tag
	c.Yes = false
	c.Visible = true
}

// Hide closes the dialog
func (c *Confirm) Hide() {
	c.Visible = false
}

// IsVisible returns whether the dialog is visible
func (c *Confirm) IsVisible() bool {
	return c.Visible
}

// Toggle moves focus between the Yes and No buttons
func (c *Confirm) Toggle() {
	c.Yes = !c.Yes
}

// Accept closes the dialog and returns the tag and the chosen answer
func (c *Confirm) Accept() (string, bool) {
	c.Visible = false
	return c.Tag, c.Yes
}

// View renders the dialog
func (c *Confirm) View() string {
	if !c.Visible {
		return ""
	}

	var b strings.Builder

	b.WriteString(ui.PanelTitleStyle.Render(c.Title))
	b.WriteString("\n")
	b.WriteString(ui.DividerStyle.Render(strings.Repeat("-", c.Width-4)))
	b.WriteString("\n\n")

	b.WriteString(c.Message)
	b.WriteString("\n\n")

	buttons := ui.RenderButton("Yes", c.Yes) + "  " + ui.RenderButton("No", !c.Yes)
	b.WriteString(buttons)
	b.WriteString("\n")

	b.WriteString(ui.DividerStyle.Render(strings.Repeat("-", c.Width-4)))
	b.WriteString("\n")
	b.WriteString(c.renderHelp())

	return ui.DialogStyle.Width(c.Width).Render(b.String())
}

func (c *Confirm) renderHelp() string {
	items := []string{
		ui.RenderHelpItem("Tab", "switch"),
		ui.RenderHelpItem("y/n", "answer"),
		ui.RenderHelpItem("Enter", "confirm"),
		ui.RenderHelpItem("Esc", "cancel"),
	}
	return strings.Join(items, "  ")
}
