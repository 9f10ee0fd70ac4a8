package ui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	Primary    = lipgloss.Color("#89B4FA") // Blue
	Secondary  = lipgloss.Color("#74C7EC") // Sapphire
	Success    = lipgloss.Color("#A6E3A1") // Green
	Warning    = lipgloss.Color("#F9E2AF") // Yellow
	Error      = lipgloss.Color("#F38BA8") // Red
	Muted      = lipgloss.Color("#6C7086") // Overlay gray
	Background = lipgloss.Color("#1E1E2E") // Dark base
	Foreground = lipgloss.Color("#CDD6F4") // Light text
	Border     = lipgloss.Color("#45475A") // Border gray
	Highlight  = lipgloss.Color("#B4BEFE") // Lavender
	Selected   = lipgloss.Color("#585B70") // Surface
)

// Styles
var (
	// App container
	AppStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// Header
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1).
			MarginBottom(1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Foreground)

	VersionStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Panels
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary).
			Padding(0, 1)

	ActivePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Primary).
				Padding(0, 1)

	// List items
	ItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	SelectedItemStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(Selected).
				Foreground(Foreground)

	CursorStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1).
			MarginTop(1)

	StatusTextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	// Help bar
	HelpBarStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// App name and command columns
	AppNameStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	CommandStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Startup status
	EnabledStyle = lipgloss.NewStyle().
			Foreground(Success)

	DisabledStyle = lipgloss.NewStyle().
			Foreground(Muted)

	DelayStyle = lipgloss.NewStyle().
			Foreground(Warning)

	OriginStyle = lipgloss.NewStyle().
			Foreground(Secondary)

	MissingStyle = lipgloss.NewStyle().
			Foreground(Error)

	// Muted text
	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Progress
	ProgressStyle = lipgloss.NewStyle().
			Foreground(Primary)

	// Divider
	DividerStyle = lipgloss.NewStyle().
			Foreground(Border)

	// Notification/Toast styles
	SuccessNotifyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#A6E3A1")).
				Background(lipgloss.Color("#1C3323")).
				Padding(0, 1).
				Bold(true)

	ErrorNotifyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F38BA8")).
				Background(lipgloss.Color("#45222E")).
				Padding(0, 1).
				Bold(true)

	WarningNotifyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F9E2AF")).
				Background(lipgloss.Color("#443C26")).
				Padding(0, 1).
				Bold(true)

	InfoNotifyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#89B4FA")).
			Background(lipgloss.Color("#24304A")).
			Padding(0, 1).
			Bold(true)

	// Dialog box style
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2).
			Width(60)

	// Button styles
	ButtonStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Border).
			Padding(0, 2)

	ButtonActiveStyle = lipgloss.NewStyle().
				Foreground(Background).
				Background(Primary).
				Padding(0, 2).
				Bold(true)
)

// RenderHelpItem renders a help key-description pair
func RenderHelpItem(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

// RenderStatus returns the colored status dot for an entry
func RenderStatus(enabled bool) string {
	if enabled {
		return EnabledStyle.Render("🟢")
	}
	return DisabledStyle.Render("⚪")
}

// RenderNotification renders a styled notification message
func RenderNotification(msgType string, message string) string {
	var icon string
	var style lipgloss.Style

	switch msgType {
	case "success":
		icon = "✓"
		style = SuccessNotifyStyle
	case "error":
		icon = "✗"
		style = ErrorNotifyStyle
	case "warning":
		icon = "⚠"
		style = WarningNotifyStyle
	case "info":
		icon = "ℹ"
		style = InfoNotifyStyle
	default:
		icon = "•"
		style = MutedStyle
	}

	return style.Render(icon + " " + message)
}

// RenderButton renders a styled button
func RenderButton(label string, active bool) string {
	if active {
		return ButtonActiveStyle.Render(label)
	}
	return ButtonStyle.Render(label)
}
