package models

import "fmt"

// Origin identifies which source produced an application record
type Origin int

const (
	OriginNative  Origin = iota // system/user desktop entry directories
	OriginFlatpak               // flatpak listing or exported desktop file
	OriginSnap                  // snap listing or snapd desktop file
	OriginCustom                // autostart-only entry with no installed source
)

// String returns the lowercase tag used by filters and export documents
func (o Origin) String() string {
	switch o {
	case OriginFlatpak:
		return "flatpak"
	case OriginSnap:
		return "snap"
	case OriginCustom:
		return "custom"
	default:
		return "native"
	}
}

// Title returns the human-readable origin label
func (o Origin) Title() string {
	switch o {
	case OriginFlatpak:
		return "Flatpak"
	case OriginSnap:
		return "Snap"
	case OriginCustom:
		return "Custom"
	default:
		return "Native"
	}
}

// Icon returns the list icon for the origin
func (o Origin) Icon() string {
	switch o {
	case OriginFlatpak, OriginSnap:
		return "📦"
	case OriginCustom:
		return "⚙️"
	default:
		return "🖥️"
	}
}

// ParseOrigin maps a tag back to an Origin. Unknown tags become
// OriginCustom, matching how unattributed autostart entries are handled.
func ParseOrigin(tag string) Origin {
	switch tag {
	case "native":
		return OriginNative
	case "flatpak":
		return OriginFlatpak
	case "snap":
		return OriginSnap
	default:
		return OriginCustom
	}
}

// App is one entry in the application inventory
type App struct {
	Name       string // Display name, unique key within the inventory
	Exec       string // Launch command with field codes stripped
	Origin     Origin // Provenance, fixed when the record is created
	SourcePath string // Desktop file the record was parsed from, empty if synthesized
	PackageID  string // Flatpak/snap identifier when known
	Icon       string // Raw Icon value from the desktop file
	Enabled    bool   // Whether an autostart entry exists for this app
	Delay      int    // Startup delay in seconds, 0 means no wrapper
}

// StatusIcon returns the enabled/disabled marker for list rows
func (a *App) StatusIcon() string {
	if a.Enabled {
		return "🟢"
	}
	return "⚪"
}

// StatusString returns the enabled/disabled label
func (a *App) StatusString() string {
	if a.Enabled {
		return "Enabled"
	}
	return "Disabled"
}

// DelayDisplay renders the delay column, "-" when no delay is set
func (a *App) DelayDisplay() string {
	if a.Delay > 0 {
		return fmt.Sprintf("%ds", a.Delay)
	}
	return "-"
}
