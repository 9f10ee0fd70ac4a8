package models

import "testing"

// ============ Origin Tests ============

func TestOriginString(t *testing.T) {
	tests := []struct {
		origin   Origin
		expected string
	}{
		{OriginNative, "native"},
		{OriginFlatpak, "flatpak"},
		{OriginSnap, "snap"},
		{OriginCustom, "custom"},
	}

	for _, tt := range tests {
		if got := tt.origin.String(); got != tt.expected {
			t.Errorf("String() for %d = %s, want %s", tt.origin, got, tt.expected)
		}
	}
}

func TestOriginTitle(t *testing.T) {
	tests := []struct {
		origin   Origin
		expected string
	}{
		{OriginNative, "Native"},
		{OriginFlatpak, "Flatpak"},
		{OriginSnap, "Snap"},
		{OriginCustom, "Custom"},
	}

	for _, tt := range tests {
		if got := tt.origin.Title(); got != tt.expected {
			t.Errorf("Title() for %v = %s, want %s", tt.origin, got, tt.expected)
		}
	}
}

func TestOriginIcon(t *testing.T) {
	tests := []struct {
		origin   Origin
		expected string
	}{
		{OriginNative, "🖥️"},
		{OriginFlatpak, "📦"},
		{OriginSnap, "📦"},
		{OriginCustom, "⚙️"},
	}

	for _, tt := range tests {
		if got := tt.origin.Icon(); got != tt.expected {
			t.Errorf("Icon() for %v = %s, want %s", tt.origin, got, tt.expected)
		}
	}
}

func TestParseOrigin(t *testing.T) {
	tests := []struct {
		tag      string
		expected Origin
	}{
		{"native", OriginNative},
		{"flatpak", OriginFlatpak},
		{"snap", OriginSnap},
		{"custom", OriginCustom},
		{"", OriginCustom},
		{"appimage", OriginCustom},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := ParseOrigin(tt.tag); got != tt.expected {
				t.Errorf("ParseOrigin(%q) = %v, want %v", tt.tag, got, tt.expected)
			}
		})
	}
}

func TestParseOrigin_RoundTrip(t *testing.T) {
	for _, o := range []Origin{OriginNative, OriginFlatpak, OriginSnap, OriginCustom} {
		if got := ParseOrigin(o.String()); got != o {
			t.Errorf("ParseOrigin(%s) = %v, want %v", o.String(), got, o)
		}
	}
}

// ============ App Tests ============

func TestAppStatusIcon(t *testing.T) {
	enabled := &App{Name: "Firefox", Enabled: true}
	if got := enabled.StatusIcon(); got != "🟢" {
		t.Errorf("StatusIcon() for enabled app = %s, want 🟢", got)
	}

	disabled := &App{Name: "Firefox"}
	if got := disabled.StatusIcon(); got != "⚪" {
		t.Errorf("StatusIcon() for disabled app = %s, want ⚪", got)
	}
}

func TestAppStatusString(t *testing.T) {
	app := &App{Name: "Firefox"}
	if got := app.StatusString(); got != "Disabled" {
		t.Errorf("StatusString() = %s, want Disabled", got)
	}

	app.Enabled = true
	if got := app.StatusString(); got != "Enabled" {
		t.Errorf("StatusString() = %s, want Enabled", got)
	}
}

func TestAppDelayDisplay(t *testing.T) {
	tests := []struct {
		delay    int
		expected string
	}{
		{0, "-"},
		{1, "1s"},
		{30, "30s"},
	}

	for _, tt := range tests {
		app := &App{Delay: tt.delay}
		if got := app.DelayDisplay(); got != tt.expected {
			t.Errorf("DelayDisplay() for delay %d = %s, want %s", tt.delay, got, tt.expected)
		}
	}
}
