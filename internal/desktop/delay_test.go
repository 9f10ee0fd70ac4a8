package desktop

import "testing"

func TestWrapDelay_ZeroReturnsCommandUnchanged(t *testing.T) {
	if got := WrapDelay("/bin/foo", 0); got != "/bin/foo" {
		t.Errorf("WrapDelay with 0 = %q, want /bin/foo", got)
	}
	if got := WrapDelay("/bin/foo", -3); got != "/bin/foo" {
		t.Errorf("WrapDelay with -3 = %q, want /bin/foo", got)
	}
}

func TestWrapDelay_WrapsCommand(t *testing.T) {
	got := WrapDelay("/bin/foo", 5)
	want := "sh -c 'sleep 5 && /bin/foo'"
	if got != want {
		t.Errorf("WrapDelay = %q, want %q", got, want)
	}
}

func TestWrapDelay_EscapesSingleQuotes(t *testing.T) {
	got := WrapDelay("echo 'hi'", 2)
	want := `sh -c 'sleep 2 && echo '\''hi'\'''`
	if got != want {
		t.Errorf("WrapDelay = %q, want %q", got, want)
	}
}

func TestUnwrapDelay_BareCommand(t *testing.T) {
	cmd, delay, ok := UnwrapDelay("/usr/bin/firefox")
	if ok {
		t.Error("Expected ok=false for bare command")
	}
	if cmd != "/usr/bin/firefox" || delay != 0 {
		t.Errorf("UnwrapDelay = (%q, %d), want (/usr/bin/firefox, 0)", cmd, delay)
	}
}

func TestUnwrapDelay_WrappedCommand(t *testing.T) {
	cmd, delay, ok := UnwrapDelay("sh -c 'sleep 5 && /bin/foo'")
	if !ok {
		t.Fatal("Expected ok=true for wrapped command")
	}
	if cmd != "/bin/foo" {
		t.Errorf("Expected command /bin/foo, got %q", cmd)
	}
	if delay != 5 {
		t.Errorf("Expected delay 5, got %d", delay)
	}
}

func TestUnwrapDelay_DoubleQuotedWrapper(t *testing.T) {
	cmd, delay, ok := UnwrapDelay(`sh -c "sleep 12 && snap run spotify"`)
	if !ok {
		t.Fatal("Expected ok=true for double-quoted wrapper")
	}
	if cmd != "snap run spotify" {
		t.Errorf("Expected command 'snap run spotify', got %q", cmd)
	}
	if delay != 12 {
		t.Errorf("Expected delay 12, got %d", delay)
	}
}

func TestUnwrapDelay_SleepWithoutWrapper(t *testing.T) {
	// Commands that merely mention sleep are not wrappers.
	cmd, delay, ok := UnwrapDelay("/usr/bin/sleep-tracker --daemon")
	if ok {
		t.Error("Expected ok=false when pattern does not match")
	}
	if cmd != "/usr/bin/sleep-tracker --daemon" || delay != 0 {
		t.Errorf("UnwrapDelay = (%q, %d), want original command and 0", cmd, delay)
	}
}

func TestWrapUnwrap_RoundTrip(t *testing.T) {
	tests := []struct {
		command string
		delay   int
	}{
		{"/bin/foo", 5},
		{"flatpak run org.mozilla.firefox", 30},
		{"env VAR=1 /opt/app --flag value", 1},
		{"echo 'quoted arg'", 10},
		{"watch -n 1 'date'", 7},
	}

	for _, tt := range tests {
		wrapped := WrapDelay(tt.command, tt.delay)
		cmd, delay, ok := UnwrapDelay(wrapped)
		if !ok {
			t.Errorf("UnwrapDelay(%q): expected ok=true", wrapped)
			continue
		}
		if cmd != tt.command {
			t.Errorf("Round trip of %q gave command %q", tt.command, cmd)
		}
		if delay != tt.delay {
			t.Errorf("Round trip of %q gave delay %d, want %d", tt.command, delay, tt.delay)
		}
	}
}
