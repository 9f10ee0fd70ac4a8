package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/skratchdot/open-golang/open"

	"startmgr/internal/desktop"
)

// ErrEmptyCommand is returned when a command is blank after field codes
// are stripped.
var ErrEmptyCommand = errors.New("command is empty")

// RunDetached launches command in its own session and returns without
// waiting for it. The command runs through the shell so quoting, arguments
// and wrappers like "flatpak run" behave exactly as they do when the
// session manager starts the entry.
func RunDetached(command string) error {
	command = desktop.StripFieldCodes(command)
	if command == "" {
		return ErrEmptyCommand
	}

	cmd := exec.Command("sh", "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true, // New session, survives this process exiting
	}
	cmd.Stdin = nil
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %q: %w", command, err)
	}

	// Not waited on; release the handle so the child is never reaped here.
	return cmd.Process.Release()
}

// OpenFolder opens path in the desktop's file manager.
func OpenFolder(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return open.Start(path)
}
