package desktop

import (
	"fmt"
	"strconv"

	"gopkg.in/ini.v1"
)

// File is a loaded desktop-entry document kept in a form that can be
// edited and saved without disturbing keys it does not understand.
type File struct {
	path string
	file *ini.File
	sec  *ini.Section
}

// Load opens the document at path for raw key access. Duplicate sections
// and keys are merged rather than rejected; a document without the primary
// section is an error.
func Load(path string) (*File, error) {
	inf, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	sec, err := inf.GetSection(primarySection)
	if err != nil {
		return nil, fmt.Errorf("%s: no [Desktop Entry] section", path)
	}
	return &File{path: path, file: inf, sec: sec}, nil
}

// Path returns the document's location on disk.
func (f *File) Path() string {
	return f.path
}

// Get returns the raw value for a key in the primary section, or "" when
// the key is absent.
func (f *File) Get(key string) string {
	k, err := f.sec.GetKey(key)
	if err != nil {
		return ""
	}
	return k.String()
}

// Has reports whether the primary section carries the key.
func (f *File) Has(key string) bool {
	return f.sec.HasKey(key)
}

// Set writes a key in the primary section, creating it when absent.
func (f *File) Set(key, value string) {
	f.sec.Key(key).SetValue(value)
}

// Delete removes a key from the primary section if present.
func (f *File) Delete(key string) {
	f.sec.DeleteKey(key)
}

// SetStartupDelay rewrites the launch command for the given delay and keeps
// the entry marked enabled. Every other key is left in place.
func (f *File) SetStartupDelay(command string, delay int) {
	f.Set("Exec", WrapDelay(command, delay))
	f.Set("X-GNOME-Autostart-enabled", "true")
	f.Set("Hidden", "false")
	if delay > 0 {
		f.Set("X-GNOME-Autostart-Delay", strconv.Itoa(delay))
	} else {
		f.Delete("X-GNOME-Autostart-Delay")
	}
}

// Save writes the document back to the path it was loaded from.
func (f *File) Save() error {
	if err := f.file.SaveTo(f.path); err != nil {
		return fmt.Errorf("save %s: %w", f.path, err)
	}
	return nil
}
