package watcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last change
// before notifying. Desktop environments and editors often touch a file
// several times in quick succession.
const DefaultDebounce = 400 * time.Millisecond

// Watcher reports changes to the autostart directory's desktop entries.
// Bursts of filesystem events are coalesced into a single notification.
type Watcher struct {
	watcher  *fsnotify.Watcher
	dir      string
	debounce time.Duration
	events   chan struct{}
	errs     chan error
	done     chan bool
}

// New creates a watcher for the given autostart directory.
func New(dir string) (*Watcher, error) {
	return newWatcher(dir, DefaultDebounce)
}

func newWatcher(dir string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &Watcher{
		watcher:  fsw,
		dir:      dir,
		debounce: debounce,
		events:   make(chan struct{}, 1),
		errs:     make(chan error, 1),
		done:     make(chan bool),
	}
	go w.run()
	return w, nil
}

// Events delivers one notification per settled burst of changes.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Errors delivers watcher failures.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher.
func (w *Watcher) Close() {
	w.watcher.Close()
	close(w.done)
}

func (w *Watcher) run() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			// Restart the quiet period on every change
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C
		case <-fire:
			timer = nil
			fire = nil
			select {
			case w.events <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

// relevant reports whether the event concerns a desktop entry.
func relevant(event fsnotify.Event) bool {
	if !strings.HasSuffix(event.Name, ".desktop") {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}
