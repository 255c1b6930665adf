package config

import (
	"os"
	"time"
)

// Watcher polls the config file's modification time and triggers a callback
// on change. It uses only the standard library.
type Watcher struct {
	path     string
	interval time.Duration
	onChange func(string)
	stopCh   chan struct{}
	last     time.Time
}

// NewWatcher creates a watcher for path with the given poll interval.
func NewWatcher(path string, interval time.Duration, onChange func(string)) *Watcher {
	return &Watcher{
		path:     path,
		interval: interval,
		onChange: onChange,
		stopCh:   make(chan struct{}),
	}
}

// Start begins polling in a goroutine.
func (w *Watcher) Start() {
	ticker := time.NewTicker(w.interval)
	go func() {
		defer ticker.Stop()
		// prime the mtime cache so startup does not fire the callback
		w.scan(true)
		for {
			select {
			case <-ticker.C:
				w.scan(false)
			case <-w.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the watcher.
func (w *Watcher) Stop() {
	close(w.stopCh)
}

// scan checks the mtime and invokes onChange if the file changed since the
// last scan. A missing file is skipped and picked up when it appears.
func (w *Watcher) scan(prime bool) {
	fi, err := os.Stat(w.path)
	if err != nil {
		return
	}
	mt := fi.ModTime()
	if w.last.IsZero() {
		w.last = mt
		return
	}
	if mt.After(w.last) {
		w.last = mt
		if !prime && w.onChange != nil {
			w.onChange(w.path)
		}
	}
}
