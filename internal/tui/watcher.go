package tui

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/studiowebux/oasview/internal/logging"
)

// watchDebounce collapses the burst of events an editor save produces
// into a single reload.
const watchDebounce = 200 * time.Millisecond

// Watcher signals when the viewed document changes on disk. It watches
// the document's directory rather than the file itself: editors that
// save atomically replace the file, and a watch on the old inode goes
// quiet after the first save.
type Watcher struct {
	fsw     *fsnotify.Watcher
	path    string // absolute path of the document
	changed chan struct{}
	done    chan struct{}
	once    sync.Once
	log     *logging.Logger
}

// NewWatcher starts watching path. The watcher delivers at most one
// signal per debounce window no matter how many events a save produced.
func NewWatcher(path string, log *logging.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	dir := filepath.Dir(abs)
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w := &Watcher{
		fsw:     fsw,
		path:    abs,
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
		log:     log,
	}
	go w.loop()
	return w, nil
}

// Changed delivers one signal per relevant change burst. The channel is
// closed when the watcher shuts down.
func (w *Watcher) Changed() <-chan struct{} {
	return w.changed
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

// loop filters raw directory events down to debounced change signals
// for the watched file. It is the only sender on changed and closes it
// on the way out.
func (w *Watcher) loop() {
	defer close(w.changed)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
				fire = timer.C
			} else {
				timer.Reset(watchDebounce)
			}
		case <-fire:
			timer = nil
			fire = nil
			select {
			case w.changed <- struct{}{}:
			default: // a signal is already pending
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("file watcher error", "error", err)
		}
	}
}
