// Package watch refreshes the listing when something else mutates the
// directory being browsed.
package watch

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/g0at1/fex/internal/log"
)

// debounceDelay coalesces bursts of filesystem events into one refresh.
const debounceDelay = 200 * time.Millisecond

// DirWatcher watches exactly one directory at a time and invokes onChange
// (debounced) when its contents change. onChange runs on a watcher
// goroutine; callers must hand the signal over to their own loop.
type DirWatcher struct {
	watcher  *fsnotify.Watcher
	onChange func()

	mu      sync.Mutex
	current string
	closed  bool
}

func NewDirWatcher(onChange func()) (*DirWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dw := &DirWatcher{
		watcher:  fsw,
		onChange: onChange,
	}
	go dw.run()
	return dw, nil
}

// SetDir switches the watched directory. Failures are logged and ignored:
// watching is a convenience, not a correctness requirement.
func (dw *DirWatcher) SetDir(dir string) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.closed || dir == dw.current {
		return
	}

	if dw.current != "" {
		if err := dw.watcher.Remove(dw.current); err != nil {
			log.Debugf("watch: remove %s: %v", dw.current, err)
		}
	}
	dw.current = ""

	if err := dw.watcher.Add(dir); err != nil {
		log.Warnf("watch: cannot watch %s: %v", dir, err)
		return
	}
	dw.current = dir
}

// Close stops the watcher goroutine.
func (dw *DirWatcher) Close() error {
	dw.mu.Lock()
	dw.closed = true
	dw.mu.Unlock()
	return dw.watcher.Close()
}

func (dw *DirWatcher) run() {
	var timer *time.Timer
	for {
		select {
		case ev, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDelay, dw.onChange)
		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			log.Debugf("watch: %v", err)
		}
	}
}
