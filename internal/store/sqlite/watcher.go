package sqlite

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/clovehq/momtrack/internal/events"
)

// watcher republishes change notifications when another process writes
// the slot database. It watches the containing directory (files may be
// replaced rather than modified in place) and debounces the burst of
// events a single sqlite commit produces.
type watcher struct {
	fw   *fsnotify.Watcher
	done chan struct{}
}

const debounce = 200 * time.Millisecond

func newWatcher(dbPath string, bus *events.Bus) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(dbPath)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &watcher{fw: fw, done: make(chan struct{})}
	go w.run(filepath.Base(dbPath), bus)
	return w, nil
}

func (w *watcher) run(base string, bus *events.Bus) {
	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			// sqlite touches the db, -wal and -shm files
			if !strings.HasPrefix(filepath.Base(ev.Name), base) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.AfterFunc(debounce, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(debounce)
			}
		case <-fire:
			timer = nil
			bus.Publish()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("slot file watcher error")
		case <-w.done:
			return
		}
	}
}

func (w *watcher) stop() {
	close(w.done)
	_ = w.fw.Close()
}
