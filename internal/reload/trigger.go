package reload

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/paintbox/internal/logger"
)

// DefaultSettle is how long a watched file has to stay quiet before a
// change counts. Linkers write a shared object in several chunks.
const DefaultSettle = 250 * time.Millisecond

// Trigger collects reload requests from any goroutine. The frame loop polls
// it once per frame with Consume, so bursts of requests collapse into one
// reload.
type Trigger struct {
	pending atomic.Bool
	settle  time.Duration
	log     *zap.Logger

	mu      sync.Mutex
	timer   *time.Timer
	watcher *fsnotify.Watcher
	files   map[string]bool
	signals chan os.Signal
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewTrigger creates a trigger that waits settle after the last file event.
func NewTrigger(settle time.Duration) *Trigger {
	return &Trigger{
		settle: settle,
		log:    logger.Named("reload"),
		done:   make(chan struct{}),
		files:  make(map[string]bool),
	}
}

// Request marks a reload as pending.
func (t *Trigger) Request() {
	t.pending.Store(true)
}

// Consume reports whether a reload is pending and clears it.
func (t *Trigger) Consume() bool {
	return t.pending.Swap(false)
}

// WatchSignals requests a reload whenever one of sigs arrives.
func (t *Trigger) WatchSignals(sigs ...os.Signal) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.signals != nil {
		signal.Notify(t.signals, sigs...)
		return
	}
	t.signals = make(chan os.Signal, 1)
	signal.Notify(t.signals, sigs...)

	t.wg.Add(1)
	go func(ch <-chan os.Signal) {
		defer t.wg.Done()
		for {
			select {
			case <-t.done:
				return
			case sig := <-ch:
				t.log.Info("reload requested", zap.Stringer("signal", sig))
				t.Request()
			}
		}
	}(t.signals)
}

// WatchFile requests a reload after path is written or replaced and then
// left alone for the settle period. The parent directory is watched so
// atomic renames onto path are seen too.
func (t *Trigger) WatchFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.watcher == nil {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		t.watcher = w
		t.wg.Add(1)
		go t.watch(w)
	}
	if err := t.watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", abs, err)
	}
	t.files[abs] = true
	t.log.Debug("watching for rebuilds", zap.String("path", abs))
	return nil
}

func (t *Trigger) watch(w *fsnotify.Watcher) {
	defer t.wg.Done()
	for {
		select {
		case <-t.done:
			return
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !t.watched(event.Name) {
				continue
			}
			t.debounce()
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			t.log.Warn("file watcher error", zap.Error(err))
		}
	}
}

// watched reports whether name is one of the files passed to WatchFile.
func (t *Trigger) watched(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.files[abs]
}

// debounce restarts the settle timer; the request fires when it expires.
func (t *Trigger) debounce() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.settle, func() {
		t.log.Info("rebuild detected")
		t.Request()
	})
}

// Close stops watching files and signals. A pending request stays pending.
func (t *Trigger) Close() error {
	t.mu.Lock()
	select {
	case <-t.done:
		t.mu.Unlock()
		return nil
	default:
	}
	close(t.done)
	if t.timer != nil {
		t.timer.Stop()
	}
	if t.signals != nil {
		signal.Stop(t.signals)
	}
	w := t.watcher
	t.mu.Unlock()

	var err error
	if w != nil {
		err = w.Close()
	}
	t.wg.Wait()
	return err
}
