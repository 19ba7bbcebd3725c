package dataset

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"timeplay/internal/eventbus"
)

// DefaultDebounce collapses the burst of events editors emit on save
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads the data file when it changes on disk and publishes the
// result on the bus
type Watcher struct {
	bus      eventbus.EventBus
	debounce time.Duration
	fsw      *fsnotify.Watcher
	target   string

	mu   sync.Mutex
	opts Options

	wg sync.WaitGroup
}

// NewWatcher creates a watcher for opts.Path. The parent directory is
// watched so atomic rename-on-save still triggers a reload.
func NewWatcher(bus eventbus.EventBus, opts Options, debounce time.Duration) (*Watcher, error) {
	if opts.Path == "" {
		return nil, ErrNoPath
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		bus:      bus,
		debounce: debounce,
		fsw:      fsw,
		target:   filepath.Clean(abs),
		opts:     opts,
	}, nil
}

// Start runs the watch loop until ctx is cancelled or Close is called
func (w *Watcher) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// SetOptions changes how the file is parsed on the next reload
func (w *Watcher) SetOptions(opts Options) {
	w.mu.Lock()
	defer w.mu.Unlock()
	opts.Path = w.opts.Path
	w.opts = opts
}

// Reload reads the data file now and publishes DataLoaded or Error
func (w *Watcher) Reload() {
	w.mu.Lock()
	opts := w.opts
	w.mu.Unlock()

	seq, err := Load(opts)
	if err != nil {
		log.Printf("Data reload failed: %v", err)
		w.bus.Publish(eventbus.ErrorEvent{Message: "failed to reload data", Err: err})
		return
	}
	log.Printf("Reloaded %d items from %s", len(seq.Items), opts.Path)
	w.bus.Publish(eventbus.DataLoadedEvent{Sequence: seq})
}

// Close stops watching and waits for the loop to exit
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer w.wg.Done()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			w.Reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
			w.bus.Publish(eventbus.ErrorEvent{Message: "file watcher error", Err: err})
		}
	}
}
