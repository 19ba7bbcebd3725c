package dataset

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeplay/internal/eventbus"
)

type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (b *recordingBus) Close() {}

func (b *recordingBus) last() eventbus.DomainEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.events) == 0 {
		return nil
	}
	return b.events[len(b.events)-1]
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.csv")
	require.NoError(t, os.WriteFile(path, []byte("name\na\n"), 0644))

	bus := &recordingBus{}
	w, err := NewWatcher(bus, Options{Path: path}, 20*time.Millisecond)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	defer func() {
		cancel()
		w.Close()
	}()

	require.NoError(t, os.WriteFile(path, []byte("name\na\nb\nc\n"), 0644))

	require.Eventually(t, func() bool {
		e, ok := bus.last().(eventbus.DataLoadedEvent)
		return ok && len(e.Sequence.Items) == 3
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.csv")
	require.NoError(t, os.WriteFile(path, []byte("name\na\n"), 0644))

	bus := &recordingBus{}
	w, err := NewWatcher(bus, Options{Path: path}, 10*time.Millisecond)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	defer func() {
		cancel()
		w.Close()
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.csv"), []byte("x\n"), 0644))
	time.Sleep(100 * time.Millisecond)
	assert.Nil(t, bus.last())
}

func TestWatcherReloadPublishesErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.csv")
	require.NoError(t, os.WriteFile(path, []byte("name\na\n"), 0644))

	bus := &recordingBus{}
	w, err := NewWatcher(bus, Options{Path: path, Columns: []string{"missing"}}, 0)
	require.NoError(t, err)
	defer w.Close()

	w.Reload()
	e, ok := bus.last().(eventbus.ErrorEvent)
	require.True(t, ok)
	assert.Error(t, e.Err)

	w.SetOptions(Options{})
	w.Reload()
	loaded, ok := bus.last().(eventbus.DataLoadedEvent)
	require.True(t, ok, "path is kept when options change")
	assert.Len(t, loaded.Sequence.Items, 1)
}

func TestNewWatcherRequiresPath(t *testing.T) {
	_, err := NewWatcher(&recordingBus{}, Options{}, 0)
	assert.ErrorIs(t, err, ErrNoPath)
}
