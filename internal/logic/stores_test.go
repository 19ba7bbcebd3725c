package logic

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeplay/internal/domain"
	"timeplay/internal/eventbus"
	"timeplay/internal/playback"
)

var _ playback.SelectionChannel = (*SelectionStore)(nil)
var _ ItemStore = (*MemoryItemStore)(nil)
var _ SelectionReader = (*SelectionStore)(nil)

type fakeBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *fakeBus) Publish(e eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *fakeBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() { return func() {} }
func (b *fakeBus) Close()                                                     {}

func TestMemoryItemStoreReplace(t *testing.T) {
	store := NewMemoryItemStore()
	assert.Zero(t, store.Len())

	items := []domain.Item{{Label: "a", ID: "1"}, {Label: "b", ID: "2"}}
	store.Replace(domain.Sequence{Items: items, Display: "Letters", Source: "letters.toml"})

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, "Letters", store.Display())
	assert.Equal(t, "letters.toml", store.Source())

	items[0].Label = "mutated"
	got := store.Items()
	assert.Equal(t, "a", got[0].Label, "store keeps its own copy")

	got[1].Label = "changed"
	assert.Equal(t, "b", store.Items()[1].Label)

	store.Replace(domain.Sequence{})
	assert.Zero(t, store.Len())
	assert.Empty(t, store.Display())
}

func TestSelectionStoreSelectAndClear(t *testing.T) {
	bus := &fakeBus{}
	sel := NewSelectionStore(bus)
	assert.False(t, sel.Active())

	sel.Select([]domain.ItemID{"b", "a"})
	assert.True(t, sel.Active())
	assert.True(t, sel.IsSelected("a"))
	assert.False(t, sel.IsSelected("c"))
	assert.Equal(t, []domain.ItemID{"b", "a"}, sel.Selected())

	sel.Select([]domain.ItemID{"c"})
	assert.False(t, sel.IsSelected("a"), "select replaces the previous set")

	sel.Clear()
	assert.False(t, sel.Active())
	assert.Empty(t, sel.Selected())

	require.Len(t, bus.events, 3)
	assert.Equal(t, eventbus.SelectionChangedEvent{IDs: []domain.ItemID{"b", "a"}}, bus.events[0])
	assert.Equal(t, eventbus.SelectionClearedEvent{}, bus.events[2])
}

func TestSelectionStoreWithoutBus(t *testing.T) {
	sel := NewSelectionStore(nil)
	sel.Select([]domain.ItemID{"x"})
	sel.Clear()
	assert.False(t, sel.Active())
}
