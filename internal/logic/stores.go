package logic

import (
	"sync"

	"timeplay/internal/domain"
	"timeplay/internal/eventbus"
)

// MemoryItemStore is an in-memory implementation of ItemStore.
// The sequence is always replaced as a whole.
type MemoryItemStore struct {
	mu  sync.RWMutex
	seq domain.Sequence
}

// NewMemoryItemStore creates an empty item store
func NewMemoryItemStore() *MemoryItemStore {
	return &MemoryItemStore{}
}

func (s *MemoryItemStore) Replace(seq domain.Sequence) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq.Items = append([]domain.Item(nil), seq.Items...)
	s.seq = seq
}

func (s *MemoryItemStore) Items() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	return append([]domain.Item(nil), s.seq.Items...)
}

func (s *MemoryItemStore) Display() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq.Display
}

func (s *MemoryItemStore) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq.Source
}

func (s *MemoryItemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.seq.Items)
}

// SelectionStore keeps the set of highlighted items and announces changes on
// the bus. It is the host side of the playback selection channel.
type SelectionStore struct {
	mu       sync.RWMutex
	bus      eventbus.EventBus
	selected map[domain.ItemID]struct{}
	order    []domain.ItemID
}

// NewSelectionStore creates a store with nothing selected. bus may be nil.
func NewSelectionStore(bus eventbus.EventBus) *SelectionStore {
	return &SelectionStore{
		bus:      bus,
		selected: make(map[domain.ItemID]struct{}),
	}
}

// Select replaces the highlight set
func (s *SelectionStore) Select(ids []domain.ItemID) {
	s.mu.Lock()
	s.selected = make(map[domain.ItemID]struct{}, len(ids))
	s.order = append(s.order[:0:0], ids...)
	for _, id := range ids {
		s.selected[id] = struct{}{}
	}
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(eventbus.SelectionChangedEvent{IDs: append([]domain.ItemID(nil), ids...)})
	}
}

// Clear removes every highlight
func (s *SelectionStore) Clear() {
	s.mu.Lock()
	s.selected = make(map[domain.ItemID]struct{})
	s.order = nil
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(eventbus.SelectionClearedEvent{})
	}
}

func (s *SelectionStore) IsSelected(id domain.ItemID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.selected[id]
	return ok
}

// Selected returns the highlighted ids in the order they were selected
func (s *SelectionStore) Selected() []domain.ItemID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ItemID(nil), s.order...)
}

// Active reports whether anything is highlighted
func (s *SelectionStore) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order) > 0
}
