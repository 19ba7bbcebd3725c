package logic

import "timeplay/internal/domain"

// ItemStore provides access to the current category sequence
type ItemStore interface {
	Replace(seq domain.Sequence)
	Items() []domain.Item
	Display() string
	Source() string
	Len() int
}

// SelectionReader exposes the host highlight set to linked views
type SelectionReader interface {
	IsSelected(id domain.ItemID) bool
	Selected() []domain.ItemID
	Active() bool
}
