package ui

import (
	"timeplay/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// frameMsg is sent when the playback presenter has a new frame
type frameMsg struct{}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	err error
}

// clipboardMsg contains the result of copying the caption
type clipboardMsg struct {
	text string
	err  error
}
