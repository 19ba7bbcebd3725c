package domain

import "time"

// ItemID is the opaque identifier the host uses to highlight an item
type ItemID string

// Item is one element of the ordered category sequence
type Item struct {
	Label   string // text shown in the caption
	SortKey any    // orderable value used by the custom sort, may be nil
	ID      ItemID
}

// Sequence is a full category sequence as delivered by the host.
// It is replaced wholesale on every data refresh.
type Sequence struct {
	Items   []Item
	Display string // caption shown while stopped, e.g. the category column name
	Source  string // file the sequence was read from, empty for in-memory data
}

// IDs returns the identifiers of the given items in order
func IDs(items []Item) []ItemID {
	ids := make([]ItemID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

// Status is the playback status of the controller
type Status int

const (
	Stopped Status = iota
	Playing
	Paused
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// PlaybackConfig is the read-only configuration the playback core runs with
type PlaybackConfig struct {
	BinSize      int           // items shown together, >= 1
	TickInterval time.Duration // delay between windows, >= 1ms
	Loop         bool
	AutoStart    bool
}

// Normalized returns a copy with BinSize and TickInterval raised to their minimums
func (c PlaybackConfig) Normalized() PlaybackConfig {
	if c.BinSize < 1 {
		c.BinSize = 1
	}
	if c.TickInterval < time.Millisecond {
		c.TickInterval = time.Millisecond
	}
	return c
}

// Window is the slice of items currently visible, derived from cursor and bin
type Window struct {
	Items    []Item
	Position int
	AtStart  bool
	AtEnd    bool
}

// Controls describes which playback actions are currently available
type Controls struct {
	Status   Status
	Play     bool
	Pause    bool
	Stop     bool
	Previous bool
	Next     bool
	AtStart  bool
	AtEnd    bool
}
