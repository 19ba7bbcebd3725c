package playback

import "timeplay/internal/domain"

// Action is a request to change playback state. Every mutation of the cursor
// or status goes through Controller.Dispatch with one of these.
type Action interface {
	Type() string
}

// Transport actions
type PlayAction struct{}

func (a PlayAction) Type() string { return "play" }

type PauseAction struct{}

func (a PauseAction) Type() string { return "pause" }

type StopAction struct{}

func (a StopAction) Type() string { return "stop" }

// StepAction moves the cursor by Delta items while not playing
type StepAction struct {
	Delta int
}

func (a StepAction) Type() string { return "step" }

// PreviousAction steps back by one bin
type PreviousAction struct{}

func (a PreviousAction) Type() string { return "previous" }

// NextAction steps forward by one bin
type NextAction struct{}

func (a NextAction) Type() string { return "next" }

// Scrubber actions
type ScrubBeginAction struct{}

func (a ScrubBeginAction) Type() string { return "scrub_begin" }

type ScrubToAction struct {
	Value int // raw scrubber value, aligned by the controller
}

func (a ScrubToAction) Type() string { return "scrub_to" }

type ScrubEndAction struct{}

func (a ScrubEndAction) Type() string { return "scrub_end" }

// RefreshAction replaces the sequence and configuration. It always resets
// playback to Stopped at position 0 before applying.
type RefreshAction struct {
	Items  []domain.Item
	Config domain.PlaybackConfig
}

func (a RefreshAction) Type() string { return "refresh" }

// timerKind identifies what a scheduled callback does when it fires
type timerKind int

const (
	timerAdvance timerKind = iota
	timerWrap
	timerFinish
)

func (k timerKind) String() string {
	switch k {
	case timerWrap:
		return "wrap"
	case timerFinish:
		return "finish"
	default:
		return "advance"
	}
}

// timerFiredAction is dispatched by the scheduler's timer callback
type timerFiredAction struct {
	token uint64
	kind  timerKind
}

func (a timerFiredAction) Type() string { return "timer_" + a.kind.String() }
