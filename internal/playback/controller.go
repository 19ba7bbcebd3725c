package playback

import (
	"log"
	"sync"

	"timeplay/internal/domain"
)

// State is a point-in-time copy of the controller state
type State struct {
	Status        domain.Status
	Position      int
	Total         int
	Config        domain.PlaybackConfig
	Window        domain.Window
	Controls      domain.Controls
	ScrubMin      int
	ScrubMax      int
	ScrubStep     int
	Scrubbing     bool
	PendingTimers int
}

// Controller is the playback state machine. It owns the cursor, the status
// and the single pending timer. Dispatch is the only writer: buttons, the
// scrubber and timer callbacks all enter through it, and each action runs to
// completion (mutation plus presenter and selection notifications) before
// the next one is applied.
type Controller struct {
	mu        sync.Mutex
	clock     Clock
	presenter Presenter
	selection SelectionChannel
	onStatus  func(domain.PlaybackStatusEvent)

	items     []domain.Item
	cfg       domain.PlaybackConfig
	status    domain.Status
	position  int
	scrubbing bool
	// lingering is set while the last window is on screen waiting for the
	// wrap or finish timer, and survives a pause
	lingering bool

	timer Timer
	token uint64
}

// Option configures a Controller
type Option func(*Controller)

// WithStatusListener registers a callback invoked on every status change.
// It runs under the controller lock and must not block.
func WithStatusListener(fn func(domain.PlaybackStatusEvent)) Option {
	return func(c *Controller) {
		c.onStatus = fn
	}
}

// New creates a stopped controller with an empty sequence
func New(clock Clock, presenter Presenter, selection SelectionChannel, opts ...Option) *Controller {
	if clock == nil {
		clock = RealClock()
	}
	if presenter == nil {
		presenter = NopPresenter{}
	}
	if selection == nil {
		selection = NopSelection{}
	}

	c := &Controller{
		clock:     clock,
		presenter: presenter,
		selection: selection,
		cfg:       domain.PlaybackConfig{}.Normalized(),
		status:    domain.Stopped,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dispatch applies an action. Invalid or redundant actions are ignored.
func (c *Controller) Dispatch(a Action) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apply(a)
}

func (c *Controller) apply(a Action) {
	switch a := a.(type) {
	case PlayAction:
		c.play()
	case PauseAction:
		c.pause()
	case StopAction:
		c.stop()
	case StepAction:
		c.step(a.Delta)
	case PreviousAction:
		c.step(-c.cfg.BinSize)
	case NextAction:
		c.step(c.cfg.BinSize)
	case ScrubBeginAction:
		c.beginScrub()
	case ScrubToAction:
		c.scrubTo(a.Value)
	case ScrubEndAction:
		c.endScrub()
	case RefreshAction:
		c.refresh(a.Items, a.Config)
	case timerFiredAction:
		c.onTimer(a)
	default:
		log.Printf("playback: ignoring unknown action %T", a)
	}
}

// Play starts or resumes autoplay
func (c *Controller) Play() { c.Dispatch(PlayAction{}) }

// Pause halts autoplay, keeping cursor and highlight
func (c *Controller) Pause() { c.Dispatch(PauseAction{}) }

// Stop halts autoplay and returns to rest
func (c *Controller) Stop() { c.Dispatch(StopAction{}) }

// Step moves the cursor by delta items while not playing
func (c *Controller) Step(delta int) { c.Dispatch(StepAction{Delta: delta}) }

// Previous steps back one bin
func (c *Controller) Previous() { c.Dispatch(PreviousAction{}) }

// Next steps forward one bin
func (c *Controller) Next() { c.Dispatch(NextAction{}) }

// BeginScrub marks the start of a scrubber drag
func (c *Controller) BeginScrub() { c.Dispatch(ScrubBeginAction{}) }

// ScrubTo requests a raw scrubber value
func (c *Controller) ScrubTo(value int) { c.Dispatch(ScrubToAction{Value: value}) }

// EndScrub marks the end of a scrubber drag
func (c *Controller) EndScrub() { c.Dispatch(ScrubEndAction{}) }

// Refresh replaces the sequence and configuration, resetting playback
func (c *Controller) Refresh(items []domain.Item, cfg domain.PlaybackConfig) {
	c.Dispatch(RefreshAction{Items: items, Config: cfg})
}

// Close cancels any pending timer. The controller stays usable.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelTimers()
}

// Snapshot returns a copy of the current state
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	lo, hi, step := ScrubBounds(len(c.items), c.cfg.BinSize)
	pending := 0
	if c.timer != nil {
		pending = 1
	}
	return State{
		Status:        c.status,
		Position:      c.position,
		Total:         len(c.items),
		Config:        c.cfg,
		Window:        c.window(),
		Controls:      c.controls(),
		ScrubMin:      lo,
		ScrubMax:      hi,
		ScrubStep:     step,
		Scrubbing:     c.scrubbing,
		PendingTimers: pending,
	}
}

func (c *Controller) play() {
	if c.status == domain.Playing {
		return
	}
	if len(c.items) == 0 {
		return
	}

	c.cancelTimers()
	if c.lingering {
		c.resumeFromTail()
		return
	}
	log.Printf("playback: play from position %d of %d", c.position, len(c.items))
	c.setStatus(domain.Playing)
	c.tick()
}

// resumeFromTail runs the wrap or finish that a pause interrupted, so the
// last window is not shown a second time
func (c *Controller) resumeFromTail() {
	c.lingering = false
	if !c.cfg.Loop {
		log.Printf("playback: resuming past the end, starting over")
		c.reset()
	}
	c.position = 0
	c.presenter.RenderCursor(c.position)
	c.setStatus(domain.Playing)
	c.tick()
}

func (c *Controller) pause() {
	if c.status != domain.Playing {
		return
	}

	c.cancelTimers()
	log.Printf("playback: paused at position %d", c.position)
	c.setStatus(domain.Paused)
	c.presenter.RenderControls(c.controls())
}

func (c *Controller) stop() {
	if c.status == domain.Stopped {
		return
	}
	log.Printf("playback: stop")
	c.reset()
}

// reset returns to rest unconditionally: no timer, cursor 0, no highlight
func (c *Controller) reset() {
	c.cancelTimers()
	c.lingering = false
	c.position = 0
	c.selection.Clear()
	c.setStatus(domain.Stopped)
	c.presenter.RenderWindow(c.window(), true)
	c.presenter.RenderCursor(c.position)
	c.presenter.RenderControls(c.controls())
}

func (c *Controller) step(delta int) {
	if c.status == domain.Playing {
		return
	}
	bin := c.cfg.BinSize
	if delta == 0 || delta%bin != 0 {
		return
	}

	next := c.position + delta
	if next < 0 || next > len(c.items)-bin {
		return
	}
	c.moveTo(next)
}

// moveTo assigns the cursor from a manual input and publishes the new window.
// Leaving position 0 while stopped means the control is no longer at rest.
func (c *Controller) moveTo(position int) {
	c.lingering = false
	c.position = position
	w := c.window()
	c.selection.Select(domain.IDs(w.Items))
	c.presenter.RenderWindow(w, false)
	c.presenter.RenderCursor(c.position)
	if c.status == domain.Stopped {
		c.setStatus(domain.Paused)
	}
	c.presenter.RenderControls(c.controls())
}

func (c *Controller) refresh(items []domain.Item, cfg domain.PlaybackConfig) {
	c.items = append([]domain.Item(nil), items...)
	c.cfg = cfg.Normalized()
	c.scrubbing = false
	log.Printf("playback: refreshed with %d items (bin %d, interval %s, loop %t)",
		len(c.items), c.cfg.BinSize, c.cfg.TickInterval, c.cfg.Loop)

	c.reset()

	if c.cfg.AutoStart {
		c.play()
	}
}

func (c *Controller) setStatus(s domain.Status) {
	if c.status == s {
		return
	}
	c.status = s
	if c.onStatus != nil {
		c.onStatus(domain.PlaybackStatusEvent{Status: s, Position: c.position})
	}
}

func (c *Controller) window() domain.Window {
	return ComputeWindow(c.items, c.position, c.cfg.BinSize)
}

func (c *Controller) controls() domain.Controls {
	return ControlsFor(c.status, c.position, len(c.items), c.cfg.BinSize)
}
