package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"timeplay/internal/domain"
)

// Frame is the latest rendering requested by the playback controller
type Frame struct {
	Window   domain.Window
	Stopped  bool
	Cursor   int
	Controls domain.Controls
	Seq      uint64
}

// FramePresenter implements playback.Presenter for the terminal UI.
// The controller calls it under its own lock, so it only records the frame
// and signals; the bubbletea loop picks the frame up on its own goroutine.
type FramePresenter struct {
	mu     sync.Mutex
	frame  Frame
	notify chan struct{}
}

// NewFramePresenter creates a presenter showing an empty stopped frame
func NewFramePresenter() *FramePresenter {
	return &FramePresenter{
		frame:  Frame{Stopped: true, Controls: domain.Controls{Status: domain.Stopped}},
		notify: make(chan struct{}, 1),
	}
}

func (p *FramePresenter) RenderWindow(w domain.Window, stopped bool) {
	p.update(func(f *Frame) {
		f.Window = w
		f.Stopped = stopped
	})
}

func (p *FramePresenter) RenderCursor(position int) {
	p.update(func(f *Frame) {
		f.Cursor = position
	})
}

func (p *FramePresenter) RenderControls(c domain.Controls) {
	p.update(func(f *Frame) {
		f.Controls = c
	})
}

// Latest returns a copy of the most recent frame
func (p *FramePresenter) Latest() Frame {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frame
}

// Updates signals whenever a new frame is available. Bursts coalesce into a
// single signal.
func (p *FramePresenter) Updates() <-chan struct{} {
	return p.notify
}

func (p *FramePresenter) update(fn func(*Frame)) {
	p.mu.Lock()
	fn(&p.frame)
	p.frame.Seq++
	p.mu.Unlock()

	select {
	case p.notify <- struct{}{}:
	default:
	}
}

// waitForFrame blocks until the presenter signals and turns it into a message
func waitForFrame(updates <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-updates; !ok {
			return nil
		}
		return frameMsg{}
	}
}
