// Package headless plays a sequence without the terminal UI, writing one
// line per window. It is used when stdout is not a terminal.
package headless

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"timeplay/internal/domain"
	"timeplay/internal/eventbus"
	"timeplay/internal/playback"
)

// ErrEmpty is returned when there is nothing to play
var ErrEmpty = errors.New("no items to play")

// IsInteractive reports whether both stdin and stdout are terminals
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// TextPresenter prints each window as a line of text
type TextPresenter struct {
	mu        sync.Mutex
	w         io.Writer
	display   string
	separator string
	width     int
}

// NewTextPresenter writes to w. Lines longer than width are truncated; zero
// disables truncation.
func NewTextPresenter(w io.Writer, separator string, width int) *TextPresenter {
	if separator == "" {
		separator = ","
	}
	return &TextPresenter{w: w, separator: separator, width: width}
}

// SetDisplay sets the label printed when playback is at rest
func (p *TextPresenter) SetDisplay(display string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.display = display
}

func (p *TextPresenter) RenderWindow(w domain.Window, stopped bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var line string
	if stopped {
		line = "■ " + p.display
	} else {
		labels := make([]string, 0, len(w.Items))
		for _, it := range w.Items {
			labels = append(labels, it.Label)
		}
		line = fmt.Sprintf("%4d  %s", w.Position+1, strings.Join(labels, p.separator+" "))
	}
	if p.width > 0 {
		line = runewidth.Truncate(line, p.width, "…")
	}
	fmt.Fprintln(p.w, line)
}

func (p *TextPresenter) RenderCursor(int)               {}
func (p *TextPresenter) RenderControls(domain.Controls) {}

// Player is the part of the controller the runner drives
type Player interface {
	Play()
	Stop()
	Snapshot() playback.State
}

// Run plays the sequence and returns once playback is back at rest. A looping
// sequence runs until ctx is cancelled.
func Run(ctx context.Context, bus eventbus.EventBus, player Player) error {
	if player.Snapshot().Total == 0 {
		return ErrEmpty
	}

	stopped := make(chan struct{}, 1)
	unsubscribe := bus.Subscribe(eventbus.EventPlaybackStatus, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.PlaybackStatusEvent); ok && ev.Status == domain.Stopped {
			select {
			case stopped <- struct{}{}:
			default:
			}
		}
	})
	defer unsubscribe()

	player.Play()

	select {
	case <-ctx.Done():
		player.Stop()
		return nil
	case <-stopped:
		return nil
	}
}
