package playback_test

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"timeplay/internal/domain"
	"timeplay/internal/playback"
	"timeplay/internal/playback/clocktest"
)

const interval = 100 * time.Millisecond

type renderedWindow struct {
	labels  []string
	stopped bool
}

// recorder captures every presenter and selection call
type recorder struct {
	mu         sync.Mutex
	windows    []renderedWindow
	cursors    []int
	controls   []domain.Controls
	selections []string
}

func (r *recorder) RenderWindow(w domain.Window, stopped bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	labels := make([]string, 0, len(w.Items))
	for _, it := range w.Items {
		labels = append(labels, it.Label)
	}
	r.windows = append(r.windows, renderedWindow{labels: labels, stopped: stopped})
}

func (r *recorder) RenderCursor(position int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cursors = append(r.cursors, position)
}

func (r *recorder) RenderControls(c domain.Controls) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.controls = append(r.controls, c)
}

func (r *recorder) Select(ids []domain.ItemID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, string(id))
	}
	r.selections = append(r.selections, "select:"+strings.Join(parts, ","))
}

func (r *recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selections = append(r.selections, "clear")
}

// playingWindows returns the labels of every non-stopped caption, joined
func (r *recorder) playingWindows() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, w := range r.windows {
		if !w.stopped {
			out = append(out, strings.Join(w.labels, ","))
		}
	}
	return out
}

func (r *recorder) lastWindow() renderedWindow {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.windows) == 0 {
		return renderedWindow{}
	}
	return r.windows[len(r.windows)-1]
}

func (r *recorder) lastSelection() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.selections) == 0 {
		return ""
	}
	return r.selections[len(r.selections)-1]
}

func (r *recorder) lastCursor() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.cursors) == 0 {
		return -1
	}
	return r.cursors[len(r.cursors)-1]
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.windows = nil
	r.cursors = nil
	r.controls = nil
	r.selections = nil
}

func makeItems(n int) []domain.Item {
	items := make([]domain.Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, domain.Item{
			Label:   fmt.Sprintf("i%d", i),
			SortKey: i,
			ID:      domain.ItemID(fmt.Sprintf("id%d", i)),
		})
	}
	return items
}

func config(bin int, loop bool) domain.PlaybackConfig {
	return domain.PlaybackConfig{BinSize: bin, TickInterval: interval, Loop: loop}
}

// newController builds a controller loaded with n items and a cleared recorder
func newController(n, bin int, loop bool) (*playback.Controller, *recorder, *clocktest.ManualClock) {
	rec := &recorder{}
	clock := clocktest.New()
	c := playback.New(clock, rec, rec)
	c.Refresh(makeItems(n), config(bin, loop))
	rec.reset()
	return c, rec, clock
}
