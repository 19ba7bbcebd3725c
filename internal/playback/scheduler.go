package playback

import (
	"log"

	"timeplay/internal/domain"
)

// tick shows the window at the cursor and schedules what comes after it.
// The last window stays visible for one full interval before the loop wraps
// or playback returns to rest.
func (c *Controller) tick() {
	if c.status != domain.Playing {
		return
	}

	w := c.window()
	c.selection.Select(domain.IDs(w.Items))
	c.presenter.RenderWindow(w, false)
	c.presenter.RenderCursor(c.position)
	c.presenter.RenderControls(c.controls())

	next := c.position + c.cfg.BinSize
	if next < len(c.items) {
		c.lingering = false
		c.position = next
		c.arm(timerAdvance)
		return
	}

	c.lingering = true
	if c.cfg.Loop {
		c.arm(timerWrap)
	} else {
		c.arm(timerFinish)
	}
}

// arm replaces whatever timer is pending with a new one. Only one timer is
// ever outstanding.
func (c *Controller) arm(kind timerKind) {
	c.cancelTimers()
	token := c.token
	c.timer = c.clock.AfterFunc(c.cfg.TickInterval, func() {
		c.Dispatch(timerFiredAction{token: token, kind: kind})
	})
}

// cancelTimers stops the pending timer and invalidates its token, so a
// callback that already fired and is waiting for the lock is discarded.
func (c *Controller) cancelTimers() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.token++
}

func (c *Controller) onTimer(a timerFiredAction) {
	if a.token != c.token {
		return
	}
	c.timer = nil

	if c.status != domain.Playing {
		return
	}

	switch a.kind {
	case timerAdvance:
		c.tick()
	case timerWrap:
		c.lingering = false
		c.position = 0
		c.presenter.RenderCursor(c.position)
		c.tick()
	case timerFinish:
		log.Printf("playback: reached end of %d items, returning to rest", len(c.items))
		c.reset()
	}
}
