package playback

import "timeplay/internal/domain"

// Scrubber input. Dragging always interrupts autoplay; cursor changes go
// through moveTo like manual steps so highlight and caption stay in sync.

func (c *Controller) beginScrub() {
	if len(c.items) == 0 {
		return
	}
	c.scrubbing = true
	if c.status == domain.Playing {
		c.pause()
	}
	// show the actual window while dragging, even from rest
	c.presenter.RenderWindow(c.window(), false)
}

func (c *Controller) scrubTo(raw int) {
	if len(c.items) == 0 {
		return
	}
	if c.status == domain.Playing {
		c.pause()
	}

	aligned := AlignScrub(raw, len(c.items), c.cfg.BinSize)
	if aligned != c.position {
		c.moveTo(aligned)
	}
	// snap the thumb back to a valid stop even when the raw value was off-bin
	c.presenter.RenderCursor(c.position)
}

func (c *Controller) endScrub() {
	if !c.scrubbing {
		return
	}
	c.scrubbing = false
	if c.status == domain.Stopped {
		c.presenter.RenderWindow(c.window(), true)
	}
}
