package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeplay/internal/domain"
	"timeplay/internal/playback"
)

var _ playback.Presenter = (*FramePresenter)(nil)

func TestFramePresenterCoalescesSignals(t *testing.T) {
	p := NewFramePresenter()

	p.RenderWindow(domain.Window{Position: 2}, false)
	p.RenderCursor(2)
	p.RenderControls(domain.Controls{Status: domain.Paused})

	f := p.Latest()
	assert.False(t, f.Stopped)
	assert.Equal(t, 2, f.Cursor)
	assert.Equal(t, domain.Paused, f.Controls.Status)
	assert.Equal(t, uint64(3), f.Seq)

	select {
	case <-p.Updates():
	default:
		t.Fatal("expected a pending signal")
	}
	select {
	case <-p.Updates():
		t.Fatal("signals should coalesce")
	default:
	}
}

func TestWaitForFrame(t *testing.T) {
	p := NewFramePresenter()
	p.RenderCursor(1)

	msg := waitForFrame(p.Updates())()
	require.IsType(t, frameMsg{}, msg)
}
