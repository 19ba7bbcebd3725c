package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrubberThumbPosition(t *testing.T) {
	s := Scrubber{Min: 0, Max: 9, Step: 3, Width: 10}

	s.Value = 0
	assert.Equal(t, 0, s.ThumbX())
	s.Value = 9
	assert.Equal(t, 9, s.ThumbX())
	s.Value = 6
	assert.Equal(t, 6, s.ThumbX())
}

func TestScrubberValueAtSnapsToStops(t *testing.T) {
	s := Scrubber{Min: 0, Max: 9, Step: 3, Width: 10}

	assert.Equal(t, 0, s.ValueAt(0))
	assert.Equal(t, 0, s.ValueAt(1))
	assert.Equal(t, 3, s.ValueAt(4))
	assert.Equal(t, 6, s.ValueAt(7))
	assert.Equal(t, 9, s.ValueAt(9))
	assert.Equal(t, 9, s.ValueAt(50), "clamped to the track end")
	assert.Equal(t, 0, s.ValueAt(-3))
}

func TestScrubberRoundTrip(t *testing.T) {
	s := Scrubber{Min: 0, Max: 40, Step: 2, Width: 30}
	for v := s.Min; v <= s.Max; v += s.Step {
		s.Value = v
		got := s.ValueAt(s.ThumbX())
		assert.InDelta(t, v, got, float64(s.Step), "value %d", v)
		assert.Zero(t, got%s.Step)
	}
}

func TestScrubberDegenerate(t *testing.T) {
	s := Scrubber{Min: 0, Max: 0, Step: 5, Width: 20}
	assert.Equal(t, 0, s.ThumbX())
	assert.Equal(t, 0, s.ValueAt(15))

	narrow := Scrubber{Min: 0, Max: 10, Step: 1, Width: 1}
	assert.Equal(t, 0, narrow.ValueAt(0))
}

func TestScrubberRenderWidth(t *testing.T) {
	s := Scrubber{Min: 0, Max: 8, Step: 2, Value: 4, Width: 12}
	out := StripANSI(s.Render(NewStyles()))
	assert.Equal(t, 12, len([]rune(out)))
	assert.Contains(t, out, "●")
}
