package views

import (
	"math"
	"strings"
)

// Scrubber is a horizontal slider over the valid cursor stops
type Scrubber struct {
	Min   int
	Max   int
	Step  int
	Value int
	Width int // cells
}

func (s Scrubber) span() int {
	return s.Max - s.Min
}

// ThumbX returns the cell the thumb is drawn in
func (s Scrubber) ThumbX() int {
	if s.Width <= 1 || s.span() <= 0 {
		return 0
	}
	v := s.Value
	if v < s.Min {
		v = s.Min
	}
	if v > s.Max {
		v = s.Max
	}
	ratio := float64(v-s.Min) / float64(s.span())
	return int(math.Round(ratio * float64(s.Width-1)))
}

// ValueAt maps a cell to the nearest stop. Cells outside the track clamp to
// its ends.
func (s Scrubber) ValueAt(x int) int {
	if s.Width <= 1 || s.span() <= 0 {
		return s.Min
	}
	if x < 0 {
		x = 0
	}
	if x > s.Width-1 {
		x = s.Width - 1
	}
	step := s.Step
	if step < 1 {
		step = 1
	}

	raw := float64(x) / float64(s.Width-1) * float64(s.span())
	stops := int(math.Round(raw / float64(step)))
	v := s.Min + stops*step
	if v > s.Max {
		v -= step
	}
	return v
}

// Render draws the track with the thumb at the current value
func (s Scrubber) Render(styles *Styles) string {
	if s.Width < 1 {
		return ""
	}
	thumb := s.ThumbX()

	var b strings.Builder
	b.WriteString(styles.TrackFilled.Render(strings.Repeat("━", thumb)))
	b.WriteString(styles.Thumb.Render("●"))
	if rest := s.Width - thumb - 1; rest > 0 {
		b.WriteString(styles.TrackEmpty.Render(strings.Repeat("─", rest)))
	}
	return b.String()
}
