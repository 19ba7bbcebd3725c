package playback

import "timeplay/internal/domain"

// ComputeWindow returns the items in [position, position+bin) clipped to the
// sequence, with the boundary flags. It never panics on tail underflow and an
// empty sequence always yields an empty window flagged both at start and end.
func ComputeWindow(items []domain.Item, position, bin int) domain.Window {
	if bin < 1 {
		bin = 1
	}
	total := len(items)
	w := domain.Window{
		Position: position,
		AtStart:  position == 0,
		AtEnd:    position+bin >= total,
	}
	if total == 0 {
		w.AtStart = true
		w.AtEnd = true
		return w
	}

	for i := position; i < position+bin; i++ {
		if i < 0 || i >= total {
			continue
		}
		w.Items = append(w.Items, items[i])
	}
	return w
}

// LastStart is the cursor of the final window, which may be partial when
// total is not a multiple of bin
func LastStart(total, bin int) int {
	if total <= 0 || bin < 1 {
		return 0
	}
	return ((total - 1) / bin) * bin
}

// ScrubBounds returns the range and step of the scrubber for a sequence
func ScrubBounds(total, bin int) (min, max, step int) {
	if bin < 1 {
		bin = 1
	}
	max = total - bin
	if max < 0 {
		max = 0
	}
	return 0, alignDown(max, bin), bin
}

// AlignScrub snaps a raw scrubber value to a valid cursor: clamped into the
// scrubber range, then aligned down to a multiple of bin
func AlignScrub(raw, total, bin int) int {
	lo, hi, step := ScrubBounds(total, bin)
	if raw < lo {
		raw = lo
	}
	if raw > hi {
		raw = hi
	}
	return alignDown(raw, step)
}

func alignDown(v, bin int) int {
	if v <= 0 {
		return 0
	}
	return (v / bin) * bin
}
