package playback

import "timeplay/internal/domain"

// ControlsFor derives which transport actions are available.
// Manual stepping is never offered while playing.
func ControlsFor(status domain.Status, position, total, bin int) domain.Controls {
	if bin < 1 {
		bin = 1
	}
	idle := status != domain.Playing
	c := domain.Controls{
		Status:   status,
		Play:     idle && total > 0,
		Pause:    status == domain.Playing,
		Stop:     status != domain.Stopped,
		Previous: idle && total > 0 && position-bin >= 0,
		Next:     idle && total > 0 && position+bin <= total-bin,
		AtStart:  position == 0,
		AtEnd:    position+bin >= total,
	}
	return c
}
