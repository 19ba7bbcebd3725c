package playback

import "timeplay/internal/domain"

// SelectionChannel asks the host to highlight items. Calls are fire-and-forget.
type SelectionChannel interface {
	Select(ids []domain.ItemID)
	Clear()
}

// Presenter renders the playback state. The controller calls it while holding
// its lock, so implementations must not call back into the controller and
// must not block.
type Presenter interface {
	// RenderWindow updates the caption. When stopped is true the caption shows
	// the full sequence display label instead of the window items.
	RenderWindow(w domain.Window, stopped bool)
	// RenderCursor moves the scrubber thumb
	RenderCursor(position int)
	// RenderControls updates which actions are available
	RenderControls(c domain.Controls)
}

// NopSelection ignores all selection requests. Used when the host does not
// allow interactions.
type NopSelection struct{}

func (NopSelection) Select([]domain.ItemID) {}
func (NopSelection) Clear()                 {}

// NopPresenter renders nothing
type NopPresenter struct{}

func (NopPresenter) RenderWindow(domain.Window, bool) {}
func (NopPresenter) RenderCursor(int)                 {}
func (NopPresenter) RenderControls(domain.Controls)   {}
