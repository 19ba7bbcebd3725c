package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"timeplay/internal/config"
	"timeplay/internal/domain"
)

// Fixed rows inside the main container, used for mouse hit-testing
const (
	ToolbarRow  = 2
	ScrubberRow = 3
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	HasData bool
	Source  string
	Display string
	Total   int

	Window   domain.Window
	Stopped  bool
	Cursor   int
	Controls domain.Controls
	Playback domain.PlaybackConfig

	ScrubMin  int
	ScrubMax  int
	ScrubStep int
	Scrubbing bool

	Caption      config.CaptionConfig
	ShowScrubber bool

	ListView      string
	HelpView      string
	ShowHelp      bool
	FullHelp      string
	StatusMessage string
	StatusIsError bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	toolbar     *Toolbar
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(buttons config.ButtonConfig) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		toolbar:     NewToolbar(buttons),
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles exposes the style set
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Toolbar exposes the toolbar for hit-testing
func (r *Renderer) Toolbar() *Toolbar {
	return r.toolbar
}

// ContentWidth is the usable width inside the main container
func ContentWidth(width int) int {
	w := width - 2*PadLeft
	if w < 10 {
		w = 10
	}
	return w
}

// ScrubberFor builds the scrubber for a state
func ScrubberFor(state ViewState) Scrubber {
	return Scrubber{
		Min:   state.ScrubMin,
		Max:   state.ScrubMax,
		Step:  state.ScrubStep,
		Value: state.Cursor,
		Width: ContentWidth(state.Width),
	}
}

// HeaderLines counts the rows above the item list
func HeaderLines(state ViewState) int {
	w := ContentWidth(state.Width)
	caption := RenderCaption(state.Window, state.Stopped, state.Display, w, state.Caption)
	n := ToolbarRow + 1 // title, blank, toolbar
	if state.ShowScrubber {
		n++
	}
	if state.Caption.Show {
		n += 1 + lipgloss.Height(caption)
	}
	return n + 2 // blank and status line
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if !state.HasData {
		if state.ShowHelp {
			return r.popupRender.RenderPopup(state.FullHelp, state.Height, state.Width)
		}
		return RenderLanding(state.Width, state.Height, r.styles)
	}

	width := ContentWidth(state.Width)
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state, width))
	content.WriteString("\n\n")

	content.WriteString(r.toolbar.Render(state.Controls))
	content.WriteString("\n")

	if state.ShowScrubber {
		content.WriteString(ScrubberFor(state).Render(r.styles))
		content.WriteString("\n")
	}

	if state.Caption.Show {
		content.WriteString("\n")
		content.WriteString(RenderCaption(state.Window, state.Stopped, state.Display, width, state.Caption))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(r.renderStatus(state))
	content.WriteString("\n")
	content.WriteString(state.ListView)

	// push the help bar to the bottom
	if state.HelpView != "" {
		currentLines := strings.Count(content.String(), "\n") + 1
		available := state.Height - 2*PadTop
		if padding := available - currentLines - 1; padding > 0 {
			content.WriteString(strings.Repeat("\n", padding))
		}
		content.WriteString("\n")
		content.WriteString(state.HelpView)
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.ShowHelp {
		return r.popupRender.RenderPopup(state.FullHelp, state.Height, state.Width)
	}
	return finalContent
}

func (r *Renderer) renderTitle(state ViewState, width int) string {
	logo := r.styles.Title.Render("timeplay")
	right := ""
	if state.Source != "" {
		right = r.styles.Dim.Render(filepath.Base(state.Source))
	}
	padding := width - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderStatus(state ViewState) string {
	var status string
	switch state.Controls.Status {
	case domain.Playing:
		status = r.styles.StatusPlaying.Render("▶ playing")
	case domain.Paused:
		status = r.styles.StatusPaused.Render("‖ paused")
	default:
		status = r.styles.StatusStopped.Render("■ stopped")
	}

	pos := "-"
	if state.Total > 0 {
		pos = fmt.Sprintf("%d/%d", state.Cursor+1, state.Total)
	}
	loop := "off"
	if state.Playback.Loop {
		loop = "on"
	}
	info := r.styles.Status.Render(fmt.Sprintf("%s  bin %d  every %s  loop %s",
		pos, state.Playback.BinSize, state.Playback.TickInterval, loop))

	line := status + "  " + info
	if state.StatusMessage != "" {
		msgStyle := r.styles.Status
		if state.StatusIsError {
			msgStyle = r.styles.StatusError
		}
		line += "  " + msgStyle.Render(state.StatusMessage)
	}
	return line
}
