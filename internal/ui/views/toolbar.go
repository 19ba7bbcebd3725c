package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"timeplay/internal/config"
	"timeplay/internal/domain"
)

// Button identifies a toolbar button
type Button string

const (
	ButtonPlay     Button = "play"
	ButtonPause    Button = "pause"
	ButtonStop     Button = "stop"
	ButtonPrevious Button = "previous"
	ButtonNext     Button = "next"
)

// buttonOrder is the left-to-right toolbar layout
var buttonOrder = []Button{ButtonPlay, ButtonPause, ButtonStop, ButtonPrevious, ButtonNext}

// iconSets holds the glyphs for each icon style in buttonOrder
var iconSets = map[string][]string{
	config.IconDefault:    {"▷", "‖", "□", "◁◁", "▷▷"},
	config.IconFilled:     {"▶", "⏸", "■", "⏮", "⏭"},
	config.IconBtn:        {"[▷]", "[‖]", "[□]", "[◁◁]", "[▷▷]"},
	config.IconBtnFill:    {"[▶]", "[⏸]", "[■]", "[⏮]", "[⏭]"},
	config.IconCircle:     {"(▷)", "(‖)", "(□)", "(◁◁)", "(▷▷)"},
	config.IconCircleFill: {"(▶)", "(⏸)", "(■)", "(⏮)", "(⏭)"},
}

const buttonGap = 1

// Toolbar renders the transport buttons and maps clicks back to them
type Toolbar struct {
	opts config.ButtonConfig
}

type zone struct {
	button Button
	icon   string
	start  int
	width  int
}

// NewToolbar creates a toolbar for the given button settings
func NewToolbar(opts config.ButtonConfig) *Toolbar {
	return &Toolbar{opts: opts}
}

func (t *Toolbar) icons() []string {
	if set, ok := iconSets[t.opts.IconStyle]; ok {
		return set
	}
	return iconSets[config.IconDefault]
}

// layout places buttons left to right. Minimal mode keeps a single
// play/pause toggle.
func (t *Toolbar) layout(c domain.Controls) []zone {
	icons := t.icons()
	var zones []zone
	x := 0
	for i, b := range buttonOrder {
		if t.opts.Minimal {
			want := ButtonPlay
			if c.Status == domain.Playing {
				want = ButtonPause
			}
			if b != want {
				continue
			}
		}
		w := runewidth.StringWidth(icons[i])
		zones = append(zones, zone{button: b, icon: icons[i], start: x, width: w})
		x += w + buttonGap
	}
	return zones
}

// Render draws the toolbar. Unavailable buttons are drawn faint.
func (t *Toolbar) Render(c domain.Controls) string {
	var out []string
	for _, z := range t.layout(c) {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(t.colorFor(z.button)))
		if t.opts.Background {
			style = style.Background(lipgloss.Color(t.opts.BackgroundColor))
		}
		if !Enabled(z.button, c) {
			style = style.Faint(true)
		}
		out = append(out, style.Render(z.icon))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(out)...)
}

// ButtonAt returns the button under column x, relative to the toolbar start
func (t *Toolbar) ButtonAt(x int, c domain.Controls) (Button, bool) {
	for _, z := range t.layout(c) {
		if x >= z.start && x < z.start+z.width {
			return z.button, true
		}
	}
	return "", false
}

func (t *Toolbar) colorFor(b Button) string {
	if !t.opts.ShowAll {
		return t.opts.PickedColor
	}
	switch b {
	case ButtonPlay:
		return t.opts.PlayColor
	case ButtonPause:
		return t.opts.PauseColor
	case ButtonStop:
		return t.opts.StopColor
	case ButtonPrevious:
		return t.opts.PreviousColor
	default:
		return t.opts.NextColor
	}
}

// Enabled reports whether a button's action is currently available
func Enabled(b Button, c domain.Controls) bool {
	switch b {
	case ButtonPlay:
		return c.Play
	case ButtonPause:
		return c.Pause
	case ButtonStop:
		return c.Stop
	case ButtonPrevious:
		return c.Previous
	case ButtonNext:
		return c.Next
	}
	return false
}

func joinWithGap(parts []string) []string {
	if len(parts) < 2 {
		return parts
	}
	gap := runewidth.FillRight("", buttonGap)
	out := make([]string, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, p)
	}
	return out
}
