package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"timeplay/internal/config"
	"timeplay/internal/domain"
)

const ellipsis = "…"

// CaptionText returns the plain caption for a window:
// at rest, the sequence display label on one line;
// a single item, its label word-wrapped to width;
// several items, one label per line followed by the separator.
func CaptionText(w domain.Window, stopped bool, display string, width int, separator string) string {
	if width < 1 {
		width = 1
	}
	if stopped {
		return runewidth.Truncate(display, width, ellipsis)
	}

	switch len(w.Items) {
	case 0:
		return ""
	case 1:
		return wordwrap.String(w.Items[0].Label, width)
	}

	lines := make([]string, 0, len(w.Items))
	for i, it := range w.Items {
		line := it.Label
		if i < len(w.Items)-1 {
			line += separator
		}
		lines = append(lines, runewidth.Truncate(line, width, ellipsis))
	}
	return strings.Join(lines, "\n")
}

// RenderCaption styles the caption with the configured color and alignment
func RenderCaption(w domain.Window, stopped bool, display string, width int, opts config.CaptionConfig) string {
	text := CaptionText(w, stopped, display, width, opts.Separator)

	style := lipgloss.NewStyle().Width(width)
	if opts.Color != "" {
		style = style.Foreground(lipgloss.Color(opts.Color))
	}
	switch opts.Position {
	case "center":
		style = style.Align(lipgloss.Center)
	case "right":
		style = style.Align(lipgloss.Right)
	default:
		style = style.Align(lipgloss.Left)
	}
	if stopped {
		style = style.Faint(true)
	} else {
		style = style.Bold(true)
	}
	return style.Render(text)
}
