package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderLanding is shown when no data is bound
func RenderLanding(width, height int, styles *Styles) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("timeplay"))
	b.WriteString("\n\n")
	b.WriteString("Step or auto-play through an ordered list of categories,\n")
	b.WriteString("one window at a time.\n\n")
	b.WriteString(styles.Dim.Render("No data is bound. Start with -data FILE or set"))
	b.WriteString("\n")
	b.WriteString(styles.Dim.Render("path in the [data] section of timeplay.toml."))
	b.WriteString("\n\n")
	b.WriteString(styles.Help.Render("? help • q quit"))

	box := styles.Landing.Render(b.String())
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
