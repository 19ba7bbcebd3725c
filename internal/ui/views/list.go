package views

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"timeplay/internal/domain"
)

// RenderItemList draws the linked item list. While a highlight is active
// the other items are dimmed, mirroring what the host does with the
// selection.
func RenderItemList(items []domain.Item, isSelected func(domain.ItemID) bool, active bool, width int, styles *Styles) string {
	if len(items) == 0 {
		return styles.Dim.Render("No items.")
	}

	digits := len(fmt.Sprint(len(items)))
	lines := make([]string, 0, len(items))
	for i, it := range items {
		selected := active && isSelected(it.ID)
		marker := "  "
		if selected {
			marker = "▸ "
		}
		line := fmt.Sprintf("%s%*d  %s", marker, digits, i+1, it.Label)
		if width > 0 {
			line = runewidth.Truncate(line, width, ellipsis)
		}

		switch {
		case selected:
			line = styles.Highlight.Render(line)
		case active:
			line = styles.Dim.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// FirstSelected returns the index of the first highlighted item, or -1
func FirstSelected(items []domain.Item, isSelected func(domain.ItemID) bool) int {
	for i, it := range items {
		if isSelected(it.ID) {
			return i
		}
	}
	return -1
}

// PlainListing renders every item on its own line for the pager
func PlainListing(display string, items []domain.Item) string {
	var b strings.Builder
	if display != "" {
		b.WriteString(display)
		b.WriteString("\n\n")
	}
	for i, it := range items {
		fmt.Fprintf(&b, "%4d  %-24s  %s\n", i+1, it.Label, it.ID)
	}
	return b.String()
}
