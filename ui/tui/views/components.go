package views

import (
	"tipstr/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// SegmentStyle paints the body of segment i.
func SegmentStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.SegmentColor(i))
}

// LabelStyle paints a percentage label on top of segment i.
func LabelStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(styles.SegmentColor(i))
}

func header(width int, title string) string {
	return styles.HeaderStyle.Width(width).Render(title)
}

// mark and scan tolerate a nil manager so views render outside a program.
func mark(z *zone.Manager, id, v string) string {
	if z == nil {
		return v
	}
	return z.Mark(id, v)
}

func scan(z *zone.Manager, v string) string {
	if z == nil {
		return v
	}
	return z.Scan(v)
}
