package views

import (
	"tipstr/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

const InvalidBillNotice = "Please enter a valid bill amount first!"

var noticeStyle = lipgloss.NewStyle().
	Border(lipgloss.ThickBorder()).
	BorderForeground(styles.ErrorColor).
	Padding(1, 4).
	Align(lipgloss.Center)

// RenderNotice draws a modal message with an OK button, centred in the
// available space.
func RenderNotice(msg string, props ViewProps) string {
	ok := mark(props.Zones, ZoneNoticeOK, styles.ButtonStyle.Render("OK"))
	box := noticeStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Render(msg),
		"",
		ok,
		styles.CopyStyle.Render("enter / esc to dismiss"),
	))
	if props.Width <= 0 || props.Height <= 0 {
		return box
	}
	return lipgloss.Place(props.Width, props.Height, lipgloss.Center, lipgloss.Center, box)
}
