package views

import (
	"tipstr/ui/tui/state"
	"tipstr/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

const (
	SpinLabel     = "Spin for Tip!"
	SpinningLabel = "Spinning..."
)

// RenderControls draws the bill input and the spin button. The button is
// greyed out while a spin is in flight.
func RenderControls(s state.AppState, props ViewProps) string {
	input := lipgloss.JoinHorizontal(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Render("Bill amount "),
		props.InputView,
	)

	var button string
	if s.Wheel.Spinning() {
		button = styles.DisabledButtonStyle.Render(props.SpinnerView + " " + SpinningLabel)
	} else {
		button = styles.ButtonStyle.Render(SpinLabel)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		input,
		"",
		mark(props.Zones, ZoneSpin, button),
	)
}
