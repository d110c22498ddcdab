package views

import (
	"tipstr/ui/tui/state"
	"tipstr/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

type WheelView struct{}

func (v WheelView) Render(s state.AppState, props ViewProps) string {
	if s.Blocked() {
		return scan(props.Zones, RenderNotice(s.Notice, props))
	}

	top := header(props.Width, "TIPSTR // SPIN THE WHEEL, PAY THE TIP")

	wheelBox := lipgloss.NewStyle().Padding(1, 4).Render(
		RenderWheel(props.Percentages, props.DisplayAngle, props.Radius),
	)

	side := []string{RenderControls(s, props)}
	if props.HasReceipt {
		side = append(side, RenderResult(props.Receipt))
	}
	sidePanel := lipgloss.NewStyle().PaddingTop(2).Render(lipgloss.JoinVertical(lipgloss.Left, side...))

	body := lipgloss.JoinHorizontal(lipgloss.Top, wheelBox, sidePanel)

	var status string
	if s.Status != "" {
		status = styles.CopyStyle.PaddingLeft(2).Render(s.Status)
	}

	return scan(props.Zones, lipgloss.JoinVertical(lipgloss.Left,
		top,
		body,
		status,
		lipgloss.NewStyle().PaddingLeft(2).Render(props.HelpView),
	))
}
