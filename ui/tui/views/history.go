package views

import (
	"fmt"
	"strings"

	"tipstr/internal/output"
	"tipstr/internal/tipcalc"
	"tipstr/ui/tui/state"
	"tipstr/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

const (
	barWidth    = 24
	recentSpins = 5
)

type HistoryView struct{}

func (v HistoryView) Render(s state.AppState, props ViewProps) string {
	top := header(props.Width, "Spin History")

	h := output.BuildHistory(props.Percentages, s.Selections())

	if h.Spins == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			top,
			lipgloss.NewStyle().Padding(1, 2).Render("No spins yet. Spin the wheel to start a history."),
			lipgloss.NewStyle().PaddingLeft(2).Render(props.HelpView),
		)
	}

	summary := lipgloss.NewStyle().Padding(1, 2).Render(
		fmt.Sprintf("Spins: %d • Average tip: %.1f%%", h.Spins, h.Average),
	)

	var bars []string
	for i, b := range h.Bars {
		filled := int(float64(barWidth)*b.Share + 0.5)
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		bars = append(bars, fmt.Sprintf("%3d%%: [%s] %3d (%4.1f%%)",
			b.Percent, SegmentStyle(i).Render(bar), b.Count, b.Share*100))
	}
	barBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Highlight).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render("Selections"),
			lipgloss.JoinVertical(lipgloss.Left, bars...),
		))

	content := lipgloss.JoinHorizontal(lipgloss.Top, barBox, props.ChartView)

	return lipgloss.JoinVertical(lipgloss.Left,
		top,
		summary,
		content,
		renderRecent(s.History, props.Currency),
		lipgloss.NewStyle().PaddingLeft(2).Render(props.HelpView),
	)
}

func renderRecent(history []state.SpinRecord, currency string) string {
	start := len(history) - recentSpins
	if start < 0 {
		start = 0
	}
	lines := []string{lipgloss.NewStyle().Bold(true).Render("Recent")}
	for i := len(history) - 1; i >= start; i-- {
		r := history[i]
		lines = append(lines, fmt.Sprintf("%s  %3d%%  tip %s  total %s",
			r.At.Format("15:04:05"), r.Percent,
			tipcalc.FormatCurrency(currency, r.Tip),
			tipcalc.FormatCurrency(currency, r.Total)))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
