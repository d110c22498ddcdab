package views

import (
	"fmt"

	"tipstr/internal/output"
	"tipstr/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

func RenderResult(r output.Receipt) string {
	lines := []string{lipgloss.NewStyle().Bold(true).Foreground(styles.BrandColor).Render(r.Title)}
	for _, it := range r.Items {
		line := fmt.Sprintf("%-10s %10s", it.Label+":", it.Value)
		if it.Emphasis {
			line = lipgloss.NewStyle().Bold(true).Foreground(styles.Special).Render(line)
		}
		lines = append(lines, line)
	}
	return styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
