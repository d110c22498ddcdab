package components

import (
	"tipstr/ui/tui/styles"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const historyWindow = 30

var _ Component = (*HistoryWidget)(nil)

// HistoryWidget charts the percentage selected by each of the most recent
// spins.
type HistoryWidget struct {
	Chart   linechart.Model
	History []float64
	Width   int
	Height  int
}

// NewHistoryWidget charts values between 0 and maxPercent.
func NewHistoryWidget(width, height, maxPercent int) *HistoryWidget {
	// width, height, minX, maxX, minY, maxY
	lc := linechart.New(width, height, 0, historyWindow, 0, float64(maxPercent))
	return &HistoryWidget{
		Chart:   lc,
		History: make([]float64, 0, historyWindow+1),
		Width:   width,
		Height:  height,
	}
}

func (c *HistoryWidget) Init() tea.Cmd {
	return nil
}

func (c *HistoryWidget) Push(percent float64) {
	c.History = append(c.History, percent)
	if len(c.History) > historyWindow+1 {
		c.History = c.History[1:]
	}
}

func (c *HistoryWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return c, nil
}

func (c *HistoryWidget) Resize(w, h int) {
	c.Width = w
	c.Height = h
	c.Chart.Resize(w, h)
}

func (c *HistoryWidget) View() string {
	c.Chart.Clear()
	for i := 0; i < len(c.History)-1; i++ {
		c.Chart.DrawBrailleLine(
			canvas.Float64Point{X: float64(i), Y: c.History[i]},
			canvas.Float64Point{X: float64(i + 1), Y: c.History[i+1]},
		)
	}
	c.Chart.DrawXYAxisAndLabel()

	return styles.CardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render("Tip History"),
			c.Chart.View(),
		),
	)
}
