package views

import (
	"fmt"
	"math"
	"strings"

	"tipstr/internal/wheel"
	"tipstr/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

const (
	DefaultRadius = 8
	Pointer       = "▼"
	labelRadius   = 0.62
	segmentFill   = "█"
)

// WheelGrid returns the segment drawn in each terminal cell of a wheel of
// the given radius turned by angle degrees, or -1 outside the wheel. Cells
// are about twice as tall as wide, so a row spans 4*radius+1 columns.
func WheelGrid(n int, angle float64, radius int) [][]int {
	rows, cols := 2*radius+1, 4*radius+1
	r := float64(radius)
	grid := make([][]int, rows)
	for y := 0; y < rows; y++ {
		grid[y] = make([]int, cols)
		for x := 0; x < cols; x++ {
			dx := float64(x-2*radius) / 2
			dy := float64(y - radius)
			if math.Hypot(dx, dy) > r+0.25 {
				grid[y][x] = -1
				continue
			}
			phi := math.Atan2(dx, -dy) * 180 / math.Pi
			grid[y][x] = wheel.SegmentUnder(phi, angle, n)
		}
	}
	return grid
}

type label struct {
	text    string
	segment int
}

// labelCells places each percentage label at the middle of its segment.
// Keys are row, then starting column.
func labelCells(percentages []int, angle float64, radius int) map[int]map[int]label {
	out := make(map[int]map[int]label)
	n := len(percentages)
	r := float64(radius) * labelRadius
	for i, p := range percentages {
		a := wheel.SegmentCenter(i, angle, n) * math.Pi / 180
		row := radius - int(math.Round(r*math.Cos(a)))
		col := 2*radius + int(math.Round(2*r*math.Sin(a)))
		text := fmt.Sprintf("%d%%", p)
		col -= len(text) / 2
		if out[row] == nil {
			out[row] = make(map[int]label)
		}
		out[row][col] = label{text: text, segment: i}
	}
	return out
}

// RenderWheel draws the wheel with its fixed pointer above 12 o'clock.
func RenderWheel(percentages []int, angle float64, radius int) string {
	if radius <= 0 {
		radius = DefaultRadius
	}
	grid := WheelGrid(len(percentages), angle, radius)
	labels := labelCells(percentages, angle, radius)

	pointer := strings.Repeat(" ", 2*radius) +
		lipgloss.NewStyle().Bold(true).Foreground(styles.BrandColor).Render(Pointer)
	lines := []string{pointer}

	for y, row := range grid {
		var b strings.Builder
		for x := 0; x < len(row); x++ {
			if l, ok := labels[y][x]; ok && x+len(l.text) <= len(row) {
				b.WriteString(LabelStyle(l.segment).Render(l.text))
				x += len(l.text) - 1
				continue
			}
			if row[x] < 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(SegmentStyle(row[x]).Render(segmentFill))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
