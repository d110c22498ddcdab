package styles

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	Special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	BrandColor = lipgloss.Color("#f27b24")
	BaseColor  = lipgloss.Color("#444")
	ErrorColor = lipgloss.Color("196")

	// SegmentColors are cycled over the wheel segments in order.
	SegmentColors = []lipgloss.Color{
		"#E4572E",
		"#F3A712",
		"#29335C",
		"#669BBC",
		"#8F2D56",
		"#3BB273",
		"#7768AE",
		"#D81159",
	}

	TitleStyle = lipgloss.NewStyle().
			MarginLeft(1).
			MarginRight(5).
			Padding(0, 1).
			Italic(true).
			Foreground(lipgloss.Color("#FFF7DB"))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(BrandColor).
			Align(lipgloss.Left).
			Padding(1, 2)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(1, 2).
			Margin(1, 1)

	ButtonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(BrandColor).
			Padding(0, 3)

	DisabledButtonStyle = ButtonStyle.
				Foreground(lipgloss.Color("#AAA")).
				Background(BaseColor)

	StatusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFF"))

	CopyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888")).
			Italic(true)
)

// SegmentColor returns the fill colour of segment i.
func SegmentColor(i int) lipgloss.Color {
	return SegmentColors[i%len(SegmentColors)]
}

// SegmentRGB converts the segment palette for image export.
func SegmentRGB() []color.Color {
	out := make([]color.Color, 0, len(SegmentColors))
	for _, c := range SegmentColors {
		rgb, err := colorful.Hex(string(c))
		if err != nil {
			continue
		}
		out = append(out, rgb)
	}
	return out
}
