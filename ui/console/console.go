package console

import (
	"fmt"
	"io"
	"strings"

	"tipstr/internal/output"
)

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// Print renders the receipt to the writer in a compact format.
func Print(w io.Writer, r output.Receipt) {
	fmt.Fprintf(w, "%s%s %s%s\n", colorCyan, "■", strings.ToUpper(r.Title), colorReset)

	for _, it := range r.Items {
		color := colorFor(it)

		// Compact Label (max 20 chars)
		label := it.Label
		if len(label) > 20 {
			label = label[:17] + "..."
		}

		// Dots leader
		dots := strings.Repeat("·", 22-len(label))

		// Format: "  Label............... Value"
		fmt.Fprintf(w, "  %s%s %s%10s%s\n", label, colorCyan+dots+colorReset, color, it.Value, colorReset)
	}
	fmt.Fprintln(w)
}

func colorFor(it output.Item) string {
	if it.Emphasis {
		return colorYellow
	}
	return colorGreen
}
