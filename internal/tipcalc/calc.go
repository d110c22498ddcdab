package tipcalc

import (
	"tipstr/internal/wheel"

	"github.com/shopspring/decimal"
)

// Quote is the result panel data for one bill and selected percentage.
// Amounts are unrounded; use FormatCurrency for display.
type Quote struct {
	Bill    float64
	Percent int
	Tip     float64
	Total   float64
}

func TipAmount(bill float64, percent int) float64 {
	return bill * float64(percent) / 100
}

func Total(bill float64, percent int) float64 {
	return bill + TipAmount(bill, percent)
}

// Evaluate returns the quote for a raw bill and an optional percentage.
// Tip and Total are zero when either input is absent or the bill does not
// parse; the percentage is kept whenever one is selected.
func Evaluate(rawBill string, percent int, selected bool) Quote {
	if !selected {
		return Quote{}
	}
	bill, err := wheel.ParseBill(rawBill)
	if err != nil {
		return Quote{Percent: percent}
	}
	return Quote{
		Bill:    bill,
		Percent: percent,
		Tip:     TipAmount(bill, percent),
		Total:   Total(bill, percent),
	}
}

// FromState quotes the selected tip held by s.
func FromState(s wheel.State) Quote {
	p, ok := s.SelectedTip()
	return Evaluate(s.Bill(), p, ok)
}

// Valid reports whether q came from a parsed bill and a selected tip.
func (q Quote) Valid() bool {
	return q.Bill > 0 && q.Percent > 0
}

// FormatCurrency rounds v half away from zero to two places and prefixes
// the symbol.
func FormatCurrency(symbol string, v float64) string {
	return symbol + Round(v).StringFixed(2)
}

// Round returns v rounded to cents.
func Round(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
