package output

import (
	"fmt"
	"strings"

	"tipstr/internal/tipcalc"
)

// Item keys to avoid hardcoded strings
const (
	KeyBill  = "bill"
	KeyTip   = "tip"
	KeyTotal = "total"
)

// UI/view-model types (no printing here)
type Item struct {
	Key      string
	Label    string
	Value    string
	Emphasis bool
}

type Receipt struct {
	Title   string
	Percent int
	Items   []Item
}

// BuildReceipt converts a quote into display-ready lines. It reports false
// when no tip has been selected.
func BuildReceipt(q tipcalc.Quote, currency string) (Receipt, bool) {
	if q.Percent <= 0 {
		return Receipt{}, false
	}
	return Receipt{
		Title:   "Your Tip",
		Percent: q.Percent,
		Items: []Item{
			{Key: KeyBill, Label: "Bill", Value: tipcalc.FormatCurrency(currency, q.Bill)},
			{Key: KeyTip, Label: fmt.Sprintf("Tip (%d%%)", q.Percent), Value: tipcalc.FormatCurrency(currency, q.Tip)},
			{Key: KeyTotal, Label: "Total", Value: tipcalc.FormatCurrency(currency, q.Total), Emphasis: true},
		},
	}, true
}

func (r Receipt) ItemByKey(key string) *Item {
	for i := range r.Items {
		if r.Items[i].Key == key {
			return &r.Items[i]
		}
	}
	return nil
}

// PlainText renders the receipt without styling, one line per item, for the
// clipboard.
func (r Receipt) PlainText() string {
	var b strings.Builder
	b.WriteString(r.Title)
	b.WriteByte('\n')
	for _, it := range r.Items {
		fmt.Fprintf(&b, "%-10s %s\n", it.Label+":", it.Value)
	}
	return b.String()
}
