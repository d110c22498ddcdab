package output

// Bar is the share of spins that landed on one percentage.
type Bar struct {
	Percent int
	Count   int
	Share   float64
}

type HistoryView struct {
	Spins   int
	Bars    []Bar
	Average float64
}

// BuildHistory counts how often each configured percentage was selected,
// keeping the wheel order. Selections outside the set are ignored.
func BuildHistory(percentages []int, selected []int) HistoryView {
	index := make(map[int]int, len(percentages))
	bars := make([]Bar, len(percentages))
	for i, p := range percentages {
		index[p] = i
		bars[i].Percent = p
	}

	var spins, sum int
	for _, p := range selected {
		i, ok := index[p]
		if !ok {
			continue
		}
		bars[i].Count++
		spins++
		sum += p
	}

	v := HistoryView{Spins: spins, Bars: bars}
	if spins == 0 {
		return v
	}
	for i := range v.Bars {
		v.Bars[i].Share = float64(v.Bars[i].Count) / float64(spins)
	}
	v.Average = float64(sum) / float64(spins)
	return v
}
