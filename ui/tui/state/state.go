package state

import (
	"time"

	"tipstr/internal/wheel"
)

type Page int

const (
	PageWheel   Page = iota
	PageHistory // session spin history
)

// SpinRecord is one finished spin, kept for the lifetime of the program.
type SpinRecord struct {
	SpinID  string
	Percent int
	Bill    string
	Tip     float64
	Total   float64
	At      time.Time
}

// AppState holds everything the views render from.
type AppState struct {
	Wheel       wheel.State
	History     []SpinRecord
	Notice      string
	Status      string
	CurrentPage Page
}

// Selections returns the selected percentage of every recorded spin in order.
func (s AppState) Selections() []int {
	out := make([]int, len(s.History))
	for i, r := range s.History {
		out[i] = r.Percent
	}
	return out
}

// Blocked reports whether a modal notice is waiting to be dismissed.
func (s AppState) Blocked() bool {
	return s.Notice != ""
}
