package wheel

import "time"

type Phase int

const (
	Idle Phase = iota
	Spinning
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Spinning:
		return "spinning"
	default:
		return "unknown"
	}
}

// State is the immutable view state of the wheel. The zero value is the
// initial state: idle, empty bill, nothing selected, no rotation.
//
// It changes only through Wheel.Trigger, Wheel.Complete and WithBill, each
// of which returns a new value.
type State struct {
	bill string

	phase     Phase
	spinID    string
	pending   int
	startedAt time.Time
	endsAt    time.Time

	selected      int
	selectedIndex int
	hasSelected   bool

	rotation float64
}

// WithBill returns a copy of s holding the raw bill text.
func (s State) WithBill(raw string) State {
	s.bill = raw
	return s
}

func (s State) Bill() string { return s.bill }
func (s State) Phase() Phase { return s.phase }
func (s State) Spinning() bool { return s.phase == Spinning }
func (s State) Rotation() float64 { return s.rotation }
func (s State) SpinID() string { return s.spinID }
func (s State) StartedAt() time.Time { return s.startedAt }
func (s State) EndsAt() time.Time { return s.endsAt }

// SelectedTip returns the percentage chosen by the last completed spin.
func (s State) SelectedTip() (int, bool) {
	return s.selected, s.hasSelected
}

// SelectedIndex returns the segment index chosen by the last completed spin.
func (s State) SelectedIndex() (int, bool) {
	return s.selectedIndex, s.hasSelected
}

// Due reports whether the spin in flight has reached its deadline.
func (s State) Due(now time.Time) bool {
	return s.phase == Spinning && !now.Before(s.endsAt)
}

// Remaining returns the time left before the spin in flight completes.
func (s State) Remaining(now time.Time) time.Duration {
	if s.phase != Spinning {
		return 0
	}
	d := s.endsAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
