package wheel

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidBill         = errors.New("invalid bill amount")
	ErrSpinInProgress      = errors.New("spin already in progress")
	ErrNoPercentages       = errors.New("no tip percentages configured")
	ErrInvalidPercentage   = errors.New("tip percentage out of range")
	ErrDuplicatePercentage = errors.New("duplicate tip percentage")
)

const (
	DefaultFullTurns    = 5
	DefaultSpinDuration = 3 * time.Second
)

// Randomizer is a uniform source of indexes. *math/rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// Options fixes the wheel layout and timing at construction.
type Options struct {
	Percentages  []int
	FullTurns    int
	SpinDuration time.Duration
}

// Wheel holds the fixed, ordered set of tip percentages and performs the
// state transitions. It is not safe for concurrent use; the UI event loop
// owns it.
type Wheel struct {
	percentages []int
	fullTurns   int
	duration    time.Duration
	rng         Randomizer
	newID       func() string
}

// New validates opts and returns a wheel. A nil rng selects a time-seeded
// math/rand source.
func New(opts Options, rng Randomizer) (*Wheel, error) {
	if len(opts.Percentages) == 0 {
		return nil, ErrNoPercentages
	}
	seen := make(map[int]bool, len(opts.Percentages))
	for _, p := range opts.Percentages {
		if p < 1 || p > 100 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidPercentage, p)
		}
		if seen[p] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicatePercentage, p)
		}
		seen[p] = true
	}
	if opts.FullTurns < 0 {
		opts.FullTurns = DefaultFullTurns
	}
	if opts.SpinDuration <= 0 {
		opts.SpinDuration = DefaultSpinDuration
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Wheel{
		percentages: append([]int(nil), opts.Percentages...),
		fullTurns:   opts.FullTurns,
		duration:    opts.SpinDuration,
		rng:         rng,
		newID:       uuid.NewString,
	}, nil
}

// Percentages returns a copy of the configured segments in wheel order.
func (w *Wheel) Percentages() []int {
	return append([]int(nil), w.percentages...)
}

// Len returns the number of segments.
func (w *Wheel) Len() int { return len(w.percentages) }

// SpinDuration returns the fixed delay between trigger and reveal.
func (w *Wheel) SpinDuration() time.Duration { return w.duration }

// Trigger starts a spin. It fails with ErrSpinInProgress while spinning and
// with ErrInvalidBill unless the bill parses to a positive number; on failure
// s is returned unchanged.
func (w *Wheel) Trigger(s State, now time.Time) (State, error) {
	if s.phase == Spinning {
		return s, ErrSpinInProgress
	}
	if _, err := ParseBill(s.bill); err != nil {
		return s, err
	}

	index := w.rng.Intn(len(w.percentages))

	next := s
	next.phase = Spinning
	next.spinID = w.newID()
	next.pending = index
	next.startedAt = now
	next.endsAt = now.Add(w.duration)
	next.selected, next.selectedIndex, next.hasSelected = 0, 0, false
	next.rotation = NextRotation(s.rotation, index, len(w.percentages), w.fullTurns)
	return next, nil
}

// Complete ends the spin identified by spinID and commits its percentage.
// It reports false, leaving s unchanged, when no such spin is in flight.
func (w *Wheel) Complete(s State, spinID string) (State, bool) {
	if s.phase != Spinning || s.spinID != spinID {
		return s, false
	}
	next := s
	next.phase = Idle
	next.selectedIndex = s.pending
	next.selected = w.percentages[s.pending]
	next.hasSelected = true
	return next, true
}
