// Package timing provides the rational point-in-time value used by charts.
//
// A [Timing] is bar + beat/denominator. Comparison never converts to
// floating point: beats in the same bar are compared by cross-multiplying,
// so Timing{1, 1, 2} and Timing{1, 2, 4} are the same moment.
//
//	a := timing.New(1, 1, 2)
//	b := timing.New(1, 2, 4)
//	a.Equal(b) // true
//	a.Less(timing.New(2, 0, 1)) // true
package timing

import (
	"cmp"
	"fmt"
)

// Timing is a point in chart time: Bar + Beat/Denominator.
// Bars are zero-based once a chart has been ingested.
type Timing struct {
	Bar         int `json:"bar_idx"`
	Beat        int `json:"beat_idx"`
	Denominator int `json:"denominator"`
}

// New returns the timing bar + beat/denominator.
func New(bar, beat, denominator int) Timing {
	return Timing{Bar: bar, Beat: beat, Denominator: denominator}
}

// Validate reports whether t can be placed on a sheet: a positive
// denominator and non-negative bar and beat.
func (t Timing) Validate() error {
	if t.Denominator <= 0 {
		return fmt.Errorf("denominator must be positive, got %d", t.Denominator)
	}
	if t.Bar < 0 {
		return fmt.Errorf("bar must be non-negative, got %d", t.Bar)
	}
	if t.Beat < 0 {
		return fmt.Errorf("beat must be non-negative, got %d", t.Beat)
	}
	return nil
}

// Compare returns -1, 0 or +1 as t is before, equal to or after u.
func (t Timing) Compare(u Timing) int {
	if t.Bar != u.Bar {
		return cmp.Compare(t.Bar, u.Bar)
	}
	if t.Denominator == u.Denominator {
		return cmp.Compare(t.Beat, u.Beat)
	}
	return cmp.Compare(int64(t.Beat)*int64(u.Denominator), int64(u.Beat)*int64(t.Denominator))
}

// Equal reports whether t and u are the same moment.
func (t Timing) Equal(u Timing) bool { return t.Compare(u) == 0 }

// Less reports whether t is strictly before u.
func (t Timing) Less(u Timing) bool { return t.Compare(u) < 0 }

// Fraction returns the position of t within its bar in [0, 1) for
// well-formed values. Only geometry uses it; ordering never does.
func (t Timing) Fraction() float64 {
	return float64(t.Beat) / float64(t.Denominator)
}

// ShiftBars returns t moved by n bars.
func (t Timing) ShiftBars(n int) Timing {
	t.Bar += n
	return t
}

// Max returns the latest of ts. It panics if ts is empty.
func Max(ts ...Timing) Timing {
	m := ts[0]
	for _, t := range ts[1:] {
		if m.Less(t) {
			m = t
		}
	}
	return m
}

func (t Timing) String() string {
	return fmt.Sprintf("%d:%d/%d", t.Bar, t.Beat, t.Denominator)
}
