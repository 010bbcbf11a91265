package metrics

import "github.com/san-kum/sortviz/internal/sorting"

// Movement sums the index distance covered by every step: a swap of i and j
// moves two values |i-j| slots each, a shift moves one value one slot.
type Movement struct {
	name  string
	total int
}

func NewMovement() *Movement {
	return &Movement{name: "movement"}
}

func (m *Movement) Name() string { return m.name }

func (m *Movement) OnStep(s sorting.Step, _ []int) {
	d := s.J - s.I
	if d < 0 {
		d = -d
	}
	if s.Kind == sorting.StepSwap {
		d *= 2
	}
	m.total += d
}

func (m *Movement) Value() float64 { return float64(m.total) }
func (m *Movement) Reset()         { m.total = 0 }
