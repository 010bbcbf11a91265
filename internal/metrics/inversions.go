package metrics

import "github.com/san-kum/sortviz/internal/sorting"

// Inversions records how many inverted pairs remain after every step. Its
// value is the disorder the run started from.
type Inversions struct {
	name    string
	initial int
	history []float64
}

func NewInversions() *Inversions {
	return &Inversions{name: "inversions"}
}

func (m *Inversions) Name() string { return m.name }

func (m *Inversions) OnStart(_ sorting.Algorithm, values []int) {
	m.Reset()
	m.initial = CountInversions(values)
	m.history = append(m.history, float64(m.initial))
}

func (m *Inversions) OnStep(_ sorting.Step, values []int) {
	m.history = append(m.history, float64(CountInversions(values)))
}

func (m *Inversions) Value() float64 { return float64(m.initial) }

// History starts with the initial count followed by one entry per step.
func (m *Inversions) History() []float64 { return m.history }

func (m *Inversions) Reset() {
	m.initial = 0
	m.history = m.history[:0]
}
