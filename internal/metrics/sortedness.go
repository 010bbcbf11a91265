package metrics

import "github.com/san-kum/sortviz/internal/sorting"

// Sortedness is the fraction of adjacent pairs in order, averaged over all
// observed steps. A run that starts nearly sorted scores close to 1.
type Sortedness struct {
	name    string
	samples int
	total   float64
}

func NewSortedness() *Sortedness {
	return &Sortedness{name: "sortedness"}
}

func (m *Sortedness) Name() string { return m.name }

func (m *Sortedness) OnStep(_ sorting.Step, values []int) {
	m.total += AdjacentOrder(values)
	m.samples++
}

func (m *Sortedness) Value() float64 {
	if m.samples == 0 {
		return 1
	}
	return m.total / float64(m.samples)
}

func (m *Sortedness) Reset() {
	m.samples = 0
	m.total = 0
}

// AdjacentOrder returns the share of pairs v[i] <= v[i+1].
func AdjacentOrder(v []int) float64 {
	if len(v) < 2 {
		return 1
	}
	ordered := 0
	for i := 1; i < len(v); i++ {
		if v[i-1] <= v[i] {
			ordered++
		}
	}
	return float64(ordered) / float64(len(v)-1)
}
