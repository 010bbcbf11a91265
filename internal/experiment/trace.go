package experiment

import "github.com/san-kum/sortviz/internal/sorting"

// TraceStep is a visible step plus the values it left at both indices.
type TraceStep struct {
	Seq    int    `json:"seq"`
	Kind   string `json:"kind"`
	I      int    `json:"i"`
	J      int    `json:"j"`
	ValueI int    `json:"value_i"`
	ValueJ int    `json:"value_j"`
}

// Tracer keeps every step of a run in memory.
type Tracer struct {
	steps []TraceStep
}

func NewTracer() *Tracer {
	return &Tracer{steps: make([]TraceStep, 0, 256)}
}

func (t *Tracer) OnStart(sorting.Algorithm, []int) {
	t.steps = t.steps[:0]
}

func (t *Tracer) OnStep(s sorting.Step, values []int) {
	t.steps = append(t.steps, TraceStep{
		Seq:    s.Seq,
		Kind:   s.Kind.String(),
		I:      s.I,
		J:      s.J,
		ValueI: values[s.I],
		ValueJ: values[s.J],
	})
}

// Steps returns a copy of the recorded trace.
func (t *Tracer) Steps() []TraceStep {
	return append([]TraceStep(nil), t.steps...)
}
