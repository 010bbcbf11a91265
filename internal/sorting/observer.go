package sorting

import "time"

type StepKind int

const (
	// StepSwap exchanges I and J. Selection sort may swap a slot with itself.
	StepSwap StepKind = iota
	// StepShift copies the value at I into I+1 == J.
	StepShift
)

func (k StepKind) String() string {
	switch k {
	case StepSwap:
		return "swap"
	case StepShift:
		return "shift"
	}
	return "unknown"
}

// Step describes one visible mutation. Seq starts at 1 for every run.
type Step struct {
	Seq       int
	Algorithm Algorithm
	Kind      StepKind
	I, J      int
}

// Stats summarizes a finished run. Steps counts yields; the final redraw is
// not a step.
type Stats struct {
	Algorithm   Algorithm
	Length      int
	Comparisons int
	Swaps       int
	Shifts      int
	Steps       int
	Elapsed     time.Duration
}

// Observer sees every visible step together with a copy of the working
// array after the mutation.
type Observer interface {
	OnStep(step Step, values []int)
}

// StartObserver is notified before the first step of a run.
type StartObserver interface {
	OnStart(alg Algorithm, values []int)
}

// FinishObserver is notified after the completion flag is set.
type FinishObserver interface {
	OnFinish(stats Stats, values []int)
}
