package array

import (
	"math/rand"
)

const (
	// Size is the number of bars the visualizer animates.
	Size = 130
	// MaxHeight bounds every value: values are drawn from [0, MaxHeight).
	MaxHeight = 750
)

type State struct {
	baseline  []int
	working   []int
	maxHeight int
	complete  bool
	rng       *rand.Rand
}

// New creates a State of n elements bounded by maxHeight, randomizes the
// baseline and loads it.
func New(n, maxHeight int, rng *rand.Rand) *State {
	if n < 0 {
		n = 0
	}
	if maxHeight < 1 {
		maxHeight = 1
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	s := &State{
		baseline:  make([]int, n),
		working:   make([]int, n),
		maxHeight: maxHeight,
		rng:       rng,
	}
	s.Randomize()
	s.Load()
	return s
}

// NewDefault creates the Size x MaxHeight state the application uses.
func NewDefault(rng *rand.Rand) *State {
	return New(Size, MaxHeight, rng)
}

// FromValues creates a loaded State whose baseline is a copy of values.
// Values are not clamped; maxHeight only bounds later randomization.
func FromValues(values []int, maxHeight int) *State {
	if maxHeight < 1 {
		maxHeight = 1
	}
	s := &State{
		baseline:  append([]int(nil), values...),
		working:   make([]int, len(values)),
		maxHeight: maxHeight,
		rng:       rand.New(rand.NewSource(rand.Int63())),
	}
	s.Load()
	return s
}


// Randomize fills the baseline with values drawn uniformly from
// [0, maxHeight). The working array is left untouched until the next Load.
func (s *State) Randomize() {
	for i := range s.baseline {
		s.baseline[i] = s.rng.Intn(s.maxHeight)
	}
}

// Load copies the baseline into the working array and clears the
// completion flag.
func (s *State) Load() {
	copy(s.working, s.baseline)
	s.complete = false
}

func (s *State) Len() int { return len(s.working) }
func (s *State) Complete() bool { return s.complete }

// MarkComplete is called by a sort routine once it has run to termination.
func (s *State) MarkComplete() { s.complete = true }

// ClearComplete is called by a sort routine before its first step.
func (s *State) ClearComplete() { s.complete = false }

func (s *State) Get(i int) (int, error) {
	if err := s.check("get", i); err != nil {
		return 0, err
	}
	return s.working[i], nil
}

func (s *State) Set(i, v int) error {
	if err := s.check("set", i); err != nil {
		return err
	}
	s.working[i] = v
	return nil
}

func (s *State) Swap(i, j int) error {
	if err := s.check("swap", i); err != nil {
		return err
	}
	if err := s.check("swap", j); err != nil {
		return err
	}
	s.working[i], s.working[j] = s.working[j], s.working[i]
	return nil
}

// Values returns a copy of the working array.
func (s *State) Values() []int {
	return append([]int(nil), s.working...)
}

// Baseline returns a copy of the baseline array.
func (s *State) Baseline() []int {
	return append([]int(nil), s.baseline...)
}

func (s *State) check(op string, i int) error {
	if i < 0 || i >= len(s.working) {
		return &IndexError{Op: op, Index: i, Len: len(s.working)}
	}
	return nil
}

// IsSorted reports whether values is in non-decreasing order.
func IsSorted(values []int) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return false
		}
	}
	return true
}
