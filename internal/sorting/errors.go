package sorting

import "fmt"

// StepError wraps a failed element access with the step it happened on.
// Loop bounds keep accesses in range, so seeing one means the state was
// modified underneath the engine.
type StepError struct {
	Algorithm Algorithm
	Step      int
	Wrapped   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s sort, step %d: %v", e.Algorithm, e.Step, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
