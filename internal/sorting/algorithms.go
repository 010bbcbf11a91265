package sorting

// Selection runs n-1 passes. Each pass scans [i+1, n) for the minimum
// without yielding, then swaps it into i and yields once, even when the
// minimum is already in place.
func (e *Engine) Selection() (Stats, error) {
	e.begin(Selection)
	n := e.st.Len()
	for i := 0; i < n-1; i++ {
		minIndex := i
		for j := i + 1; j < n; j++ {
			gt, err := e.greater(minIndex, j)
			if err != nil {
				return e.fail(err)
			}
			if gt {
				minIndex = j
			}
		}
		if err := e.st.Swap(i, minIndex); err != nil {
			return e.fail(err)
		}
		if minIndex != i {
			e.stats.Swaps++
		}
		e.yield(StepSwap, i, minIndex)
	}
	return e.finish(), nil
}

// Bubble runs n-1 passes over adjacent pairs and yields once per swap.
func (e *Engine) Bubble() (Stats, error) {
	e.begin(Bubble)
	n := e.st.Len()
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			gt, err := e.greater(j, j+1)
			if err != nil {
				return e.fail(err)
			}
			if !gt {
				continue
			}
			if err := e.st.Swap(j, j+1); err != nil {
				return e.fail(err)
			}
			e.stats.Swaps++
			e.yield(StepSwap, j, j+1)
		}
	}
	return e.finish(), nil
}

// Insertion holds working[i] aside, shifts larger predecessors right one
// yield at a time, then drops the key into the gap without yielding.
func (e *Engine) Insertion() (Stats, error) {
	e.begin(Insertion)
	n := e.st.Len()
	for i := 1; i < n; i++ {
		key, err := e.st.Get(i)
		if err != nil {
			return e.fail(err)
		}
		j := i - 1
		for j >= 0 {
			v, err := e.st.Get(j)
			if err != nil {
				return e.fail(err)
			}
			e.stats.Comparisons++
			if v <= key {
				break
			}
			if err := e.st.Set(j+1, v); err != nil {
				return e.fail(err)
			}
			e.stats.Shifts++
			e.yield(StepShift, j, j+1)
			j--
		}
		if err := e.st.Set(j+1, key); err != nil {
			return e.fail(err)
		}
	}
	return e.finish(), nil
}
