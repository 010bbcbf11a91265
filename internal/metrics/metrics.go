package metrics

import "github.com/san-kum/sortviz/internal/sorting"

// Metric is an observer that reduces a run to a single number.
type Metric interface {
	sorting.Observer
	Name() string
	Value() float64
	Reset()
}

// Defaults returns a fresh set of the metrics recorded for every run.
func Defaults() []Metric {
	return []Metric{
		NewInversions(),
		NewSortedness(),
		NewMovement(),
	}
}

// CountInversions returns the number of pairs i<j with v[i] > v[j].
func CountInversions(v []int) int {
	buf := append([]int(nil), v...)
	tmp := make([]int, len(v))
	return mergeCount(buf, tmp)
}

func mergeCount(v, tmp []int) int {
	if len(v) < 2 {
		return 0
	}
	mid := len(v) / 2
	count := mergeCount(v[:mid], tmp[:mid]) + mergeCount(v[mid:], tmp[mid:])
	i, j, k := 0, mid, 0
	for i < mid && j < len(v) {
		if v[i] <= v[j] {
			tmp[k] = v[i]
			i++
		} else {
			tmp[k] = v[j]
			count += mid - i
			j++
		}
		k++
	}
	k += copy(tmp[k:], v[i:mid])
	copy(tmp[k:], v[j:])
	copy(v, tmp[:len(v)])
	return count
}
