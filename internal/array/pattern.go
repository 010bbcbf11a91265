package array

import (
	"fmt"
	"sort"
)

// Pattern names a baseline shape.
type Pattern string

const (
	PatternRandom    Pattern = "random"
	PatternSorted    Pattern = "sorted"
	PatternReversed  Pattern = "reversed"
	PatternEqual     Pattern = "equal"
	PatternFewUnique Pattern = "few-unique"
)

// Patterns lists every known pattern in display order.
var Patterns = []Pattern{PatternRandom, PatternSorted, PatternReversed, PatternEqual, PatternFewUnique}

// ParsePattern accepts any listed name; an empty name means random.
func ParsePattern(name string) (Pattern, error) {
	if name == "" {
		return PatternRandom, nil
	}
	for _, p := range Patterns {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown pattern: %s (available: %v)", name, Patterns)
}

// Fill regenerates the baseline following p. The random pattern is exactly
// Randomize; the others start from random values and reshape them so they
// stay within [0, maxHeight).
func (s *State) Fill(p Pattern) error {
	switch p {
	case PatternRandom, "":
		s.Randomize()
	case PatternSorted:
		s.Randomize()
		sort.Ints(s.baseline)
	case PatternReversed:
		s.Randomize()
		sort.Sort(sort.Reverse(sort.IntSlice(s.baseline)))
	case PatternEqual:
		v := s.rng.Intn(s.maxHeight)
		for i := range s.baseline {
			s.baseline[i] = v
		}
	case PatternFewUnique:
		levels := [4]int{}
		for i := range levels {
			levels[i] = s.rng.Intn(s.maxHeight)
		}
		for i := range s.baseline {
			s.baseline[i] = levels[s.rng.Intn(len(levels))]
		}
	default:
		return fmt.Errorf("unknown pattern: %s", p)
	}
	return nil
}
