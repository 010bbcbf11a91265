package experiment

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/sortviz/internal/sorting"
)

var ErrUnknownAlgorithm = errors.New("experiment: unknown algorithm")

// Entry describes one runnable algorithm and the menu key that starts it.
type Entry struct {
	Name        sorting.Algorithm
	Key         string
	Description string
	Run         func(*sorting.Engine) (sorting.Stats, error)
}

type Registry struct {
	entries map[sorting.Algorithm]Entry
}

func NewRegistry() *Registry {
	r := &Registry{entries: make(map[sorting.Algorithm]Entry)}

	r.Register(Entry{
		Name: sorting.Selection, Key: "1", Description: "one swap per pass",
		Run: (*sorting.Engine).Selection,
	})
	r.Register(Entry{
		Name: sorting.Bubble, Key: "2", Description: "adjacent swaps",
		Run: (*sorting.Engine).Bubble,
	})
	r.Register(Entry{
		Name: sorting.Insertion, Key: "3", Description: "shift and insert",
		Run: (*sorting.Engine).Insertion,
	})

	return r
}

func (r *Registry) Register(e Entry) {
	r.entries[e.Name] = e
}

func (r *Registry) Get(name string) (Entry, error) {
	e, ok := r.entries[sorting.Algorithm(name)]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
	}
	return e, nil
}

// ByKey resolves a menu key such as "2".
func (r *Registry) ByKey(key string) (Entry, bool) {
	for _, e := range r.entries {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// List returns entries ordered by menu key.
func (r *Registry) List() []Entry {
	list := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Key < list[j].Key })
	return list
}
