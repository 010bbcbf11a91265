package sorting

import (
	"fmt"
	"time"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/render"
)

type Algorithm string

const (
	Selection Algorithm = "selection"
	Bubble    Algorithm = "bubble"
	Insertion Algorithm = "insertion"
)

// Algorithms lists the routines in menu order.
var Algorithms = []Algorithm{Selection, Bubble, Insertion}

func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown algorithm: %s (available: %v)", name, Algorithms)
}

type Engine struct {
	st        *array.State
	display   Display
	pacer     Pacer
	observers []Observer
	geom      render.Geometry

	alg   Algorithm
	stats Stats
	start time.Time
}

type Option func(*Engine)

func WithDisplay(d Display) Option { return func(e *Engine) { e.display = d } }
func WithPacer(p Pacer) Option     { return func(e *Engine) { e.pacer = p } }

func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observers = append(e.observers, o) }
}

func WithGeometry(g render.Geometry) Option { return func(e *Engine) { e.geom = g } }

// New binds an engine to st. Without options frames go nowhere and every
// step sleeps DefaultDelay.
func New(st *array.State, opts ...Option) *Engine {
	e := &Engine{
		st:      st,
		display: NopDisplay{},
		pacer:   SleepPacer{Delay: DefaultDelay},
		geom:    render.DefaultGeometry(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

// Run dispatches to the routine named by alg.
func (e *Engine) Run(alg Algorithm) (Stats, error) {
	switch alg {
	case Selection:
		return e.Selection()
	case Bubble:
		return e.Bubble()
	case Insertion:
		return e.Insertion()
	}
	return Stats{}, fmt.Errorf("unknown algorithm: %s", alg)
}

func (e *Engine) begin(alg Algorithm) {
	e.alg = alg
	e.stats = Stats{Algorithm: alg, Length: e.st.Len()}
	e.start = time.Now()
	e.st.ClearComplete()
	var values []int
	for _, o := range e.observers {
		if so, ok := o.(StartObserver); ok {
			if values == nil {
				values = e.st.Values()
			}
			so.OnStart(alg, values)
		}
	}
}

// yield is the suspension point after a visible mutation.
func (e *Engine) yield(kind StepKind, i, j int) {
	e.stats.Steps++
	values := e.st.Values()
	step := Step{Seq: e.stats.Steps, Algorithm: e.alg, Kind: kind, I: i, J: j}
	for _, o := range e.observers {
		o.OnStep(step, values)
	}
	e.display.Redraw(render.Snapshot(values, false, e.geom))
	e.pacer.Pause()
}

func (e *Engine) finish() Stats {
	e.st.MarkComplete()
	e.stats.Elapsed = time.Since(e.start)
	values := e.st.Values()
	for _, o := range e.observers {
		if fo, ok := o.(FinishObserver); ok {
			fo.OnFinish(e.stats, values)
		}
	}
	e.display.Redraw(render.Snapshot(values, true, e.geom))
	return e.stats
}

func (e *Engine) fail(err error) (Stats, error) {
	return e.stats, &StepError{Algorithm: e.alg, Step: e.stats.Steps, Wrapped: err}
}

// greater reports working[a] > working[b].
func (e *Engine) greater(a, b int) (bool, error) {
	va, err := e.st.Get(a)
	if err != nil {
		return false, err
	}
	vb, err := e.st.Get(b)
	if err != nil {
		return false, err
	}
	e.stats.Comparisons++
	return va > vb, nil
}
