package experiment

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorting"
)

// Config describes one run. Values, when set, replaces the generated
// baseline. Interrupt cuts individual pauses short.
type Config struct {
	Algorithm string
	Pattern   array.Pattern
	Seed      int64
	Values    []int
	Delay     time.Duration
	Interrupt <-chan struct{}
}

type Result struct {
	Algorithm sorting.Algorithm
	Pattern   array.Pattern
	Seed      int64
	Baseline  []int
	Final     []int
	Stats     sorting.Stats
	Metrics   map[string]float64
	Trace     []TraceStep
}

type Experiment struct {
	cfg       Config
	registry  *Registry
	state     *array.State
	engine    *sorting.Engine
	entry     Entry
	metrics   []metrics.Metric
	tracer    *Tracer
	observers []sorting.Observer
}

func New(cfg Config, registry *Registry) *Experiment {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Experiment{cfg: cfg, registry: registry}
}

// Setup builds the state and the engine. A nil display drops frames; a
// zero Delay runs without pauses.
func (e *Experiment) Setup(display sorting.Display, ms []metrics.Metric, observers ...sorting.Observer) error {
	entry, err := e.registry.Get(e.cfg.Algorithm)
	if err != nil {
		return err
	}
	e.entry = entry

	if e.cfg.Values != nil {
		e.state = array.FromValues(e.cfg.Values, array.MaxHeight)
	} else {
		e.state = array.NewDefault(rand.New(rand.NewSource(e.cfg.Seed)))
		if err := e.state.Fill(e.cfg.Pattern); err != nil {
			return err
		}
		e.state.Load()
	}

	if display == nil {
		display = sorting.NopDisplay{}
	}
	var pacer sorting.Pacer = sorting.NopPacer{}
	if e.cfg.Delay > 0 {
		pacer = sorting.SleepPacer{Delay: e.cfg.Delay, Interrupt: e.cfg.Interrupt}
	}

	e.tracer = NewTracer()
	e.metrics = ms
	e.observers = observers
	e.engine = sorting.New(e.state,
		sorting.WithDisplay(display),
		sorting.WithPacer(pacer),
		sorting.WithObserver(e.tracer),
	)
	for _, m := range ms {
		e.engine.AddObserver(m)
	}
	for _, o := range observers {
		e.engine.AddObserver(o)
	}
	return nil
}

func (e *Experiment) Run() (*Result, error) {
	if e.engine == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	// Every run starts from the baseline, so repeated runs agree.
	e.state.Load()
	baseline := e.state.Baseline()
	for _, m := range e.metrics {
		m.Reset()
	}

	stats, err := e.entry.Run(e.engine)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Algorithm: e.entry.Name,
		Pattern:   e.cfg.Pattern,
		Seed:      e.cfg.Seed,
		Baseline:  baseline,
		Final:     e.state.Values(),
		Stats:     stats,
		Metrics:   make(map[string]float64),
		Trace:     e.tracer.Steps(),
	}
	for _, m := range e.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

// State exposes the array for adapters that need the initial frame.
func (e *Experiment) State() *array.State {
	return e.state
}
