package sorting

import (
	"time"

	"github.com/san-kum/sortviz/internal/render"
)

// DefaultDelay is the pause after every visible step.
const DefaultDelay = 20 * time.Millisecond

// Display receives a frame after every visible step and once more when the
// routine completes.
type Display interface {
	Redraw(frame render.Frame)
}

type DisplayFunc func(frame render.Frame)

func (f DisplayFunc) Redraw(frame render.Frame) { f(frame) }

type NopDisplay struct{}

func (NopDisplay) Redraw(render.Frame) {}

// MultiDisplay forwards every frame to each display in order.
type MultiDisplay []Display

func (m MultiDisplay) Redraw(frame render.Frame) {
	for _, d := range m {
		d.Redraw(frame)
	}
}

// Pacer throttles the animation. Pause is a "no faster than" bound, not a
// deadline.
type Pacer interface {
	Pause()
}

type NopPacer struct{}

func (NopPacer) Pause() {}

// SleepPacer waits Delay, or less if Interrupt fires. An interrupted pause
// simply ends; the routine carries on with its next step.
type SleepPacer struct {
	Delay     time.Duration
	Interrupt <-chan struct{}
}

func (p SleepPacer) Pause() {
	if p.Delay <= 0 {
		return
	}
	t := time.NewTimer(p.Delay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-p.Interrupt:
	}
}
