package tui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/sorting"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(w, h)
	return s
}

func cell(s tcell.Screen, x, y int) (rune, tcell.Style) {
	r, _, style, _ := s.GetContent(x, y)
	return r, style
}

func TestDrawBars(t *testing.T) {
	s := newSimScreen(t, 4, 2)
	defer s.Fini()

	frame := render.Snapshot([]int{750, 375, 0, 94}, false, render.DefaultGeometry())
	drawBars(s, frame, 0, 0, 4, 2)

	tests := []struct {
		x, y int
		want rune
	}{
		{0, 0, '█'},
		{0, 1, '█'},
		{1, 1, '█'},
		{1, 0, ' '},
		{2, 1, ' '},
		{3, 1, '▂'},
	}
	for _, tt := range tests {
		if got, _ := cell(s, tt.x, tt.y); got != tt.want {
			t.Errorf("cell(%d,%d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}

	_, style := cell(s, 0, 1)
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(170, 183, 184) {
		t.Errorf("bar color = %v", fg)
	}
}

func TestRedrawThrottle(t *testing.T) {
	s := newSimScreen(t, 10, 8)
	r := NewLiveRenderer(s, "bubble", 1)
	defer r.Stop()

	g := render.DefaultGeometry()
	r.Redraw(render.Snapshot([]int{750}, false, g))
	r.Redraw(render.Snapshot([]int{0}, false, g))

	// second frame falls inside the throttle window
	if got, _ := cell(s, 0, 5); got != '█' {
		t.Errorf("cell = %q, want first frame still shown", got)
	}

	r.Redraw(render.Snapshot([]int{0}, true, g))
	if got, _ := cell(s, 0, 5); got != ' ' {
		t.Errorf("cell = %q, complete frame must always draw", got)
	}
	if r.steps != 2 {
		t.Errorf("steps = %d, want 2", r.steps)
	}
}

func TestKeyInterruptsPause(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	r := NewLiveRenderer(s, "insertion", 0)
	if err := r.Start(); err != nil {
		t.Fatal(err)
	}
	defer r.Stop()

	pacer := sorting.SleepPacer{Delay: time.Hour, Interrupt: r.Interrupts()}
	done := make(chan struct{})
	go func() {
		pacer.Pause()
		close(done)
	}()

	s.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("key press did not end the pause")
	}
}
