package gui

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/audio"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/sorting"
)

var (
	ColText    = rl.NewColor(200, 200, 200, 255)
	ColTextDim = rl.NewColor(110, 110, 110, 255)
	ColBusy    = rl.NewColor(255, 170, 0, 255)
)

var logger = logging.GetLogger("gui")

var errInvalidChoice = errors.New("invalid choice, try again")

// App is the window controller. The sort goroutine owns st while busy and
// publishes frames through an atomic pointer the draw loop reads.
type App struct {
	st       *array.State
	registry *experiment.Registry
	pattern  array.Pattern
	geom     render.Geometry
	Audio    *audio.Sonifier

	frame atomic.Pointer[render.Frame]
	busy  atomic.Bool

	mu        sync.Mutex
	algorithm sorting.Algorithm
	stats     *sorting.Stats
	err       error
}

type Options struct {
	Registry *experiment.Registry
	Pattern  array.Pattern
	Audio    *audio.Sonifier
}

func initWindow() {
	rl.InitWindow(render.CanvasWidth, render.CanvasHeight, "Sorting Visualizer")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func NewApp(st *array.State, opts Options) *App {
	if opts.Registry == nil {
		opts.Registry = experiment.NewRegistry()
	}
	a := &App{
		st:       st,
		registry: opts.Registry,
		pattern:  opts.Pattern,
		geom:     render.DefaultGeometry(),
		Audio:    opts.Audio,
	}
	a.publish(render.Of(st, a.geom))
	return a
}

// RunInteractive opens the window and blocks until it is closed.
func RunInteractive(st *array.State, opts Options) {
	initWindow()
	defer rl.CloseWindow()
	app := NewApp(st, opts)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if a.Update() {
			return
		}
		a.Draw()
	}
}

func (a *App) publish(f render.Frame) {
	a.frame.Store(&f)
}

// Update handles one frame of input and reports whether to quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) {
		return true
	}
	if a.busy.Load() {
		return false
	}

	switch {
	case rl.IsKeyPressed(rl.KeyZero), rl.IsKeyPressed(rl.KeyKp0):
		a.randomize()
	case rl.IsKeyPressed(rl.KeyOne), rl.IsKeyPressed(rl.KeyKp1):
		a.startKey("1")
	case rl.IsKeyPressed(rl.KeyTwo), rl.IsKeyPressed(rl.KeyKp2):
		a.startKey("2")
	case rl.IsKeyPressed(rl.KeyThree), rl.IsKeyPressed(rl.KeyKp3):
		a.startKey("3")
	case rl.GetKeyPressed() != 0:
		a.setResult("", nil, errInvalidChoice)
	}
	return false
}

func (a *App) randomize() {
	if err := a.st.Fill(a.pattern); err != nil {
		a.setResult("", nil, err)
		return
	}
	a.st.Load()
	a.setResult("", nil, nil)
	a.publish(render.Of(a.st, a.geom))
}

func (a *App) startKey(key string) {
	entry, ok := a.registry.ByKey(key)
	if !ok {
		return
	}
	a.st.Load()
	a.publish(render.Of(a.st, a.geom))
	a.setResult(entry.Name, nil, nil)
	a.busy.Store(true)

	eng := sorting.New(a.st, sorting.WithDisplay(sorting.DisplayFunc(a.publish)), sorting.WithGeometry(a.geom))
	if a.Audio != nil && a.Audio.Active {
		eng.AddObserver(a.Audio)
	}

	logger.Infof("starting %s sort", entry.Name)
	go func() {
		defer a.busy.Store(false)
		stats, err := entry.Run(eng)
		if err != nil {
			logger.Errorf("sort failed: %v", err)
			a.setResult(entry.Name, nil, err)
			return
		}
		logger.Infof("%s sort finished: %d steps", entry.Name, stats.Steps)
		a.setResult(entry.Name, &stats, nil)
	}()
}

func (a *App) setResult(alg sorting.Algorithm, stats *sorting.Stats, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.algorithm, a.stats, a.err = alg, stats, err
}

func (a *App) Draw() {
	frame := a.frame.Load()

	rl.BeginDrawing()
	rl.ClearBackground(toColor(frame.Background))
	drawFrame(*frame)
	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	a.mu.Lock()
	alg, stats, err := a.algorithm, a.stats, a.err
	a.mu.Unlock()

	rl.DrawText("[1] SELECTION  [2] BUBBLE  [3] INSERTION  [0] RANDOMIZE  [Q] QUIT", 10, 10, 14, ColTextDim)

	switch {
	case err != nil:
		rl.DrawText(err.Error(), 10, 30, 14, rl.Red)
	case a.busy.Load():
		rl.DrawText(fmt.Sprintf("%s ...", alg), 10, 30, 16, ColBusy)
	case stats != nil:
		rl.DrawText(fmt.Sprintf("%s  steps %d  comparisons %d  %s",
			alg, stats.Steps, stats.Comparisons, stats.Elapsed.Round(time.Millisecond)), 10, 30, 16, ColText)
	}

	if a.Audio != nil && a.Audio.Active {
		rl.DrawText(fmt.Sprintf("TONE %4.0f Hz", a.Audio.Pitch()), render.CanvasWidth-130, 10, 14, ColTextDim)
	}
}
