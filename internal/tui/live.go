package tui

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/sortviz/internal/render"
)

var blocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

var (
	styleDefault = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Bold(true).Foreground(tcell.ColorWhite)
	styleHelp    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBorder  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// LiveRenderer draws frames straight onto a terminal screen. It is a
// sorting.Display; key presses are forwarded on Interrupts so a pacer can
// cut the current pause short.
type LiveRenderer struct {
	screen    tcell.Screen
	label     string
	frameRate int
	lastFrame time.Time
	steps     int

	keys      chan struct{}
	interrupt chan struct{}
	done      chan struct{}
	once      sync.Once
}

// NewLiveRenderer wraps screen. frameRate bounds how often intermediate
// frames reach the terminal; zero draws every frame.
func NewLiveRenderer(screen tcell.Screen, label string, frameRate int) *LiveRenderer {
	return &LiveRenderer{
		screen:    screen,
		label:     label,
		frameRate: frameRate,
		keys:      make(chan struct{}, 1),
		interrupt: make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
}

func (r *LiveRenderer) Start() error {
	if err := r.screen.Init(); err != nil {
		return err
	}
	r.screen.HideCursor()
	r.screen.Clear()
	go r.poll()
	return nil
}

func (r *LiveRenderer) poll() {
	for {
		ev := r.screen.PollEvent()
		switch ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			select {
			case r.interrupt <- struct{}{}:
			default:
			}
			select {
			case r.keys <- struct{}{}:
			default:
			}
		}
	}
}

// Interrupts fires once per key press.
func (r *LiveRenderer) Interrupts() <-chan struct{} { return r.interrupt }

// Wait blocks until the next key press.
func (r *LiveRenderer) Wait() {
	select {
	case <-r.keys:
	case <-r.done:
	}
}

func (r *LiveRenderer) Stop() {
	r.once.Do(func() {
		close(r.done)
		r.screen.Fini()
	})
}

func (r *LiveRenderer) Redraw(frame render.Frame) {
	if !frame.Complete {
		r.steps++
		if r.frameRate > 0 && time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
			return
		}
	}
	r.lastFrame = time.Now()
	r.Draw(frame)
}

// Draw paints frame immediately without counting it as a step.
func (r *LiveRenderer) Draw(frame render.Frame) {
	r.screen.Clear()
	w, h := r.screen.Size()

	status := fmt.Sprintf(" %s  step %d", r.label, r.steps)
	help := " any key: skip pause"
	if frame.Complete {
		status += "  sorted"
		help = " any key: exit"
	}
	drawString(r.screen, 0, 0, status, styleTitle)
	drawRule(r.screen, 1, w)
	drawBars(r.screen, frame, 0, 2, w, h-4)
	drawRule(r.screen, h-2, w)
	drawString(r.screen, 0, h-1, help, styleHelp)

	r.screen.Show()
}

// drawBars fills the w x h cell box at (x0, y0) with one column per bar,
// using eighth blocks for the top of each bar.
func drawBars(s tcell.Screen, frame render.Frame, x0, y0, w, h int) {
	n := len(frame.Bars)
	if n == 0 || w <= 0 || h <= 0 || frame.Height <= 0 {
		return
	}
	for x := 0; x < w; x++ {
		bar := frame.Bars[x*n/w]
		style := styleDefault.Foreground(tcell.NewRGBColor(int32(bar.Color.R), int32(bar.Color.G), int32(bar.Color.B)))
		eighths := bar.Height * h * 8 / frame.Height
		for row := 0; row < h; row++ {
			fill := eighths - row*8
			if fill <= 0 {
				break
			}
			if fill > 8 {
				fill = 8
			}
			s.SetContent(x0+x, y0+h-1-row, blocks[fill], nil, style)
		}
	}
}

func drawRule(s tcell.Screen, y, w int) {
	for x := 0; x < w; x++ {
		s.SetContent(x, y, '─', nil, styleBorder)
	}
}

func drawString(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for i, r := range []rune(str) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
