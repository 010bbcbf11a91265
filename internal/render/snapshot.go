// Package render turns array state into drawable frames.
//
// A [Frame] is a plain list of bar rectangles in canvas pixel coordinates
// (origin top-left, y grows down). Display adapters (terminal, window, GIF,
// SVG) consume frames and never look at the array itself.
package render

import (
	"image/color"

	"github.com/san-kum/sortviz/internal/array"
)

const (
	BarWidth     = 7
	CanvasWidth  = 910
	CanvasHeight = 750
)

// Geometry fixes the bar width and the canvas the bars are anchored to.
type Geometry struct {
	BarWidth     int
	CanvasWidth  int
	CanvasHeight int
}

func DefaultGeometry() Geometry {
	return Geometry{BarWidth: BarWidth, CanvasWidth: CanvasWidth, CanvasHeight: CanvasHeight}
}

// Bar is one rectangle of the chart.
type Bar struct {
	X, Y          int
	Width, Height int
	Color         color.RGBA
}

// Frame is everything a display needs to draw one redraw.
type Frame struct {
	Bars       []Bar
	Complete   bool
	Background color.RGBA
	Width      int
	Height     int
}

// Snapshot maps the working values and the completion flag to a frame.
// Bar i sits at x = i*BarWidth and rises value pixels from the canvas bottom.
func Snapshot(values []int, complete bool, g Geometry) Frame {
	fill := DefaultPalette.Sorting
	if complete {
		fill = DefaultPalette.Done
	}
	bars := make([]Bar, len(values))
	for i, v := range values {
		bars[i] = Bar{
			X:      i * g.BarWidth,
			Y:      g.CanvasHeight - v,
			Width:  g.BarWidth,
			Height: v,
			Color:  fill,
		}
	}
	return Frame{
		Bars:       bars,
		Complete:   complete,
		Background: DefaultPalette.Background,
		Width:      g.CanvasWidth,
		Height:     g.CanvasHeight,
	}
}

// Of snapshots st directly.
func Of(st *array.State, g Geometry) Frame {
	return Snapshot(st.Values(), st.Complete(), g)
}

// Heights returns the bar heights in index order.
func (f Frame) Heights() []int {
	h := make([]int, len(f.Bars))
	for i, b := range f.Bars {
		h[i] = b.Height
	}
	return h
}
