package render

import (
	"fmt"
	"image/color"
)

// Palette holds the only three colors a frame uses.
type Palette struct {
	Background color.RGBA
	Sorting    color.RGBA
	Done       color.RGBA
}

var DefaultPalette = Palette{
	Background: color.RGBA{R: 0, G: 0, B: 0, A: 255},
	Sorting:    color.RGBA{R: 170, G: 183, B: 184, A: 255},
	Done:       color.RGBA{R: 100, G: 180, B: 100, A: 255},
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
