package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/sortviz/internal/render"
)

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func drawFrame(f render.Frame) {
	for _, b := range f.Bars {
		if b.Height <= 0 {
			continue
		}
		rl.DrawRectangle(int32(b.X), int32(b.Y), int32(b.Width), int32(b.Height), toColor(b.Color))
	}
}
