package export

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/san-kum/sortviz/internal/render"
)

var captionColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// FrameToImage rasterizes a frame at canvas resolution.
func FrameToImage(frame render.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(frame.Background), image.Point{}, draw.Src)
	for _, b := range frame.Bars {
		r := image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height).Intersect(img.Bounds())
		if r.Empty() {
			continue
		}
		draw.Draw(img, r, image.NewUniform(b.Color), image.Point{}, draw.Src)
	}
	return img
}

// Caption writes text in the top-left corner.
func Caption(dst draw.Image, text string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(captionColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(6, 16),
	}
	d.DrawString(text)
}

// Scale resizes src into a w x h image with nearest-neighbour sampling so
// bar edges stay crisp.
func Scale(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// SavePNG writes frame to path, optionally captioned.
func SavePNG(path string, frame render.Frame, caption string) error {
	img := FrameToImage(frame)
	if caption != "" {
		Caption(img, caption)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
