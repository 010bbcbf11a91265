package export

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"

	"golang.org/x/image/draw"

	"github.com/san-kum/sortviz/internal/render"
)

// gifPalette holds the frame colors plus the caption color.
var gifPalette = color.Palette{
	render.DefaultPalette.Background,
	render.DefaultPalette.Sorting,
	render.DefaultPalette.Done,
	captionColor,
}

// Recorder is a display that keeps every Stride-th frame, and always the
// final one, for an animated GIF.
type Recorder struct {
	Label  string
	Scale  float64
	Stride int

	seen   int
	frames []*image.Paletted
	delays []int
}

func NewRecorder(label string, scale float64, stride int) *Recorder {
	if scale <= 0 || scale > 1 {
		scale = 0.5
	}
	if stride < 1 {
		stride = 1
	}
	return &Recorder{Label: label, Scale: scale, Stride: stride}
}

func (r *Recorder) Redraw(frame render.Frame) {
	r.seen++
	if !frame.Complete && (r.seen-1)%r.Stride != 0 {
		return
	}
	r.frames = append(r.frames, r.rasterize(frame))
	delay := 2 * r.Stride
	if frame.Complete {
		delay = 200
	}
	r.delays = append(r.delays, delay)
}

func (r *Recorder) rasterize(frame render.Frame) *image.Paletted {
	full := FrameToImage(frame)
	w := int(float64(frame.Width) * r.Scale)
	h := int(float64(frame.Height) * r.Scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	pal := image.NewPaletted(image.Rect(0, 0, w, h), gifPalette)
	draw.NearestNeighbor.Scale(pal, pal.Bounds(), full, full.Bounds(), draw.Src, nil)
	if r.Label != "" {
		Caption(pal, fmt.Sprintf("%s  frame %d", r.Label, r.seen))
	}
	return pal
}

func (r *Recorder) Frames() int { return len(r.frames) }

// Save encodes the recorded frames to path.
func (r *Recorder) Save(path string) error {
	if len(r.frames) == 0 {
		return fmt.Errorf("no frames recorded")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &gif.GIF{Image: r.frames, Delay: r.delays})
}
