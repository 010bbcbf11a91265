package render

import (
	"image/color"
	"testing"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotGeometry(t *testing.T) {
	g := DefaultGeometry()
	f := Snapshot([]int{10, 0, 749}, false, g)

	require.Len(t, f.Bars, 3)
	assert.Equal(t, CanvasWidth, f.Width)
	assert.Equal(t, CanvasHeight, f.Height)

	assert.Equal(t, Bar{X: 0, Y: 740, Width: 7, Height: 10, Color: DefaultPalette.Sorting}, f.Bars[0])
	assert.Equal(t, Bar{X: 7, Y: 750, Width: 7, Height: 0, Color: DefaultPalette.Sorting}, f.Bars[1])
	assert.Equal(t, Bar{X: 14, Y: 1, Width: 7, Height: 749, Color: DefaultPalette.Sorting}, f.Bars[2])
}

func TestSnapshotColors(t *testing.T) {
	g := DefaultGeometry()

	sorting := Snapshot([]int{1, 2}, false, g)
	for _, b := range sorting.Bars {
		assert.Equal(t, DefaultPalette.Sorting, b.Color)
	}
	assert.False(t, sorting.Complete)

	done := Snapshot([]int{1, 2}, true, g)
	for _, b := range done.Bars {
		assert.Equal(t, DefaultPalette.Done, b.Color)
	}
	assert.True(t, done.Complete)
	assert.Equal(t, DefaultPalette.Background, done.Background)
}

func TestSnapshotEmpty(t *testing.T) {
	f := Snapshot(nil, true, DefaultGeometry())
	assert.Empty(t, f.Bars)
	assert.True(t, f.Complete)
}

func TestSnapshotIsPure(t *testing.T) {
	values := []int{3, 1, 2}
	g := DefaultGeometry()

	a := Snapshot(values, false, g)
	b := Snapshot(values, false, g)
	assert.Equal(t, a, b)
	assert.Equal(t, []int{3, 1, 2}, values, "input must not be mutated")

	a.Bars[0].Height = 99
	assert.Equal(t, 3, b.Bars[0].Height, "frames must not share bar storage")
}

func TestOf(t *testing.T) {
	st := array.FromValues([]int{5, 3, 8, 1}, 750)
	f := Of(st, DefaultGeometry())
	assert.Equal(t, []int{5, 3, 8, 1}, f.Heights())
	assert.False(t, f.Complete)

	st.MarkComplete()
	assert.True(t, Of(st, DefaultGeometry()).Complete)
}

func TestFullCanvasWidth(t *testing.T) {
	st := array.NewDefault(nil)
	f := Of(st, DefaultGeometry())
	last := f.Bars[len(f.Bars)-1]
	assert.Equal(t, CanvasWidth, last.X+last.Width, "130 bars of width 7 fill the 910px canvas")
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#aab7b8", Hex(DefaultPalette.Sorting))
	assert.Equal(t, "#64b464", Hex(DefaultPalette.Done))
	assert.Equal(t, "#000000", Hex(DefaultPalette.Background))
	assert.Equal(t, "#0102ff", Hex(color.RGBA{R: 1, G: 2, B: 255, A: 255}))
}
