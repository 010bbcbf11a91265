// Package viz is the terminal controller built on Bubble Tea.
//
// It owns the [array.State] between runs and hands it to a sort goroutine
// for the duration of a run. Frames come back over a channel, so the UI only
// ever sees immutable [render.Frame] values.
//
// # Key Bindings
//
//	1 - Selection sort
//	2 - Bubble sort
//	3 - Insertion sort
//	0 - New random array
//	T - Cycle color themes
//	G - Toggle GIF recording of the next runs
//	? - Show help overlay
//	Q - Quit
//
// Sort and randomize keys are ignored while a run is in progress.
//
// [array.State]: github.com/san-kum/sortviz/internal/array.State
// [render.Frame]: github.com/san-kum/sortviz/internal/render.Frame
package viz
