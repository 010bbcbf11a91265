// Package sorting animates textbook comparison sorts over an [array.State].
//
// An [Engine] runs one of three routines:
//
//   - [Engine.Selection]: one visible swap per pass, silent scans
//   - [Engine.Bubble]: one visible step per adjacent swap
//   - [Engine.Insertion]: one visible step per shift, silent key placement
//
// After every visible mutation the engine yields: observers are notified,
// the [Display] receives a fresh [render.Frame], and the [Pacer] holds the
// routine for a short interval. When a routine terminates it marks the state
// complete and issues one final redraw.
//
// # Example
//
//	st := array.NewDefault(nil)
//	eng := sorting.New(st, sorting.WithDisplay(display))
//	stats, err := eng.Run(sorting.Bubble)
//
// # Thread Safety
//
// An Engine and its State belong to the goroutine calling Run. Displays
// that draw elsewhere must hand the frame over; frames are never mutated
// after Redraw returns.
package sorting
