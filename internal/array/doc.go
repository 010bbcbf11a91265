// Package array holds the data the visualizer animates.
//
// A [State] owns two arrays of equal length:
//
//   - the baseline, regenerated by [State.Randomize] or [State.Fill]
//   - the working array, copied from the baseline by [State.Load] and
//     mutated in place by a running sort
//
// plus the completion flag that tells a renderer whether the working array
// reflects a finished sort.
//
// # Thread Safety
//
// State is NOT thread-safe. Exactly one goroutine, the one running the sort,
// may touch a State at a time. Renderers receive copies via [State.Values].
package array
