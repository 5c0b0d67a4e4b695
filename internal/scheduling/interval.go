// Package scheduling contains the pure scheduling core: interval arithmetic,
// recurrence expansion and free-slot calculation. Nothing here performs I/O.
package scheduling

import (
	"iter"
	"time"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and [bStart, bEnd) intersect.
// Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Tile yields every instant t = start + k*step such that t+step <= end.
// The sequence is empty when step is not positive or exceeds the window.
func Tile(start, end time.Time, step time.Duration) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if step <= 0 {
			return
		}
		for t := start; !t.Add(step).After(end); t = t.Add(step) {
			if !yield(t) {
				return
			}
		}
	}
}
