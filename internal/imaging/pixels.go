package imaging

import (
	"github.com/anthonynsimon/bild/parallel"
)

// ParallelIterator visits pixel grids by splitting rows across goroutines.
//
// Work is partitioned with bild's parallel.Line, which sizes the number of
// workers to GOMAXPROCS. Callbacks must only write to locations owned by the
// (y, x) pair or line index they receive; no ordering between callbacks is
// guaranteed.
type ParallelIterator struct{}

// ForEach invokes fn exactly once for every (y, x) with 0 <= y < height and
// 0 <= x < width. It returns once every callback has completed.
func (ParallelIterator) ForEach(width, height int, fn func(y, x int)) {
	if width <= 0 || height <= 0 {
		return
	}
	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				fn(y, x)
			}
		}
	})
}

// ForEachLine invokes fn exactly once for every i in [0, n). Lines are
// independent units of work (image rows, or columns of a single row).
func (ParallelIterator) ForEachLine(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	parallel.Line(n, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}

// SequentialIterator visits pixel grids in row-major order on the calling
// goroutine. It is useful for debugging and for reproducing traces.
type SequentialIterator struct{}

// ForEach invokes fn for every (y, x) in row-major order.
func (SequentialIterator) ForEach(width, height int, fn func(y, x int)) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fn(y, x)
		}
	}
}

// ForEachLine invokes fn for every i in [0, n) in increasing order.
func (SequentialIterator) ForEachLine(n int, fn func(i int)) {
	for i := 0; i < n; i++ {
		fn(i)
	}
}
