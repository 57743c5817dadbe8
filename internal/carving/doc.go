// Package carving implements content-aware image width changes by seam
// carving with forward energy.
//
// A seam is a path of pixels, one per row, where consecutive pixels are at
// most one column apart. Shrinking removes the cheapest seams one at a
// time; growing first discovers the seams that shrinking would remove and
// then duplicates those columns instead.
//
// # Energy
//
// Each pixel's cost combines its horizontal and vertical intensity
// gradients with the cost of the new edges created when the pixel is
// removed and its neighbors become adjacent (forward energy). Intensities
// come from a weighted RGB average with truncating integer division, so
// results are reproducible bit for bit.
//
// # Masks
//
// An optional boolean mask marks pixels that receive a fixed penalty. In
// MaskAttract mode (the default) masked pixels get math.MinInt32 and seams
// are drawn through them until the masked area is exhausted. In MaskRepel
// mode they get math.MaxInt32 and seams avoid them unless no other path
// exists. Costs accumulate in int64 so neither penalty can overflow.
//
// # Coordinates
//
// The carver keeps two coordinate systems. Compacted coordinates index the
// logically shrinking working image; original coordinates index the input
// image. The index map translates one into the other and every removed
// seam is logged in original coordinates.
//
// # Concurrency
//
// The cost matrix is built row by row; columns of one row and compaction
// of different rows run through the injected PixelIterator. A SeamsCarver
// performs one resize: the seam search runs on the first call of Resize,
// ShowSeams or MaskAfterResize and its result is reused afterwards. Those
// methods are safe to call from multiple goroutines.
//
// # Example
//
//	sc, err := carving.New(img, img.Bounds().Dx()-40, nil)
//	if err != nil {
//	    return err
//	}
//	out, err := sc.Resize()
package carving
