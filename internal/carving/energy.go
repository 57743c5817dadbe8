package carving

import (
	"math"
)

// Mask penalties. They stay within int32 range; costs are summed in int64.
const (
	attractPenalty int64 = math.MinInt32
	repelPenalty   int64 = math.MaxInt32
)

func absDiff(a, b int) int64 {
	if a > b {
		return int64(a - b)
	}
	return int64(b - a)
}

// onBoundary reports whether removing (y, x) creates no new adjacency:
// the first row and both edges of the working width.
func onBoundary(y, x, w int) bool {
	return y == 0 || x == 0 || x == w-1
}

// costVertical is the edge created between the left and right neighbors
// when (y, x) is removed.
func (c *SeamsCarver) costVertical(y, x, w int) int64 {
	if onBoundary(y, x, w) {
		return 0
	}
	row := c.grey[y]
	return absDiff(row[x-1], row[x+1])
}

// costLeft adds the edge created with the pixel above when the seam
// arrives from the upper left.
func (c *SeamsCarver) costLeft(y, x, w int) int64 {
	if onBoundary(y, x, w) {
		return 0
	}
	row := c.grey[y]
	return absDiff(row[x-1], row[x+1]) + absDiff(c.grey[y-1][x], row[x-1])
}

// costRight adds the edge created with the pixel above when the seam
// arrives from the upper right.
func (c *SeamsCarver) costRight(y, x, w int) int64 {
	if onBoundary(y, x, w) {
		return 0
	}
	row := c.grey[y]
	return absDiff(row[x-1], row[x+1]) + absDiff(c.grey[y-1][x], row[x+1])
}

// energy is the base cost of pixel (y, x) at working width w: horizontal
// and vertical gradients plus the mask penalty.
func (c *SeamsCarver) energy(y, x, w int) int64 {
	row := c.grey[y]

	var e1 int64
	if x < w-1 {
		e1 = absDiff(row[x+1], row[x])
	} else {
		e1 = absDiff(row[x-1], row[x])
	}

	var e2 int64
	if y < c.inHeight-1 {
		e2 = absDiff(c.grey[y+1][x], row[x])
	} else {
		e2 = absDiff(c.grey[y-1][x], row[x])
	}

	return e1 + e2 + c.maskPenalty(y, x)
}

func (c *SeamsCarver) maskPenalty(y, x int) int64 {
	if !c.mask[y][x] {
		return 0
	}
	if c.maskMode == MaskRepel {
		return repelPenalty
	}
	return attractPenalty
}
