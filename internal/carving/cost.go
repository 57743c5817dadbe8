package carving

// parallelColumns is the working width from which the columns of a cost
// row are split across the iterator.
const parallelColumns = 512

// computeCostMatrix fills cost and dir for the current working width.
//
// Row y needs the finished row y-1, so rows run strictly in order. Cells of
// one row only read the previous row and the intensity grid.
func (c *SeamsCarver) computeCostMatrix() {
	w := c.state.Width

	for x := 0; x < w; x++ {
		c.cost[0][x] = c.energy(0, x, w)
		c.dir[0][x] = x
	}

	for y := 1; y < c.inHeight; y++ {
		if w >= parallelColumns {
			c.iter.ForEachLine(w, func(x int) {
				c.relax(y, x, w)
			})
			continue
		}
		for x := 0; x < w; x++ {
			c.relax(y, x, w)
		}
	}
}

// relax picks the cheapest predecessor of (y, x). Ties go to up, then
// right, then left.
func (c *SeamsCarver) relax(y, x, w int) {
	prev := c.cost[y-1]

	best, from := prev[x]+c.costVertical(y, x, w), x

	if x < w-1 {
		if right := prev[x+1] + c.costRight(y, x, w); right < best {
			best, from = right, x+1
		}
	}
	if x > 0 {
		if left := prev[x-1] + c.costLeft(y, x, w); left < best {
			best, from = left, x-1
		}
	}

	c.cost[y][x] = c.energy(y, x, w) + best
	c.dir[y][x] = from
}
