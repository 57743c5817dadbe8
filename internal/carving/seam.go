package carving

// extractSeam backtracks the cheapest seam through the finished cost
// matrix. It logs the seam in original coordinates, marks it for
// ShowSeams and returns it in compacted coordinates.
func (c *SeamsCarver) extractSeam() []int {
	w := c.state.Width
	last := c.cost[c.inHeight-1]

	x := 0
	for i := 1; i < w; i++ {
		if last[i] < last[x] {
			x = i
		}
	}

	entry := c.seams[c.state.Seam]
	for y := c.inHeight - 1; y >= 0; y-- {
		orig := c.index[y][x]
		c.path[y] = x
		entry[y] = orig
		c.shown[y][orig] = true
		x = c.dir[y][x]
	}
	return c.path
}

// compact deletes the seam from the working grids by shifting everything
// right of it one column left. Rows are independent; the working width
// only shrinks once every row is done.
func (c *SeamsCarver) compact(path []int) {
	w := c.state.Width
	c.iter.ForEachLine(c.inHeight, func(y int) {
		s := path[y]
		copy(c.grey[y][s:w-1], c.grey[y][s+1:w])
		copy(c.mask[y][s:w-1], c.mask[y][s+1:w])
		copy(c.index[y][s:w-1], c.index[y][s+1:w])
	})
	c.state.advance()
}
