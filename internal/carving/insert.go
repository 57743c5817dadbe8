package carving

import (
	"slices"

	"github.com/pkg/errors"
)

// planInsertion replays the seam log onto per-row column lists to decide
// which original column every pixel of the enlarged image samples.
//
// Each row starts as 0..W-1. Seam k's column c is looked up at positions
// c, c+1, ..., c+k: before seam k at most k duplicates were inserted into
// the row, so the first occurrence of c is at most k places right of c.
// A duplicate of c goes right after it.
func (c *SeamsCarver) planInsertion() ([][]int, error) {
	rows := make([][]int, c.inHeight)
	errs := make([]error, c.inHeight)

	c.iter.ForEachLine(c.inHeight, func(y int) {
		row := make([]int, c.inWidth, c.outWidth)
		for x := range row {
			row[x] = x
		}

		for k, seam := range c.seams {
			col := seam[y]
			pos := -1
			for i := 0; i <= k && col+i < len(row); i++ {
				if row[col+i] == col {
					pos = col + i
					break
				}
			}
			if pos < 0 {
				errs[y] = errors.Wrapf(ErrInconsistentSeams, "seam %d, row %d: column %d not found", k, y, col)
				return
			}
			row = slices.Insert(row, pos+1, col)
		}
		rows[y] = row
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	c.logger.Printf("planned %d inserted seams", len(c.seams))
	return rows, nil
}
