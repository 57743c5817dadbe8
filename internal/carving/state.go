package carving

// CarvingState tracks progress through the seam removal loop.
//
// Only compaction changes it: each removed seam shrinks the working width
// by one and moves on to the next seam.
type CarvingState struct {
	// Width is the current working width. Columns at or past it in the
	// compacted grids are stale.
	Width int

	// Seam is the number of seams removed so far, and the index of the
	// next log entry.
	Seam int
}

func (s *CarvingState) advance() {
	s.Width--
	s.Seam++
}
