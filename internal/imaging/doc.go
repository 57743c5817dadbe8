// Package imaging holds the image plumbing around the seam carver: loading
// and caching files, weighted greyscale and hue operations, boolean masks,
// pixel-grid iteration and PNG encoding for MCP responses.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner. Grids
// such as masks are indexed [y][x].
//
// # Intensity
//
// RGBWeights turns a color into one 0-255 intensity with integer
// arithmetic. The seam carver uses the same function for its energy, so
// Greyscale shows exactly what the carver sees.
//
// # Iteration
//
// ParallelIterator and SequentialIterator visit every pixel or line of a
// grid exactly once. The parallel variant splits rows across goroutines
// with bild's parallel package; both return after every callback is done.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Images it returns are shared and
// must be treated as read-only; every operation here returns a new image.
package imaging
