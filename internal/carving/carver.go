package carving

import (
	"image"
	"image/color"
	"sync"

	"github.com/pkg/errors"

	"github.com/ironsheep/seam-carving-mcp/internal/imaging"
)

// SeamsCarver changes the width of one image by seam carving.
//
// All working grids are allocated once by New at the input size. During
// seam removal only the valid prefix of each row shrinks; nothing is
// reallocated.
type SeamsCarver struct {
	src       *image.NRGBA
	inWidth   int
	inHeight  int
	outWidth  int
	numSeams  int
	inputMask [][]bool

	iter      PixelIterator
	intensity IntensityFunc
	logger    Logger
	maskMode  MaskMode
	optErr    error

	state CarvingState

	// Compacted grids, valid for columns [0, state.Width) of each row.
	grey  [][]int
	mask  [][]bool
	index [][]int
	cost  [][]int64
	dir   [][]int

	// seams[k][y] is the original column removed from row y by seam k.
	seams [][]int
	// shown marks, in original coordinates, every pixel any seam used.
	shown [][]bool
	path  []int

	// columns[y][x] is the original column sampled by output pixel (y, x).
	columns [][]int

	once     sync.Once
	carveErr error
}

// New prepares a carver that resizes img to targetWidth, keeping its height.
//
// The mask may be nil. Otherwise it must be indexed [y][x] with the image's
// dimensions; set entries are weighted according to the MaskMode.
//
// # Errors
//
//   - ErrInvalidInput: the image is narrower or shorter than 2 pixels, the
//     mask dimensions do not match, or WithWeights got unusable weights.
//   - ErrUnsupportedResize: |targetWidth - width| is larger than width/2.
func New(img image.Image, targetWidth int, mask [][]bool, opts ...Option) (*SeamsCarver, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	if width < 2 || height < 2 {
		return nil, errors.Wrapf(ErrInvalidInput, "image is %dx%d, seam carving needs at least 2x2", width, height)
	}

	numSeams := targetWidth - width
	if numSeams < 0 {
		numSeams = -numSeams
	}
	if numSeams > width/2 {
		return nil, errors.Wrapf(ErrUnsupportedResize, "cannot change width %d to %d: at most %d seams", width, targetWidth, width/2)
	}

	if mask != nil {
		if err := checkMask(mask, width, height); err != nil {
			return nil, err
		}
	}

	c := &SeamsCarver{
		inWidth:   width,
		inHeight:  height,
		outWidth:  targetWidth,
		numSeams:  numSeams,
		inputMask: mask,
		iter:      imaging.ParallelIterator{},
		intensity: imaging.DefaultRGBWeights.Intensity,
		logger:    defaultLogger(),
		maskMode:  MaskAttract,
		state:     CarvingState{Width: width},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.optErr != nil {
		return nil, c.optErr
	}

	c.src = imaging.Duplicate(img)
	c.allocate()
	c.buildGrids()

	c.logger.Printf("prepared %dx%d image, %d seams to width %d", width, height, numSeams, targetWidth)
	return c, nil
}

func checkMask(mask [][]bool, width, height int) error {
	if len(mask) != height {
		return errors.Wrapf(ErrInvalidInput, "mask has %d rows, image has %d", len(mask), height)
	}
	for y, row := range mask {
		if len(row) != width {
			return errors.Wrapf(ErrInvalidInput, "mask row %d has %d columns, image has %d", y, len(row), width)
		}
	}
	return nil
}

func (c *SeamsCarver) allocate() {
	h, w := c.inHeight, c.inWidth

	c.grey = make([][]int, h)
	c.mask = make([][]bool, h)
	c.index = make([][]int, h)
	c.cost = make([][]int64, h)
	c.dir = make([][]int, h)
	c.shown = make([][]bool, h)
	for y := 0; y < h; y++ {
		c.grey[y] = make([]int, w)
		c.mask[y] = make([]bool, w)
		c.index[y] = make([]int, w)
		c.cost[y] = make([]int64, w)
		c.dir[y] = make([]int, w)
		c.shown[y] = make([]bool, w)
	}

	c.seams = make([][]int, c.numSeams)
	for k := range c.seams {
		c.seams[k] = make([]int, h)
	}
	c.path = make([]int, h)
}

// buildGrids fills the intensity grid, the working mask and the identity
// index map. Every pixel is independent.
func (c *SeamsCarver) buildGrids() {
	pix, stride := c.src.Pix, c.src.Stride
	c.iter.ForEach(c.inWidth, c.inHeight, func(y, x int) {
		i := y*stride + x*4
		c.grey[y][x] = c.intensity(color.NRGBA{R: pix[i], G: pix[i+1], B: pix[i+2], A: pix[i+3]})
		c.index[y][x] = x
		if c.inputMask != nil {
			c.mask[y][x] = c.inputMask[y][x]
		}
	})
}

// Width returns the source width.
func (c *SeamsCarver) Width() int { return c.inWidth }

// Height returns the source height, which is also the output height.
func (c *SeamsCarver) Height() int { return c.inHeight }

// OutputWidth returns the target width.
func (c *SeamsCarver) OutputWidth() int { return c.outWidth }

// NumSeams returns how many seams are removed or inserted.
func (c *SeamsCarver) NumSeams() int { return c.numSeams }

// carve runs the seam search once and derives the output column plan.
func (c *SeamsCarver) carve() error {
	c.once.Do(func() {
		c.carveErr = c.run()
	})
	return c.carveErr
}

func (c *SeamsCarver) run() error {
	for c.state.Seam < c.numSeams {
		c.computeCostMatrix()
		c.compact(c.extractSeam())
	}
	if c.numSeams > 0 {
		c.logger.Printf("found %d seams, working width %d", c.numSeams, c.state.Width)
	}

	switch {
	case c.outWidth < c.inWidth:
		c.columns = make([][]int, c.inHeight)
		for y := range c.columns {
			c.columns[y] = append([]int(nil), c.index[y][:c.outWidth]...)
		}
	case c.outWidth > c.inWidth:
		cols, err := c.planInsertion()
		if err != nil {
			return err
		}
		c.columns = cols
	default:
		c.columns = make([][]int, c.inHeight)
		for y := range c.columns {
			row := make([]int, c.inWidth)
			for x := range row {
				row[x] = x
			}
			c.columns[y] = row
		}
	}
	return nil
}

// Resize returns the image at the target width.
//
// Equal widths give a pixel-exact copy of the source. Shrinking samples
// the surviving original columns; growing samples the planned columns,
// duplicating each column a seam passed through.
func (c *SeamsCarver) Resize() (*image.NRGBA, error) {
	if err := c.carve(); err != nil {
		return nil, err
	}

	out := image.NewNRGBA(image.Rect(0, 0, c.outWidth, c.inHeight))
	c.iter.ForEach(c.outWidth, c.inHeight, func(y, x int) {
		si := y*c.src.Stride + c.columns[y][x]*4
		di := y*out.Stride + x*4
		copy(out.Pix[di:di+4], c.src.Pix[si:si+4])
	})

	c.logger.Printf("resized width %d to %d", c.inWidth, c.outWidth)
	return out, nil
}

// ShowSeams returns the source image with every pixel that belonged to a
// seam painted with highlight. The output has the source dimensions.
func (c *SeamsCarver) ShowSeams(highlight color.Color) (*image.NRGBA, error) {
	if err := c.carve(); err != nil {
		return nil, err
	}

	h := color.NRGBAModel.Convert(highlight).(color.NRGBA)
	out := imaging.Duplicate(c.src)
	c.iter.ForEach(c.inWidth, c.inHeight, func(y, x int) {
		if !c.shown[y][x] {
			return
		}
		i := y*out.Stride + x*4
		out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = h.R, h.G, h.B, h.A
	})
	return out, nil
}

// MaskAfterResize returns the input mask moved along with the pixels, so
// it lines up with the output of Resize. A nil input mask yields an all
// false mask of the output size. Equal widths return a copy of the input.
func (c *SeamsCarver) MaskAfterResize() ([][]bool, error) {
	if err := c.carve(); err != nil {
		return nil, err
	}

	out := make([][]bool, c.inHeight)
	for y := range out {
		out[y] = make([]bool, c.outWidth)
	}
	if c.inputMask == nil {
		return out, nil
	}

	c.iter.ForEach(c.outWidth, c.inHeight, func(y, x int) {
		out[y][x] = c.inputMask[y][c.columns[y][x]]
	})
	return out, nil
}

// Seams returns the removed seams in discovery order, each as one original
// column per row. The result is a copy.
func (c *SeamsCarver) Seams() ([][]int, error) {
	if err := c.carve(); err != nil {
		return nil, err
	}
	out := make([][]int, len(c.seams))
	for k, s := range c.seams {
		out[k] = append([]int(nil), s...)
	}
	return out, nil
}

// IndexMap returns, for every row, the original columns that survive all
// seam removals, in order. When growing this is the state after the
// discovery pass. The result is a copy.
func (c *SeamsCarver) IndexMap() ([][]int, error) {
	if err := c.carve(); err != nil {
		return nil, err
	}
	out := make([][]int, c.inHeight)
	for y := range out {
		out[y] = append([]int(nil), c.index[y][:c.state.Width]...)
	}
	return out, nil
}
