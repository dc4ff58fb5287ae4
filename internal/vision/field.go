package vision

// Point represents a 2D coordinate in field pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Field is a byte-per-pixel intensity grid: typically the output of the
// gradient stage, or an edge map supplied by the hosted vision service.
type Field struct {
	Width  int
	Height int
	Pix    []uint8 // row-major, len == Width*Height
}

// NewField returns a zero-filled field of the given dimensions.
func NewField(width, height int) Field {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Field{Width: width, Height: height, Pix: make([]uint8, width*height)}
}

// At returns the intensity at (x, y). Out-of-range coordinates read as
// zero.
func (f Field) At(x, y int) uint8 {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return 0
	}
	return f.Pix[y*f.Width+x]
}

// Set stores an intensity, silently skipping out-of-range coordinates.
func (f Field) Set(x, y int, v uint8) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	f.Pix[y*f.Width+x] = v
}

// Params holds the tuning knobs shared by the contour tracer and the
// surface detector. These are policy values, not physical constants;
// load overrides from configuration when the defaults misbehave on a
// new device or lighting setup.
type Params struct {
	// EdgeThreshold is the intensity at which a field sample counts as
	// foreground, for both tracing and corner scanning.
	EdgeThreshold uint8

	// NeighborThreshold is the intensity a neighborhood sample must
	// exceed to count toward a corner candidate.
	NeighborThreshold uint8

	// GridStride is the coarse scan step across the edge field. Full
	// resolution scanning buys nothing at display resolution.
	GridStride int

	// NeighborRadius is the half-extent of the neighborhood sampled
	// around each candidate corner.
	NeighborRadius int

	// NeighborStep is the sampling step inside that neighborhood.
	NeighborStep int

	// MinNeighbors is how many bright neighborhood samples accept a
	// point as a corner candidate.
	MinNeighbors int

	// MinContourLen is the shortest contour the tracer keeps; shorter
	// ones are discarded as noise.
	MinContourLen int
}

// DefaultParams returns the tuning used on the reference device setup.
func DefaultParams() Params {
	return Params{
		EdgeThreshold:     128,
		NeighborThreshold: 100,
		GridStride:        50,
		NeighborRadius:    10,
		NeighborStep:      5,
		MinNeighbors:      3,
		MinContourLen:     10,
	}
}
