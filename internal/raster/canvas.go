package raster

// Device display resolution. The display class Easel targets is a wide,
// short monochrome strip; other dimensions can be passed to New.
const (
	DeviceWidth  = 526
	DeviceHeight = 100
)

// Background and ink sample values. The display renders ink as lit
// pixels; everything else stays dark.
const (
	Background uint8 = 255
	Ink        uint8 = 0
)

// Point represents a 2D coordinate in canvas pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Canvas is a fixed-size grid of 8-bit intensity samples.
//
// The zero value is not usable; construct canvases with New or Blank.
// All drawing operations are defined on Canvas values and return fresh
// copies, so a Canvas held by one pipeline stage is never aliased by
// another.
type Canvas struct {
	width  int
	height int
	pix    []uint8 // row-major, len == width*height
}

// New returns a background-filled canvas of the given dimensions.
// Non-positive dimensions are treated as zero.
func New(width, height int) Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	pix := make([]uint8, width*height)
	for i := range pix {
		pix[i] = Background
	}
	return Canvas{width: width, height: height, pix: pix}
}

// Blank returns a background-filled canvas at the device resolution.
func Blank() Canvas {
	return New(DeviceWidth, DeviceHeight)
}

// Width returns the canvas width in pixels.
func (c Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c Canvas) Height() int { return c.height }

// At returns the sample at (x, y). Out-of-range coordinates read as
// background.
func (c Canvas) At(x, y int) uint8 {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Background
	}
	return c.pix[y*c.width+x]
}

// Samples returns a copy of the underlying samples in row-major order.
func (c Canvas) Samples() []uint8 {
	out := make([]uint8, len(c.pix))
	copy(out, c.pix)
	return out
}

// Paint returns a copy of the canvas with every given point set to ink.
// Out-of-range points are skipped. This is the bulk primitive used to
// transfer traced contours and thresholded reference images onto the
// canvas in a single copy.
func (c Canvas) Paint(points []Point) Canvas {
	out := c.clone()
	for _, p := range points {
		out.set(p.X, p.Y, Ink)
	}
	return out
}

// clone returns a deep copy sharing no storage with the receiver.
func (c Canvas) clone() Canvas {
	pix := make([]uint8, len(c.pix))
	copy(pix, c.pix)
	return Canvas{width: c.width, height: c.height, pix: pix}
}

// set paints one sample, silently skipping out-of-range coordinates.
func (c *Canvas) set(x, y int, v uint8) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pix[y*c.width+x] = v
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
