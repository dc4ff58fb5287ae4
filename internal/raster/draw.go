package raster

import "math"

// Stroke width used by outline shapes. Thinner outlines disappear at
// the device resolution.
const outlineWidth = 2

// Circle returns a copy of the canvas with a circle drawn on it.
//
// When filled is true every sample within radius of the center is
// painted; otherwise only the 2px outline band (radius-2 <= d <= radius)
// is painted. The implementation checks every canvas sample, which is
// O(W*H) per call and acceptable at display resolution.
func (c Canvas) Circle(cx, cy, radius int, filled bool) Canvas {
	out := c.clone()
	r := float64(radius)
	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			dx := float64(x - cx)
			dy := float64(y - cy)
			d := math.Sqrt(dx*dx + dy*dy)
			if filled {
				if d <= r {
					out.set(x, y, Ink)
				}
			} else if d >= r-outlineWidth && d <= r {
				out.set(x, y, Ink)
			}
		}
	}
	return out
}

// Rect returns a copy of the canvas with a rectangle drawn on it.
//
// (x, y) is the top-left corner, w and h the extent. The iteration
// bounds are clamped to the canvas so off-canvas rectangles clip rather
// than error. When filled is false only samples within 2px of one of
// the four edges are painted.
func (c Canvas) Rect(x, y, w, h int, filled bool) Canvas {
	out := c.clone()
	x1 := clamp(x, 0, out.width)
	y1 := clamp(y, 0, out.height)
	x2 := clamp(x+w, 0, out.width)
	y2 := clamp(y+h, 0, out.height)
	for py := y1; py < y2; py++ {
		for px := x1; px < x2; px++ {
			onEdge := px-x < outlineWidth || x+w-1-px < outlineWidth ||
				py-y < outlineWidth || y+h-1-py < outlineWidth
			if filled || onEdge {
				out.set(px, py, Ink)
			}
		}
	}
	return out
}

// Line returns a copy of the canvas with a line segment drawn on it.
//
// The segment is stepped with the integer Bresenham algorithm: the
// error accumulator starts at dx-dy, the larger delta drives the step,
// and a tie advances both axes. Each stepped pixel is stamped as a
// thickness x thickness square centered on it rather than a single dot,
// so lines stay visible on the display. Thickness below 1 is treated
// as 1.
func (c Canvas) Line(x1, y1, x2, y2, thickness int) Canvas {
	out := c.clone()
	if thickness < 1 {
		thickness = 1
	}
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		out.stamp(x1, y1, thickness)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
	return out
}

// Polygon returns a copy of the canvas with a closed outline connecting
// successive vertices. The last vertex connects back to the first.
// Fewer than two vertices is a no-op; there is no fill.
func (c Canvas) Polygon(vertices []Point, thickness int) Canvas {
	if len(vertices) < 2 {
		return c.clone()
	}
	out := c
	for i := range vertices {
		a := vertices[i]
		b := vertices[(i+1)%len(vertices)]
		out = out.Line(a.X, a.Y, b.X, b.Y, thickness)
	}
	return out
}

// stamp paints a size x size square centered on (x, y).
func (c *Canvas) stamp(x, y, size int) {
	off := size / 2
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			c.set(x+dx-off, y+dy-off, Ink)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
