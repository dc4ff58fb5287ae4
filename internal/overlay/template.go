package overlay

import (
	"github.com/sewonm/Easel/internal/raster"
	"github.com/sewonm/Easel/internal/vision"
)

// Template identifies a built-in trace template.
type Template string

// Built-in templates, in cycle order.
const (
	TemplateCircle   Template = "circle"
	TemplateSquare   Template = "square"
	TemplateTriangle Template = "triangle"
)

// Templates returns the built-in templates in cycle order.
func Templates() []Template {
	return []Template{TemplateCircle, TemplateSquare, TemplateTriangle}
}

// Next returns the template after t in cycle order.
func (t Template) Next() Template {
	all := Templates()
	for i, cur := range all {
		if cur == t {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// RenderTemplate draws the template centered on the canvas with a label
// underneath. When a surface estimate is available its aspect ratio
// nudges the template size, keeping wide detected pages from producing
// a template taller than the page.
//
// With no surface the caller usually wants RenderDetectionHint instead;
// RenderTemplate still draws, centered on the full canvas.
func RenderTemplate(c raster.Canvas, t Template, surface *vision.Surface) raster.Canvas {
	cx := c.Width() / 2
	cy := c.Height() / 2
	size := minInt(c.Width(), c.Height()) / 3

	if surface != nil && surface.Width > 0 && surface.Height > 0 {
		if surface.Height < surface.Width {
			scaled := int(float64(size) * surface.Height / surface.Width)
			if scaled > 4 {
				size = scaled
			}
		}
	}

	switch t {
	case TemplateSquare:
		out := c.Rect(cx-size/2, cy-size/2, size, size, false)
		return labelTemplate(out, "SQUARE", cx, cy+size/2)
	case TemplateTriangle:
		out := c.Polygon([]raster.Point{
			{X: cx, Y: cy - size/2},
			{X: cx - size/2, Y: cy + size/2},
			{X: cx + size/2, Y: cy + size/2},
		}, 2)
		return labelTemplate(out, "TRIANGLE", cx, cy+size/2)
	default:
		out := c.Circle(cx, cy, size/2, false)
		return labelTemplate(out, "CIRCLE", cx, cy+size/2)
	}
}

// RenderDetectionHint draws the "place paper here" frame shown while no
// surface has been detected yet.
func RenderDetectionHint(c raster.Canvas) raster.Canvas {
	w := c.Width()
	h := c.Height()
	out := c.Rect(w/4, h/4, w/2, h/2, false)
	return out.Text("PLACE PAPER HERE", w/4+6, h/4+6, 1)
}

// RenderContours paints traced contour points onto the canvas, scaling
// field coordinates down (or up) to canvas coordinates. Discovery order
// is irrelevant here; the points are stamped, not connected.
func RenderContours(c raster.Canvas, contours []vision.Contour, fieldW, fieldH int) raster.Canvas {
	if fieldW <= 0 || fieldH <= 0 {
		return c
	}
	sx := float64(c.Width()) / float64(fieldW)
	sy := float64(c.Height()) / float64(fieldH)

	var points []raster.Point
	for _, contour := range contours {
		for _, p := range contour {
			points = append(points, raster.Point{
				X: int(float64(p.X) * sx),
				Y: int(float64(p.Y) * sy),
			})
		}
	}
	return c.Paint(points)
}

func labelTemplate(c raster.Canvas, label string, cx, baseY int) raster.Canvas {
	// Center the label under the shape; the 5x7 font advances 6px per
	// character at scale 1.
	x := cx - len(label)*6/2
	return c.Text(label, x, baseY+4, 1)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
