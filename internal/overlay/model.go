package overlay

import (
	"github.com/sewonm/Easel/internal/raster"
)

// Model is a 3D model reference selected for preview. Real meshes are
// rendered by the hosted service; on the 1-bit display only the
// wireframe placeholder is shown.
type Model struct {
	Name string `json:"name"`
}

// RenderModel draws the wireframe cube preview: a front face, a back
// face offset up and to the right, and the four connecting edges.
func RenderModel(c raster.Canvas, m Model) raster.Canvas {
	cx := c.Width() / 2
	cy := c.Height() / 2
	size := minInt(c.Width(), c.Height()) / 4
	offset := size / 2

	front := cubeFace(cx, cy, size)
	back := cubeFace(cx+offset, cy-offset, size)

	out := c.Polygon(front, 2)
	out = out.Polygon(back, 1)
	for i := range front {
		out = out.Line(front[i].X, front[i].Y, back[i].X, back[i].Y, 1)
	}

	if m.Name != "" {
		out = out.Text(m.Name, 4, c.Height()-10, 1)
	}
	return out
}

// RenderMissingModel draws the frame shown when no model is loaded.
func RenderMissingModel(c raster.Canvas) raster.Canvas {
	return c.Text("NO MODEL LOADED", 20, c.Height()/2-4, 1)
}

func cubeFace(cx, cy, size int) []raster.Point {
	half := size / 2
	return []raster.Point{
		{X: cx - half, Y: cy - half},
		{X: cx + half, Y: cy - half},
		{X: cx + half, Y: cy + half},
		{X: cx - half, Y: cy + half},
	}
}
