package overlay

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/sewonm/Easel/internal/raster"
)

// inkLightness is the Lab lightness below which a reference pixel
// becomes ink. Lab tracks perceived brightness better than a plain RGB
// average, so colored line art survives the 1-bit reduction.
const inkLightness = 0.5

// RenderReference fits a reference image onto the canvas and thresholds
// it into ink.
//
// The image is scaled to fit the canvas preserving aspect ratio,
// centered, and each pixel's perceived lightness decides ink versus
// background. Fully transparent pixels stay background.
func RenderReference(c raster.Canvas, img image.Image) raster.Canvas {
	fitted := imaging.Fit(img, c.Width(), c.Height(), imaging.Lanczos)
	bounds := fitted.Bounds()
	offX := (c.Width() - bounds.Dx()) / 2
	offY := (c.Height() - bounds.Dy()) / 2

	var points []raster.Point
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			col, ok := colorful.MakeColor(fitted.At(bounds.Min.X+x, bounds.Min.Y+y))
			if !ok {
				continue
			}
			l, _, _ := col.Lab()
			if l < inkLightness {
				points = append(points, raster.Point{X: offX + x, Y: offY + y})
			}
		}
	}
	return c.Paint(points)
}

// RenderMissingReference draws the frame shown when no reference image
// has been uploaded yet.
func RenderMissingReference(c raster.Canvas) raster.Canvas {
	h := c.Height()
	out := c.Text("NO REFERENCE IMAGE", 20, h/2-10, 1)
	return out.Text("UPLOAD ONE TO BEGIN", 20, h/2+2, 1)
}
