package vision

import (
	"image"

	"github.com/anthonynsimon/bild/convolution"
	"github.com/anthonynsimon/bild/effect"
)

// highPass is the 3x3 edge kernel: +8 at the center, -1 everywhere
// else. Flat regions convolve to zero; intensity changes survive.
var highPass = []float64{
	-1, -1, -1,
	-1, 8, -1,
	-1, -1, -1,
}

// Gradient converts an image to grayscale and convolves it with the
// high-pass kernel, producing the edge-intensity field consumed by the
// contour tracer and the surface detector.
func Gradient(img image.Image) Field {
	gray := effect.Grayscale(img)

	kernel := convolution.NewKernel(3, 3)
	copy(kernel.Matrix, highPass)
	edges := convolution.Convolve(gray, kernel, &convolution.Options{KeepAlpha: true})

	bounds := edges.Bounds()
	f := NewField(bounds.Dx(), bounds.Dy())
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			// Grayscale input, so any one channel is the intensity.
			f.Pix[y*f.Width+x] = edges.Pix[edges.PixOffset(x+bounds.Min.X, y+bounds.Min.Y)]
		}
	}
	return f
}
