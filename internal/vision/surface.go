package vision

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"math"
	"sort"
)

// ErrDecode reports a photograph that could not be decoded. It is the
// detector's only error class and is distinct from "no surface found",
// which is a nil Surface with a nil error.
var ErrDecode = errors.New("undecodable photo")

// Surface is a quadrilateral estimate of a planar drawing surface
// detected in a photograph.
//
// Corners are ordered by a (y, then x) sort, approximating top-left,
// top-right, bottom-right, bottom-left. The approximation holds for
// near-axis-aligned surfaces only; a rotated or perspective-skewed
// page can have its corners misassigned. Sorting by angle around the
// centroid would be robust, but would change behavior the rest of the
// system is tuned against.
type Surface struct {
	// Corners are the four accepted corner candidates in (y, x) order.
	Corners [4]Point `json:"corners"`

	// Width is the Euclidean distance between corners 0 and 1.
	Width float64 `json:"width"`

	// Height is the Euclidean distance between corners 0 and 3.
	Height float64 `json:"height"`
}

// DetectSurface looks for a planar rectangular surface (paper, canvas)
// in a photograph.
//
// A surface that cannot be found is not an error: the return is
// (nil, nil). The only error is a photo that cannot be decoded, wrapped
// around ErrDecode.
//
// # Pipeline
//
//  1. Decode and grayscale the photo
//  2. Convolve with the 3x3 high-pass kernel to get an edge field
//  3. Scan the field on a coarse grid (every p.GridStride pixels);
//     full-resolution scanning is wasted work at display resolution
//  4. Score each bright sample with the corner-candidate heuristic
//  5. Sort accepted candidates by (y, x) and take the first four
//  6. Derive width and height from adjacent corner distances
func DetectSurface(photo []byte, p Params) (*Surface, error) {
	img, _, err := image.Decode(bytes.NewReader(photo))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return DetectSurfaceField(Gradient(img), p), nil
}

// DetectSurfaceField runs the corner heuristic over a pre-computed
// edge-intensity field, so synthetic edge maps and externally supplied
// gradients feed the same code path as decoded photos.
//
// It returns nil when fewer than four corner candidates are found.
//
// Zero or negative strides are floored to 1 so a zero-value Params
// cannot stall the scan loops.
func DetectSurfaceField(f Field, p Params) *Surface {
	if p.GridStride < 1 {
		p.GridStride = 1
	}
	if p.NeighborStep < 1 {
		p.NeighborStep = 1
	}

	var candidates []Point
	for y := 0; y < f.Height; y += p.GridStride {
		for x := 0; x < f.Width; x += p.GridStride {
			if f.At(x, y) < p.EdgeThreshold {
				continue
			}
			if countBrightNeighbors(f, x, y, p) >= p.MinNeighbors {
				candidates = append(candidates, Point{X: x, Y: y})
			}
		}
	}

	if len(candidates) < 4 {
		return nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Y != candidates[j].Y {
			return candidates[i].Y < candidates[j].Y
		}
		return candidates[i].X < candidates[j].X
	})

	var corners [4]Point
	copy(corners[:], candidates[:4])

	return &Surface{
		Corners: corners,
		Width:   distance(corners[0], corners[1]),
		Height:  distance(corners[0], corners[3]),
	}
}

// countBrightNeighbors samples the neighborhood around (cx, cy) at
// p.NeighborStep intervals within p.NeighborRadius and counts samples
// above p.NeighborThreshold. A dense bright neighborhood is the proxy
// for "corner-like": edges meet there from two directions.
func countBrightNeighbors(f Field, cx, cy int, p Params) int {
	count := 0
	for dy := -p.NeighborRadius; dy <= p.NeighborRadius; dy += p.NeighborStep {
		for dx := -p.NeighborRadius; dx <= p.NeighborRadius; dx += p.NeighborStep {
			if dx == 0 && dy == 0 {
				continue
			}
			x := cx + dx
			y := cy + dy
			if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
				continue
			}
			if f.At(x, y) > p.NeighborThreshold {
				count++
			}
		}
	}
	return count
}

func distance(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
