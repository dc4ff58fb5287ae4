package vision

// Contour is the ordered sequence of foreground coordinates discovered
// by a single connected-region traversal, in discovery order. The order
// reflects the flood fill, not geometry; callers wanting a drawable
// outline paint the points rather than connecting them.
type Contour []Point

// TraceContours extracts connected bright regions from an intensity
// field.
//
// Pixels at or above p.EdgeThreshold are foreground. The field is
// scanned in row-major order; each unvisited foreground pixel seeds an
// explicit-stack flood fill over its 8-connected neighborhood, and the
// fill's visited coordinates become one contour. The visited set spans
// the whole call, so no two contours ever claim the same pixel.
// Contours shorter than p.MinContourLen are discarded as noise.
//
// An empty or all-background field yields an empty list, not an error.
// Complexity is O(W*H) time with O(W*H) visited state.
func TraceContours(f Field, p Params) []Contour {
	visited := make([]bool, len(f.Pix))
	contours := make([]Contour, 0)

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			idx := y*f.Width + x
			if visited[idx] || f.Pix[idx] < p.EdgeThreshold {
				continue
			}
			contour := floodFill(f, visited, x, y, p.EdgeThreshold)
			if len(contour) >= p.MinContourLen {
				contours = append(contours, contour)
			}
		}
	}

	return contours
}

// floodFill walks one 8-connected bright region with an explicit stack,
// marking every visited pixel. Stack-based rather than recursive so
// large regions cannot overflow the goroutine stack.
func floodFill(f Field, visited []bool, startX, startY int, threshold uint8) Contour {
	stack := []Point{{X: startX, Y: startY}}
	var contour Contour

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= f.Width || p.Y < 0 || p.Y >= f.Height {
			continue
		}
		idx := p.Y*f.Width + p.X
		if visited[idx] || f.Pix[idx] < threshold {
			continue
		}

		visited[idx] = true
		contour = append(contour, p)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}

	return contour
}
