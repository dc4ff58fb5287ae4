package raster

import "testing"

func TestLinePaintsEndpointsAndMidpoint(t *testing.T) {
	c := New(20, 20).Line(0, 0, 10, 0, 2)

	for _, p := range []Point{{0, 0}, {5, 0}, {10, 0}} {
		if got := c.At(p.X, p.Y); got != Ink {
			t.Errorf("At(%d,%d): got %d, want ink", p.X, p.Y, got)
		}
	}
	if got := c.At(5, 10); got != Background {
		t.Errorf("off-line sample painted: At(5,10) = %d", got)
	}
}

func TestLineDiagonal(t *testing.T) {
	c := New(20, 20).Line(0, 0, 10, 10, 1)

	if got := c.At(0, 0); got != Ink {
		t.Errorf("start not painted")
	}
	if got := c.At(10, 10); got != Ink {
		t.Errorf("end not painted")
	}
	if got := c.At(5, 5); got != Ink {
		t.Errorf("diagonal midpoint not painted")
	}
}

func TestLineClipsOffCanvas(t *testing.T) {
	// Must not panic; only the in-bounds stretch is painted.
	c := New(10, 10).Line(-5, 5, 15, 5, 1)
	if got := c.At(5, 5); got != Ink {
		t.Errorf("in-bounds stretch not painted")
	}
}

func TestCircleOutlineVsFill(t *testing.T) {
	outline := New(100, 100).Circle(50, 50, 20, false)
	if got := outline.At(50, 50); got != Background {
		t.Errorf("outline circle painted its center: got %d", got)
	}
	if got := outline.At(50, 30); got != Ink {
		t.Errorf("outline circle missing its rim: got %d", got)
	}

	filled := New(100, 100).Circle(50, 50, 20, true)
	if got := filled.At(50, 50); got != Ink {
		t.Errorf("filled circle missing its center: got %d", got)
	}
	if got := filled.At(50, 25); got != Background {
		t.Errorf("filled circle painted outside its radius: got %d", got)
	}
}

func TestRectFilled(t *testing.T) {
	c := New(50, 50).Rect(10, 10, 20, 20, true)

	if got := c.At(20, 20); got != Ink {
		t.Errorf("interior not painted")
	}
	if got := c.At(5, 5); got != Background {
		t.Errorf("exterior painted")
	}
}

func TestRectOutlineLeavesInterior(t *testing.T) {
	c := New(50, 50).Rect(10, 10, 20, 20, false)

	if got := c.At(10, 10); got != Ink {
		t.Errorf("edge not painted")
	}
	if got := c.At(20, 20); got != Background {
		t.Errorf("interior painted on outline rect")
	}
}

func TestRectClipsNegativeOrigin(t *testing.T) {
	// Must not panic and must paint only the in-bounds portion.
	c := New(50, 50).Rect(-10, -10, 30, 30, true)

	if got := c.At(0, 0); got != Ink {
		t.Errorf("in-bounds portion not painted")
	}
	if got := c.At(25, 25); got != Background {
		t.Errorf("painted beyond the clipped rectangle")
	}
}

func TestPolygonClosesLoop(t *testing.T) {
	c := New(50, 50).Polygon([]Point{{10, 10}, {40, 10}, {25, 40}}, 1)

	// All three vertices painted.
	for _, p := range []Point{{10, 10}, {40, 10}, {25, 40}} {
		if got := c.At(p.X, p.Y); got != Ink {
			t.Errorf("vertex (%d,%d) not painted", p.X, p.Y)
		}
	}
	if got := c.At(25, 10); got != Ink {
		t.Errorf("top edge not painted")
	}
	// No fill.
	if got := c.At(25, 20); got != Background {
		t.Errorf("polygon interior painted")
	}
}

func TestPolygonTooFewVerticesIsNoop(t *testing.T) {
	c := New(10, 10).Polygon([]Point{{5, 5}}, 1)
	for _, s := range c.Samples() {
		if s != Background {
			t.Fatal("single-vertex polygon painted something")
		}
	}
}
