package raster

import "testing"

func TestTextPaintsGlyph(t *testing.T) {
	c := New(40, 20).Text("A", 0, 0, 1)

	// 'A' row 0 is 01110: columns 1-3 set, columns 0 and 4 clear.
	for col, want := range []uint8{Background, Ink, Ink, Ink, Background} {
		if got := c.At(col, 0); got != want {
			t.Errorf("A row 0 col %d: got %d, want %d", col, got, want)
		}
	}
	// Row 3 is 11111.
	for col := 0; col < 5; col++ {
		if got := c.At(col, 3); got != Ink {
			t.Errorf("A row 3 col %d: got %d, want ink", col, got)
		}
	}
}

func TestTextLowercaseMapsToUppercase(t *testing.T) {
	upper := New(40, 20).Text("A", 0, 0, 1)
	lower := New(40, 20).Text("a", 0, 0, 1)

	us := upper.Samples()
	for i, s := range lower.Samples() {
		if s != us[i] {
			t.Fatalf("lowercase render differs from uppercase at index %d", i)
		}
	}
}

func TestTextUnknownGlyphRendersBlank(t *testing.T) {
	c := New(40, 20).Text("~", 0, 0, 1)
	for _, s := range c.Samples() {
		if s != Background {
			t.Fatal("unsupported character painted ink")
		}
	}
}

func TestTextAdvance(t *testing.T) {
	// Two characters at scale 1: the second glyph starts 6px in.
	c := New(40, 20).Text("II", 0, 0, 1)

	// 'I' row 1 is 00100: only the center column.
	if got := c.At(2, 1); got != Ink {
		t.Errorf("first glyph center missing")
	}
	if got := c.At(8, 1); got != Ink {
		t.Errorf("second glyph not advanced by (5+1)*scale")
	}
}

func TestTextScaleBlocks(t *testing.T) {
	c := New(60, 40).Text("I", 0, 0, 2)

	// At scale 2, the center column of 'I' row 1 covers a 2x2 block at
	// (4..5, 2..3).
	for _, p := range []Point{{4, 2}, {5, 2}, {4, 3}, {5, 3}} {
		if got := c.At(p.X, p.Y); got != Ink {
			t.Errorf("scaled block missing at (%d,%d)", p.X, p.Y)
		}
	}
}

func TestTextClipsOffCanvas(t *testing.T) {
	// Must not panic when the string runs past the right edge.
	c := New(20, 10).Text("WWWWWWWW", 0, 0, 1)
	if c.Width() != 20 {
		t.Fatal("canvas dimensions changed")
	}
}
