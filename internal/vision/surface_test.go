package vision

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"
)

// cornerBlob paints a dense bright square centered on (cx, cy), large
// enough that the neighborhood sampler sees it from the center.
func cornerBlob(f Field, cx, cy int) {
	for dy := -12; dy <= 12; dy++ {
		for dx := -12; dx <= 12; dx++ {
			f.Set(cx+dx, cy+dy, 255)
		}
	}
}

// encodePNG renders a uniform test image as PNG bytes.
func encodePNG(t *testing.T, width, height int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestDetectSurfaceFieldFlat(t *testing.T) {
	f := NewField(300, 200)
	if s := DetectSurfaceField(f, DefaultParams()); s != nil {
		t.Errorf("flat field produced a surface: %+v", s)
	}
}

func TestDetectSurfaceFieldTooFewCorners(t *testing.T) {
	f := NewField(300, 200)
	cornerBlob(f, 50, 50)
	cornerBlob(f, 150, 50)
	cornerBlob(f, 50, 100)

	if s := DetectSurfaceField(f, DefaultParams()); s != nil {
		t.Errorf("three corners produced a surface: %+v", s)
	}
}

func TestDetectSurfaceFieldOrdering(t *testing.T) {
	// Four well-separated blobs on stride-aligned grid points.
	f := NewField(300, 200)
	cornerBlob(f, 50, 50)
	cornerBlob(f, 150, 50)
	cornerBlob(f, 50, 100)
	cornerBlob(f, 150, 100)

	s := DetectSurfaceField(f, DefaultParams())
	if s == nil {
		t.Fatal("no surface detected")
	}

	first := s.Corners[0]
	if first.X != 50 || first.Y != 50 {
		t.Errorf("first corner: got (%d,%d), want (50,50)", first.X, first.Y)
	}
	// (y, x) ordering: every later corner sorts after the first.
	for i := 1; i < 4; i++ {
		c := s.Corners[i]
		if c.Y < first.Y || (c.Y == first.Y && c.X < first.X) {
			t.Errorf("corner %d (%d,%d) sorts before corner 0", i, c.X, c.Y)
		}
	}

	if math.Abs(s.Width-100) > 1e-9 {
		t.Errorf("width: got %f, want 100", s.Width)
	}
	// corners[3] is (150,100) under the (y, x) sort, so height is the
	// diagonal distance from (50,50) - the documented heuristic, not a
	// geometric page height.
	wantHeight := math.Sqrt(100*100 + 50*50)
	if math.Abs(s.Height-wantHeight) > 1e-9 {
		t.Errorf("height: got %f, want %f", s.Height, wantHeight)
	}
}

func TestDetectSurfaceFieldFloorsStrides(t *testing.T) {
	// Zero strides must not stall the scan; the detector floors them to
	// 1 instead of relying on config sanitization.
	f := NewField(30, 30)
	for i := range f.Pix {
		f.Pix[i] = 255
	}
	p := Params{
		EdgeThreshold:     128,
		NeighborThreshold: 100,
		NeighborRadius:    2,
		MinNeighbors:      3,
	}

	s := DetectSurfaceField(f, p)
	if s == nil {
		t.Fatal("all-bright field produced no surface")
	}
	if first := s.Corners[0]; first.X != 0 || first.Y != 0 {
		t.Errorf("first corner: got (%d,%d), want (0,0)", first.X, first.Y)
	}
}

func TestDetectSurfaceFieldIgnoresSparseNeighborhoods(t *testing.T) {
	// A single bright sample with no bright neighborhood is not a
	// corner candidate.
	f := NewField(300, 200)
	f.Set(50, 50, 255)
	f.Set(100, 50, 255)
	f.Set(50, 100, 255)
	f.Set(100, 100, 255)

	if s := DetectSurfaceField(f, DefaultParams()); s != nil {
		t.Errorf("sparse bright pixels produced a surface: %+v", s)
	}
}

func TestDetectSurfaceUniformPhoto(t *testing.T) {
	photo := encodePNG(t, 300, 200, color.Gray{Y: 180})

	s, err := DetectSurface(photo, DefaultParams())
	if err != nil {
		t.Fatalf("DetectSurface failed: %v", err)
	}
	if s != nil {
		t.Errorf("uniform photo produced a surface: %+v", s)
	}
}

func TestDetectSurfaceUndecodablePhoto(t *testing.T) {
	_, err := DetectSurface([]byte("not an image"), DefaultParams())
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("error not wrapped around ErrDecode: %v", err)
	}
}
