// Package session wires button events and captured photos to the
// rendering pipeline and pushes finished frames to the device display.
//
// A session owns the mode state machine (trace projection, reference
// image, 3D model) and is the display channel's single writer; the
// pipeline stages it calls are pure, so two sessions for two users
// never contend on shared memory.
package session

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log/slog"
	"sync"

	"github.com/sewonm/Easel/internal/bitmap"
	"github.com/sewonm/Easel/internal/catalog"
	"github.com/sewonm/Easel/internal/config"
	"github.com/sewonm/Easel/internal/overlay"
	"github.com/sewonm/Easel/internal/raster"
	"github.com/sewonm/Easel/internal/vision"
)

// Mode selects what the display shows.
type Mode int

// Modes, in button-cycle order.
const (
	ModeTrace Mode = iota
	ModeReference
	ModeModel
)

// String returns the mode's display name.
func (m Mode) String() string {
	switch m {
	case ModeTrace:
		return "trace"
	case ModeReference:
		return "reference"
	case ModeModel:
		return "model3d"
	default:
		return "unknown"
	}
}

// Display is the device's text channel. The session is its single
// writer; implementations only need to deliver the hex frame.
type Display interface {
	Show(ctx context.Context, hexFrame string) error
}

// Session drives one device's display. All methods are safe for
// concurrent use; state changes and frame pushes serialize on an
// internal mutex so the display never interleaves frames.
type Session struct {
	cfg     *config.Config
	display Display
	refs    catalog.Repository
	logger  *slog.Logger

	mu       sync.Mutex
	mode     Mode
	template overlay.Template
	surface  *vision.Surface
	model    *overlay.Model
}

// New returns a session in trace mode with the circle template armed.
func New(cfg *config.Config, display Display, refs catalog.Repository, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		cfg:      cfg,
		display:  display,
		refs:     refs,
		logger:   logger,
		template: overlay.TemplateCircle,
	}
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// NextMode cycles trace -> reference -> model3d and refreshes the
// display.
func (s *Session) NextMode(ctx context.Context) error {
	s.mu.Lock()
	s.mode = (s.mode + 1) % 3
	s.logger.Debug("mode switched", "mode", s.mode.String())
	return s.renderLocked(ctx)
}

// NextTemplate cycles the trace template and refreshes the display.
// Outside trace mode it only updates the armed template.
func (s *Session) NextTemplate(ctx context.Context) error {
	s.mu.Lock()
	s.template = s.template.Next()
	return s.renderLocked(ctx)
}

// HandlePhoto processes a captured photo according to the current mode:
// in trace mode it runs surface detection, in reference mode it stores
// and activates the photo as the reference image, and in model mode the
// capture is ignored (models are uploaded, not photographed).
//
// A photo in which no surface is found is not an error; the display
// falls back to the detection hint frame.
func (s *Session) HandlePhoto(ctx context.Context, photo []byte) error {
	s.mu.Lock()
	switch s.mode {
	case ModeTrace:
		surface, err := vision.DetectSurface(photo, s.cfg.VisionParams())
		if err != nil {
			s.mu.Unlock()
			return fmt.Errorf("surface detection: %w", err)
		}
		s.surface = surface
		if surface == nil {
			s.logger.Debug("no surface found in photo")
		} else {
			s.logger.Debug("surface detected",
				"width", surface.Width, "height", surface.Height)
		}
	case ModeReference:
		name := fmt.Sprintf("capture-%03d.img", s.refCount()+1)
		if err := s.refs.Create(name, photo); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("store reference: %w", err)
		}
		if err := s.refs.Activate(name); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("activate reference: %w", err)
		}
	case ModeModel:
		s.logger.Debug("photo ignored in model mode")
	}
	return s.renderLocked(ctx)
}

// ClearSurface forgets the detected surface, re-arming detection.
func (s *Session) ClearSurface(ctx context.Context) error {
	s.mu.Lock()
	s.surface = nil
	return s.renderLocked(ctx)
}

// LoadModel selects a model for preview and refreshes the display.
func (s *Session) LoadModel(ctx context.Context, m overlay.Model) error {
	s.mu.Lock()
	s.model = &m
	return s.renderLocked(ctx)
}

// Refresh re-renders and pushes the current frame.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	return s.renderLocked(ctx)
}

// renderLocked composes the frame for the current mode, encodes it, and
// pushes it to the display. It must be called with s.mu held and
// releases the lock itself.
//
// The lock stays held across the display write: releasing it earlier
// would let a second state change push its frame ahead of one already
// in flight, leaving a stale frame on the display. Display
// implementations must not call back into the session from Show.
func (s *Session) renderLocked(ctx context.Context) error {
	defer s.mu.Unlock()

	frame := bitmap.ToHex(bitmap.Encode(s.composeLocked()))
	if err := s.display.Show(ctx, frame); err != nil {
		return fmt.Errorf("display write: %w", err)
	}
	return nil
}

func (s *Session) composeLocked() raster.Canvas {
	canvas := raster.New(s.cfg.CanvasWidth, s.cfg.CanvasHeight)

	switch s.mode {
	case ModeTrace:
		if s.surface == nil {
			return overlay.RenderDetectionHint(canvas)
		}
		return overlay.RenderTemplate(canvas, s.template, s.surface)

	case ModeReference:
		img := s.activeReference()
		if img == nil {
			return overlay.RenderMissingReference(canvas)
		}
		return overlay.RenderReference(canvas, img)

	case ModeModel:
		if s.model == nil {
			return overlay.RenderMissingModel(canvas)
		}
		return overlay.RenderModel(canvas, *s.model)
	}
	return canvas
}

// activeReference decodes the active catalog entry, or nil when there
// is none or it does not decode. A corrupt upload degrades to the
// missing-reference frame rather than failing the render.
func (s *Session) activeReference() image.Image {
	entry, err := s.refs.Active()
	if err != nil {
		return nil
	}
	data, err := s.refs.Open(entry.Name)
	if err != nil {
		s.logger.Warn("active reference unreadable", "name", entry.Name, "error", err)
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		s.logger.Warn("active reference undecodable", "name", entry.Name, "error", err)
		return nil
	}
	return img
}

func (s *Session) refCount() int {
	entries, err := s.refs.List()
	if err != nil {
		return 0
	}
	return len(entries)
}
