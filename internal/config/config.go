// Package config holds Easel's tunable settings and their defaults.
//
// The heuristic constants in the vision pipeline are policy knobs, not
// physical constants; they live here so a new device class or lighting
// setup can be accommodated with a config file instead of a rebuild.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/sewonm/Easel/internal/vision"
)

// AppName is used for XDG directory paths.
const AppName = "easel"

// Default values, chosen for the reference glasses display and the
// desk-and-paper photos the detector was tuned on.
const (
	// DefaultCanvasWidth and DefaultCanvasHeight match the target
	// display panel.
	DefaultCanvasWidth  = 526
	DefaultCanvasHeight = 100

	// DefaultEdgeThreshold is the foreground cutoff for the contour
	// tracer and the detector's coarse scan.
	DefaultEdgeThreshold = 128

	// DefaultNeighborThreshold is the intensity a neighborhood sample
	// must exceed to count toward a corner.
	DefaultNeighborThreshold = 100

	// DefaultGridStride trades detection precision for speed; at
	// display resolution a 50px stride loses nothing that matters.
	DefaultGridStride = 50

	// DefaultNeighborRadius and DefaultNeighborStep shape the corner
	// neighborhood sample.
	DefaultNeighborRadius = 10
	DefaultNeighborStep   = 5

	// DefaultMinNeighbors accepts a corner candidate when at least this
	// many neighborhood samples are bright.
	DefaultMinNeighbors = 3

	// DefaultMinContourLen discards flood fills shorter than this as
	// noise.
	DefaultMinContourLen = 10
)

// Config holds all configuration options for Easel. A single flat
// struct populated from the config file and flags, passed through the
// application by injection rather than global state.
type Config struct {
	// CanvasWidth and CanvasHeight set the display canvas dimensions.
	CanvasWidth  int `yaml:"canvasWidth"`
	CanvasHeight int `yaml:"canvasHeight"`

	// Vision pipeline tuning; see the vision package for what each
	// knob does.
	EdgeThreshold     int `yaml:"edgeThreshold"`
	NeighborThreshold int `yaml:"neighborThreshold"`
	GridStride        int `yaml:"gridStride"`
	NeighborRadius    int `yaml:"neighborRadius"`
	NeighborStep      int `yaml:"neighborStep"`
	MinNeighbors      int `yaml:"minNeighbors"`
	MinContourLen     int `yaml:"minContourLen"`

	// DataDir is where the file-backed catalogs live. Defaults to the
	// XDG data directory.
	DataDir string `yaml:"dataDir"`

	// Verbose enables slog.LevelDebug output. Set from the CLI, not
	// the file.
	Verbose bool `yaml:"-"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		CanvasWidth:       DefaultCanvasWidth,
		CanvasHeight:      DefaultCanvasHeight,
		EdgeThreshold:     DefaultEdgeThreshold,
		NeighborThreshold: DefaultNeighborThreshold,
		GridStride:        DefaultGridStride,
		NeighborRadius:    DefaultNeighborRadius,
		NeighborStep:      DefaultNeighborStep,
		MinNeighbors:      DefaultMinNeighbors,
		MinContourLen:     DefaultMinContourLen,
		DataDir:           XDGDataDir(),
	}
}

// VisionParams converts the configured knobs into the vision package's
// Params value.
func (c *Config) VisionParams() vision.Params {
	return vision.Params{
		EdgeThreshold:     uint8(clampInt(c.EdgeThreshold, 0, 255)),
		NeighborThreshold: uint8(clampInt(c.NeighborThreshold, 0, 255)),
		GridStride:        atLeast(c.GridStride, 1),
		NeighborRadius:    atLeast(c.NeighborRadius, 1),
		NeighborStep:      atLeast(c.NeighborStep, 1),
		MinNeighbors:      atLeast(c.MinNeighbors, 0),
		MinContourLen:     atLeast(c.MinContourLen, 1),
	}
}

// XDGDataDir returns the XDG data directory for Easel.
// On Linux: ~/.local/share/easel
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigFile returns the default config file path.
// On Linux: ~/.config/easel/config.yaml
func XDGConfigFile() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func atLeast(v, min int) int {
	if v < min {
		return min
	}
	return v
}
