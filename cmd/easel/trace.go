package main

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"

	"github.com/sewonm/Easel/internal/bitmap"
	"github.com/sewonm/Easel/internal/overlay"
	"github.com/sewonm/Easel/internal/raster"
	"github.com/sewonm/Easel/internal/vision"
)

// NewTraceCmd creates the trace command, which extracts contours from
// an edge map.
func NewTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace <edge-map>",
		Short: "Trace contour outlines of an edge map",
		Long: `Trace reads an edge-gradient image (such as the hosted vision
service's output), extracts connected bright regions as contours, and
prints a summary. With --render the contours are painted onto a device
canvas and emitted as a hex frame instead.`,
		Args: cobra.ExactArgs(1),
		RunE: runTrace,
	}

	cmd.Flags().Bool("render", false, "Emit a hex device frame of the contours instead of a summary")
	cmd.Flags().Bool("gradient", false, "Treat the input as a raw photo and compute the edge map first")
	return cmd
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	render, _ := cmd.Flags().GetBool("render")
	gradient, _ := cmd.Flags().GetBool("gradient")

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read edge map: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode edge map: %w", err)
	}

	var field vision.Field
	if gradient {
		field = vision.Gradient(img)
	} else {
		field = luminanceField(img)
	}

	contours := vision.TraceContours(field, cfg.VisionParams())
	logger.Debug("contours traced", "count", len(contours))

	if render {
		canvas := raster.New(cfg.CanvasWidth, cfg.CanvasHeight)
		canvas = overlay.RenderContours(canvas, contours, field.Width, field.Height)
		fmt.Fprintln(cmd.OutOrStdout(), bitmap.ToHex(bitmap.Encode(canvas)))
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d contours\n", len(contours))
	for i, contour := range contours {
		first := contour[0]
		fmt.Fprintf(cmd.OutOrStdout(), "  %3d: %5d points, starts at (%d,%d)\n",
			i, len(contour), first.X, first.Y)
	}
	return nil
}

// luminanceField converts an already-thresholdable image (an external
// edge map) straight into a field without re-running the gradient.
func luminanceField(img image.Image) vision.Field {
	bounds := img.Bounds()
	f := vision.NewField(bounds.Dx(), bounds.Dy())
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// ITU-R BT.601 luminance weights.
			lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			f.Set(x, y, uint8(lum))
		}
	}
	return f
}
