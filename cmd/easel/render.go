package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sewonm/Easel/internal/bitmap"
	"github.com/sewonm/Easel/internal/overlay"
	"github.com/sewonm/Easel/internal/raster"
)

// NewRenderCmd creates the render command, which rasterizes a template
// or text line into a device frame.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Rasterize a template or text into a device frame",
		Long: `Render composes a frame at the device resolution and emits it either
as a BMP file or as the lowercase hex string the display transport
consumes.`,
		RunE: runRender,
	}

	cmd.Flags().String("template", "", "Template to draw: circle, square, or triangle")
	cmd.Flags().String("text", "", "Text line to draw instead of a template")
	cmd.Flags().String("out", "", "Write the BMP to this file instead of printing hex")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	templateName, _ := cmd.Flags().GetString("template")
	text, _ := cmd.Flags().GetString("text")
	outPath, _ := cmd.Flags().GetString("out")

	canvas := raster.New(cfg.CanvasWidth, cfg.CanvasHeight)
	switch {
	case text != "":
		canvas = canvas.Text(text, 4, cfg.CanvasHeight/2-4, 2)
	case templateName != "":
		tpl, err := templateByName(templateName)
		if err != nil {
			return err
		}
		canvas = overlay.RenderTemplate(canvas, tpl, nil)
	default:
		return fmt.Errorf("nothing to render: pass --template or --text")
	}

	frame := bitmap.Encode(canvas)
	logger.Debug("frame encoded", "bytes", len(frame))

	if outPath != "" {
		if err := os.WriteFile(outPath, frame, 0o644); err != nil {
			return fmt.Errorf("failed to write frame: %w", err)
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), bitmap.ToHex(frame))
	return nil
}

// templateByName resolves a --template flag value, rejecting anything
// that is not a built-in template.
func templateByName(name string) (overlay.Template, error) {
	for _, t := range overlay.Templates() {
		if t == overlay.Template(name) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown template %q: want circle, square, or triangle", name)
}
