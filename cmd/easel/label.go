package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sewonm/Easel/internal/bitmap"
	"github.com/sewonm/Easel/internal/ocr"
	"github.com/sewonm/Easel/internal/raster"
)

// NewLabelCmd creates the label command, which OCRs a photo and prints
// the extracted label, optionally rendered in the device font.
func NewLabelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label <photo>",
		Short: "Extract a text label from a photo",
		Long: `Label runs OCR over a captured photo and prints the first recognized
line, truncated to display length. With --render the label is drawn in
the device font and emitted as a hex frame instead.

Requires a CGO build with Tesseract; without it the command reports
that OCR is unavailable.`,
		Args: cobra.ExactArgs(1),
		RunE: runLabel,
	}

	cmd.Flags().Bool("render", false, "Render the label as a device frame instead of printing it")
	return cmd
}

func runLabel(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	photo, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read photo: %w", err)
	}

	label, err := ocr.ExtractLabel(photo)
	if errors.Is(err, ocr.ErrUnavailable) {
		return err
	}
	if err != nil {
		return fmt.Errorf("label extraction: %w", err)
	}
	if label == "" {
		logger.Debug("no legible text in photo")
		fmt.Fprintln(cmd.OutOrStdout(), "no label found")
		return nil
	}

	render, _ := cmd.Flags().GetBool("render")
	if !render {
		fmt.Fprintln(cmd.OutOrStdout(), label)
		return nil
	}

	canvas := raster.New(cfg.CanvasWidth, cfg.CanvasHeight).
		Text(label, 4, cfg.CanvasHeight/2-4, 2)
	fmt.Fprintln(cmd.OutOrStdout(), bitmap.ToHex(bitmap.Encode(canvas)))
	return nil
}
