package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sewonm/Easel/internal/vision"
)

// NewDetectCmd creates the detect command, which looks for a planar
// drawing surface in a photograph.
func NewDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <photo>",
		Short: "Detect a drawing surface in a photograph",
		Long: `Detect runs the corner-candidate heuristic over a photo and prints
the detected quadrilateral as JSON. "No surface" is a normal outcome,
not an error; only an unreadable or undecodable photo fails.`,
		Args: cobra.ExactArgs(1),
		RunE: runDetect,
	}
}

func runDetect(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	photo, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read photo: %w", err)
	}

	surface, err := vision.DetectSurface(photo, cfg.VisionParams())
	if err != nil {
		return err
	}
	if surface == nil {
		logger.Debug("fewer than four corner candidates")
		fmt.Fprintln(cmd.OutOrStdout(), "no surface detected")
		return nil
	}

	out, err := json.MarshalIndent(surface, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
