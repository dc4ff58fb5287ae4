package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sewonm/Easel/internal/config"
)

// NewRootCmd creates the root command for Easel.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "easel",
		Short: "Image-to-display pipeline for the Easel drawing assistant",
		Long: `Easel turns captured photographs into frames for a tiny monochrome
display: it detects the drawing surface in a photo, traces contour
outlines of an edge map, and rasterizes templates, reference images,
and text into the device's 1-bit bitmap format.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Path to config file (default: XDG config dir)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewRenderCmd())
	cmd.AddCommand(NewDetectCmd())
	cmd.AddCommand(NewTraceCmd())
	cmd.AddCommand(NewLabelCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the persistent flags and builds the effective
// configuration with a logger to match. Logs go to stderr; stdout
// carries command output only.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, err
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	cfg.Verbose = verbose

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return cfg, logger, nil
}
