package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information - set by ldflags during build.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func getVersion() string {
	return fmt.Sprintf("%s (%s)", Version, GitCommit)
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "easel %s\n", getVersion())
			return nil
		},
	}
}
