package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rpgo/runway-calculator/internal/calculation"
)

// newRootCmd builds the command tree. Commands are constructed fresh so tests can run them in isolation.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "runway",
		Short:        "Financial runway projection CLI",
		Long:         "Project how many years a household's assets last against inflating expenses and debt service.",
		SilenceUsage: true,
	}
	root.AddCommand(
		newCalculateCmd(),
		newPayoffCmd(),
		newExampleCmd(),
		newFormatsCmd(),
	)
	return root
}

// engineLogger returns the logger the engine writes to: slog text on stderr at debug level when
// debug is set, otherwise a no-op.
func engineLogger(cmd *cobra.Command, debug bool) calculation.Logger {
	if !debug {
		return calculation.NopLogger{}
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
	return calculation.NewSlogLogger(slog.New(handler))
}
