package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nox-build/modsolve/coordinator"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "modsolve",
		Short:         "Solve module placement for a multi-module JS build and drive compilation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newSolveCmd(&verbose),
		newBuildCmd(&verbose),
		newExplainCmd(&verbose),
		newDiffCmd(),
	)
	return root
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newCoordinator(verbose bool, opts ...coordinator.Option) (*coordinator.Coordinator, error) {
	all := append([]coordinator.Option{coordinator.WithLogger(newLogger(verbose))}, opts...)
	return coordinator.New(all...)
}
