package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nox-build/modsolve"
	"github.com/nox-build/modsolve/buildmanifest"
)

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <old-manifest> <new-manifest>",
		Short: "Compare two buildmanifest.json files and report placement changes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldManifest, err := buildmanifest.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			newManifest, err := buildmanifest.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[1], err)
			}

			d := modsolve.DiffPlacements(oldManifest.ToModuleOutputs(), newManifest.ToModuleOutputs())
			printDiff(cmd, d)
			return nil
		},
	}
	return cmd
}

func printDiff(cmd *cobra.Command, d *modsolve.PlacementDiff) {
	out := cmd.OutOrStdout()
	if d.IsEmpty() {
		fmt.Fprintln(out, "no placement differences")
		return
	}
	for _, m := range d.AddedModules {
		fmt.Fprintf(out, "+ module %s\n", m.Name)
	}
	for _, m := range d.RemovedModules {
		fmt.Fprintf(out, "- module %s\n", m.Name)
	}
	for _, f := range d.MovedFiles {
		fmt.Fprintf(out, "~ %s: %s -> %s\n", f.Path, f.OldModule, f.NewModule)
	}
}
