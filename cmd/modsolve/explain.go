package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/nox-build/modsolve/coordinator"
	"github.com/nox-build/modsolve/label"
)

func newExplainCmd(verbose *bool) *cobra.Command {
	var (
		target   string
		globRoot string
	)

	cmd := &cobra.Command{
		Use:   "explain <project-file>",
		Short: "Report which module a given input file was placed in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if target == "" {
				return fmt.Errorf("--file is required")
			}
			c, err := newCoordinator(*verbose, coordinator.WithGlobRoot(globRoot))
			if err != nil {
				return err
			}
			out, found, err := c.ExplainFile(args[0], target)
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintf(cmd.OutOrStdout(), "%s was not placed in any module\n", target)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s placed in module %q (direct deps used: %v)\n", target, out.Name, out.DirectDepsUsed)

			siblings := append(append([]string(nil), out.DontCompileInputFiles...), out.CompiledInputFiles...)
			slices.SortFunc(siblings, label.CompareFileNames)
			fmt.Fprintf(cmd.OutOrStdout(), "module %q files, sorted by name:\n", out.Name)
			for _, f := range siblings {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", f)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&target, "file", "", "input file path to explain")
	cmd.Flags().StringVar(&globRoot, "source-root", "", "directory glob patterns in the manifest are resolved against")
	return cmd
}
