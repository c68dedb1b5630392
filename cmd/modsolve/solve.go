package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nox-build/modsolve/coordinator"
)

func newSolveCmd(verbose *bool) *cobra.Command {
	var (
		globRoot          string
		resolveNamespaces bool
	)

	cmd := &cobra.Command{
		Use:   "solve <project-file>",
		Short: "Parse a project manifest and print its module placement summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []coordinator.Option{coordinator.WithGlobRoot(globRoot)}
			if resolveNamespaces {
				opts = append(opts, coordinator.WithNamespaceResolution())
			}
			c, err := newCoordinator(*verbose, opts...)
			if err != nil {
				return err
			}
			outputs, err := c.Solve(args[0])
			if err != nil {
				return err
			}
			if len(outputs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no modules declared")
				return nil
			}
			for _, out := range outputs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d compiled, %d uncompiled, deps=%v\n",
					out.Name, len(out.CompiledInputFiles), len(out.DontCompileInputFiles), out.DirectDepsUsed)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&globRoot, "source-root", "", "directory glob patterns in the manifest are resolved against")
	cmd.Flags().BoolVar(&resolveNamespaces, "resolve-namespaces", false, "derive namespaced load order by scanning goog.provide/goog.require instead of trusting the manifest's declared order")
	return cmd
}
