package main

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/nox-build/modsolve/coordinator"
)

func newBuildCmd(verbose *bool) *cobra.Command {
	var (
		outDir            string
		compilerPath      string
		globRoot          string
		watch             bool
		resolveNamespaces bool
	)

	cmd := &cobra.Command{
		Use:   "build <project-file>",
		Short: "Solve a project and write one concatenated artifact per module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath := args[0]
			opts := []coordinator.Option{coordinator.WithGlobRoot(globRoot)}
			if compilerPath != "" {
				opts = append(opts, coordinator.WithCompiler(compilerPath))
			}
			if resolveNamespaces {
				opts = append(opts, coordinator.WithNamespaceResolution())
			}
			c, err := newCoordinator(*verbose, opts...)
			if err != nil {
				return err
			}

			runOnce := func() error {
				manifest, err := c.Build(context.Background(), projectPath, outDir)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "built %d modules into %s\n", len(manifest.Modules), outDir)
				return nil
			}

			if err := runOnce(); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return watchAndRebuild(cmd, projectPath, globRoot, runOnce)
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "build", "output directory for module artifacts")
	cmd.Flags().StringVar(&compilerPath, "compiler", "", "external compiler binary for compiled input files")
	cmd.Flags().StringVar(&globRoot, "source-root", "", "directory glob patterns in the manifest are resolved against")
	cmd.Flags().BoolVar(&watch, "watch", false, "re-run build whenever a file directly in source-root changes")
	cmd.Flags().BoolVar(&resolveNamespaces, "resolve-namespaces", false, "derive namespaced load order by scanning goog.provide/goog.require instead of trusting the manifest's declared order")
	return cmd
}

// watchAndRebuild re-runs runOnce whenever fsnotify observes a write,
// create, remove or rename event in root. Only root itself is watched,
// not its subdirectories. It never exits on its own; the caller's
// context (Ctrl-C) ends the process.
func watchAndRebuild(cmd *cobra.Command, projectPath, root string, runOnce func() error) error {
	if root == "" {
		root = "."
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(root); err != nil {
		return fmt.Errorf("watch %q: %w", root, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "watching %s for changes (ctrl-c to stop)\n", root)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "change detected (%s), rebuilding\n", event.Name)
			if err := runOnce(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "rebuild failed: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
		}
	}
}
