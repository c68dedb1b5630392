// Package compiler drives external compilers over a solved module's input
// files and concatenates their output in solver-determined order.
package compiler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/nox-build/modsolve"
)

// Driver turns one module's placement result into a compiled artifact.
type Driver interface {
	Compile(ctx context.Context, module modsolve.ModuleOutput) (io.Reader, error)
}

// ExecDriver spawns an external compiler binary, passing the module's
// compiled input files as trailing arguments. This is the CSS/Soy/JS
// compiler process boundary: modsolve decides what belongs in a module,
// this package never inspects file contents.
type ExecDriver struct {
	// Path to the compiler binary.
	Path string
	// ExtraArgs are prepended before the file list on every invocation.
	ExtraArgs []string
}

// Compile runs the configured binary over module.CompiledInputFiles and
// returns its stdout.
func (d ExecDriver) Compile(ctx context.Context, module modsolve.ModuleOutput) (io.Reader, error) {
	args := append(append([]string{}, d.ExtraArgs...), module.CompiledInputFiles...)
	cmd := exec.CommandContext(ctx, d.Path, args...)
	cmd.Stderr = os.Stderr

	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("compile module %q: %w", module.Name, err)
	}
	return &out, nil
}

// PassthroughDriver reads one of a module's file buckets unmodified and
// concatenates it in order: Uncompiled files need no compilation step,
// and a project with no external compiler configured treats its compiled
// bucket the same way.
type PassthroughDriver struct {
	// Bucket selects which of the module's file lists to read. Defaults
	// to DontCompileInputFiles (the Uncompiled bucket) when nil.
	Bucket func(module modsolve.ModuleOutput) []string
	// Open reads a file's contents by path. Defaults to os.Open when nil.
	Open func(path string) (io.ReadCloser, error)
}

// CompiledPassthroughDriver returns a PassthroughDriver over a module's
// CompiledInputFiles, for use as the Compiled driver of a Concatenator
// when no external compiler binary is configured.
func CompiledPassthroughDriver() PassthroughDriver {
	return PassthroughDriver{Bucket: func(m modsolve.ModuleOutput) []string { return m.CompiledInputFiles }}
}

// Compile concatenates the selected bucket's files verbatim, in order.
func (d PassthroughDriver) Compile(_ context.Context, module modsolve.ModuleOutput) (io.Reader, error) {
	bucket := d.Bucket
	if bucket == nil {
		bucket = func(m modsolve.ModuleOutput) []string { return m.DontCompileInputFiles }
	}
	open := d.Open
	if open == nil {
		open = func(path string) (io.ReadCloser, error) { return os.Open(path) }
	}

	var buf bytes.Buffer
	for _, path := range bucket(module) {
		f, err := open(path)
		if err != nil {
			return nil, fmt.Errorf("open %q: %w", path, err)
		}
		_, err = io.Copy(&buf, f)
		closeErr := f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", path, err)
		}
		if closeErr != nil {
			return nil, fmt.Errorf("close %q: %w", path, closeErr)
		}
	}
	return &buf, nil
}
