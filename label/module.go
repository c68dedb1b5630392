// Package label provides strongly-typed, validated identifiers for the
// project file DSL: module names and file paths.
//
// All types in this package are immutable and validate their values at
// construction time. Zero values are generally invalid - use the
// constructor functions (NewModuleName, NewFilePath) to create valid
// instances.
//
// # Types
//
// The main types are:
//   - [ModuleName]: a validated module name (e.g., "base", "client-app")
//   - [FilePath]: a validated, traversal-free project-relative file path
//   - [FileVersion]: an optional semantic-version-like suffix some
//     generated file names carry (e.g. "foo.v2.js"), used only to order
//     `--explain` output
//
// # Validation Patterns
//
// Module names must match: [a-zA-Z_][a-zA-Z0-9_-]*
// File paths must not contain ".." segments or backslashes.
package label

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// ModuleName represents a validated module name, as it appears as a
// Starlark call argument in the project file (e.g. module(name = "base", ...)).
type ModuleName struct {
	name string
}

var moduleNameRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*$`)

// NewModuleName creates a validated ModuleName from a string.
func NewModuleName(name string) (ModuleName, error) {
	if name == "" {
		return ModuleName{}, fmt.Errorf("module name cannot be empty")
	}
	if !moduleNameRegex.MatchString(name) {
		return ModuleName{}, fmt.Errorf("invalid module name %q: must match pattern [a-zA-Z_][a-zA-Z0-9_-]*", name)
	}
	return ModuleName{name: name}, nil
}

// MustModuleName creates a ModuleName or panics. Use only for constants and
// tests.
func MustModuleName(name string) ModuleName {
	m, err := NewModuleName(name)
	if err != nil {
		panic(err)
	}
	return m
}

// String returns the module name string.
func (m ModuleName) String() string {
	return m.name
}

// IsEmpty returns true if this is a zero-value ModuleName.
func (m ModuleName) IsEmpty() bool {
	return m.name == ""
}

// FilePath represents a validated, normalized, project-relative file path.
// Paths are rejected if they escape the project root via ".." segments or
// contain backslashes (Windows-style separators are not accepted in the
// project file; inputs are expected pre-normalized to "/").
type FilePath struct {
	raw string
}

// NewFilePath validates and wraps a project-relative file path.
func NewFilePath(p string) (FilePath, error) {
	if p == "" {
		return FilePath{}, fmt.Errorf("file path cannot be empty")
	}
	if strings.Contains(p, "\\") {
		return FilePath{}, fmt.Errorf("invalid file path %q: backslashes are not allowed", p)
	}
	clean := path.Clean(p)
	for _, seg := range strings.Split(clean, "/") {
		if seg == ".." {
			return FilePath{}, fmt.Errorf("invalid file path %q: must not escape the project root", p)
		}
	}
	return FilePath{raw: p}, nil
}

// String returns the original path string.
func (f FilePath) String() string {
	return f.raw
}

// IsEmpty returns true if this is a zero-value FilePath.
func (f FilePath) IsEmpty() bool {
	return f.raw == ""
}
