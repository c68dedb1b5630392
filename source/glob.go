package source

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// GlobResolver expands literal paths and glob patterns against a set of
// source roots into concrete, de-duplicated, "/"-separated file paths,
// preserving first-seen order across roots.
type GlobResolver struct {
	// MaxConcurrency bounds how many roots are globbed at once. Zero uses
	// the package default.
	MaxConcurrency int
}

// SourceRoot is one directory to resolve patterns against.
type SourceRoot struct {
	Dir      string
	Patterns []string
}

// Resolve expands every root's patterns concurrently and merges the
// results, preserving the roots' declaration order and, within a root,
// first-seen order; duplicate paths across roots are kept only once.
func (r GlobResolver) Resolve(roots []SourceRoot) ([]string, error) {
	perRoot := make([][]string, len(roots))
	var mu sync.Mutex // guards nothing shared; each task writes its own index

	tasks := make([]func() error, len(roots))
	for i, root := range roots {
		i, root := i, root
		tasks[i] = func() error {
			paths, err := expandRoot(root)
			if err != nil {
				return fmt.Errorf("resolve glob root %q: %w", root.Dir, err)
			}
			mu.Lock()
			perRoot[i] = paths
			mu.Unlock()
			return nil
		}
	}

	if err := runPool(r.MaxConcurrency, tasks); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var out []string
	for _, paths := range perRoot {
		for _, p := range paths {
			if seen[p] {
				continue
			}
			seen[p] = true
			out = append(out, p)
		}
	}
	return out, nil
}

func expandRoot(root SourceRoot) ([]string, error) {
	fsys := os.DirFS(root.Dir)

	var matched []string
	seenInRoot := make(map[string]bool)
	for _, pattern := range root.Patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid glob pattern %q", pattern)
		}

		if !containsMeta(pattern) {
			if _, err := fs.Stat(fsys, pattern); err != nil {
				return nil, fmt.Errorf("literal path %q: %w", pattern, err)
			}
			if !seenInRoot[pattern] {
				seenInRoot[pattern] = true
				matched = append(matched, pattern)
			}
			continue
		}

		hits, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}
		sort.Strings(hits)
		for _, h := range hits {
			if !seenInRoot[h] {
				seenInRoot[h] = true
				matched = append(matched, h)
			}
		}
	}

	normalized := make([]string, len(matched))
	for i, p := range matched {
		normalized[i] = path.Join(root.Dir, p)
	}
	return normalized, nil
}

func containsMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
