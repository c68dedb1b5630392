package source

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/nox-build/modsolve/internal/graphalg"
)

// NamespaceResolver extracts provide/require relationships from source
// files using a line-oriented scanner - not a JavaScript parser, since
// parsing JavaScript is out of scope - and orders each module's namespaced
// files so that every file's required namespaces are emitted before it.
type NamespaceResolver struct {
	// MaxConcurrency bounds how many modules are scanned and ordered at
	// once. Zero uses the package default.
	MaxConcurrency int
}

// FileSource is one file's path paired with its content, already read by
// the caller (this package performs no I/O of its own).
type FileSource struct {
	Path    string
	Content []byte
}

// ModuleSources is the set of namespaced files declared in one module,
// named so NamespaceResolver can report which module an error came from.
type ModuleSources struct {
	Module string
	Files  []FileSource
}

var (
	provideRegex = regexp.MustCompile(`^\s*goog\.(?:provide|module)\(\s*['"]([\w.]+)['"]\s*\)`)
	requireRegex = regexp.MustCompile(`^\s*goog\.require(?:Type)?\(\s*['"]([\w.]+)['"]\s*\)`)
)

// ProvideConflictError reports the same namespace provided by two files.
type ProvideConflictError struct {
	Namespace string
	First     string
	Second    string
}

func (e *ProvideConflictError) Error() string {
	return fmt.Sprintf("namespace %q provided by both %q and %q", e.Namespace, e.First, e.Second)
}

// NamespaceCycleError reports a require cycle among namespaced files.
type NamespaceCycleError struct {
	Module string
	Paths  []string
}

func (e *NamespaceCycleError) Error() string {
	return fmt.Sprintf("namespace require cycle in module %q among: %v", e.Module, e.Paths)
}

// scan extracts every provided and required namespace from content by
// scanning it line by line.
func scan(content []byte) (provides, requires []string) {
	sc := bufio.NewScanner(bytes.NewReader(content))
	for sc.Scan() {
		line := sc.Text()
		if m := provideRegex.FindStringSubmatch(line); m != nil {
			provides = append(provides, m[1])
		}
		if m := requireRegex.FindStringSubmatch(line); m != nil {
			requires = append(requires, m[1])
		}
	}
	return provides, requires
}

// OrderModule scans files and returns their paths ordered so that every
// file appears after every other file in files whose namespace it
// requires. Files requiring namespaces provided outside files are left in
// their relative position, since those dependencies are resolved
// elsewhere (another module, or a non-namespaced runtime).
func (r NamespaceResolver) OrderModule(module string, files []FileSource) ([]string, error) {
	n := len(files)
	index := make(map[string]graphalg.ID, n)
	providedBy := make(map[string]string, n)
	requiresOf := make([][]string, n)

	for i, f := range files {
		index[f.Path] = graphalg.ID(i)
		provides, requires := scan(f.Content)
		requiresOf[i] = requires
		for _, ns := range provides {
			if existing, ok := providedBy[ns]; ok && existing != f.Path {
				return nil, &ProvideConflictError{Namespace: ns, First: existing, Second: f.Path}
			}
			providedBy[ns] = f.Path
		}
	}

	namespaceFile := make(map[string]graphalg.ID, len(providedBy))
	for ns, path := range providedBy {
		namespaceFile[ns] = index[path]
	}

	adjacency := make(map[graphalg.ID]graphalg.Set, n)
	for i, requires := range requiresOf {
		deps := graphalg.NewSet()
		for _, ns := range requires {
			if dep, ok := namespaceFile[ns]; ok && dep != graphalg.ID(i) {
				deps.Add(dep)
			}
		}
		adjacency[graphalg.ID(i)] = deps
	}

	order, err := graphalg.TopologicalSort(adjacency)
	if err != nil {
		var cycleErr *graphalg.CycleError
		if !errors.As(err, &cycleErr) {
			return nil, err
		}
		paths := make([]string, len(cycleErr.Remaining))
		for i, id := range cycleErr.Remaining {
			paths[i] = files[id].Path
		}
		return nil, &NamespaceCycleError{Module: module, Paths: paths}
	}

	ordered := make([]string, n)
	for i, id := range order {
		ordered[i] = files[id].Path
	}
	return ordered, nil
}

// ResolveAll orders every module's namespaced files concurrently.
func (r NamespaceResolver) ResolveAll(modules []ModuleSources) (map[string][]string, error) {
	results := make([]([]string), len(modules))
	var mu sync.Mutex

	tasks := make([]func() error, len(modules))
	for i, m := range modules {
		i, m := i, m
		tasks[i] = func() error {
			ordered, err := r.OrderModule(m.Module, m.Files)
			if err != nil {
				return err
			}
			mu.Lock()
			results[i] = ordered
			mu.Unlock()
			return nil
		}
	}

	if err := runPool(r.MaxConcurrency, tasks); err != nil {
		return nil, err
	}

	out := make(map[string][]string, len(modules))
	for i, m := range modules {
		out[m.Module] = results[i]
	}
	return out, nil
}
