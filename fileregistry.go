package modsolve

import "github.com/nox-build/modsolve/internal/graphalg"

// FileID identifies a file within a single Solve call's FileRegistry.
type FileID = graphalg.ID

// FileRegistry interns file paths to dense identifiers in insertion order
// and remembers each file's compile class. Paths are assumed already
// normalized (separators converted to "/") — the registry does not
// normalize them itself.
type FileRegistry struct {
	paths []string
	class []CompileClass
	index map[string]FileID
}

// NewFileRegistry returns an empty registry.
func NewFileRegistry() *FileRegistry {
	return &FileRegistry{index: make(map[string]FileID)}
}

// Intern records path with the given compile class, returning its ID and
// whether this is the first time path has been seen. If path was
// previously interned with a different class, module names the module the
// conflicting second occurrence was declared in, for the resulting error.
func (r *FileRegistry) Intern(path string, class CompileClass, module string) (FileID, bool, error) {
	if id, ok := r.index[path]; ok {
		if r.class[id] != class {
			return id, false, &MixedCompileClassError{
				Path:   path,
				First:  r.class[id],
				Second: class,
				Module: module,
			}
		}
		return id, false, nil
	}
	id := FileID(len(r.paths))
	r.paths = append(r.paths, path)
	r.class = append(r.class, class)
	r.index[path] = id
	return id, true, nil
}

// Len returns the number of distinct interned paths.
func (r *FileRegistry) Len() int { return len(r.paths) }

// Path returns the original path for id.
func (r *FileRegistry) Path(id FileID) string { return r.paths[id] }

// Class returns the compile class recorded for id.
func (r *FileRegistry) Class(id FileID) CompileClass { return r.class[id] }
