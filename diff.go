package modsolve

import (
	"cmp"
	"slices"
)

// FileMove describes a file whose assigned module changed between two
// solves.
type FileMove struct {
	// Path is the file's path.
	Path string `json:"path"`

	// OldModule is the module the file was placed in previously.
	OldModule string `json:"old_module"`

	// NewModule is the module the file is placed in now.
	NewModule string `json:"new_module"`
}

// ModulePresenceChange describes a module that appeared or disappeared
// between two solves.
type ModulePresenceChange struct {
	// Name is the module name.
	Name string `json:"name"`
}

// PlacementDiff describes the differences between two Solve results,
// typically a before/after pair across a source change.
//
// This is useful for:
//   - Reviewing which files moved modules before trusting a rebuild
//   - Generating human-readable change summaries for `modsolve diff`
//   - CI checks that flag unexpectedly large reshuffles
type PlacementDiff struct {
	// AddedModules contains modules present in new but not in old.
	AddedModules []ModulePresenceChange `json:"added_modules,omitempty"`

	// RemovedModules contains modules present in old but not in new.
	RemovedModules []ModulePresenceChange `json:"removed_modules,omitempty"`

	// MovedFiles contains files whose module assignment changed.
	MovedFiles []FileMove `json:"moved_files,omitempty"`
}

// IsEmpty reports whether the diff contains no differences.
func (d *PlacementDiff) IsEmpty() bool {
	return len(d.AddedModules) == 0 && len(d.RemovedModules) == 0 && len(d.MovedFiles) == 0
}

// DiffPlacements computes the difference between two Solve results.
//
// Parameters:
//   - oldOutputs: the baseline placement (nil treated as empty)
//   - newOutputs: the updated placement (nil treated as empty)
//
// Results are sorted by name/path for deterministic output.
func DiffPlacements(oldOutputs, newOutputs []ModuleOutput) *PlacementDiff {
	diff := &PlacementDiff{}

	oldModules := make(map[string]bool, len(oldOutputs))
	newModules := make(map[string]bool, len(newOutputs))
	oldFileModule := make(map[string]string)
	newFileModule := make(map[string]string)

	for _, m := range oldOutputs {
		oldModules[m.Name] = true
		for _, f := range m.CompiledInputFiles {
			oldFileModule[f] = m.Name
		}
		for _, f := range m.DontCompileInputFiles {
			oldFileModule[f] = m.Name
		}
	}
	for _, m := range newOutputs {
		newModules[m.Name] = true
		for _, f := range m.CompiledInputFiles {
			newFileModule[f] = m.Name
		}
		for _, f := range m.DontCompileInputFiles {
			newFileModule[f] = m.Name
		}
	}

	for name := range newModules {
		if !oldModules[name] {
			diff.AddedModules = append(diff.AddedModules, ModulePresenceChange{Name: name})
		}
	}
	for name := range oldModules {
		if !newModules[name] {
			diff.RemovedModules = append(diff.RemovedModules, ModulePresenceChange{Name: name})
		}
	}

	for path, newModule := range newFileModule {
		if oldModule, existed := oldFileModule[path]; existed && oldModule != newModule {
			diff.MovedFiles = append(diff.MovedFiles, FileMove{
				Path:      path,
				OldModule: oldModule,
				NewModule: newModule,
			})
		}
	}

	slices.SortFunc(diff.AddedModules, func(a, b ModulePresenceChange) int {
		return cmp.Compare(a.Name, b.Name)
	})
	slices.SortFunc(diff.RemovedModules, func(a, b ModulePresenceChange) int {
		return cmp.Compare(a.Name, b.Name)
	})
	slices.SortFunc(diff.MovedFiles, func(a, b FileMove) int {
		return cmp.Compare(a.Path, b.Path)
	})

	return diff
}
