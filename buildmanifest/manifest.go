package buildmanifest

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/nox-build/modsolve"
)

// FormatVersion is the current manifest schema version. Bump it whenever
// Manifest's JSON shape changes incompatibly.
const FormatVersion = 1

// Manifest is one solve's placement result, ready for JSON serialization.
type Manifest struct {
	Version int              `json:"formatVersion"`
	Modules []ModuleManifest `json:"modules"`
}

// ModuleManifest is one module's entry in a Manifest.
type ModuleManifest struct {
	Name                  string   `json:"name"`
	DirectDepsUsed        []string `json:"directDepsUsed"`
	CompiledInputFiles    []string `json:"compiledInputFiles"`
	DontCompileInputFiles []string `json:"dontCompileInputFiles"`
	// Digest is the hex SHA-256 of the module's ordered file lists
	// (dontCompile then compiled, each path followed by a NUL byte). Two manifests with equal
	// Digest for the same module name placed the same files in the same
	// order, even if produced by different solve runs.
	Digest string `json:"digest"`
}

// FromSolve builds a Manifest from one Solve call's output.
func FromSolve(outputs []modsolve.ModuleOutput) *Manifest {
	modules := make([]ModuleManifest, len(outputs))
	for i, out := range outputs {
		modules[i] = ModuleManifest{
			Name:                  out.Name,
			DirectDepsUsed:        append([]string(nil), out.DirectDepsUsed...),
			CompiledInputFiles:    append([]string(nil), out.CompiledInputFiles...),
			DontCompileInputFiles: append([]string(nil), out.DontCompileInputFiles...),
			Digest:                digest(out),
		}
	}
	return &Manifest{Version: FormatVersion, Modules: modules}
}

// ToModuleOutputs reverses FromSolve, recovering the []modsolve.ModuleOutput
// that the manifest describes (without the Digest, which is derived).
func (m *Manifest) ToModuleOutputs() []modsolve.ModuleOutput {
	outputs := make([]modsolve.ModuleOutput, len(m.Modules))
	for i, mm := range m.Modules {
		outputs[i] = modsolve.ModuleOutput{
			Name:                  mm.Name,
			DirectDepsUsed:        mm.DirectDepsUsed,
			CompiledInputFiles:    mm.CompiledInputFiles,
			DontCompileInputFiles: mm.DontCompileInputFiles,
		}
	}
	return outputs
}

// ModuleByName returns the entry for name, or false if no such module is
// recorded.
func (m *Manifest) ModuleByName(name string) (ModuleManifest, bool) {
	for _, mm := range m.Modules {
		if mm.Name == name {
			return mm, true
		}
	}
	return ModuleManifest{}, false
}

func digest(out modsolve.ModuleOutput) string {
	h := sha256.New()
	for _, f := range out.DontCompileInputFiles {
		h.Write([]byte(f))
		h.Write([]byte{0})
	}
	for _, f := range out.CompiledInputFiles {
		h.Write([]byte(f))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
