package buildmanifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// filePermissions is the mode buildmanifest files are written with.
const filePermissions = 0o600

// ReadFile reads and parses a manifest from path.
func ReadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses manifest JSON already in memory.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest JSON: %w", err)
	}
	return &m, nil
}

// WriteFile writes m to path as indented JSON.
func (m *Manifest) WriteFile(path string) error {
	data, err := m.MarshalIndent()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, filePermissions)
}

// Marshal serializes m to compact JSON.
func (m *Manifest) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

// MarshalIndent serializes m to indented, human-readable JSON. Module and
// file order within the manifest is already deterministic (it comes
// straight from Solve's topological output), so no key-sorting pass is
// needed to keep this reproducible across runs.
func (m *Manifest) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
