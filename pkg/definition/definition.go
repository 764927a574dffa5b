// Package definition reads and writes the VM definition file: the
// JSON document a delta run persists to glue a snapshot's VM, VBD,
// VDI and VIF records together for a later restore. Grounded on
// lib/functions.py's vm_definition_to_file/from_file.
package definition

import (
	"encoding/json"
	"fmt"
	"os"
)

// Definition is the on-disk shape: four maps keyed by the original
// opaque references, each value a record holding the fields the Delta
// Engine copies from that object (plus the backup-time fields it
// augments VDI/VIF records with). Fields the engine does not name are
// not stored.
type Definition struct {
	VM   map[string]any            `json:"vm"`
	VBDs map[string]map[string]any `json:"vbds"`
	VDIs map[string]map[string]any `json:"vdis"`
	VIFs map[string]map[string]any `json:"vifs"`
}

// New returns an empty Definition ready to be populated field by
// field as the Delta Engine processes each attachment.
func New() *Definition {
	return &Definition{
		VM:   map[string]any{},
		VBDs: map[string]map[string]any{},
		VDIs: map[string]map[string]any{},
		VIFs: map[string]map[string]any{},
	}
}

// WriteFile serialises d as indented JSON to path, encoding.json
// being the only marshalling library anywhere in the corpus (the
// teacher SDK's own payload structs all round-trip through it too).
func WriteFile(path string, d *Definition) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("definition: marshalling %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("definition: writing %s: %w", path, err)
	}
	return nil
}

// ReadFile is the inverse of WriteFile.
func ReadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("definition: reading %s: %w", path, err)
	}
	var d Definition
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("definition: unmarshalling %s: %w", path, err)
	}
	return &d, nil
}
