// Package retention enforces the per-VM archive count: it trims full
// (.xva) backups and delta (.json definition + .vhd) backups down to
// the configured retention count, grounded on
// handlers/vm.py:clean_backups/clean_delta_backups and
// handlers/vdi.py:clean/clean_unused.
package retention

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xenbackup/xenbackup/pkg/definition"
)

// PruneFullBackups keeps the newest retain .xva archives for vmUUID
// under destDir and deletes the rest. Filenames are
// "<uuid>__<ts>__<name>.xva"; the timestamp layout is lexicographic,
// so a plain string sort orders them chronologically too.
func PruneFullBackups(destDir, vmUUID string, retain int) error {
	entries, err := os.ReadDir(destDir)
	if err != nil {
		return fmt.Errorf("retention: reading %s: %w", destDir, err)
	}

	var matches []string
	prefix := vmUUID + "__"
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, ".xva") {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)

	if retain <= 0 || len(matches) <= retain {
		return nil
	}
	for _, name := range matches[:len(matches)-retain] {
		if err := os.Remove(filepath.Join(destDir, name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("retention: removing %s: %w", name, err)
		}
	}
	return nil
}

// PruneDeltaBackups keeps the newest retain definition files under
// vmDir (<base>/vm_<uuid>/) and deletes the rest, then sweeps every
// vdi_* subdirectory deleting any .vhd not referenced by a retained
// definition (including backup_base_file references, so a delta's
// full anchor survives as long as the delta that needs it does).
func PruneDeltaBackups(vmDir string, retain int) error {
	entries, err := os.ReadDir(vmDir)
	if err != nil {
		return fmt.Errorf("retention: reading %s: %w", vmDir, err)
	}

	var defs []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			defs = append(defs, e.Name())
		}
	}
	sort.Strings(defs)

	discard := defs
	var keep []string
	if retain > 0 && len(defs) > retain {
		discard = defs[:len(defs)-retain]
		keep = defs[len(defs)-retain:]
	} else {
		discard = nil
		keep = defs
	}

	keepFiles := map[string]bool{}
	for _, name := range keep {
		d, err := definition.ReadFile(filepath.Join(vmDir, name))
		if err != nil {
			return fmt.Errorf("retention: reading definition %s: %w", name, err)
		}
		for _, vdi := range d.VDIs {
			if bf, ok := vdi["backup_file"].(string); ok && bf != "" {
				keepFiles[bf] = true
			}
			if bbf, ok := vdi["backup_base_file"].(string); ok && bbf != "" {
				keepFiles[bbf] = true
			}
		}
	}

	for _, name := range discard {
		if err := os.Remove(filepath.Join(vmDir, name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("retention: removing %s: %w", name, err)
		}
	}

	return sweepUnreferenced(vmDir, keepFiles)
}

// sweepUnreferenced walks every vdi_* directory under vmDir and
// deletes any .vhd file whose path (relative to vmDir) is not in
// keepFiles.
func sweepUnreferenced(vmDir string, keepFiles map[string]bool) error {
	return filepath.WalkDir(vmDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".vhd") {
			return nil
		}
		rel, err := filepath.Rel(vmDir, path)
		if err != nil {
			return err
		}
		if keepFiles[rel] {
			return nil
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("retention: removing orphan %s: %w", path, err)
		}
		return nil
	})
}
