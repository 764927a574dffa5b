package retention

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenbackup/xenbackup/pkg/definition"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestPruneFullBackups(t *testing.T) {
	dir := t.TempDir()
	uuid := "vm1"
	names := []string{
		uuid + "__20240101T000000__a.xva",
		uuid + "__20240102T000000__a.xva",
		uuid + "__20240103T000000__a.xva",
		"other-vm__20240103T000000__a.xva",
	}
	for _, n := range names {
		touch(t, filepath.Join(dir, n))
	}

	require.NoError(t, PruneFullBackups(dir, uuid, 2))

	remaining, err := os.ReadDir(dir)
	require.NoError(t, err)
	var got []string
	for _, e := range remaining {
		got = append(got, e.Name())
	}
	assert.ElementsMatch(t, []string{names[1], names[2], names[3]}, got)
}

func TestPruneDeltaBackups(t *testing.T) {
	vmDir := t.TempDir()

	touch(t, filepath.Join(vmDir, "vdi_d1", "20240101T000000_full.vhd"))
	touch(t, filepath.Join(vmDir, "vdi_d1", "20240102T000000_delta.vhd"))
	touch(t, filepath.Join(vmDir, "vdi_d1", "20240103T000000_delta.vhd"))

	d1 := definition.New()
	d1.VDIs["ref1"] = map[string]any{"backup_file": "vdi_d1/20240101T000000_full.vhd"}
	require.NoError(t, definition.WriteFile(filepath.Join(vmDir, "20240101T000000.json"), d1))

	d2 := definition.New()
	d2.VDIs["ref1"] = map[string]any{
		"backup_file":      "vdi_d1/20240102T000000_delta.vhd",
		"backup_base_file": "vdi_d1/20240101T000000_full.vhd",
	}
	require.NoError(t, definition.WriteFile(filepath.Join(vmDir, "20240102T000000.json"), d2))

	d3 := definition.New()
	d3.VDIs["ref1"] = map[string]any{
		"backup_file":      "vdi_d1/20240103T000000_delta.vhd",
		"backup_base_file": "vdi_d1/20240101T000000_full.vhd",
	}
	require.NoError(t, definition.WriteFile(filepath.Join(vmDir, "20240103T000000.json"), d3))

	require.NoError(t, PruneDeltaBackups(vmDir, 2))

	_, err := os.Stat(filepath.Join(vmDir, "20240101T000000.json"))
	assert.True(t, os.IsNotExist(err), "oldest definition should be discarded")

	_, err = os.Stat(filepath.Join(vmDir, "20240102T000000.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(vmDir, "20240103T000000.json"))
	assert.NoError(t, err)

	// The full file is still referenced by both retained deltas'
	// backup_base_file, so it must survive even though its own
	// definition was discarded.
	_, err = os.Stat(filepath.Join(vmDir, "vdi_d1", "20240101T000000_full.vhd"))
	assert.NoError(t, err, "full file referenced as backup_base_file by a retained delta must survive")
}
