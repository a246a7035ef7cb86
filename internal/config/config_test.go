package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesEngineDefaults(t *testing.T) {
	r := require.New(t)

	cfg := Default()
	r.Equal(25, cfg.MaxPossibleWorlds)
	r.Equal(250, cfg.MaxTreeNodes)
	r.True(cfg.RejectDisconnectedWorlds)
}

func TestLoadOverridesOnlyDocumentedKeys(t *testing.T) {
	r := require.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	r.NoError(os.WriteFile(path, []byte("max_possible_worlds: 10\n"), 0o644))

	cfg, err := Load(path)
	r.NoError(err)
	r.Equal(10, cfg.MaxPossibleWorlds)
	r.Equal(250, cfg.MaxTreeNodes, "keys absent from the document keep their Default() value")
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	r := require.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	r.Error(err)
}
