package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DecodesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
mode = "tsp"
keep_stops = ["A", "B"]
target_stops = ["A"]
min_transfer_seconds = 60
dummy_stop = "DUMMY"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "tsp", cfg.Mode)
	assert.Equal(t, []string{"A", "B"}, cfg.KeepStopIDs)
	assert.Equal(t, []string{"A"}, cfg.TargetStopIDs)
	assert.Equal(t, uint32(60), cfg.MinTransferSeconds)
	assert.Equal(t, "DUMMY", cfg.DummyStopID)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.toml"))
	assert.Error(t, err)
}
