package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clovehq/momtrack/internal/localstate"
)

func TestResolveDefaultsDerivesStoragePaths(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{DataDir: dir}

	require.NoError(t, cfg.ResolveDefaults())
	assert.Equal(t, localstate.DBPath(dir), cfg.DBPath)
	assert.Equal(t, localstate.ExportDir(dir), cfg.ExportDir)
}

func TestResolveDefaultsKeepsExplicitPaths(t *testing.T) {
	cfg := &Config{DataDir: t.TempDir(), DBPath: "/elsewhere/slot.db", ExportDir: "/elsewhere/out"}

	require.NoError(t, cfg.ResolveDefaults())
	assert.Equal(t, "/elsewhere/slot.db", cfg.DBPath)
	assert.Equal(t, "/elsewhere/out", cfg.ExportDir)
}

func TestNewForTesting(t *testing.T) {
	dir := t.TempDir()
	cfg := NewForTesting(dir)

	assert.True(t, cfg.IsTesting())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, ":8080", cfg.GetHTTPAddr())
	assert.Equal(t, localstate.DBPath(dir), cfg.DBPath)
	assert.Equal(t, localstate.ExportDir(dir), cfg.ExportDir)
}
