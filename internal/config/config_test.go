package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.kdl"))
	require.NoError(t, err)
	assert.Equal(t, FormatHex, cfg.Output.Format)
	assert.Equal(t, "typehash.toml", cfg.Manifest.Path)
	assert.True(t, cfg.Manifest.Fingerprint)
	assert.Equal(t, 0, cfg.Workers)
}

func TestLoad_ParsesAllSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	content := `
version 1
output {
    format "base63"
}
manifest {
    path "out/hashes.toml"
    fingerprint false
}
workers 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatBase63, cfg.Output.Format)
	assert.Equal(t, "out/hashes.toml", cfg.Manifest.Path)
	assert.False(t, cfg.Manifest.Fingerprint)
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(`output { format "decimal" }`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatDecimal, cfg.Output.Format)
	// Untouched sections stay at defaults.
	assert.Equal(t, "typehash.toml", cfg.Manifest.Path)
	assert.True(t, cfg.Manifest.Fingerprint)
}

func TestLoad_BadFormatRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(`output { format "octal" }`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "octal")
}

func TestLoad_MalformedKDLRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(`output { format `), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Workers = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Manifest.Path = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Output.Format = ""
	require.NoError(t, cfg.Validate())
	assert.Equal(t, FormatHex, cfg.Output.Format)
}

func TestEffectiveWorkers(t *testing.T) {
	cfg := Default()
	assert.Equal(t, runtime.NumCPU(), cfg.EffectiveWorkers())

	cfg.Workers = 3
	assert.Equal(t, 3, cfg.EffectiveWorkers())
}
