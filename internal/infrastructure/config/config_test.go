package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultEndpoint, cfg.Milvus.Endpoint)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.Milvus.TimeoutSeconds)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, cfg.Milvus.Endpoint)
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))

	content := "milvus:\n  endpoint: milvus.internal:19530\n  timeout_seconds: 30\n"
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "milvus.internal:19530", cfg.Milvus.Endpoint)
	assert.Equal(t, 30, cfg.Milvus.TimeoutSeconds)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte("milvus: ["), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("MILVUS_ENDPOINT", "override:19530")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "override:19530", cfg.Milvus.Endpoint)
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, WriteDefault(dir))
	assert.True(t, Exists(dir))

	// A second init must not clobber the existing file.
	err := WriteDefault(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, cfg.Milvus.Endpoint)
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.Milvus.Endpoint = "written:19530"
	require.NoError(t, Write(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "written:19530", loaded.Milvus.Endpoint)

	_, err = os.Stat(filepath.Join(dir, DefaultConfigDir, DefaultConfigFile))
	assert.NoError(t, err)
}
