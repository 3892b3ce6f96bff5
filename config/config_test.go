package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Run from an empty directory so no stray config file is picked up.
	t.Chdir(t.TempDir())

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "inventario.db", c.DatabasePath)
	assert.Equal(t, "log.txt", c.ActivityLogPath)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(
		"database_path: /tmp/test.db\nactivity_log_path: \"\"\nlog_level: debug\n",
	), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", c.DatabasePath)
	assert.Empty(t, c.ActivityLogPath)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestLoadRejectsEmptyDatabasePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("database_path: \"\"\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ALMACEN_DATABASE_PATH", "/var/lib/almacen/inventario.db")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/almacen/inventario.db", c.DatabasePath)
}
