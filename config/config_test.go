package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "stocktrack", cfg.System.Appid)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, 1816, cfg.Web.Port)
}

func TestLoadConfigFromYaml(t *testing.T) {
	cfile := filepath.Join(t.TempDir(), "stocktrack.yml")
	data := `
web:
  host: 127.0.0.1
  port: 9090
database:
  type: postgres
  name: stockdb
`
	require.NoError(t, os.WriteFile(cfile, []byte(data), 0o644))

	cfg, err := LoadConfig(cfile)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Web.Host)
	assert.Equal(t, 9090, cfg.Web.Port)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "stockdb", cfg.Database.Name)
	// untouched sections keep defaults
	assert.Equal(t, "stocktrack", cfg.System.Appid)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("STOCKTRACK_DB_TYPE", "postgres")
	t.Setenv("STOCKTRACK_DB_NAME", "override")
	t.Setenv("STOCKTRACK_SYSTEM_DEBUG", "off")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "override", cfg.Database.Name)
	assert.False(t, cfg.System.Debug)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
