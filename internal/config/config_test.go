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

	assert.Equal(t, "openapi-legacy.yaml", cfg.Specs.Legacy)
	assert.Equal(t, "openapi.yaml", cfg.Specs.New)
	assert.Equal(t, "specdata.json", cfg.Cache.Path)
	assert.Equal(t, "https://techdocs.akamai.com/linode-api/reference/", cfg.TechDocs.BaseURL)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Zero(t, cfg.Replace.Workers)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
specs:
  legacy: /srv/specs/legacy.yaml
server:
  port: 9090
replace:
  workers: 4
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/specs/legacy.yaml", cfg.Specs.Legacy)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 4, cfg.Replace.Workers)

	// Unset fields keep their defaults.
	assert.Equal(t, "openapi.yaml", cfg.Specs.New)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("specs: ["), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
