package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
app:
  name: dpboard
  env: test
  log_level: debug

server:
  port: "9090"

tinybird:
  base_url: "https://api.tinybird.co/v0/pipes"
  token: "tb-token"
  limit: 200
  company_url: "acme-3pl"

warehouse:
  base_url: "https://wh.example.com"
  token: "wh-token"

llm:
  api_key: "sk-test"
  model: "gpt-4o"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dpboard", cfg.App.Name)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "9090", cfg.GetServerPort())
	assert.Equal(t, "tb-token", cfg.Tinybird.Token)
	assert.Equal(t, 200, cfg.Tinybird.Limit)
	assert.Equal(t, "acme-3pl", cfg.Tinybird.CompanyURL)

	assert.True(t, cfg.WarehouseEnabled())
	assert.True(t, cfg.LLMEnabled())
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)

	require.NoError(t, cfg.Validate())
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
tinybird:
  base_url: "https://api.tinybird.co/v0/pipes"
  token: "tb-token"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.GetServerPort())
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 500, cfg.Tinybird.Limit)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, int64(512), cfg.LLM.MaxTokens)
	assert.Equal(t, 0.2, cfg.LLM.Temperature)

	assert.False(t, cfg.WarehouseEnabled())
	assert.False(t, cfg.LLMEnabled())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config failed")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Tinybird: TinybirdConfig{
				BaseURL: "https://api.tinybird.co/v0/pipes",
				Token:   "tb-token",
			},
		}
	}

	t.Run("valid minimal config", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("missing tinybird base_url", func(t *testing.T) {
		cfg := base()
		cfg.Tinybird.BaseURL = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "base_url is required")
	})

	t.Run("missing tinybird token", func(t *testing.T) {
		cfg := base()
		cfg.Tinybird.Token = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "token is required")
	})

	t.Run("warehouse base_url without token", func(t *testing.T) {
		cfg := base()
		cfg.Warehouse.BaseURL = "https://wh.example.com"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "warehouse token is required")
	})
}
