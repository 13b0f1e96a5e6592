package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "panelctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "panel-fetcher::transitions", cfg.Redis.JournalKey)
		assert.Empty(t, cfg.Redis.Address)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("File", func(t *testing.T) {
		path := writeConfig(t, `
base_url: https://registry.example.com
token: abc
timeout: 5s
redis:
  address: localhost:6379
  db: 2
metrics:
  address: ":9090"
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "https://registry.example.com", cfg.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Equal(t, "localhost:6379", cfg.Redis.Address)
		assert.Equal(t, 2, cfg.Redis.DB)
		assert.Equal(t, ":9090", cfg.Metrics.Address)

		settings := cfg.Settings()
		assert.Equal(t, "https://registry.example.com", settings.BaseURL)
		assert.Equal(t, "abc", settings.Token)
	})

	t.Run("EnvironmentOverridesFile", func(t *testing.T) {
		path := writeConfig(t, "base_url: https://file.example.com\n")

		t.Setenv("PANEL_BASE_URL", "https://env.example.com")
		t.Setenv("PANEL_REDIS_ADDRESS", "redis:6379")

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "https://env.example.com", cfg.BaseURL)
		assert.Equal(t, "redis:6379", cfg.Redis.Address)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid", cfg: Config{BaseURL: "http://localhost:8000", Timeout: time.Second}},
		{name: "missing base url", cfg: Config{Timeout: time.Second}, wantErr: true},
		{name: "relative base url", cfg: Config{BaseURL: "/api", Timeout: time.Second}, wantErr: true},
		{name: "zero timeout", cfg: Config{BaseURL: "http://localhost:8000"}, wantErr: true},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
