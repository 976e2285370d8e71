package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/formtrack/formtrack/internal/domain/entity"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: http://backend:8000
  public_base_url: https://files.example.com
  timeout: 10s
identity:
  user_id: 3
  full_name: Jane Reviewer
  role: project_manager
logger:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://backend:8000", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "debug", cfg.Logger.Level)

	identity := cfg.IdentityValue()
	assert.Equal(t, int64(3), identity.UserID)
	assert.Equal(t, entity.RoleProjectManager, identity.Role)
	assert.True(t, identity.CanReview())

	// defaults fill in what the file leaves out
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxSize)
	assert.Contains(t, cfg.Upload.AllowedExtensions, "pdf")
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("FORMTRACK_USER_ID", "1")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, int64(1), cfg.Identity.UserID)
}

func TestLoad_RejectsMissingIdentity(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: http://backend:8000
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		API:      APIConfig{BaseURL: "http://localhost:8000", Timeout: time.Second},
		Identity: IdentityConfig{UserID: 1, Role: "employee"},
		Upload:   UploadConfig{MaxSize: 1024, AllowedExtensions: []string{"pdf"}},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"missing base url", func(c *Config) { c.API.BaseURL = "" }},
		{"zero timeout", func(c *Config) { c.API.Timeout = 0 }},
		{"missing user id", func(c *Config) { c.Identity.UserID = 0 }},
		{"unknown role", func(c *Config) { c.Identity.Role = "accountant" }},
		{"zero max size", func(c *Config) { c.Upload.MaxSize = 0 }},
		{"no extensions", func(c *Config) { c.Upload.AllowedExtensions = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
