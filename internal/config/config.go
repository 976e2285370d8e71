package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/formtrack/formtrack/internal/domain/entity"
	"github.com/formtrack/formtrack/pkg/utils"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config holds all application configuration
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Identity IdentityConfig `mapstructure:"identity"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Export   ExportConfig   `mapstructure:"export"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

// APIConfig holds backend endpoint configuration
type APIConfig struct {
	BaseURL       string        `mapstructure:"base_url"`
	PublicBaseURL string        `mapstructure:"public_base_url"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// IdentityConfig is the authenticated identity supplied to the
// client. A real deployment would populate this from an auth layer;
// here it is an explicit configuration input, never a hardcoded
// constant in the workflows.
type IdentityConfig struct {
	UserID   int64  `mapstructure:"user_id"`
	FullName string `mapstructure:"full_name"`
	Role     string `mapstructure:"role"`
}

// UploadConfig holds the advisory client-side attachment limits
type UploadConfig struct {
	MaxSize           int64    `mapstructure:"max_size"`
	AllowedExtensions []string `mapstructure:"allowed_extensions"`
}

// ExportConfig holds Excel export configuration
type ExportConfig struct {
	OutputDir string `mapstructure:"output_dir"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// Load loads configuration from an optional .env file, the config
// file, and environment variables, in increasing precedence
func Load(configPath string) (*Config, error) {
	// .env is optional; missing files are fine
	_ = gotenv.Load()

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// a missing config file falls back to defaults + env
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindEnvVars()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("api.base_url", "http://localhost:8000")
	viper.SetDefault("api.timeout", 30*time.Second)

	viper.SetDefault("identity.user_id", 0)
	viper.SetDefault("identity.role", string(entity.RoleEmployee))

	viper.SetDefault("upload.max_size", int64(10<<20))
	viper.SetDefault("upload.allowed_extensions",
		[]string{"pdf", "doc", "docx", "jpg", "jpeg", "png", "xls", "xlsx"})

	viper.SetDefault("export.output_dir", "exports")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.output_path", "logs/formtrack.log")
	viper.SetDefault("logger.format", "json")
}

// bindEnvVars binds environment variables to configuration
func bindEnvVars() {
	viper.BindEnv("api.base_url", "FORMTRACK_API_URL")
	viper.BindEnv("api.public_base_url", "FORMTRACK_PUBLIC_URL")
	viper.BindEnv("identity.user_id", "FORMTRACK_USER_ID")
	viper.BindEnv("identity.role", "FORMTRACK_ROLE")
	viper.BindEnv("identity.full_name", "FORMTRACK_FULL_NAME")
	viper.BindEnv("logger.level", "FORMTRACK_LOG_LEVEL")
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}
	if c.Identity.UserID <= 0 {
		return fmt.Errorf("identity.user_id is required")
	}

	role := entity.Role(c.Identity.Role)
	if role != entity.RoleEmployee && role != entity.RoleProjectManager {
		return fmt.Errorf("identity.role must be employee or project_manager, got %q", c.Identity.Role)
	}

	if c.Upload.MaxSize <= 0 {
		return fmt.Errorf("upload.max_size must be positive")
	}
	if len(c.Upload.AllowedExtensions) == 0 {
		return fmt.Errorf("upload.allowed_extensions must not be empty")
	}

	return nil
}

// IdentityValue returns the configured identity as a domain value
func (c *Config) IdentityValue() entity.Identity {
	return entity.Identity{
		UserID:   c.Identity.UserID,
		FullName: c.Identity.FullName,
		Role:     entity.Role(c.Identity.Role),
	}
}

// LoggerValue returns the logger settings in pkg/utils form
func (c *Config) LoggerValue() utils.LoggerConfig {
	return utils.LoggerConfig{
		Level:      c.Logger.Level,
		OutputPath: c.Logger.OutputPath,
		Format:     c.Logger.Format,
	}
}
