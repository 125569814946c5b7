package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds application configuration. The session record (server
// URL, credentials, token) is owned by the session store, not the
// config file.
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// UIConfig holds browsing screen preferences
type UIConfig struct {
	RowLimit    int    `mapstructure:"row_limit"`    // Max items rendered per bucket row
	DefaultSort string `mapstructure:"default_sort"` // "added", "name", "rating", "year"
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			RowLimit:    20,
			DefaultSort: "added",
		},
		Logging: LoggingConfig{
			File:  filepath.Join(DataDir(), "jellyflix.log"),
			Level: "INFO",
		},
	}
}

// DataDir returns the per-OS directory for durable application data
// (session store, logs)
func DataDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "jellyflix")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "jellyflix")
	}
}

// configDir returns the per-OS config file directory
func configDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "jellyflix")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "jellyflix")
	}
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir())
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("JELLYFLIX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the current configuration to the config file
func Save(cfg *Config) error {
	dir := configDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set("ui.row_limit", cfg.UI.RowLimit)
	viper.Set("ui.default_sort", cfg.UI.DefaultSort)
	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	if err := viper.WriteConfigAs(filepath.Join(dir, "config.yaml")); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
