// Package config provides centralized configuration management for the application.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// AppName names the config and data directories.
	AppName = "projbook"

	// EnvPrefix prefixes every projbook environment variable.
	EnvPrefix = "PROJBOOK"

	StorageJSON   = "json"
	StorageSQLite = "sqlite"
)

// Config holds all configuration parameters for the application.
type Config struct {
	// DataFile is the JSON file or SQLite database holding the address book.
	DataFile string
	Storage  string
	LogLevel string
	GitHub   GitHubConfig
}

// GitHubConfig holds GitHub specific configuration.
type GitHubConfig struct {
	Token string
}

// DataDir is the directory of the data file; logs are written below it.
func (c *Config) DataDir() string {
	return filepath.Dir(c.DataFile)
}

// LoadConfig loads configuration from .env, the environment and the optional
// config.yaml in the default config directory.
func LoadConfig() (*Config, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return nil, err
	}
	return Load(dir)
}

// Load is LoadConfig with an explicit config directory.
func Load(configDir string) (*Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("storage", StorageJSON)
	v.SetDefault("log_level", "warn")
	v.BindEnv("github.token", "GITHUB_TOKEN")
	v.BindEnv("data_file", EnvPrefix+"_DATA_FILE")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	config := &Config{
		DataFile: v.GetString("data_file"),
		Storage:  strings.ToLower(v.GetString("storage")),
		LogLevel: strings.ToLower(v.GetString("log_level")),
		GitHub: GitHubConfig{
			Token: v.GetString("github.token"),
		},
	}
	if config.DataFile == "" {
		path, err := DefaultDataFile(config.Storage)
		if err != nil {
			return nil, err
		}
		config.DataFile = path
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// SetStorage switches the backend. A data file that is still the default of
// the old backend moves to the default of the new one; an explicitly
// configured data file is kept.
func (c *Config) SetStorage(storage string) error {
	storage = strings.ToLower(storage)
	oldDefault, err := DefaultDataFile(c.Storage)
	if err != nil {
		return err
	}
	if c.DataFile == oldDefault {
		if c.DataFile, err = DefaultDataFile(storage); err != nil {
			return err
		}
	}
	c.Storage = storage
	return nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DataFile, validation.Required),
		validation.Field(&c.Storage, validation.Required, validation.In(StorageJSON, StorageSQLite)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/projbook or ~/.config/projbook.
func DefaultConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName), nil
}

// DefaultDataFile returns the data file under $XDG_DATA_HOME/projbook (or
// ~/.local/share/projbook) for the given storage backend.
func DefaultDataFile(storage string) (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".local", "share")
	}
	name := AppName + ".json"
	if storage == StorageSQLite {
		name = AppName + ".db"
	}
	return filepath.Join(base, AppName, name), nil
}
