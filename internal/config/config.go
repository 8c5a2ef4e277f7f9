// Package config handles the XDG configuration directory and the optional
// config.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "tododay"

	// ConfigFile is the optional settings filename inside the config dir.
	ConfigFile = "config.yaml"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Suggestion defaults.
const (
	DefaultModel     = "gemini-2.5-flash"
	DefaultAPIKeyEnv = "API_KEY"
	DefaultLocation  = "us-central1"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `yaml:"-"`

	// Debug enables debug logging.
	Debug bool `yaml:"-"`

	// Quiet suppresses informational output.
	Quiet bool `yaml:"-"`

	Storage Storage `yaml:"storage"`
	Suggest Suggest `yaml:"suggest"`
}

// Storage selects where the task collection is mirrored.
type Storage struct {
	Backend     string `yaml:"backend"`
	Path        string `yaml:"path"`
	RedisAddr   string `yaml:"redis_addr"`
	RedisDB     int    `yaml:"redis_db"`
	RedisPrefix string `yaml:"redis_prefix"`
}

// Suggest configures the suggestion service.
type Suggest struct {
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"`

	// Project and Location select the Vertex AI endpoint used when no API
	// key is set. Project defaults to the one in the credentials.
	Project  string `yaml:"project"`
	Location string `yaml:"location"`

	// LegacyErrorFilter drops suggestions whose text contains "error".
	LegacyErrorFilter bool `yaml:"legacy_error_filter"`
}

// Default returns the built-in settings for dir.
func Default(dir string) *Config {
	return &Config{
		Dir: dir,
		Storage: Storage{
			Backend:     BackendFile,
			RedisAddr:   "localhost:6379",
			RedisPrefix: AppName,
		},
		Suggest: Suggest{
			Model:     DefaultModel,
			APIKeyEnv: DefaultAPIKeyEnv,
			Location:  DefaultLocation,
		},
	}
}

// New creates a new Config with the default or specified config directory
// and applies config.yaml from it when present.
// If configDir is empty, uses XDG_CONFIG_HOME/tododay or $HOME/.config/tododay.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := Default(dir)
	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile overlays config.yaml on top of the defaults. A missing file is
// not an error.
func (c *Config) loadFile() error {
	data, err := os.ReadFile(c.FilePath())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}

	switch c.Storage.Backend {
	case "":
		c.Storage.Backend = BackendFile
	case BackendFile, BackendSQLite, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("invalid %s: unknown storage backend %q", ConfigFile, c.Storage.Backend)
	}
	if c.Suggest.Model == "" {
		c.Suggest.Model = DefaultModel
	}
	if c.Suggest.APIKeyEnv == "" {
		c.Suggest.APIKeyEnv = DefaultAPIKeyEnv
	}
	if c.Suggest.Location == "" {
		c.Suggest.Location = DefaultLocation
	}
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path to config.yaml.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// DataDir returns the directory local storage backends write to.
func (c *Config) DataDir() string {
	return c.Dir
}

// APIKey returns the suggestion service API key from the environment,
// or "" when unset.
func (c *Config) APIKey() string {
	return os.Getenv(c.Suggest.APIKeyEnv)
}
