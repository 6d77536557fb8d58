package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DatabaseConfig holds settings for the local object store.
type DatabaseConfig struct {
	// Path is the store file. ":memory:" keeps everything in memory.
	Path string `mapstructure:"path" yaml:"path"`

	// QueueDepth is how many units of work may wait for the execution
	// context before submitters block.
	QueueDepth int `mapstructure:"queue_depth" yaml:"queue_depth"`
}

// LogConfig holds logging preferences.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

const (
	defaultQueueDepth = 64
	defaultLogLevel   = "warn"
)

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/activitylist/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "activitylist", "config.yaml")
}

// DefaultDatabasePath returns the default store file next to the config.
func DefaultDatabasePath() string {
	return filepath.Join(filepath.Dir(DefaultConfigPath()), "activitylist.db")
}

func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Database: DatabaseConfig{
			Path:       DefaultDatabasePath(),
			QueueDepth: defaultQueueDepth,
		},
		Log: LogConfig{
			Level: defaultLogLevel,
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// Values may be overridden with ACTIVITYLIST_* environment variables, e.g.
// ACTIVITYLIST_DATABASE_PATH. If the file does not exist, the defaults
// (with environment overrides) are returned.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("activitylist")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("database.path", DefaultDatabasePath())
	v.SetDefault("database.queue_depth", defaultQueueDepth)
	v.SetDefault("log.level", defaultLogLevel)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if _, ok := err.(*os.PathError); !ok && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Database.QueueDepth <= 0 {
		cfg.Database.QueueDepth = defaultQueueDepth
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("database", cfg.Database)
	v.Set("log", cfg.Log)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
