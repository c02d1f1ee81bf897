package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// LogConfig controls the internal/logging sink.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`

	File FileLogConfig `mapstructure:"file"`
}

// FileLogConfig configures an optional rotating file sink. When enabled,
// log output goes to this file instead of stderr.
type FileLogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// Config is monodelta's top-level configuration.
type Config struct {
	Store         string    `mapstructure:"store"`
	BookmarksFile string    `mapstructure:"bookmarks_file"`
	Log           LogConfig `mapstructure:"log"`
}

// Load reads configuration from the YAML file at path, applying defaults for
// anything the file omits. A missing file is not an error: Load returns the
// defaults untouched, since every setting has a sensible default.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			// With an explicit config file, viper reports a missing file as
			// the underlying not-exist error rather than
			// ConfigFileNotFoundError, so both are tolerated.
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store", "./monodelta-store")
	v.SetDefault("bookmarks_file", "./bookmarks.yaml")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file.enabled", false)
	v.SetDefault("log.file.max_size_mb", 100)
	v.SetDefault("log.file.max_backups", 5)
	v.SetDefault("log.file.max_age_days", 30)
	v.SetDefault("log.file.compress", true)
}

func (cfg *Config) validate() error {
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid log.level %q (want debug/info/warn/error)", cfg.Log.Level)
	}
	switch cfg.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("config: invalid log.format %q (want json/text)", cfg.Log.Format)
	}
	if cfg.Store == "" {
		return fmt.Errorf("config: store directory must not be empty")
	}
	if cfg.BookmarksFile == "" {
		return fmt.Errorf("config: bookmarks_file must not be empty")
	}
	return nil
}
