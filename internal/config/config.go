package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Logging LoggingConfig `mapstructure:"logging"`
	Events  EventsConfig  `mapstructure:"events"`
	Display DisplayConfig `mapstructure:"display"`
}

// GameConfig holds game setup settings
type GameConfig struct {
	// Seed for the board deal. Zero picks a time based seed.
	Seed int64 `mapstructure:"seed"`
}

// LoggingConfig holds process logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EventsConfig holds settings of the game event logger
type EventsConfig struct {
	LogLevel string   `mapstructure:"log_level"`
	Filter   []string `mapstructure:"filter"`
	DevMode  bool     `mapstructure:"dev_mode"`
}

// DisplayConfig holds terminal board settings
type DisplayConfig struct {
	Color            bool `mapstructure:"color"`
	ShowCoordinates  bool `mapstructure:"show_coordinates"`
	ShowHidden       bool `mapstructure:"show_hidden"`
	ShowLegalTargets bool `mapstructure:"show_legal_targets"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper

	// Files actually read, empty when running on defaults
	basePath    string
	overlayPath string
)

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game.seed", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("events.log_level", "debug")
	v.SetDefault("events.filter", []string{})
	v.SetDefault("events.dev_mode", false)

	v.SetDefault("display.color", true)
	v.SetDefault("display.show_coordinates", true)
	v.SetDefault("display.show_hidden", false)
	v.SetDefault("display.show_legal_targets", true)
}

// Init initializes the configuration. An explicit configPath that does
// not exist falls back to defaults; any other read error is returned.
func Init(configPath string) error {
	v = viper.New()
	basePath, overlayPath = "", ""

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/banqi")
	}

	v.SetEnvPrefix("BANQI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || (configPath != "" && errors.Is(err, fs.ErrNotExist))
		if !missing {
			return fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		basePath = v.ConfigFileUsed()
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// LoadEnvironmentConfig merges config.<env>.yaml over the loaded config.
// The overlay is looked up next to the base config file, or in the working
// directory when running on defaults. A missing overlay is not an error and
// the base file stays the one being watched.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	dir := "."
	if basePath != "" {
		dir = filepath.Dir(basePath)
	}
	envFile := filepath.Join(dir, fmt.Sprintf("config.%s.yaml", env))

	if _, err := os.Stat(envFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error checking environment config %s: %w", envFile, err)
	}

	if err := mergeOverlay(envFile); err != nil {
		return err
	}
	overlayPath = envFile

	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}
	if err := Validate(next); err != nil {
		return fmt.Errorf("environment config %s is invalid: %w", envFile, err)
	}
	cfg = next
	return nil
}

// mergeOverlay reads path on its own viper so the active config file and
// its type are left alone.
func mergeOverlay(path string) error {
	overlay := viper.New()
	overlay.SetConfigFile(path)
	if err := overlay.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading environment config %s: %w", path, err)
	}
	if err := v.MergeConfigMap(overlay.AllSettings()); err != nil {
		return fmt.Errorf("error merging environment config %s: %w", path, err)
	}
	return nil
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	_ = v.Unmarshal(cfg)
}

// GetString gets a string value from config
func GetString(key string) string {
	return v.GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return v.GetInt(key)
}

// GetInt64 gets an int64 value from config
func GetInt64(key string) int64 {
	return v.GetInt64(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return v.GetBool(key)
}

// GetStringSlice gets a string list from config
func GetStringSlice(key string) []string {
	return v.GetStringSlice(key)
}

// ConfigFilePath returns the path of the loaded base config file, empty
// when no file was read
func ConfigFilePath() string {
	return basePath
}

// OverlayFilePath returns the path of the merged environment config, empty
// when none was merged
func OverlayFilePath() string {
	return overlayPath
}

// WatchConfig enables hot-reloading of the config file. onChange receives
// the changed file and runs after the new values have been decoded; an
// invalid file keeps the previous values and is reported through onError.
func WatchConfig(onChange func(path string), onError func(error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		if err := reload(); err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		if onChange != nil {
			onChange(e.Name)
		}
	})
	v.WatchConfig()
}

func reload() error {
	if overlayPath != "" {
		if err := mergeOverlay(overlayPath); err != nil {
			return err
		}
	}
	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return fmt.Errorf("unable to decode reloaded config: %w", err)
	}
	if err := Validate(next); err != nil {
		return fmt.Errorf("reloaded config is invalid: %w", err)
	}
	cfg = next
	return nil
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	if !validLevels[c.Events.LogLevel] {
		return fmt.Errorf("events.log_level must be one of debug, info, warn, error, got %q", c.Events.LogLevel)
	}
	for _, eventType := range c.Events.Filter {
		if strings.TrimSpace(eventType) == "" {
			return fmt.Errorf("events.filter must not contain empty event types")
		}
	}
	return nil
}
