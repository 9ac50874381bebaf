package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/aadhaar-sanket/sanket/internal/logging"
)

// EnvPrefix is the prefix for environment overrides, e.g. SANKET_API_BASE_URL.
const EnvPrefix = "SANKET"

// Config represents the complete sanket configuration
type Config struct {
	API       APIConfig       `mapstructure:"api" yaml:"api"`
	Dashboard DashboardConfig `mapstructure:"dashboard" yaml:"dashboard"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
	Serve     ServeConfig     `mapstructure:"serve" yaml:"serve"`
}

// APIConfig controls how the dashboard reaches the insights backend
type APIConfig struct {
	// BaseURL is the backend origin; the dashboard requests {BaseURL}/api/insights
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	// Timeout bounds the insights request (0 = no timeout)
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
	// StrictSchema validates every payload row after decoding (default: false)
	StrictSchema bool `mapstructure:"strict_schema" yaml:"strict_schema"`
}

// DashboardConfig controls the terminal dashboard
type DashboardConfig struct {
	// FreezeDistrict is the district acknowledged by the "f" key (default: "Thoubal")
	FreezeDistrict string `mapstructure:"freeze_district" yaml:"freeze_district"`
	// ChartWidth is the width in cells of the longest bar (default: 40, min: 10, max: 200)
	ChartWidth int `mapstructure:"chart_width" yaml:"chart_width"`
	// AltScreen runs the dashboard in the terminal's alternate screen (default: true)
	AltScreen bool `mapstructure:"alt_screen" yaml:"alt_screen"`
}

// LoggingConfig controls diagnostics logging
type LoggingConfig struct {
	// Enabled controls whether diagnostics are written (default: true)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is the log directory. Empty means <config dir>/logs. Supports ~.
	Dir string `mapstructure:"dir" yaml:"dir"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
}

// ServeConfig controls the development insights server
type ServeConfig struct {
	// Addr is the listen address (default: "127.0.0.1:8000")
	Addr string `mapstructure:"addr" yaml:"addr"`
	// PayloadFile is the JSON payload to serve. Empty serves the built-in sample.
	PayloadFile string `mapstructure:"payload_file" yaml:"payload_file"`
	// Watch reloads PayloadFile when it changes
	Watch bool `mapstructure:"watch" yaml:"watch"`
	// RateLimitPerMinute caps requests per client IP (0 = unlimited)
	RateLimitPerMinute int `mapstructure:"rate_limit_per_minute" yaml:"rate_limit_per_minute"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	rotation := logging.DefaultRotationConfig()
	return &Config{
		API: APIConfig{
			BaseURL:      "http://127.0.0.1:8000",
			Timeout:      0, // The dashboard waits for the backend indefinitely
			StrictSchema: false,
		},
		Dashboard: DashboardConfig{
			FreezeDistrict: "Thoubal",
			ChartWidth:     40,
			AltScreen:      true,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			Dir:        "",
			MaxSizeMB:  rotation.MaxSizeMB,
			MaxBackups: rotation.MaxBackups,
		},
		Serve: ServeConfig{
			Addr:               "127.0.0.1:8000",
			PayloadFile:        "",
			Watch:              false,
			RateLimitPerMinute: 0,
		},
	}
}

// SetDefaults registers default values with v. A nil v means the global viper.
func SetDefaults(v *viper.Viper) {
	if v == nil {
		v = viper.GetViper()
	}
	defaults := Default()

	// API defaults
	v.SetDefault("api.base_url", defaults.API.BaseURL)
	v.SetDefault("api.timeout", defaults.API.Timeout)
	v.SetDefault("api.strict_schema", defaults.API.StrictSchema)

	// Dashboard defaults
	v.SetDefault("dashboard.freeze_district", defaults.Dashboard.FreezeDistrict)
	v.SetDefault("dashboard.chart_width", defaults.Dashboard.ChartWidth)
	v.SetDefault("dashboard.alt_screen", defaults.Dashboard.AltScreen)

	// Logging defaults
	v.SetDefault("logging.enabled", defaults.Logging.Enabled)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.dir", defaults.Logging.Dir)
	v.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	v.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	// Serve defaults
	v.SetDefault("serve.addr", defaults.Serve.Addr)
	v.SetDefault("serve.payload_file", defaults.Serve.PayloadFile)
	v.SetDefault("serve.watch", defaults.Serve.Watch)
	v.SetDefault("serve.rate_limit_per_minute", defaults.Serve.RateLimitPerMinute)
}

// BindEnv makes every key overridable through SANKET_* variables
// (api.base_url -> SANKET_API_BASE_URL).
func BindEnv(v *viper.Viper) {
	if v == nil {
		v = viper.GetViper()
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the configuration from the global viper into a Config struct
// and validates it
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom is Load for an explicit viper instance.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sanket")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sanket"
	}
	return filepath.Join(home, ".config", "sanket")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ResolveDir returns the log directory. An empty Dir resolves to
// <config dir>/logs; a leading ~ expands to the home directory.
func (l *LoggingConfig) ResolveDir() string {
	if l.Dir == "" {
		return filepath.Join(ConfigDir(), "logs")
	}

	path := l.Dir
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}
	return path
}

// Marshal renders cfg as YAML in the layout read back by Load.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// WriteDefault writes the default configuration to path, refusing to
// overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Marshal(Default())
	if err != nil {
		return err
	}

	header := "# sanket configuration\n# Environment overrides use SANKET_<SECTION>_<KEY>, e.g. SANKET_API_BASE_URL.\n\n"
	if err := os.WriteFile(path, append([]byte(header), data...), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
