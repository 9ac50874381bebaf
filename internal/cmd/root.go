package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aadhaar-sanket/sanket/internal/config"
	"github.com/aadhaar-sanket/sanket/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "sanket",
	Short: "Aadhaar-Sanket insights dashboard",
	Long: `Sanket renders the Aadhaar-Sanket insights in the terminal: administrative
migration discovery, ghost update anomalies and the child service gap.

The dashboard loads GET <base_url>/api/insights once on start. Use
'sanket serve' to run a local insights backend for development.`,
	SilenceUsage: true,
}

// flagBindings maps config keys to the flags that override them. They are
// re-bound on every initConfig because the global viper is reset there.
var flagBindings = map[string]*pflag.Flag{}

// bindFlag registers flag as the override for config key.
func bindFlag(key string, flag *pflag.Flag) {
	flagBindings[key] = flag
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $XDG_CONFIG_HOME/sanket/config.yaml)")
	bindFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	viper.Reset()
	for key, flag := range flagBindings {
		_ = viper.BindPFlag(key, flag)
	}

	// Set defaults first so they're available even without a config file
	config.SetDefaults(nil)

	cfgFile := viper.GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	// .env in the working directory; real environment variables win
	_ = godotenv.Load()

	// SANKET_API_BASE_URL for api.base_url and so on
	config.BindEnv(nil)

	// A missing default config file is fine; an explicit one must be readable
	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Warning: failed to read config file %s: %v\n", cfgFile, err)
	}
}

// loadConfig loads and validates the merged configuration
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger builds the diagnostic logger from cfg. With logging disabled it
// discards everything. An unset directory logs to stderr when stderr is
// free (no terminal UI) and to the config directory otherwise.
func newLogger(cfg *config.Config, stderrFree bool) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}

	if cfg.Logging.Dir == "" && stderrFree {
		return logging.NewLogger("", cfg.Logging.Level)
	}

	logger, err := logging.NewLoggerWithRotation(cfg.Logging.ResolveDir(), cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		Compress:   false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	return logger, nil
}
