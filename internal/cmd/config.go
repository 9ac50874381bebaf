package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aadhaar-sanket/sanket/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View Sanket configuration",
	Long: `View Sanket configuration.

Without arguments, displays the current configuration. Values are merged
from defaults, the config file, a .env file in the working directory,
SANKET_* environment variables and command flags, in increasing priority.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at $XDG_CONFIG_HOME/sanket/config.yaml (or the --config path) with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(out, "# from %s\n", used)
	} else {
		fmt.Fprintln(out, "# no config file found, showing defaults and overrides")
	}
	_, err = out.Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath()
	if err := config.WriteDefault(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", path)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	path := configPath()
	if used := viper.ConfigFileUsed(); used != "" {
		path = used
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
	return err
}

// configPath is the --config file when given, else the default location
func configPath() string {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		return cfgFile
	}
	return config.ConfigFile()
}
