package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aadhaar-sanket/sanket/internal/logging"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View dashboard logs",
	Long: `View and filter the dashboard's diagnostic log.

Reads dashboard.log and its rotated backups from the configured log
directory, oldest entry first.

Examples:
  # Show the last 50 entries
  sanket logs

  # Only fetch failures
  sanket logs --level error --grep "fetch failed"

  # Entries from one dashboard run, as JSON
  sanket logs --run 6f1c... --format json`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

var (
	logsTail   int
	logsLevel  string
	logsSince  string
	logsGrep   string
	logsRun    string
	logsFormat string
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 50, "Number of entries to show (0 for all)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "Filter by minimum level (debug/info/warn/error)")
	logsCmd.Flags().StringVar(&logsSince, "since", "", "Show logs since duration ago (e.g., 1h, 30m)")
	logsCmd.Flags().StringVar(&logsGrep, "grep", "", "Only entries whose message contains this text")
	logsCmd.Flags().StringVar(&logsRun, "run", "", "Only entries from this dashboard run ID")
	logsCmd.Flags().StringVar(&logsFormat, "format", "text", "Output format (text/json)")
}

func runLogs(cmd *cobra.Command, args []string) error {
	if logsFormat != "text" && logsFormat != "json" {
		return fmt.Errorf("invalid format %q: must be text or json", logsFormat)
	}

	filter := logging.LogFilter{
		RunID:           logsRun,
		MessageContains: logsGrep,
	}
	if logsLevel != "" {
		level := strings.ToUpper(logsLevel)
		if logging.ParseLevel(level) != level {
			return fmt.Errorf("invalid level %q: must be one of %s", logsLevel, strings.Join(logging.ValidLevels(), ", "))
		}
		filter.Level = level
	}
	if logsSince != "" {
		d, err := time.ParseDuration(logsSince)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", logsSince, err)
		}
		filter.StartTime = time.Now().Add(-d)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	entries, err := logging.AggregateLogs(cfg.Logging.ResolveDir())
	if err != nil {
		return err
	}
	entries = logging.FilterLogs(entries, filter)
	if logsTail > 0 && len(entries) > logsTail {
		entries = entries[len(entries)-logsTail:]
	}

	if logsFormat == "json" {
		return logging.FormatJSON(cmd.OutOrStdout(), entries)
	}
	return logging.FormatText(cmd.OutOrStdout(), entries)
}
