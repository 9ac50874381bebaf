package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aadhaar-sanket/sanket/internal/errors"
	"github.com/aadhaar-sanket/sanket/internal/insights"
	"github.com/aadhaar-sanket/sanket/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"start"},
	Short:   "Open the insights dashboard",
	Long: `Open the insights dashboard.

The dashboard requests <base_url>/api/insights once and shows a loading
placeholder until the response arrives. If the request fails the placeholder
stays on screen and the failure is written to the log.

Keys:
  f        freeze operator IDs in the configured district
  F        freeze operator IDs in a district you type
  j/k g/G  scroll
  q        quit

With --once, or when stdout is not a terminal, the dashboard is rendered a
single time to stdout and the command exits non-zero if the request failed.`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

var dashboardOnce bool

func init() {
	rootCmd.AddCommand(dashboardCmd)

	dashboardCmd.Flags().String("base-url", "", "Insights backend base URL (overrides api.base_url)")
	dashboardCmd.Flags().BoolVar(&dashboardOnce, "once", false, "Render once to stdout and exit")
	bindFlag("api.base_url", dashboardCmd.Flags().Lookup("base-url"))
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	headless := dashboardOnce || !term.IsTerminal(int(os.Stdout.Fd()))

	logger, err := newLogger(cfg, headless)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()
	logger = logger.WithRun(uuid.NewString())

	client := insights.NewClient(cfg.API.BaseURL, insights.WithStrictSchema(cfg.API.StrictSchema))
	logger.Info("dashboard starting", "url", client.URL(), "headless", headless)

	app := tui.New(tui.Deps{
		Fetcher:        client,
		Logger:         logger,
		FreezeDistrict: cfg.Dashboard.FreezeDistrict,
		ChartWidth:     cfg.Dashboard.ChartWidth,
		Timeout:        cfg.API.Timeout,
	}, cfg.Dashboard.AltScreen)

	if headless {
		return dashboardError(app.RunOnce(cmd.OutOrStdout()))
	}
	return dashboardError(app.Run())
}

// dashboardError passes user-facing errors through unchanged and labels
// anything else as an internal failure.
func dashboardError(err error) error {
	if err == nil || errors.IsUserFacing(err) {
		return err
	}
	return fmt.Errorf("dashboard failed unexpectedly: %w", err)
}
