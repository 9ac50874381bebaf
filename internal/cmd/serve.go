package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aadhaar-sanket/sanket/internal/fixture"
	"github.com/aadhaar-sanket/sanket/internal/insights"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local insights backend",
	Long: `Run a development server answering GET /api/insights.

The payload comes from --file, or a built-in sample when no file is given.
With --watch the file is reloaded whenever it changes; a reload that fails to
parse keeps the previous payload.

Examples:
  sanket serve
  sanket serve --addr 127.0.0.1:9000 --file payload.json --watch`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "Listen address (overrides serve.addr)")
	serveCmd.Flags().String("file", "", "Payload JSON file (overrides serve.payload_file)")
	serveCmd.Flags().Bool("watch", false, "Reload the payload file when it changes")
	serveCmd.Flags().Int("rate-limit", 0, "Requests per minute per client IP, 0 for none")
	bindFlag("serve.addr", serveCmd.Flags().Lookup("addr"))
	bindFlag("serve.payload_file", serveCmd.Flags().Lookup("file"))
	bindFlag("serve.watch", serveCmd.Flags().Lookup("watch"))
	bindFlag("serve.rate_limit_per_minute", serveCmd.Flags().Lookup("rate-limit"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	store := fixture.NewStore(fixture.SamplePayload(), fixture.SampleSource)
	if path := cfg.Serve.PayloadFile; path != "" {
		if err := store.LoadFile(path); err != nil {
			return err
		}
	}

	if cfg.Serve.Watch {
		watcher, err := fixture.NewWatcher(store, cfg.Serve.PayloadFile, logger)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", cfg.Serve.PayloadFile, err)
		}
		watcher.Start()
		defer watcher.Stop()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, _ := store.Source()
	fmt.Fprintf(cmd.OutOrStdout(), "Serving %s on http://%s%s\n", source, cfg.Serve.Addr, insights.Path)

	return fixture.NewServer(store, fixture.Options{
		Addr:               cfg.Serve.Addr,
		RateLimitPerMinute: cfg.Serve.RateLimitPerMinute,
		Logger:             logger,
	}).Serve(ctx)
}
