// Package logging provides structured diagnostics for sanket.
//
// Logs are JSON lines written through log/slog to dashboard.log inside the
// configured log directory. The dashboard never writes to the terminal while
// the UI owns it, so this file is the only place fetch failures surface.
//
// # Usage
//
//	logger, err := logging.NewLoggerWithRotation(dir, "INFO", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	log := logger.WithRun(runID).WithComponent("tui")
//	log.Error("insights fetch failed", "error", err.Error(), "url", url, "stage", "transport")
//
// Output:
//
//	{"time":"...","level":"ERROR","msg":"insights fetch failed","run_id":"...","component":"tui","error":"...","url":"...","stage":"transport"}
//
// # Rotation
//
// [RotatingWriter] rotates dashboard.log once it would exceed MaxSizeMB,
// keeping MaxBackups numbered copies (dashboard.log.1 is the newest).
//
// # Reading logs back
//
// [AggregateLogs] parses dashboard.log and its uncompressed backups,
// [FilterLogs] narrows the result and [FormatText] or [FormatJSON] print it.
// These back the "sanket logs" command.
//
// All types are safe for concurrent use. Child loggers share the parent's
// destination, so closing any of them closes the file for all.
package logging
