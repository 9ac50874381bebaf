package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadhaar-sanket/sanket/internal/errors"
	"github.com/aadhaar-sanket/sanket/internal/fixture"
	"github.com/aadhaar-sanket/sanket/internal/logging"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

// isolate points config and logs at fresh temp directories
func isolate(t *testing.T) (configHome string) {
	t.Helper()
	configHome = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("SANKET_LOGGING_ENABLED", "false")
	return configHome
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "sanket" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "sanket")
	}

	cmdMap := make(map[string]*cobra.Command)
	for _, c := range rootCmd.Commands() {
		cmdMap[c.Name()] = c
	}

	for _, expected := range []string{"dashboard", "freeze", "serve", "config", "logs"} {
		if cmdMap[expected] == nil {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}

	if dash := cmdMap["dashboard"]; dash != nil && !dash.HasAlias("start") {
		t.Error("dashboard should be aliased as start")
	}
}

func TestFreezeCommand(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"named district", []string{"freeze", "Thoubal"}, "ACTION TAKEN: Operator IDs in Thoubal have been frozen for audit.\n"},
		{"multi word district", []string{"freeze", "Imphal", "West"}, "ACTION TAKEN: Operator IDs in Imphal West have been frozen for audit.\n"},
		{"configured default", []string{"freeze"}, "ACTION TAKEN: Operator IDs in Thoubal have been frozen for audit.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(rootCmd, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestFreezeCommand_EnvDefault(t *testing.T) {
	isolate(t)
	t.Setenv("SANKET_DASHBOARD_FREEZE_DISTRICT", "Kakching")

	out, err := executeCommand(rootCmd, "freeze")
	require.NoError(t, err)
	assert.Contains(t, out, "Operator IDs in Kakching")
}

func TestConfigCommands(t *testing.T) {
	configHome := isolate(t)
	want := filepath.Join(configHome, "sanket", "config.yaml")

	out, err := executeCommand(rootCmd, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, want)
	require.FileExists(t, want)

	_, err = executeCommand(rootCmd, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	out, err = executeCommand(rootCmd, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, want, strings.TrimSpace(out))

	out, err = executeCommand(rootCmd, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "# from "+want)
	assert.Contains(t, out, "base_url: http://127.0.0.1:8000")
	assert.Contains(t, out, "freeze_district: Thoubal")
}

func TestConfigShow_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("SANKET_DASHBOARD_CHART_WIDTH", "64")

	out, err := executeCommand(rootCmd, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "chart_width: 64")
}

func TestConfigShow_Invalid(t *testing.T) {
	isolate(t)
	t.Setenv("SANKET_API_BASE_URL", "not a url")

	_, err := executeCommand(rootCmd, "config", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "api.base_url")
}

func TestDashboardOnce(t *testing.T) {
	isolate(t)

	srv := httptest.NewServer(fixture.NewRouter(fixture.NewStore(fixture.SamplePayload(), fixture.SampleSource), fixture.Options{}))
	defer srv.Close()

	out, err := executeCommand(rootCmd, "dashboard", "--once", "--base-url", srv.URL)
	require.NoError(t, err)
	for _, want := range []string{"Administrative Migration Discovery", "Ghost Update Anomalies", "Child Service Gap", "Khairthal-Tijara"} {
		assert.Contains(t, out, want)
	}
}

func TestDashboardOnce_FetchFailure(t *testing.T) {
	isolate(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	out, err := executeCommand(rootCmd, "start", "--once", "--base-url", srv.URL)
	require.Error(t, err)
	assert.Contains(t, out, "Analyzing Data...")
	assert.NotContains(t, out, "Ghost Update Anomalies")
	assert.Contains(t, err.Error(), "insights endpoint returned an error status")
	assert.NotContains(t, err.Error(), "failed unexpectedly")
}

func TestDashboardError(t *testing.T) {
	assert.NoError(t, dashboardError(nil))

	fetchErr := errors.NewFetchError("http://x/api/insights", errors.StageStatus, errors.ErrUnexpectedStatus).WithStatusCode(503)
	assert.Same(t, fetchErr, dashboardError(fetchErr))

	internal := errors.New("program killed")
	err := dashboardError(internal)
	assert.ErrorIs(t, err, internal)
	assert.Equal(t, "dashboard failed unexpectedly: program killed", err.Error())
}

func TestServe_InvalidPayloadFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "payload.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err := executeCommand(rootCmd, "serve", "--file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLogsCommand(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	t.Setenv("SANKET_LOGGING_DIR", dir)

	logger, err := logging.NewLogger(dir, "debug")
	require.NoError(t, err)
	run := logger.WithRun("run-1").WithComponent("dashboard")
	run.Info("dashboard starting", "url", "http://127.0.0.1:8000/api/insights")
	run.Error("insights fetch failed", "stage", "transport")
	logger.WithRun("run-2").Warn("insights payload slow", "elapsed", "3s")
	require.NoError(t, logger.Close())

	t.Run("level filter as json", func(t *testing.T) {
		out, err := executeCommand(rootCmd, "logs", "--level", "error", "--grep", "", "--run", "", "--format", "json")
		require.NoError(t, err)

		var entries []logging.LogEntry
		require.NoError(t, json.Unmarshal([]byte(out), &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "insights fetch failed", entries[0].Message)
		assert.Equal(t, "run-1", entries[0].RunID)
	})

	t.Run("run filter as text", func(t *testing.T) {
		out, err := executeCommand(rootCmd, "logs", "--level", "", "--grep", "", "--run", "run-2", "--format", "text")
		require.NoError(t, err)
		assert.Contains(t, out, "insights payload slow")
		assert.NotContains(t, out, "dashboard starting")
	})

	t.Run("grep", func(t *testing.T) {
		out, err := executeCommand(rootCmd, "logs", "--level", "", "--run", "", "--grep", "starting", "--format", "text")
		require.NoError(t, err)
		assert.Contains(t, out, "dashboard starting")
		assert.NotContains(t, out, "fetch failed")
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := executeCommand(rootCmd, "logs", "--format", "xml")
		require.Error(t, err)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := executeCommand(rootCmd, "logs", "--format", "text", "--level", "loud")
		require.Error(t, err)
	})
}
