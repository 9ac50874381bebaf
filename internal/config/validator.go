package config

import (
	"fmt"
	"net"
	"net/url"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "dashboard.chart_width")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Chart width bounds in terminal cells
const (
	MinChartWidth = 10
	MaxChartWidth = 200
)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateAPI()...)
	errors = append(errors, c.validateDashboard()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateServe()...)

	return errors
}

// validateAPI validates the APIConfig
func (c *Config) validateAPI() []ValidationError {
	var errors []ValidationError

	u, err := url.Parse(c.API.BaseURL)
	switch {
	case c.API.BaseURL == "":
		errors = append(errors, ValidationError{
			Field:   "api.base_url",
			Value:   c.API.BaseURL,
			Message: "is required",
		})
	case err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https"):
		errors = append(errors, ValidationError{
			Field:   "api.base_url",
			Value:   c.API.BaseURL,
			Message: "must be an absolute http or https URL",
		})
	case u.RawQuery != "" || u.Fragment != "":
		errors = append(errors, ValidationError{
			Field:   "api.base_url",
			Value:   c.API.BaseURL,
			Message: "must not carry a query or fragment",
		})
	}

	if c.API.Timeout < 0 {
		errors = append(errors, ValidationError{
			Field:   "api.timeout",
			Value:   c.API.Timeout,
			Message: "must be non-negative (0 disables the timeout)",
		})
	}

	return errors
}

// validateDashboard validates the DashboardConfig
func (c *Config) validateDashboard() []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(c.Dashboard.FreezeDistrict) == "" {
		errors = append(errors, ValidationError{
			Field:   "dashboard.freeze_district",
			Value:   c.Dashboard.FreezeDistrict,
			Message: "must not be empty",
		})
	}

	if c.Dashboard.ChartWidth < MinChartWidth || c.Dashboard.ChartWidth > MaxChartWidth {
		errors = append(errors, ValidationError{
			Field:   "dashboard.chart_width",
			Value:   c.Dashboard.ChartWidth,
			Message: fmt.Sprintf("must be between %d and %d", MinChartWidth, MaxChartWidth),
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	}

	const maxLogSizeMB = 1000
	if c.Logging.MaxSizeMB > maxLogSizeMB {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB),
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}

// validateServe validates the ServeConfig
func (c *Config) validateServe() []ValidationError {
	var errors []ValidationError

	if _, _, err := net.SplitHostPort(c.Serve.Addr); err != nil {
		errors = append(errors, ValidationError{
			Field:   "serve.addr",
			Value:   c.Serve.Addr,
			Message: "must be a host:port listen address",
		})
	}

	if c.Serve.Watch && c.Serve.PayloadFile == "" {
		errors = append(errors, ValidationError{
			Field:   "serve.watch",
			Value:   c.Serve.Watch,
			Message: "requires serve.payload_file",
		})
	}

	if c.Serve.RateLimitPerMinute < 0 {
		errors = append(errors, ValidationError{
			Field:   "serve.rate_limit_per_minute",
			Value:   c.Serve.RateLimitPerMinute,
			Message: "must be non-negative (0 disables rate limiting)",
		})
	}

	return errors
}
