// Package errors provides the error taxonomy for sanket. It defines the
// sentinel errors raised while loading insights, the FetchError domain type
// that carries request context, semantic errors for validation and timeouts,
// and classification helpers.
//
// # Error Types
//
// Domain errors:
//   - FetchError: loading the insights payload failed (transport, status, decode, validate)
//
// Semantic errors:
//   - ValidationError: invalid input, payload rows or configuration values
//   - TimeoutError: an operation exceeded its configured deadline
//
// # Usage
//
//	err := errors.NewFetchError(url, errors.StageStatus, errors.ErrUnexpectedStatus).WithStatusCode(502)
//
//	if errors.Is(err, errors.ErrUnexpectedStatus) { ... }
//
//	var fetchErr *errors.FetchError
//	if errors.As(err, &fetchErr) { ... }
//
// Classification is informational only: nothing in sanket retries.
package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Re-export standard library functions so callers only import this package.
var (
	Is   = errors.Is
	As   = errors.As
	New  = errors.New
	Join = errors.Join
)

// Severity ranks how much attention a failure deserves.
type Severity int

const (
	// SeverityInfo marks failures the caller asked for, such as a canceled fetch.
	SeverityInfo Severity = iota
	// SeverityWarning marks bad input and timeouts.
	SeverityWarning
	// SeverityError marks a backend that could not deliver the payload.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Fetch-related sentinel errors
var (
	// ErrTransport indicates the request never produced a response.
	ErrTransport = New("transport failure")
	// ErrUnexpectedStatus indicates the backend answered with a non-2xx status.
	ErrUnexpectedStatus = New("unexpected status")
	// ErrMalformedPayload indicates the response body is not a valid insights payload.
	ErrMalformedPayload = New("malformed insights payload")
)

// General sentinel errors
var (
	// ErrTimeout indicates that an operation timed out.
	ErrTimeout = New("operation timed out")
	// ErrCanceled indicates that an operation was canceled.
	ErrCanceled = New("operation canceled")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// SanketError is the interface shared by every error type in this package.
type SanketError interface {
	error

	Unwrap() error
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsRetryable returns true if the condition is transient.
	IsRetryable() bool

	// IsUserFacing returns true if the message is safe to show to end users.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	retryable  bool
	userFacing bool
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Unwrap() error {
	return e.cause
}

func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

func (e *baseError) Severity() Severity {
	return e.severity
}

func (e *baseError) IsRetryable() bool {
	return e.retryable
}

func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain Errors
// -----------------------------------------------------------------------------

// Stage names the step of an insights fetch that failed.
type Stage string

const (
	StageTransport Stage = "transport"
	StageStatus    Stage = "status"
	StageDecode    Stage = "decode"
	StageValidate  Stage = "validate"
)

// FetchError represents a failed load of the insights payload.
//
// Example:
//
//	err := errors.NewFetchError("http://127.0.0.1:8000/api/insights", errors.StageTransport, cause)
//	fmt.Println(err) // "fetch error [stage=transport, url=http://...]: insights request failed: dial tcp ..."
type FetchError struct {
	baseError
	URL        string
	Stage      Stage
	StatusCode int
}

// NewFetchError creates a FetchError for the given URL and stage.
// Transport failures are classified retryable; the rest are not until
// WithStatusCode says otherwise.
func NewFetchError(url string, stage Stage, cause error) *FetchError {
	return &FetchError{
		baseError: baseError{
			message:    stageMessage(stage),
			cause:      cause,
			severity:   SeverityError,
			retryable:  stage == StageTransport,
			userFacing: true,
		},
		URL:   url,
		Stage: stage,
	}
}

func stageMessage(stage Stage) string {
	switch stage {
	case StageTransport:
		return "insights request failed"
	case StageStatus:
		return "insights endpoint returned an error status"
	case StageDecode:
		return "insights response could not be decoded"
	case StageValidate:
		return "insights response failed validation"
	default:
		return "insights fetch failed"
	}
}

// WithStatusCode records the HTTP status. 5xx and 429 responses are retryable.
func (e *FetchError) WithStatusCode(code int) *FetchError {
	e.StatusCode = code
	e.retryable = code >= 500 || code == 429
	return e
}

// WithSeverity overrides the default SeverityError.
func (e *FetchError) WithSeverity(s Severity) *FetchError {
	e.severity = s
	return e
}

// Error returns the formatted error message.
func (e *FetchError) Error() string {
	var parts []string
	if e.Stage != "" {
		parts = append(parts, fmt.Sprintf("stage=%s", e.Stage))
	}
	if e.StatusCode != 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}
	if e.URL != "" {
		parts = append(parts, fmt.Sprintf("url=%s", e.URL))
	}

	prefix := "fetch error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("fetch error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *FetchError) Is(target error) bool {
	if _, ok := target.(*FetchError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("district is required")
//	err = err.WithField("insight2[3].district").WithValue("")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if errors.Is(target, ErrInvalidInput) {
		return true
	}
	return e.baseError.Is(target)
}

// TimeoutError represents an operation that timed out.
//
// Example:
//
//	err := errors.NewTimeoutError("fetching insights", 5*time.Second)
//	fmt.Println(err) // "timeout error: fetching insights (timeout: 5s)"
type TimeoutError struct {
	baseError
	Operation string
	Duration  time.Duration
}

// NewTimeoutError creates a new TimeoutError.
func NewTimeoutError(operation string, duration time.Duration) *TimeoutError {
	return &TimeoutError{
		baseError: baseError{
			message:    operation,
			severity:   SeverityWarning,
			retryable:  true,
			userFacing: true,
		},
		Operation: operation,
		Duration:  duration,
	}
}

// WithCause adds a cause to the error.
func (e *TimeoutError) WithCause(cause error) *TimeoutError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *TimeoutError) Error() string {
	base := fmt.Sprintf("timeout error: %s (timeout: %s)", e.Operation, e.Duration)
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", base, e.cause)
	}
	return base
}

// Is checks if this error matches the target.
func (e *TimeoutError) Is(target error) bool {
	if _, ok := target.(*TimeoutError); ok {
		return true
	}
	if errors.Is(target, ErrTimeout) {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsRetryable returns true if the error represents a transient condition.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var sanketErr SanketError
	if As(err, &sanketErr) {
		return sanketErr.IsRetryable()
	}

	return Is(err, ErrTimeout)
}

// IsUserFacing returns true if the error message is safe to display to end users.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var sanketErr SanketError
	if As(err, &sanketErr) {
		return sanketErr.IsUserFacing()
	}

	return false
}

// GetSeverity returns the severity level of the error: SeverityInfo for nil
// and SeverityError for errors that don't implement SanketError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityInfo
	}

	var sanketErr SanketError
	if As(err, &sanketErr) {
		return sanketErr.Severity()
	}

	return SeverityError
}

// FetchStage returns the stage of the first FetchError in err's chain, or ""
// when err did not come from an insights fetch.
func FetchStage(err error) Stage {
	var fetchErr *FetchError
	if As(err, &fetchErr) {
		return fetchErr.Stage
	}
	return ""
}
