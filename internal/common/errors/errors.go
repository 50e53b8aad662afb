// Package errors provides standardized error handling for the search router.
package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Per-agent dispatch failures.
	ErrCodeAgentTimeout    ErrorCode = "AGENT_TIMEOUT"
	ErrCodeAgentCallFailed ErrorCode = "AGENT_CALL_FAILED"

	// Capability mismatch: the agent was asked for a geography its backend
	// is known to reject. Non-retriable by definition.
	ErrCodeGeographyNotSupported ErrorCode = "GEOGRAPHY_NOT_SUPPORTED"

	// Request-level validation.
	ErrCodeEmptyQuery   ErrorCode = "EMPTY_QUERY"
	ErrCodeUnknownAgent ErrorCode = "UNKNOWN_AGENT"

	// Registry/catalog loading.
	ErrCodeRegistryLoadFailed       ErrorCode = "REGISTRY_LOAD_FAILED"
	ErrCodeRegistryValidationFailed ErrorCode = "REGISTRY_VALIDATION_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewAgentTimeoutError creates a retryable per-agent timeout error.
func NewAgentTimeoutError(agent string, timeout time.Duration) *StandardError {
	return &StandardError{
		Code:      ErrCodeAgentTimeout,
		Message:   "Agent call exceeded timeout",
		Details:   fmt.Sprintf("agent: %s, timeout: %s", agent, timeout),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewAgentCallFailedError creates a retryable transient agent failure.
func NewAgentCallFailedError(agent string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAgentCallFailed,
		Message:   "Agent call failed",
		Details:   fmt.Sprintf("agent: %s, error: %s", agent, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewGeographyNotSupportedError creates a non-retryable capability mismatch error.
func NewGeographyNotSupportedError(agent, location string) *StandardError {
	return &StandardError{
		Code:      ErrCodeGeographyNotSupported,
		Message:   "Agent does not serve the requested geography",
		Details:   fmt.Sprintf("agent: %s, location: %s", agent, location),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmptyQueryError creates a non-retryable request validation error.
func NewEmptyQueryError() *StandardError {
	return &StandardError{
		Code:      ErrCodeEmptyQuery,
		Message:   "Search query text is empty",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownAgentError creates a non-retryable request validation error.
func NewUnknownAgentError(agent string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownAgent,
		Message:   "Requested agent is not in the registry",
		Details:   fmt.Sprintf("agent: %s", agent),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRegistryLoadFailedError creates a retryable registry load error.
func NewRegistryLoadFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRegistryLoadFailed,
		Message:   "Agent registry file could not be read",
		Details:   fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRegistryValidationFailedError creates a non-retryable registry schema error.
func NewRegistryValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRegistryValidationFailed,
		Message:   "Agent registry failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// CodeOf extracts the error code from err, unwrapping as needed. Errors that
// are not StandardError are classified as transient agent failures.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ErrCodeAgentCallFailed
}

// IsRetryable reports whether err represents a transient condition.
func IsRetryable(err error) bool {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Retryable
	}
	return true
}

// GetErrorCategory returns the category of the error code. Request
// validation codes are matched exactly; UNKNOWN_AGENT would otherwise land
// in the dispatch bucket by substring.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case code == ErrCodeEmptyQuery || code == ErrCodeUnknownAgent:
		return "VALIDATION"
	case strings.Contains(codeStr, "AGENT") && strings.Contains(codeStr, "TIMEOUT"):
		return "TIMEOUT"
	case strings.Contains(codeStr, "GEOGRAPHY"):
		return "CAPABILITY"
	case strings.Contains(codeStr, "AGENT"):
		return "DISPATCH"
	case strings.Contains(codeStr, "REGISTRY"):
		return "REGISTRY"
	default:
		return "OTHER"
	}
}
