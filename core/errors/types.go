// ABOUTME: Custom error types for the core business logic
// ABOUTME: Per-source failures are values the engine logs and skips, never fatal

package errors

import (
	"errors"
	"fmt"
)

// SourceMisconfiguredError indicates a source is missing its endpoint or
// credentials, so no request was issued.
type SourceMisconfiguredError struct {
	SourceID string
	Reason   string
}

// Error implements the error interface
func (e *SourceMisconfiguredError) Error() string {
	return fmt.Sprintf("source %s is misconfigured: %s", e.SourceID, e.Reason)
}

// SourceHTTPError indicates a source answered with a non-2xx status.
type SourceHTTPError struct {
	SourceID   string
	StatusCode int
}

// Error implements the error interface
func (e *SourceHTTPError) Error() string {
	return fmt.Sprintf("source %s returned HTTP %d", e.SourceID, e.StatusCode)
}

// SourceTransportError indicates the request never completed: network
// failure, timeout, or cancellation.
type SourceTransportError struct {
	SourceID string
	Err      error
}

// Error implements the error interface
func (e *SourceTransportError) Error() string {
	return fmt.Sprintf("source %s transport error: %v", e.SourceID, e.Err)
}

// Unwrap exposes the underlying transport error
func (e *SourceTransportError) Unwrap() error {
	return e.Err
}

// SourceInvalidResponseError indicates the source answered 2xx but the body
// was not the expected product list structure.
type SourceInvalidResponseError struct {
	SourceID string
	Reason   string
}

// Error implements the error interface
func (e *SourceInvalidResponseError) Error() string {
	return fmt.Sprintf("source %s returned an invalid response: %s", e.SourceID, e.Reason)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsSourceMisconfigured checks if an error is a SourceMisconfiguredError
func IsSourceMisconfigured(err error) bool {
	var target *SourceMisconfiguredError
	return errors.As(err, &target)
}

// IsSourceHTTP checks if an error is a SourceHTTPError
func IsSourceHTTP(err error) bool {
	var target *SourceHTTPError
	return errors.As(err, &target)
}

// IsSourceTransport checks if an error is a SourceTransportError
func IsSourceTransport(err error) bool {
	var target *SourceTransportError
	return errors.As(err, &target)
}

// IsSourceInvalidResponse checks if an error is a SourceInvalidResponseError
func IsSourceInvalidResponse(err error) bool {
	var target *SourceInvalidResponseError
	return errors.As(err, &target)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
