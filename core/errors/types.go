// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for panel transitions and API responses

package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrBusy is returned when a generation is already in flight for a panel
	ErrBusy = errors.New("panel is busy")

	// ErrStale is returned when a response arrives for a superseded request
	ErrStale = errors.New("stale response discarded")

	// ErrClosed is returned for transitions on a closed panel
	ErrClosed = errors.New("panel is closed")

	// ErrKeyNotFound is returned by key-value stores for absent or expired keys
	ErrKeyNotFound = errors.New("key not found")
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
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

// ExternalAPIError represents an error from an external API
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// ExtractionTooShortError means the page text is below the minimum length
type ExtractionTooShortError struct {
	Length  int
	Minimum int
}

// Error implements the error interface
func (e *ExtractionTooShortError) Error() string {
	return fmt.Sprintf("not enough content to summarize: %d characters, need %d", e.Length, e.Minimum)
}

// UpstreamError wraps any transport, status or payload failure of a collaborator.
// Message is short and safe to show to the user.
type UpstreamError struct {
	Service string
	Message string
	Err     error
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Service, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Service, e.Message)
}

// Unwrap returns the underlying cause
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// SettingsError means the settings are missing, malformed or unreadable
type SettingsError struct {
	Message string
	Err     error
}

// Error implements the error interface
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("settings: %s: %v", e.Message, e.Err)
	}
	return "settings: " + e.Message
}

// Unwrap returns the underlying cause
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// StorageError represents a failed read or write of the durable store
type StorageError struct {
	Op  string
	Key string
	Err error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying cause
func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsExtractionTooShort checks if an error is an ExtractionTooShortError
func IsExtractionTooShort(err error) bool {
	var shortErr *ExtractionTooShortError
	return errors.As(err, &shortErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// IsSettings checks if an error is a SettingsError
func IsSettings(err error) bool {
	var settingsErr *SettingsError
	return errors.As(err, &settingsErr)
}

// IsStorage checks if an error is a StorageError
func IsStorage(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// UserMessage returns the short message the panel shows for err
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var shortErr *ExtractionTooShortError
	if errors.As(err, &shortErr) {
		return "Not enough content to summarize"
	}

	var settingsErr *SettingsError
	if errors.As(err, &settingsErr) {
		return settingsErr.Message
	}

	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) && upstreamErr.Message != "" {
		return upstreamErr.Message
	}

	return "Summarization failed"
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
