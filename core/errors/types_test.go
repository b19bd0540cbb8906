package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{
		Resource: "panel",
		ID:       "123",
	}
	
	expected := "panel not found: 123"
	if err.Error() != expected {
		t.Errorf("NotFoundError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "mode",
		Message: "unknown mode",
	}
	
	expected := "validation error on field 'mode': unknown mode"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestExternalAPIError_Error(t *testing.T) {
	err := &ExternalAPIError{
		StatusCode: 503,
		Message:    "service unavailable",
		API:        "anthropic",
	}
	
	expected := "external API error from anthropic: 503 - service unavailable"
	if err.Error() != expected {
		t.Errorf("ExternalAPIError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIsNotFound_True(t *testing.T) {
	err := &NotFoundError{
		Resource: "saved point",
		ID:       "abc",
	}
	
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestIsNotFound_False(t *testing.T) {
	err := errors.New("some other error")
	
	if IsNotFound(err) {
		t.Error("IsNotFound should return false for non-NotFoundError")
	}
}

func TestIsNotFound_WrappedError(t *testing.T) {
	notFound := &NotFoundError{
		Resource: "panel",
		ID:       "123",
	}
	wrapped := fmt.Errorf("failed to get panel: %w", notFound)
	
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should return true for wrapped NotFoundError")
	}
}

func TestIsValidation_True(t *testing.T) {
	err := &ValidationError{
		Field:   "url",
		Message: "invalid URL",
	}
	
	if !IsValidation(err) {
		t.Error("IsValidation should return true for ValidationError")
	}
}

func TestIsValidation_False(t *testing.T) {
	err := errors.New("some other error")
	
	if IsValidation(err) {
		t.Error("IsValidation should return false for non-ValidationError")
	}
}

func TestIsExternalAPI_True(t *testing.T) {
	err := &ExternalAPIError{
		StatusCode: 500,
		Message:    "internal server error",
		API:        "anthropic",
	}
	
	if !IsExternalAPI(err) {
		t.Error("IsExternalAPI should return true for ExternalAPIError")
	}
}

func TestIsExternalAPI_False(t *testing.T) {
	err := errors.New("some other error")
	
	if IsExternalAPI(err) {
		t.Error("IsExternalAPI should return false for non-ExternalAPIError")
	}
}

func TestExtractionTooShortError_Error(t *testing.T) {
	err := &ExtractionTooShortError{Length: 12, Minimum: 50}

	expected := "not enough content to summarize: 12 characters, need 50"
	if err.Error() != expected {
		t.Errorf("ExtractionTooShortError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestUpstreamError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &UpstreamError{Service: "summarizer", Message: "API request failed", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("UpstreamError should unwrap to its cause")
	}
	if !IsUpstream(fmt.Errorf("generate: %w", err)) {
		t.Error("IsUpstream should return true for wrapped UpstreamError")
	}
}

func TestStorageError_IsStorage(t *testing.T) {
	err := &StorageError{Op: "set", Key: "savedPoints", Err: errors.New("disk full")}

	if !IsStorage(err) {
		t.Error("IsStorage should return true for StorageError")
	}
	if IsStorage(errors.New("other")) {
		t.Error("IsStorage should return false for plain errors")
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"too short", &ExtractionTooShortError{Length: 3, Minimum: 50}, "Not enough content to summarize"},
		{"settings", &SettingsError{Message: "API key not configured"}, "API key not configured"},
		{"upstream", fmt.Errorf("wrap: %w", &UpstreamError{Service: "summarizer", Message: "Invalid API response"}), "Invalid API response"},
		{"upstream without message", &UpstreamError{Service: "summarizer"}, "Summarization failed"},
		{"unknown", errors.New("boom"), "Summarization failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapError_PreservesOriginalError(t *testing.T) {
	originalErr := &NotFoundError{Resource: "panel", ID: "abc"}
	wrappedErr := WrapError(originalErr, "failed to fetch panel")
	
	if wrappedErr == nil {
		t.Fatal("WrapError should not return nil for non-nil error")
	}
	
	// Check error message contains both context and original error
	expectedMsg := "failed to fetch panel: panel not found: abc"
	if wrappedErr.Error() != expectedMsg {
		t.Errorf("WrapError message = %v, want %v", wrappedErr.Error(), expectedMsg)
	}
	
	// Should still be identifiable as NotFoundError
	if !IsNotFound(wrappedErr) {
		t.Error("Wrapped error should still be identifiable as NotFoundError")
	}
}

func TestWrapError_AddsContextMessage(t *testing.T) {
	originalErr := errors.New("network timeout")
	wrappedErr := WrapError(originalErr, "external API call failed")
	
	expected := "external API call failed: network timeout"
	if wrappedErr.Error() != expected {
		t.Errorf("WrapError = %v, want %v", wrappedErr.Error(), expected)
	}
}

func TestWrapError_HandlesNilError(t *testing.T) {
	wrappedErr := WrapError(nil, "this should not happen")
	
	if wrappedErr != nil {
		t.Error("WrapError should return nil when wrapping nil error")
	}
}