// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"errors"

	apperrors "visual-summarizer-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, apperrors.ErrBusy):
		return huma.Error409Conflict("Panel is busy")
	case errors.Is(err, apperrors.ErrStale):
		return huma.Error409Conflict("Response discarded")
	case errors.Is(err, apperrors.ErrClosed):
		return huma.Error410Gone("Panel is closed")
	}

	if apperrors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if apperrors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	var upstreamErr *apperrors.UpstreamError
	if errors.As(err, &upstreamErr) {
		return huma.Error502BadGateway(apperrors.UserMessage(err), err)
	}

	if apperrors.IsExternalAPI(err) {
		// External API errors might be retryable
		if apiErr, ok := err.(*apperrors.ExternalAPIError); ok {
			switch {
			case apiErr.StatusCode >= 500:
				return huma.Error503ServiceUnavailable("External service error", err)
			case apiErr.StatusCode == 429:
				return huma.Error429TooManyRequests("Rate limited by external service")
			case apiErr.StatusCode >= 400:
				return huma.Error400BadRequest("External service request error", err)
			default:
				return huma.Error500InternalServerError("Unexpected external service response", err)
			}
		}
	}

	if apperrors.IsStorage(err) {
		return huma.Error503ServiceUnavailable("Storage unavailable", err)
	}

	if apperrors.IsSettings(err) {
		return huma.Error500InternalServerError(apperrors.UserMessage(err), err)
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}
