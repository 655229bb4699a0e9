package web

import (
	"errors"
	"net/http"

	"github.com/Belphemur/tvfinder/internal/apperrors"
	"github.com/Belphemur/tvfinder/internal/ui"
)

// statusFor maps a search or episode failure onto an HTTP status.
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, &apperrors.ErrNotFound{}), errors.Is(err, ui.ErrCardNotFound):
		return http.StatusNotFound
	case errors.Is(err, ui.ErrInvalidShowID), errors.Is(err, ui.ErrNoResults):
		return http.StatusBadRequest
	case isUpstream(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func isUpstream(err error) bool {
	return errors.Is(err, &apperrors.ErrUpstream{}) || errors.Is(err, &apperrors.ErrMalformedResponse{})
}

// apiMessage is the error text returned by the JSON routes.
func apiMessage(status int) string {
	switch status {
	case http.StatusNotFound:
		return "show not found"
	case http.StatusBadRequest:
		return "invalid show id"
	case http.StatusBadGateway:
		return "show directory unavailable"
	default:
		return http.StatusText(status)
	}
}

// outcome is the page_views_total outcome label for status.
func outcome(status int) string {
	switch {
	case status >= 500:
		return "error"
	case status >= 400:
		return "rejected"
	default:
		return "ok"
	}
}
