package apperrors

import (
	"fmt"
)

// ErrNotFound represents an error when a requested resource is not found.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewNotFoundError creates a new ErrNotFound.
func NewNotFoundError(resource string, id interface{}) *ErrNotFound {
	return &ErrNotFound{
		Resource: resource,
		ID:       id,
	}
}

// NewShowNotFoundError creates a specific error for when a show id is unknown upstream.
func NewShowNotFoundError(showID int) *ErrNotFound {
	return &ErrNotFound{
		Resource: "show",
		ID:       showID,
	}
}

// ErrUpstream is returned when a call to the show directory API fails at the
// transport level or answers with a non-2xx status.
// StatusCode is zero when no response was received.
type ErrUpstream struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *ErrUpstream) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s %s: status %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s %s: status %d", e.Op, e.URL, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
	default:
		return fmt.Sprintf("%s %s: upstream request failed", e.Op, e.URL)
	}
}

// Unwrap returns the underlying transport error, if any.
func (e *ErrUpstream) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrUpstream) Is(target error) bool {
	_, ok := target.(*ErrUpstream)
	return ok
}

// NewUpstreamError creates a new ErrUpstream for a failed request.
func NewUpstreamError(op, url string, err error) *ErrUpstream {
	return &ErrUpstream{Op: op, URL: url, Err: err}
}

// NewUpstreamStatusError creates a new ErrUpstream for a non-2xx response.
func NewUpstreamStatusError(op, url string, statusCode int) *ErrUpstream {
	return &ErrUpstream{Op: op, URL: url, StatusCode: statusCode}
}

// ErrMalformedResponse is returned when an upstream body cannot be decoded.
type ErrMalformedResponse struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("%s: malformed response: %v", e.Op, e.Err)
}

// Unwrap returns the decoding error.
func (e *ErrMalformedResponse) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrMalformedResponse) Is(target error) bool {
	_, ok := target.(*ErrMalformedResponse)
	return ok
}

// NewMalformedResponseError creates a new ErrMalformedResponse.
func NewMalformedResponseError(op string, err error) *ErrMalformedResponse {
	return &ErrMalformedResponse{Op: op, Err: err}
}
