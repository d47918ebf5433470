package api

import (
	"errors"
	"fmt"
	"net/http"
)

// RequestError is a transport-level failure: the request never produced an
// HTTP response. Retrying is the caller's decision; the client never does.
type RequestError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying transport error
func (e *RequestError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response. Message carries the server's message;
// Errors carries per-field validation messages when the server sent them.
type APIError struct {
	StatusCode int
	Message    string
	Errors     map[string][]string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// FieldErrors returns the messages for one field, nil when absent
func (e *APIError) FieldErrors(field string) []string {
	if e.Errors == nil {
		return nil
	}
	return e.Errors[field]
}

// AsAPIError extracts an APIError, or nil
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// IsUnauthorized reports whether err is a 401 response
func IsUnauthorized(err error) bool {
	apiErr := AsAPIError(err)
	return apiErr != nil && apiErr.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 response
func IsNotFound(err error) bool {
	apiErr := AsAPIError(err)
	return apiErr != nil && apiErr.StatusCode == http.StatusNotFound
}

// IsNetworkFailure reports whether err is a transport-level failure
func IsNetworkFailure(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr)
}
