package api

import (
	"errors"
	"fmt"
)

// Error is an application failure: the service answered with a non-2xx status
// (or a 2xx carrying an error field).
type Error struct {
	Op         string
	StatusCode int
	Detail     string
}

// Error returns the service's detail, or "<op> failed" when it sent none.
func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Op + " failed"
}

// NetworkError means no usable response was obtained: the request could not be
// sent, or the body could not be decoded.
type NetworkError struct {
	Method     string
	Path       string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("invalid response from %s (status=%d): %v", e.Path, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("request to %s failed: %v", e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// AsError attempts to unwrap an error into an application Error.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// AsNetworkError attempts to unwrap an error into a NetworkError.
func AsNetworkError(err error) (*NetworkError, bool) {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr, true
	}
	return nil, false
}
