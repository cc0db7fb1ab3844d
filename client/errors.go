package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed backend call. The original client
// collapsed every failure into one generic error; callers here can tell
// a missing record from a server fault or a dead network.
type ErrorKind string

const (
	KindNotFound         ErrorKind = "not_found"
	KindValidationFailed ErrorKind = "validation_failed"
	KindUnauthorized     ErrorKind = "unauthorized"
	KindServerFault      ErrorKind = "server_fault"
	KindTransportFailure ErrorKind = "transport_failure"
)

// APIError is returned for any request that did not complete with a 2xx
// status. Status is zero for transport-level failures.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	cause   error
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("backend request failed: %s (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("backend request failed: %s: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// IsNotFound reports whether err is, or wraps, an APIError for a
// missing resource.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindNotFound
}

func kindFromStatus(status int) ErrorKind {
	switch {
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindUnauthorized
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return KindValidationFailed
	case status >= 500:
		return KindServerFault
	default:
		return KindServerFault
	}
}
