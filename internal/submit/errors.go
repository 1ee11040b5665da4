// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package submit

import (
	"errors"
	"fmt"
	"time"
)

// ErrBusy is returned when Submit is called while another submission on the
// same controller is still in flight.
var ErrBusy = errors.New("a submission is already in progress")

// MissingInputError reports a submit attempt with no document selected.
type MissingInputError struct{}

func (e *MissingInputError) Error() string {
	return "no input document selected"
}

// NetworkError reports a transport failure: the endpoint was unreachable,
// the connection was reset, or the caller cancelled the request.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// TimeoutError reports a submission that did not finish within the
// configured timeout.
type TimeoutError struct {
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	if e.Timeout <= 0 {
		return "request timed out"
	}
	return fmt.Sprintf("request timed out after %v", e.Timeout)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// ServerError reports a non-2xx response. Body holds the diagnostic text the
// service returned.
type ServerError struct {
	Status     int
	StatusText string
	Body       string
}

func (e *ServerError) Error() string {
	msg := fmt.Sprintf("server error: %d %s", e.Status, e.StatusText)
	if e.Body != "" {
		msg += "\n" + e.Body
	}
	return msg
}

// UnexpectedContentTypeError reports a 2xx response whose payload is not
// the expected document type.
type UnexpectedContentTypeError struct {
	ContentType string
	Expected    string
	Body        string
}

func (e *UnexpectedContentTypeError) Error() string {
	ct := e.ContentType
	if ct == "" {
		ct = "no content type"
	}
	msg := fmt.Sprintf("expected %s but got: %s", e.Expected, ct)
	if e.Body != "" {
		msg += "\n" + e.Body
	}
	return msg
}

// DownloadError reports a failure while saving a valid response.
type DownloadError struct {
	Filename string
	Err      error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("saving %s: %v", e.Filename, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }
