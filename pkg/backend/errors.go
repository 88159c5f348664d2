// Package backend provides the typed HTTP wrapper around the remote
// knowledge-graph API (C2). It is the only package that speaks net/http to
// the backend; everything else in the module treats it as opaque.
package backend

import "fmt"

// HTTPError carries a non-2xx backend response, preserving the status code
// and raw body so C6 can surface them verbatim per §7.
//
// Shape grounded on the teacher's pkg/networking.HTTPError (only its
// _test.go was retrieved; this reconstructs the type to the behavior that
// test file pins down: NewHTTPError(status, url, message), an Error()
// string of "HTTP %d for URL %s: %s", and errors.As compatibility).
type HTTPError struct {
	StatusCode int
	URL        string
	Message    string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for URL %s: %s", e.StatusCode, e.URL, e.Message)
}

// NewHTTPError constructs an HTTPError.
func NewHTTPError(statusCode int, url, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, URL: url, Message: message}
}

// IsHTTPError reports whether err is an *HTTPError with the given status code.
func IsHTTPError(err error, statusCode int) bool {
	he, ok := err.(*HTTPError)
	if !ok {
		return false
	}
	return he.StatusCode == statusCode
}
