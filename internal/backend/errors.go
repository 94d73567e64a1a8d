package backend

import "fmt"

// RequestError is returned when the backend answers with a non-2xx status
// or the response envelope cannot be interpreted. Message carries the
// backend's own error message when one was present in the body.
type RequestError struct {
	Operation  string
	StatusCode int
	Code       string
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend %s: %s (status %d)", e.Operation, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("backend %s: request failed (status %d)", e.Operation, e.StatusCode)
}

// NotFound reports whether the error is a 404 from the backend.
func (e *RequestError) NotFound() bool {
	return e.StatusCode == 404
}

// errorEnvelope matches the error body shapes the backend produces:
// {"error":{"code","message"}} or a flat {"message"}.
type errorEnvelope struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}
