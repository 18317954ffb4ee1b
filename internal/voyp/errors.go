package voyp

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// HTTPStatusError reports a response outside the 2xx range.
type HTTPStatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

// Message returns the "message" field of the error body, if any.
func (e *HTTPStatusError) Message() (string, bool) {
	if !gjson.ValidBytes(e.Body) {
		return "", false
	}
	msg := gjson.GetBytes(e.Body, "message")
	if !msg.Exists() || msg.Type == gjson.Null {
		return "", false
	}
	return msg.String(), true
}

// TransportError reports a request that never produced a response.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsAPIError reports whether err came back from the upstream exchange, either
// as a non-2xx status or as a failure to get any response.
func IsAPIError(err error) bool {
	var statusErr *HTTPStatusError
	var transportErr *TransportError
	return errors.As(err, &statusErr) || errors.As(err, &transportErr)
}

// ErrorMessage renders an upstream error for humans, preferring the message
// returned by the API.
func ErrorMessage(err error) string {
	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		if msg, ok := statusErr.Message(); ok {
			return msg
		}
	}
	return err.Error()
}
