package voyp

import (
	"encoding/json"
	"fmt"
)

// StartCallResponse is the record returned by call/start.
type StartCallResponse struct {
	ID    string `json:"id,omitempty"`
	URL   string `json:"url,omitempty"`
	Error string `json:"error,omitempty"`
}

// HangupCallResponse is the record returned by call/hangup.
type HangupCallResponse struct {
	Success bool   `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RecordError is a failure the upstream reported inside a 2xx call record.
type RecordError struct {
	Path    string
	Message string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// CheckCallRecord inspects a successful body from path and returns a
// *RecordError when the record carries an error field. Bodies from other
// paths, and bodies that are not records, are accepted as they are.
func CheckCallRecord(path string, body json.RawMessage) error {
	var message string
	switch path {
	case PathStartCall:
		var rec StartCallResponse
		if json.Unmarshal(body, &rec) != nil {
			return nil
		}
		message = rec.Error
	case PathHangupCall:
		var rec HangupCallResponse
		if json.Unmarshal(body, &rec) != nil {
			return nil
		}
		message = rec.Error
	}
	if message == "" {
		return nil
	}
	return &RecordError{Path: path, Message: message}
}
