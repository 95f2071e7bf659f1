package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The service fails an operation in one of three observable shapes:
// a JSON object mapping field names to messages (validation), a plain-text
// body (conflicts and not-found), or no response at all (transport failure).
// Each shape gets its own error type so callers can branch with errors.As.

// ValidationError carries the service's field→message map.
type ValidationError struct {
	StatusCode int
	Fields     map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (%d): %d field(s) rejected", e.StatusCode, len(e.Fields))
}

// ServerError carries a non-2xx response whose body was not a field map.
// Message is the verbatim response text; it may be empty.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// NetworkError means the request never produced a response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "network error: " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// classifyResponse maps a non-2xx body onto the error taxonomy.
func classifyResponse(statusCode int, body []byte) error {
	fields := map[string]string{}
	if json.Unmarshal(body, &fields) == nil && len(fields) > 0 {
		return &ValidationError{StatusCode: statusCode, Fields: fields}
	}
	msg := strings.TrimSpace(string(body))
	if strings.HasPrefix(msg, "\"") {
		// some servers quote plain messages as JSON strings
		var unquoted string
		if json.Unmarshal(body, &unquoted) == nil {
			msg = unquoted
		}
	}
	return &ServerError{StatusCode: statusCode, Message: msg}
}
