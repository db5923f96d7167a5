package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	apperrors "sabalabor/internal/platform/errors"
)

// APIError is a non-2xx response. Payload is the server body, untouched.
type APIError struct {
	Status  int
	Payload json.RawMessage
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error %d", e.Status)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return apperrors.ErrUnauthorized
	case http.StatusNotFound:
		return apperrors.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return apperrors.ErrInvalidInput
	}
	return nil
}

// TransportError is a request that never produced a response.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		apiErr.Message = http.StatusText(status)
		return apiErr
	}
	if json.Valid([]byte(trimmed)) {
		apiErr.Payload = json.RawMessage(trimmed)
		apiErr.Message = payloadMessage(apiErr.Payload)
	} else {
		apiErr.Message = trimmed
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

// payloadMessage picks the human readable part of common error envelopes
// ({"detail": ...}, {"message": ...}, {"error": ...}).
func payloadMessage(payload json.RawMessage) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		var s string
		if json.Unmarshal(payload, &s) == nil {
			return s
		}
		return ""
	}
	for _, name := range []string{"detail", "message", "error"} {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		var s string
		if json.Unmarshal(raw, &s) == nil {
			return s
		}
		return string(raw)
	}
	return ""
}
