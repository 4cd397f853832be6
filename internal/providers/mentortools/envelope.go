package mentortools

import (
	"encoding/json"
	"fmt"
	"strings"

	"mentortools-mcp/internal/httpx"
)

const (
	fallbackRequest = "API request failed"
	fallbackUpload  = "File upload failed"
)

type envelope struct {
	Done   bool            `json:"done"`
	Result json.RawMessage `json:"result"`
	Error  json.RawMessage `json:"error"`
}

// errorText returns the envelope error as plain text. Non-string errors are
// kept as their JSON encoding.
func (e envelope) errorText() string {
	raw := strings.TrimSpace(string(e.Error))
	if raw == "" || raw == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(e.Error, &s); err == nil {
		return s
	}
	return raw
}

// EnvelopeError is a successful HTTP exchange whose envelope reported
// done=false.
type EnvelopeError struct {
	Message string
}

func (e *EnvelopeError) Error() string { return e.Message }

// APIError is a non-2xx response. Message is the envelope error text when
// the body carried one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mentortools: status %d: %s", e.Status, e.Message)
}

func newAPIError(herr *httpx.HTTPError) *APIError {
	var env envelope
	msg := ""
	if json.Unmarshal(herr.Body, &env) == nil {
		msg = env.errorText()
	}
	if msg == "" {
		msg = fmt.Sprintf("Request failed with status code %d", herr.StatusCode)
	}
	return &APIError{Status: herr.StatusCode, Message: msg}
}

func unwrap(body []byte, fallback string) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("mentortools: decode envelope: %w (body=%s)", err, httpx.Snippet(body, 200))
	}
	if !env.Done {
		msg := env.errorText()
		if msg == "" {
			msg = fallback
		}
		return nil, &EnvelopeError{Message: msg}
	}
	if len(env.Result) == 0 {
		return json.RawMessage("null"), nil
	}
	return env.Result, nil
}
