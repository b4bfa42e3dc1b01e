package llm

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Provider adapters translate SDK failures into these types. The content
// layer only cares which one it got: a rejected key stops generation for
// good, everything else falls back to built-in passages.

// ErrInvalidCredential is a 401 or 403 from the provider.
type ErrInvalidCredential struct{ Err error }

// ErrRateLimit is a 429. Requests are not retried.
type ErrRateLimit struct{ Err error }

// ErrProviderUnavailable covers network failures, timeouts and 5xx.
type ErrProviderUnavailable struct{ Err error }

// ErrInvalidResponse is a reply that is empty, not JSON, or fails the
// requested schema. Content holds the raw reply for the event log.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

// ErrMaxTokensExceeded is a structured reply cut off by the token limit.
type ErrMaxTokensExceeded struct{ Content json.RawMessage }

func (e *ErrInvalidCredential) Error() string {
	return "llm credential rejected: " + errText(e.Err)
}

func (e *ErrRateLimit) Error() string {
	return "llm rate limited: " + errText(e.Err)
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "llm provider unavailable"
	}
	return "llm provider unavailable: " + e.Err.Error()
}

func (e *ErrInvalidResponse) Error() string {
	return "invalid llm response: " + errText(e.Err)
}

func (e *ErrMaxTokensExceeded) Error() string {
	return fmt.Sprintf("llm response truncated at max tokens (%d bytes)", len(e.Content))
}

func (e *ErrInvalidCredential) Unwrap() error   { return e.Err }
func (e *ErrRateLimit) Unwrap() error           { return e.Err }
func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }
func (e *ErrInvalidResponse) Unwrap() error     { return e.Err }

func errText(err error) string {
	if err == nil {
		return "no detail"
	}
	return err.Error()
}

// classifyStatus maps the HTTP status an SDK error carries.
func classifyStatus(status int, err error) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &ErrInvalidCredential{Err: err}
	case http.StatusTooManyRequests:
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}
