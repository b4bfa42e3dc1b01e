package content

import (
	"errors"
	"fmt"

	"github.com/abhisek/keypals/internal/llm"
)

// ErrorKind classifies a provider failure.
type ErrorKind string

const (
	InvalidCredential ErrorKind = "invalid-credential"
	Transport         ErrorKind = "transport"
	MalformedResponse ErrorKind = "malformed-response"
)

// Error is returned by providers for every failure.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsCredential reports whether err is an invalid-credential failure.
func IsCredential(err error) bool { return kindOf(err) == InvalidCredential }

// IsTransport reports whether err is a rate-limit or transport failure.
func IsTransport(err error) bool { return kindOf(err) == Transport }

// IsMalformed reports whether err is an empty or unusable response.
func IsMalformed(err error) bool { return kindOf(err) == MalformedResponse }

func kindOf(err error) ErrorKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// classify maps llm layer errors onto the three content error kinds.
// Unknown errors count as transport failures.
func classify(err error) *Error {
	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}

	var (
		cred      *llm.ErrInvalidCredential
		invalid   *llm.ErrInvalidResponse
		truncated *llm.ErrMaxTokensExceeded
	)
	switch {
	case errors.As(err, &cred):
		return &Error{Kind: InvalidCredential, Err: err}
	case errors.As(err, &invalid), errors.As(err, &truncated):
		return &Error{Kind: MalformedResponse, Err: err}
	default:
		return &Error{Kind: Transport, Err: err}
	}
}
