package graph

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed generation.
type ErrorKind string

const (
	// KindInvalidInput is an empty or whitespace-only prompt.
	KindInvalidInput ErrorKind = "INVALID_INPUT"
	// KindTransportFailure means the outbound call could not complete.
	KindTransportFailure ErrorKind = "TRANSPORT_FAILURE"
	// KindUpstreamError means the completion service answered with a
	// non-success status or an explicit error payload.
	KindUpstreamError ErrorKind = "UPSTREAM_ERROR"
	// KindMalformedResponse means the completion was not JSON after fence stripping.
	KindMalformedResponse ErrorKind = "MALFORMED_RESPONSE"
	// KindInvalidSchema means the JSON had no "nodes" array.
	KindInvalidSchema ErrorKind = "INVALID_SCHEMA"
	// KindAlreadyInProgress means a generation for the same session is pending.
	KindAlreadyInProgress ErrorKind = "ALREADY_IN_PROGRESS"
)

// IsUpstream reports whether the kind is one of the upstream related kinds
// that collapse into a single user-visible failure notice.
func (k ErrorKind) IsUpstream() bool {
	switch k {
	case KindTransportFailure, KindUpstreamError, KindMalformedResponse, KindInvalidSchema:
		return true
	}
	return false
}

// GenerationError is returned by every failed generation. Message is safe to
// log; it is not meant to be shown verbatim to end users.
type GenerationError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Cause      error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

func newError(kind ErrorKind, msg string, cause error) *GenerationError {
	return &GenerationError{Kind: kind, Message: msg, Cause: cause}
}

// InvalidInput creates an InvalidInput error.
func InvalidInput(msg string) *GenerationError {
	return newError(KindInvalidInput, msg, nil)
}

// AlreadyInProgress creates an AlreadyInProgress error.
func AlreadyInProgress() *GenerationError {
	return newError(KindAlreadyInProgress, "a generation is already in progress", nil)
}

// KindOf returns the kind of a *GenerationError in err's chain, or "" if there is none.
func KindOf(err error) ErrorKind {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return ""
}

// IsKind reports whether err carries a GenerationError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
