// Package structerr defines the closed error taxonomy that crosses the
// service boundary. Every failure leaving a usecase is a *Error with a
// machine code, an internal message for the logs and a pre-written,
// non-technical message for the end user. Raw upstream bodies never
// reach the caller.
package structerr

import (
	"errors"
	"fmt"
)

// Type classifies a failure. The set is closed; new values require a
// handler-side mapping decision.
type Type string

const (
	TypeConfiguration Type = "CONFIGURATION"
	TypeValidation    Type = "VALIDATION"
	TypeAPIError      Type = "API_ERROR"
	TypeNetwork       Type = "NETWORK"
	TypeNotFound      Type = "NOT_FOUND"
	TypeBusinessLogic Type = "BUSINESS_LOGIC"
	TypeUnknown       Type = "UNKNOWN"
)

// Error is a structured, classified failure. It is created once at the
// point of failure and passed through unchanged after that.
type Error struct {
	Type          Type
	Code          string
	Message       string // internal, for logs
	UserMessage   string // safe to show to the end user
	CorrelationID string
	Details       map[string]any // redacted context, never raw PII
	cause         error
}

// Error implements the error interface with the internal message.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s [%s]: %s: %v", e.Type, e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s [%s]: %s", e.Type, e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// Retryable reports whether the caller may reasonably retry the same
// request. Network failures and upstream 5xx-class errors are retryable;
// everything else needs a changed input or operator action.
func (e *Error) Retryable() bool {
	switch e.Type {
	case TypeNetwork:
		return true
	case TypeAPIError:
		return e.Code == CodeUpstream5xx
	default:
		return false
	}
}

// Machine codes. Codes are stable identifiers for dashboards and tests;
// user messages key off the type, not the code.
const (
	CodeAuth          = "crm_auth"
	CodeNotFound      = "crm_not_found"
	CodeUnprocessable = "crm_unprocessable"
	CodeUpstream4xx   = "crm_client_error"
	CodeUpstream5xx   = "crm_server_error"
	CodeTransport     = "crm_transport"
	CodeNoWindows     = "no_windows"
	CodeBadInput      = "bad_input"
	CodeUnknown       = "unknown"
)

// New builds a structured error of the given type. The user message is
// derived from the type unless overridden with WithUserMessage.
func New(t Type, code, msg, correlationID string) *Error {
	return &Error{
		Type:          t,
		Code:          code,
		Message:       msg,
		UserMessage:   userMessageFor(t),
		CorrelationID: correlationID,
	}
}

// WithUserMessage overrides the default user-facing message.
func (e *Error) WithUserMessage(msg string) *Error {
	e.UserMessage = msg
	return e
}

// WithDetail attaches one redacted detail. Values must already be safe
// to log (booleans, counts, prefixes).
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause records the underlying error for internal logging.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// As extracts a *Error from an error chain, if one is present.
func As(err error) (*Error, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
