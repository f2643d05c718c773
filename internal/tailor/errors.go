package tailor

import (
	"errors"
	"fmt"
	"net/url"
)

const (
	// ValidationMessage is shown when either required text input is empty.
	ValidationMessage = "Please paste both the resume and the job description."
	// FallbackMessage is shown when a failure carries no message of its own.
	FallbackMessage = "Something went wrong"
)

// FailureKind classifies why a submission failed.
type FailureKind string

const (
	// FailureValidation means a required input was empty; nothing was sent.
	FailureValidation FailureKind = "validation"
	// FailureStatus means the backend answered with a non-2xx status.
	FailureStatus FailureKind = "status"
	// FailureTransport means no response was received.
	FailureTransport FailureKind = "transport"
	// FailureParse means a 2xx body could not be used.
	FailureParse FailureKind = "parse"
	// FailureUnknown is any error not produced by this package.
	FailureUnknown FailureKind = "unknown"
)

// ValidationError indicates a required input is empty after trimming. It is
// detected before any network activity.
type ValidationError struct {
	Cause error
}

func (e *ValidationError) Error() string {
	return ValidationMessage
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// StatusError indicates the backend answered outside the 2xx range. The body
// is not interpreted.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Request failed: %d", e.StatusCode)
}

// TransportError indicates the request never produced a response
// (connectivity, timeout, cancelled context).
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return causeMessage(e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// ParseError indicates a 2xx response whose body could not be used.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return causeMessage(e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Message converts any error from this package into the single user-visible
// message. A nil error yields "".
func Message(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ValidationMessage
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Error()
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return causeMessage(transportErr.Cause)
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return causeMessage(parseErr.Cause)
	}

	return causeMessage(err)
}

// KindOf classifies err. A nil error yields "".
func KindOf(err error) FailureKind {
	var (
		validationErr *ValidationError
		statusErr     *StatusError
		transportErr  *TransportError
		parseErr      *ParseError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &validationErr):
		return FailureValidation
	case errors.As(err, &statusErr):
		return FailureStatus
	case errors.As(err, &transportErr):
		return FailureTransport
	case errors.As(err, &parseErr):
		return FailureParse
	default:
		return FailureUnknown
	}
}

// causeMessage returns the text of the underlying failure, skipping the
// method/URL prefix net/http adds, or FallbackMessage when there is none.
func causeMessage(err error) string {
	if err == nil {
		return FallbackMessage
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		err = urlErr.Err
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return FallbackMessage
}
