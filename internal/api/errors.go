package api

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind discriminates gateway failures so callers never sniff transport
// errors out of message text.
type ErrorKind int

const (
	// KindNetwork: no response received (connection refused, DNS, timeout).
	KindNetwork ErrorKind = iota
	// KindStatus: the server answered with a non-success status code.
	KindStatus
	// KindDecode: a success response declared JSON but did not parse.
	KindDecode
)

// Error is the single failure type returned by the gateway.
type Error struct {
	Kind    ErrorKind
	Status  int    // HTTP status code, KindStatus only
	Message string // server-provided message, KindStatus only
	Err     error  // underlying cause, if any
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("network error: %v", e.Err)
	case KindStatus:
		if e.Message != "" {
			return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
		}
		return fmt.Sprintf("HTTP %d", e.Status)
	case KindDecode:
		return fmt.Sprintf("decode error: %v", e.Err)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

// Reason is the business-level classification screens map to user wording.
type Reason int

const (
	ReasonGeneric Reason = iota
	ReasonNetwork
	ReasonDuplicate
	ReasonValidation
	ReasonConstraint
	ReasonConflict
)

// Classify derives a Reason from a gateway failure. The transport taxonomy is
// structural; duplicate/validation/constraint/conflict still come from the server
// message because the backend exposes no error codes.
func Classify(err error) Reason {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return ReasonGeneric
	}
	if apiErr.Kind == KindNetwork {
		return ReasonNetwork
	}
	msg := strings.ToLower(apiErr.Message)
	switch {
	case strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique"):
		return ReasonDuplicate
	case strings.Contains(msg, "constraint") || strings.Contains(msg, "foreign key"):
		return ReasonConstraint
	case strings.Contains(msg, "conflict") || strings.Contains(msg, "schedule"):
		return ReasonConflict
	case strings.Contains(msg, "validation"):
		return ReasonValidation
	}
	return ReasonGeneric
}
