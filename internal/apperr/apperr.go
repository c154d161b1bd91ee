package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure as infrastructure or application level
type Kind int

const (
	// KindDB covers driver and pool failures: unreachable store, pool
	// exhaustion, failed statement execution
	KindDB Kind = iota
	// KindLogic covers invariant violations: not found, duplicate key
	// where a unique row was expected
	KindLogic
)

func (k Kind) String() string {
	switch k {
	case KindDB:
		return "db"
	case KindLogic:
		return "logic"
	default:
		return "unknown"
	}
}

// Error is the failure type returned by the storage layer. Resolvers
// decide per field whether to surface or swallow it.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// DB creates an infrastructure-level error
func DB(msg string) *Error {
	return &Error{Kind: KindDB, Message: msg}
}

// DBf creates an infrastructure-level error with a formatted message
func DBf(format string, args ...any) *Error {
	return &Error{Kind: KindDB, Message: fmt.Sprintf(format, args...)}
}

// Logic creates an application-level invariant error
func Logic(msg string) *Error {
	return &Error{Kind: KindLogic, Message: msg}
}

// IsDB reports whether err carries the DB kind
func IsDB(err error) bool {
	return is(err, KindDB)
}

// IsLogic reports whether err carries the Logic kind
func IsLogic(err error) bool {
	return is(err, KindLogic)
}

func is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
