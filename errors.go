package nnf

import (
	"errors"
	"fmt"
)

// Kind classifies why an operation on a Node failed. The five kinds mirror
// the error taxonomy of the originating algebra: construction misuse,
// missing assignment data, serialization shape mismatches, malformed wire
// input, and algorithms that require a property the caller hasn't opted
// into computing or assuming.
type Kind int

const (
	// AbstractInstantiation is returned when a caller attempts to build
	// the abstract Node/Internal root directly instead of through Var,
	// And, or Or.
	AbstractInstantiation Kind = iota
	// IncompleteModel is returned by SatisfiedBy when the supplied model
	// is missing an assignment for a variable the formula needs.
	IncompleteModel
	// FormatError is returned by a serializer when the input shape
	// doesn't match the requested wire format (e.g. Dumps with mode "cnf"
	// on a non-CNF sentence). The loaders report malformed text as
	// ParseError.
	FormatError
	// ParseError is returned by the DIMACS or DSHARP loaders on
	// syntactically invalid input.
	ParseError
	// Unsupported is returned when an algorithm requires a property the
	// input doesn't have and the caller hasn't opted into the slower,
	// always-correct fallback.
	Unsupported
)

// String renders the Kind the way it appears in error messages.
func (k Kind) String() string {
	switch k {
	case AbstractInstantiation:
		return "AbstractInstantiation"
	case IncompleteModel:
		return "IncompleteModel"
	case FormatError:
		return "FormatError"
	case ParseError:
		return "ParseError"
	case Unsupported:
		return "Unsupported"
	default:
		return "Unknown"
	}
}

// Error is the error type surfaced by the exported operations in this
// module and its subpackages. It names the failing operation and the
// Kind of failure, and wraps an underlying cause when there is one.
// Errors from the io.Reader given to dimacs.Load or dsharp.Load, and
// dsharp's line-scanner errors, are returned as they are, not as *Error.
type Error struct {
	// Op is the name of the operation that failed, e.g. "FromKind" or
	// "dimacs.Loads".
	Op string
	// Kind classifies the failure.
	Kind Kind
	// Message gives operation-specific detail.
	Message string
	// Err, when non-nil, is the underlying cause (e.g. an aggregated
	// *multierror.Error from a parser).
	Err error
}

// Error implements the error interface.
//
// Example output: "nnf: 'FromKind': AbstractInstantiation: cannot construct abstract Internal node directly"
func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("nnf: '%s': %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("nnf: '%s': %s: %s", e.Op, e.Kind, e.Message)
}

// Unwrap exposes the underlying cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// newError creates a new Error with the specified operation, kind and
// message. This is the preferred way to construct errors within this
// module and its subpackages.
func newError(operation string, kind Kind, message string) *Error {
	return &Error{Op: operation, Kind: kind, Message: message}
}

// wrapError creates a new Error wrapping an underlying cause.
func wrapError(operation string, kind Kind, message string, cause error) *Error {
	return &Error{Op: operation, Kind: kind, Message: message, Err: cause}
}

// IsKind reports whether err is an *Error of the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
