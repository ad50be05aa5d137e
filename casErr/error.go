/*
File    : algebra-cas/casErr/error.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package casErr defines the engine's error taxonomy: runtime faults as
// first-class values threaded through the engine rather than bare Go
// errors, while still implementing the standard error interface so callers
// can use errors.Is/errors.As.
package casErr

import (
	"errors"
	"fmt"
)

// Kind classifies what went wrong.
type Kind string

const (
	// LexError marks an unrecognized character during tokenization.
	LexError Kind = "LexError"
	// ParseError marks an unexpected token or unmatched parenthesis.
	ParseError Kind = "ParseError"
	// NotAnEquation marks a top-level tree that is not rooted at "=" where
	// one was required (Isolate, Solve).
	NotAnEquation Kind = "NotAnEquation"
	// DivByZero marks a literal division by zero during constant folding
	// or identity reduction.
	DivByZero Kind = "DivByZero"
	// NotConverged marks a fixpoint that exceeded its iteration cap.
	NotConverged Kind = "NotConverged"
	// CannotDerive marks a solver variable with no equation that defines
	// it; Error.Variable carries the offending name.
	CannotDerive Kind = "CannotDerive"
	// Unsupported marks an operator kind with no rewrite rule in a context
	// that required one (e.g. the isolator meeting "^").
	Unsupported Kind = "Unsupported"
)

// Error is the engine's single error type. Every failure surfaced across a
// package boundary is one of these, never a bare fmt.Errorf string, so
// callers can branch on Kind instead of parsing messages.
type Error struct {
	Kind     Kind
	Message  string
	Variable string // set only for CannotDerive
	cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes a wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// New builds an Error of the given kind with a plain message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf builds an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, a ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

// Wrap builds an Error of the given kind whose message is cause's, keeping
// cause reachable via Unwrap.
func Wrap(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Message: cause.Error(), cause: cause}
}

// CannotDeriveVar builds the one Kind that carries extra structured data:
// the name of the variable the solver could not find a defining equation
// for.
func CannotDeriveVar(variable string) *Error {
	return &Error{
		Kind:     CannotDerive,
		Message:  fmt.Sprintf("no equation defines variable %q", variable),
		Variable: variable,
	}
}

// Is reports whether err is a *Error of the given kind, so callers can
// write `casErr.Is(err, casErr.DivByZero)` instead of a type assertion.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
