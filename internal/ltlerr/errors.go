package ltlerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code classifies a UserError for callers that want to branch on it
// without string-matching Message.
type Code int

const (
	CodeUnknown Code = iota
	CodeMalformedInput
	CodeUnknownAtomic
	CodeIndexOutOfRange
	CodeNoAtomicPropositions
	CodeEmptyAutomaton
	CodeDeadlockedState
)

// UserError reports malformed input. It is returned as an ordinary
// error, with one exception: formula.Collector.Collect panics with a
// UserError when its collector has zero atomic propositions. Recover
// does not convert that panic.
type UserError struct {
	Code    Code
	Message string
	cause   error
}

func (e *UserError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.cause)
	}
	return e.Message
}

func (e *UserError) Unwrap() error { return e.cause }
func (e *UserError) Cause() error  { return e.cause }

// User constructs a UserError with the given code and message.
func User(code Code, message string) *UserError {
	return &UserError{Code: code, Message: message}
}

// Userf constructs a UserError formatting message like fmt.Sprintf.
func Userf(code Code, format string, args ...any) *UserError {
	return &UserError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapUser wraps an underlying error (e.g. from an external parser) as
// a UserError, preserving a stack trace via github.com/pkg/errors.
func WrapUser(code Code, message string, cause error) *UserError {
	return &UserError{Code: code, Message: message, cause: errors.WithStack(cause)}
}

// InvariantError reports a programmer/invariant violation. It is
// constructed with Invariant and panicked, never returned directly.
type InvariantError struct {
	Message string
	stack   error
}

func (e *InvariantError) Error() string {
	return "invariant violation: " + e.Message
}

// Format supports %+v, printing the stack trace captured at the point
// Invariant was called.
func (e *InvariantError) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "invariant violation: %+v", e.stack)
		return
	}
	fmt.Fprint(f, e.Error())
}

// Invariant constructs an InvariantError carrying a stack trace,
// suitable for `panic(ltlerr.Invariant(...))`.
func Invariant(message string) *InvariantError {
	return &InvariantError{Message: message, stack: errors.New(message)}
}

// Invariantf is Invariant with fmt.Sprintf-style formatting.
func Invariantf(format string, args ...any) *InvariantError {
	return Invariant(fmt.Sprintf(format, args...))
}

// Recover turns a panic carrying an *InvariantError into a returned
// error, by assigning to *errOut from a deferred call. Panics for any
// other reason propagate unchanged.
func Recover(errOut *error) {
	r := recover()
	if r == nil {
		return
	}
	if ie, ok := r.(*InvariantError); ok {
		*errOut = ie
		return
	}
	panic(r)
}
