// Package diag carries the invariant-violation errors the type-inference
// pass raises on a programmer error (an instruction kind with no transfer
// function, a type-producing instruction left at NoType). These are not
// user-facing compile diagnostics -
// there is no batching, no recovery, no formatted-source-snippet rendering -
// just a coded, stack-carrying error the caller is expected to panic with.
package diag

import (
	"fmt"

	"github.com/pkg/errors"
)

type FaultCode int

const (
	None FaultCode = iota
	OutputDisciplineViolated
	UnhandledTransferFunction
)

func (c FaultCode) String() string {
	switch c {
	case OutputDisciplineViolated:
		return "output discipline violated"
	case UnhandledTransferFunction:
		return "unhandled transfer function"
	default:
		return "fault"
	}
}

// Fault is an invariant violation: the pass cannot make progress without
// either an unsound answer or stopping, so it stops.
type Fault struct {
	Code    FaultCode
	Message string
	cause   error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("(F%03d) %s: %s", f.Code, f.Code, f.Message)
}

func (f *Fault) Unwrap() error { return f.cause }

// New builds a Fault with a captured stack trace, in the style of
// pkg/errors.WithStack, so the abort site is visible in logs.
func New(code FaultCode, message string) *Fault {
	return &Fault{Code: code, Message: message, cause: errors.New(message)}
}

// Newf is New with fmt.Sprintf-style formatting.
func Newf(code FaultCode, format string, args ...any) *Fault {
	return New(code, fmt.Sprintf(format, args...))
}

// FormatWithCode renders f including its captured stack, for logging before
// the pass panics.
func FormatWithCode(f *Fault) string {
	return fmt.Sprintf("%s\n%+v", f.Error(), f.cause)
}
