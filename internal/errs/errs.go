// Package errs defines the three error kinds the interpreter can raise:
// Syntax (malformed tokens or expression shape), Name (unbound identifier),
// and Runtime (type mismatches, arity violations, out-of-range access).
package errs

import "fmt"

// Kind identifies which of the three error classes an error belongs to.
type Kind int

const (
	KindSyntax Kind = iota
	KindName
	KindRuntime
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "Syntax"
	case KindName:
		return "Name"
	case KindRuntime:
		return "Runtime"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type raised by every interpreter subsystem.
// The Kind is the load-bearing signal for callers; Message is for humans.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newf(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...)}
}

// Syntax reports a malformed token stream or malformed expression structure.
func Syntax(format string, args ...any) *Error {
	return newf(KindSyntax, format, args...)
}

// Name reports lookup or set! of an unbound identifier.
func Name(format string, args ...any) *Error {
	return newf(KindName, format, args...)
}

// Runtime reports type mismatches, arity violations, and out-of-range access.
func Runtime(format string, args ...any) *Error {
	return newf(KindRuntime, format, args...)
}

// IsSyntax reports whether err is a Syntax error.
func IsSyntax(err error) bool { return isKind(err, KindSyntax) }

// IsName reports whether err is a Name error.
func IsName(err error) bool { return isKind(err, KindName) }

// IsRuntime reports whether err is a Runtime error.
func IsRuntime(err error) bool { return isKind(err, KindRuntime) }

func isKind(err error, k Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == k
}
