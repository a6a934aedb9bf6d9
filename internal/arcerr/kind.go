// Package arcerr defines the error taxonomy shared by the model, coder and
// container packages.
package arcerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies the category of a coder failure.
type Kind int

// Error kinds.
const (
	// Io indicates a read or write to the underlying stream failed.
	Io Kind = iota
	// InputTooLarge indicates total+1 exceeds 2^(P-2) for the chosen precision.
	InputTooLarge
	// BadPrecision indicates the chosen precision P yields too small a range.
	BadPrecision
	// UnknownSymbol indicates a byte was never observed by the SymbolTable.
	UnknownSymbol
	// ValueOutOfRange indicates a cumulative value v >= total during decode.
	ValueOutOfRange
	// Corrupt indicates the decoder's low <= code <= high invariant was
	// violated.
	Corrupt
	// BadContainer indicates the container layout itself could not be parsed,
	// including a trailer that is inconsistent with the file length.
	BadContainer
)

func (k Kind) String() string {
	m := map[Kind]string{
		Io:              "io",
		InputTooLarge:   "input too large",
		BadPrecision:    "bad precision",
		UnknownSymbol:   "unknown symbol",
		ValueOutOfRange: "value out of range",
		Corrupt:         "corrupt",
		BadContainer:    "bad container",
	}
	return m[k]
}

// Error is a typed, stack-carrying error. Format with "%+v" to print the
// stack trace captured at the point of failure.
type Error struct {
	Kind  Kind
	cause error
}

// New wraps msg under the given kind, capturing a stack trace.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, cause: errors.New(msg)}
}

// Newf is like New but formats its message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, cause: errors.Errorf(format, args...)}
}

// Wrap annotates err under the given kind, capturing a stack trace at the
// call site.
func Wrap(kind Kind, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, cause: errors.WithStack(err)}
}

// Wrapf is like Wrap but also attaches a formatted message.
func Wrapf(kind Kind, err error, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, cause: errors.Wrapf(err, format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.cause)
}

// Format implements fmt.Formatter so that "%+v" prints the captured stack.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s: %+v", e.Kind, e.cause)
			return
		}
		fallthrough
	default:
		fmt.Fprint(s, e.Error())
	}
}

// Unwrap allows errors.As/errors.Is to see through to the cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Kind == kind
}
