package meganum

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("meganum")

// Error kinds. Callers match on these with errors.Is; the errors returned
// by operations wrap one of them.
var (
	// ErrDivisionByZero is returned by any division or modulus whose
	// divisor is zero.
	ErrDivisionByZero = Error.New("division by zero")

	// ErrDomain is returned for operations outside their mathematical
	// domain, such as the square root of a negative number.
	ErrDomain = Error.New("domain error")

	// ErrUnsupported is returned when an operation requires a kind the
	// operand does not have, e.g. float arithmetic on an integer Number.
	ErrUnsupported = Error.New("unsupported operation")

	// ErrParse is returned for malformed numeric strings.
	ErrParse = Error.New("parse error")

	// ErrOverflow is returned when a Number does not fit the requested
	// machine-word type.
	ErrOverflow = Error.New("overflow")
)
