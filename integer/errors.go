package integer

import "github.com/zeebo/errs"

// Error classes.
var (
	Error       = errs.Class("integer")
	FormatError = errs.Class("integer format")
	DomainError = errs.Class("integer domain")
)

// ErrNegativeFactorial is returned when the factorial of a negative value is
// requested.
var ErrNegativeFactorial = DomainError.New("factorial of negative value")
