package galois

import "errors"

// Error kinds reported by field construction and element arithmetic.
// All are raised synchronously at the violated precondition and are
// matchable with errors.Is through any wrapping context.
var (
	// ErrInvalidPolynomial reports a polynomial whose degree or boundary
	// coefficients make it unusable as a field generator.
	ErrInvalidPolynomial = errors.New("invalid polynomial")

	// ErrNotPrimitive reports an irreducible-looking polynomial whose root
	// fails to generate the full multiplicative group of order 2^m - 1.
	ErrNotPrimitive = errors.New("polynomial is not primitive")

	// ErrOutOfRange reports a power index outside [0, 2^m-2].
	ErrOutOfRange = errors.New("power out of range")

	// ErrUnknownVector reports a vector that cannot belong to the field.
	ErrUnknownVector = errors.New("vector not in field")

	// ErrDivideByZero reports inversion or division by the zero element.
	ErrDivideByZero = errors.New("division by zero element")

	// ErrMismatchedField reports arithmetic between elements of different fields.
	ErrMismatchedField = errors.New("elements belong to different fields")
)
