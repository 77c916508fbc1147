package galois

import (
	"fmt"
	"strconv"
)

// Element is one element of a Field, stored in power representation.
// Elements have value semantics: arithmetic returns new elements and
// never mutates an operand. The zero value of the type is not a valid
// element; construct through Zero, One, NewElement or ElementFromVector.
type Element struct {
	field *Field
	power int
}

// Zero returns the zero element of f.
func Zero(f *Field) Element { return Element{field: f, power: PowerZero} }

// One returns the multiplicative identity of f (alpha^0).
func One(f *Field) Element { return Element{field: f, power: 0} }

// NewElement returns alpha^power in f. The power is taken modulo 2^m - 1;
// negative powers are allowed. PowerZero yields the zero element.
func NewElement(f *Field, power int) Element {
	if power == PowerZero {
		return Zero(f)
	}
	n := f.q - 1
	return Element{field: f, power: ((power % n) + n) % n}
}

// ElementFromVector returns the element of f with the given coefficient
// bitmask.
func ElementFromVector(f *Field, vec uint) (Element, error) {
	power, err := f.ToPower(vec)
	if err != nil {
		return Element{}, err
	}
	return Element{field: f, power: power}, nil
}

// Field returns the field the element belongs to.
func (e Element) Field() *Field { return e.field }

// Power returns the power representation (PowerZero for the zero element).
func (e Element) Power() int { return e.power }

// Vector returns the coefficient bitmask representation.
func (e Element) Vector() uint {
	if e.power == PowerZero {
		return 0
	}
	return e.field.powToVec[e.power]
}

// IsZero reports whether e is the zero element.
func (e Element) IsZero() bool { return e.power == PowerZero }

// Equal reports whether two elements are the same element of the same field.
func (e Element) Equal(b Element) bool {
	return e.field == b.field && e.power == b.power
}

// String renders the element as "0", "1", or "a^k".
func (e Element) String() string {
	switch e.power {
	case PowerZero:
		return "0"
	case 0:
		return "1"
	default:
		return "a^" + strconv.Itoa(e.power)
	}
}

func (e Element) sameField(b Element) error {
	if e.field != b.field {
		return fmt.Errorf("%w: GF(2^%d) vs GF(2^%d)", ErrMismatchedField, e.field.m, b.field.m)
	}
	return nil
}

// Add returns e + b. Addition is the XOR of the vector representations.
func (e Element) Add(b Element) (Element, error) {
	if err := e.sameField(b); err != nil {
		return Element{}, err
	}
	return Element{field: e.field, power: e.field.addPow(e.power, b.power)}, nil
}

// Sub returns e - b, which in characteristic 2 equals e + b.
func (e Element) Sub(b Element) (Element, error) {
	return e.Add(b)
}

// Mul returns e * b. Powers add modulo 2^m - 1; zero absorbs.
func (e Element) Mul(b Element) (Element, error) {
	if err := e.sameField(b); err != nil {
		return Element{}, err
	}
	return Element{field: e.field, power: e.field.mulPow(e.power, b.power)}, nil
}

// Div returns e / b, failing with ErrDivideByZero when b is zero.
func (e Element) Div(b Element) (Element, error) {
	if err := e.sameField(b); err != nil {
		return Element{}, err
	}
	inv, err := b.Inv()
	if err != nil {
		return Element{}, err
	}
	return e.Mul(inv)
}

// Inv returns the multiplicative inverse, alpha^(2^m-1-k) for e = alpha^k.
func (e Element) Inv() (Element, error) {
	if e.power == PowerZero {
		return Element{}, fmt.Errorf("%w: zero element has no inverse", ErrDivideByZero)
	}
	n := e.field.q - 1
	return Element{field: e.field, power: (n - e.power) % n}, nil
}

// Exp returns e raised to the integer power k (negative k allowed).
// The zero element raised to any power is zero.
func (e Element) Exp(k int) Element {
	if e.power == PowerZero {
		return e
	}
	n := e.field.q - 1
	return Element{field: e.field, power: ((e.power * k % n) + n) % n}
}
