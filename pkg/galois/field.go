// Package galois implements table-based arithmetic over binary extension
// fields GF(2^m), as used in error-control coding (Reed-Solomon, BCH).
//
// A Field is built once from an extension degree and a primitive
// polynomial; construction walks the powers of the root alpha and records
// the bijection between the power representation (exponent of alpha) and
// the vector representation (coefficient bitmask over GF(2)). The tables
// are immutable after construction and safe for concurrent readers.
package galois

import (
	"fmt"
	"math"
	"math/bits"
)

// PowerZero is the power-representation sentinel for the zero element
// (conventionally written alpha^-inf). The value lies outside any
// usable exponent so it cannot collide with negative powers such as -1,
// which NewElement resolves modulo 2^m - 1.
const PowerZero = math.MinInt

// Field holds the lookup tables for GF(2^m) built from a primitive
// polynomial. Nonzero elements are the powers 0..2^m-2 of the root alpha;
// the zero element is carried separately under PowerZero.
type Field struct {
	m    int
	q    int // field order, 2^m
	poly Poly

	powToVec []uint // power -> coefficient bitmask, length q-1
	vecToPow []int  // coefficient bitmask -> power, length q
}

// NewField builds the lookup tables for GF(2^m) from a degree-m primitive
// polynomial. The polynomial must have its degree-m and constant
// coefficients set (ErrInvalidPolynomial otherwise). A polynomial whose
// root does not generate all 2^m - 1 nonzero elements is rejected with
// ErrNotPrimitive; no partial table over a subgroup is ever built.
func NewField(m int, poly Poly) (*Field, error) {
	if m < 1 {
		return nil, fmt.Errorf("%w: extension degree must be at least 1, got %d", ErrInvalidPolynomial, m)
	}
	if m >= bits.UintSize-1 {
		return nil, fmt.Errorf("%w: extension degree %d too large for table representation", ErrInvalidPolynomial, m)
	}
	if d := poly.Degree(); d != m {
		return nil, fmt.Errorf("%w: degree is %d, want %d", ErrInvalidPolynomial, d, m)
	}
	if poly.Coeff(0) != 1 {
		return nil, fmt.Errorf("%w: constant coefficient must be 1", ErrInvalidPolynomial)
	}

	q := 1 << uint(m)
	f := &Field{
		m:        m,
		q:        q,
		poly:     poly,
		powToVec: make([]uint, q-1),
		vecToPow: make([]int, q),
	}

	// Walk the powers of alpha: multiply by alpha is a left shift, and a
	// shifted-out degree-m bit is reduced by XORing the low m coefficients
	// of the polynomial (alpha^m equals the lower terms over GF(2)).
	mask := uint(q - 1)
	low := uint(poly) & mask
	a := uint(1)
	for i := 0; i < q-1; i++ {
		if a == 1 && i != 0 {
			// The orbit of 1 under multiplication by alpha closed early:
			// alpha generates a proper subgroup of order i.
			return nil, fmt.Errorf("%w: root has multiplicative order %d, want %d", ErrNotPrimitive, i, q-1)
		}
		f.powToVec[i] = a
		f.vecToPow[a] = i
		a <<= 1
		if a&uint(q) != 0 {
			a = (a & mask) ^ low
		}
	}
	if a != 1 {
		return nil, fmt.Errorf("%w: power cycle did not close at alpha^%d", ErrNotPrimitive, q-1)
	}
	f.vecToPow[0] = PowerZero

	return f, nil
}

// NewDefaultField builds GF(2^m) using the built-in primitive polynomial
// for m (see DefaultPoly).
func NewDefaultField(m int) (*Field, error) {
	poly, err := DefaultPoly(m)
	if err != nil {
		return nil, err
	}
	return NewField(m, poly)
}

// NewFieldOrder builds the field of the given order, which must be a
// power of two with a built-in default polynomial.
func NewFieldOrder(order int) (*Field, error) {
	if order < 2 || order&(order-1) != 0 {
		return nil, fmt.Errorf("%w: field order %d is not a power of two", ErrInvalidPolynomial, order)
	}
	return NewDefaultField(bits.Len(uint(order)) - 1)
}

// M returns the extension degree.
func (f *Field) M() int { return f.m }

// Order returns the number of field elements, 2^m.
func (f *Field) Order() int { return f.q }

// Polynomial returns the primitive polynomial the field was built from.
func (f *Field) Polynomial() Poly { return f.poly }

// ToVector converts a power index to its coefficient bitmask.
// PowerZero maps to the zero vector.
func (f *Field) ToVector(power int) (uint, error) {
	if power == PowerZero {
		return 0, nil
	}
	if power < 0 || power >= f.q-1 {
		return 0, fmt.Errorf("%w: power %d not in [0, %d]", ErrOutOfRange, power, f.q-2)
	}
	return f.powToVec[power], nil
}

// ToPower converts a coefficient bitmask to its power index.
// The zero vector maps to PowerZero.
func (f *Field) ToPower(vec uint) (int, error) {
	if vec >= uint(f.q) {
		return 0, fmt.Errorf("%w: vector %#b has degree >= %d", ErrUnknownVector, vec, f.m)
	}
	return f.vecToPow[vec], nil
}

// addPow and mulPow are the table-arithmetic primitives on power indices;
// element operations and minimal-polynomial synthesis are built on them.

func (f *Field) addPow(a, b int) int {
	var va, vb uint
	if a != PowerZero {
		va = f.powToVec[a]
	}
	if b != PowerZero {
		vb = f.powToVec[b]
	}
	return f.vecToPow[va^vb]
}

func (f *Field) mulPow(a, b int) int {
	if a == PowerZero || b == PowerZero {
		return PowerZero
	}
	return (a + b) % (f.q - 1)
}
