package galois

import (
	"fmt"
	"math/bits"
	"sort"
	"strconv"
	"strings"
)

// Poly is a polynomial over GF(2) stored as a coefficient bitmask:
// bit i holds the coefficient of x^i. The zero value is the zero polynomial.
type Poly uint

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	return bits.Len(uint(p)) - 1
}

// Coeff returns the coefficient (0 or 1) of x^i.
func (p Poly) Coeff(i int) int {
	if i < 0 || i >= bits.UintSize {
		return 0
	}
	return int(p>>uint(i)) & 1
}

// Exponents returns the exponents with nonzero coefficients, ascending.
func (p Poly) Exponents() []int {
	var exps []int
	for i := 0; i <= p.Degree(); i++ {
		if p.Coeff(i) == 1 {
			exps = append(exps, i)
		}
	}
	return exps
}

// String renders p in algebraic form with descending exponents,
// e.g. "x^4+x+1". The zero polynomial renders as "0".
func (p Poly) String() string {
	if p == 0 {
		return "0"
	}
	var terms []string
	for i := p.Degree(); i >= 0; i-- {
		if p.Coeff(i) == 0 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, "x^"+strconv.Itoa(i))
		}
	}
	return strings.Join(terms, "+")
}

// Bits renders the coefficients as a binary string of the given width,
// highest degree first. This high-to-low order matches the conventional
// coding-theory table layout and is the display order used everywhere
// in this module; the bitmask itself stays low-bit-first.
func (p Poly) Bits(width int) string {
	return fmt.Sprintf("%0*b", width, uint(p))
}

// PolyFromExponents builds a polynomial from the exponents with
// nonzero coefficients, e.g. [0,1,3] -> x^3+x+1.
func PolyFromExponents(exps []int) (Poly, error) {
	var p Poly
	for _, e := range exps {
		if e < 0 || e >= bits.UintSize-1 {
			return 0, fmt.Errorf("%w: exponent %d out of range", ErrInvalidPolynomial, e)
		}
		if p.Coeff(e) == 1 {
			return 0, fmt.Errorf("%w: duplicate exponent %d", ErrInvalidPolynomial, e)
		}
		p |= 1 << uint(e)
	}
	if p == 0 {
		return 0, fmt.Errorf("%w: no exponents given", ErrInvalidPolynomial)
	}
	return p, nil
}

// ParsePoly parses a polynomial specification. Accepted forms:
//
//	x^3+x+1        algebraic
//	0,1,3          comma-separated exponent list
//	0b1011, 1011   binary coefficient string, highest degree first
//	0xB            hex bitmask
//	11             decimal bitmask (digits other than 0 and 1 present)
//
// A bare string consisting only of 0s and 1s is read as a binary
// coefficient string, not as a decimal number.
func ParsePoly(s string) (Poly, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return 0, fmt.Errorf("%w: empty specification", ErrInvalidPolynomial)
	}

	// Base prefixes are checked before the algebraic form: a hex spec
	// like "0xB" contains an 'x' but is not an algebraic term.
	switch {
	case strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B"):
		return parseUintSpec(s[2:], 2)
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		return parseUintSpec(s[2:], 16)
	case strings.ContainsAny(s, "xX"):
		return parseAlgebraic(s)
	case strings.Contains(s, ","):
		return parseExponentList(s)
	case strings.Trim(s, "01") == "":
		return parseUintSpec(s, 2)
	default:
		return parseUintSpec(s, 10)
	}
}

func parseUintSpec(s string, base int) (Poly, error) {
	v, err := strconv.ParseUint(s, base, bits.UintSize-1)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a valid base-%d bitmask", ErrInvalidPolynomial, s, base)
	}
	if v == 0 {
		return 0, fmt.Errorf("%w: zero polynomial", ErrInvalidPolynomial)
	}
	return Poly(v), nil
}

func parseExponentList(s string) (Poly, error) {
	parts := strings.Split(s, ",")
	exps := make([]int, 0, len(parts))
	for _, part := range parts {
		e, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a valid exponent", ErrInvalidPolynomial, part)
		}
		exps = append(exps, e)
	}
	return PolyFromExponents(exps)
}

func parseAlgebraic(s string) (Poly, error) {
	s = strings.ToLower(s)
	var exps []int
	for _, term := range strings.Split(s, "+") {
		switch {
		case term == "1":
			exps = append(exps, 0)
		case term == "x":
			exps = append(exps, 1)
		case strings.HasPrefix(term, "x^"):
			e, err := strconv.Atoi(term[2:])
			if err != nil {
				return 0, fmt.Errorf("%w: bad term %q", ErrInvalidPolynomial, term)
			}
			exps = append(exps, e)
		default:
			return 0, fmt.Errorf("%w: bad term %q", ErrInvalidPolynomial, term)
		}
	}
	return PolyFromExponents(exps)
}

// Default primitive polynomials by extension degree, from Appendix B of
// Lin and Costello, "Error Control Coding".
var defaultPolys = map[int]Poly{
	1:  0x3,   // x+1
	2:  0x7,   // x^2+x+1
	3:  0xB,   // x^3+x+1
	4:  0x13,  // x^4+x+1
	5:  0x25,  // x^5+x^2+1
	6:  0x43,  // x^6+x+1
	7:  0x89,  // x^7+x^3+1
	8:  0x11D, // x^8+x^4+x^3+x^2+1
	9:  0x211, // x^9+x^4+1
	10: 0x409, // x^10+x^3+1
}

// DefaultPoly returns the built-in primitive polynomial for GF(2^m).
func DefaultPoly(m int) (Poly, error) {
	p, ok := defaultPolys[m]
	if !ok {
		return 0, fmt.Errorf("%w: no default primitive polynomial for m=%d", ErrInvalidPolynomial, m)
	}
	return p, nil
}

// DefaultDegrees returns the extension degrees with a built-in
// primitive polynomial, ascending.
func DefaultDegrees() []int {
	degrees := make([]int, 0, len(defaultPolys))
	for m := range defaultPolys {
		degrees = append(degrees, m)
	}
	sort.Ints(degrees)
	return degrees
}
