package galois

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoly(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Poly
	}{
		{"algebraic", "x^3+x+1", 0xB},
		{"algebraic with spaces", "x^4 + x + 1", 0x13},
		{"algebraic uppercase", "X^2+X+1", 0x7},
		{"exponent list", "0,1,3", 0xB},
		{"exponent list unordered", "8,4,3,2,0", 0x11D},
		{"binary prefixed", "0b1011", 0xB},
		{"binary bare", "10011", 0x13},
		{"hex", "0x11D", 0x11D},
		{"hex lowercase", "0xb", 0xB},
		{"hex uppercase prefix", "0X13", 0x13},
		{"binary uppercase prefix", "0B1011", 0xB},
		{"decimal", "285", 0x11D},
		{"single one", "1", 0x1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePoly(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePolyErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"garbage", "hello"},
		{"bad term", "x^3+y"},
		{"bad exponent", "0,1,a"},
		{"negative exponent", "-1,0"},
		{"duplicate exponent", "0,0,3"},
		{"zero bitmask", "0"},
		{"bad hex", "0xZZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePoly(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPolynomial)
		})
	}
}

func TestPolyString(t *testing.T) {
	tests := []struct {
		poly Poly
		want string
	}{
		{0, "0"},
		{0x1, "1"},
		{0x2, "x"},
		{0x3, "x+1"},
		{0xB, "x^3+x+1"},
		{0x11D, "x^8+x^4+x^3+x^2+1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.poly.String())
	}
}

func TestPolyAccessors(t *testing.T) {
	p := Poly(0xB) // x^3+x+1

	assert.Equal(t, 3, p.Degree())
	assert.Equal(t, -1, Poly(0).Degree())

	assert.Equal(t, 1, p.Coeff(0))
	assert.Equal(t, 1, p.Coeff(1))
	assert.Equal(t, 0, p.Coeff(2))
	assert.Equal(t, 1, p.Coeff(3))
	assert.Equal(t, 0, p.Coeff(-1))

	assert.Equal(t, []int{0, 1, 3}, p.Exponents())
	assert.Equal(t, "1011", p.Bits(4))
	assert.Equal(t, "001011", p.Bits(6))
}

func TestDefaultPoly(t *testing.T) {
	for _, m := range DefaultDegrees() {
		p, err := DefaultPoly(m)
		require.NoError(t, err)
		assert.Equal(t, m, p.Degree(), "m=%d", m)

		// Every built-in polynomial must actually build its field.
		_, err = NewField(m, p)
		require.NoError(t, err, "m=%d", m)
	}

	_, err := DefaultPoly(42)
	assert.ErrorIs(t, err, ErrInvalidPolynomial)
}
