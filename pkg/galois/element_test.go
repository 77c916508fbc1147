package galois

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustField(t *testing.T, m int) *Field {
	t.Helper()
	f, err := NewDefaultField(m)
	require.NoError(t, err)
	return f
}

// allElements returns every element of f, zero included.
func allElements(f *Field) []Element {
	elems := []Element{Zero(f)}
	for i := 0; i < f.Order()-1; i++ {
		elems = append(elems, NewElement(f, i))
	}
	return elems
}

func TestElementConstructors(t *testing.T) {
	f := mustField(t, 4)

	assert.True(t, Zero(f).IsZero())
	assert.Equal(t, 0, One(f).Power())

	// Powers wrap modulo 2^m - 1, negative powers included. In
	// particular -1 is the inverse of a, never the zero sentinel.
	assert.True(t, NewElement(f, 15).Equal(One(f)))
	assert.True(t, NewElement(f, -1).Equal(NewElement(f, 14)))
	assert.False(t, NewElement(f, -1).IsZero())
	assert.Equal(t, 14, NewElement(f, -1).Power())
	assert.True(t, NewElement(f, PowerZero).IsZero())

	e, err := ElementFromVector(f, 0b0011)
	require.NoError(t, err)
	assert.Equal(t, 4, e.Power())

	_, err = ElementFromVector(f, 16)
	assert.ErrorIs(t, err, ErrUnknownVector)
}

func TestAddProperties(t *testing.T) {
	f := mustField(t, 4)
	elems := allElements(f)

	zero := Zero(f)
	for _, a := range elems {
		for _, b := range elems {
			ab, err := a.Add(b)
			require.NoError(t, err)
			ba, err := b.Add(a)
			require.NoError(t, err)
			assert.True(t, ab.Equal(ba), "%v + %v", a, b)
		}

		aa, err := a.Add(a)
		require.NoError(t, err)
		assert.True(t, aa.Equal(zero), "%v + %v", a, a)

		az, err := a.Add(zero)
		require.NoError(t, err)
		assert.True(t, az.Equal(a))

		sub, err := a.Sub(a)
		require.NoError(t, err)
		assert.True(t, sub.IsZero())
	}
}

func TestAddAssociativity(t *testing.T) {
	f := mustField(t, 3)
	elems := allElements(f)

	for _, a := range elems {
		for _, b := range elems {
			for _, c := range elems {
				ab, err := a.Add(b)
				require.NoError(t, err)
				left, err := ab.Add(c)
				require.NoError(t, err)

				bc, err := b.Add(c)
				require.NoError(t, err)
				right, err := a.Add(bc)
				require.NoError(t, err)

				assert.True(t, left.Equal(right), "(%v+%v)+%v", a, b, c)
			}
		}
	}
}

// Addition vectors for GF(16), after the binext test suite.
func TestAddGF16Vectors(t *testing.T) {
	f := mustField(t, 4)

	tests := []struct {
		a, b, sum int
	}{
		{PowerZero, PowerZero, PowerZero},
		{1, 1, PowerZero},
		{13, 13, PowerZero},
		{15, 15, PowerZero},
		{1, PowerZero, 1},
		{PowerZero, 1, 1},
		{13, PowerZero, 13},
		{PowerZero, 13, 13},
		{15, PowerZero, 0},
		{PowerZero, 15, 0},
	}

	for _, tt := range tests {
		got, err := NewElement(f, tt.a).Add(NewElement(f, tt.b))
		require.NoError(t, err)
		want := NewElement(f, tt.sum)
		assert.True(t, got.Equal(want), "a^%d + a^%d = %v, want %v", tt.a, tt.b, got, want)
	}
}

func TestMulProperties(t *testing.T) {
	f := mustField(t, 4)
	elems := allElements(f)

	zero, one := Zero(f), One(f)
	for _, a := range elems {
		for _, b := range elems {
			ab, err := a.Mul(b)
			require.NoError(t, err)
			ba, err := b.Mul(a)
			require.NoError(t, err)
			assert.True(t, ab.Equal(ba), "%v * %v", a, b)
		}

		az, err := a.Mul(zero)
		require.NoError(t, err)
		assert.True(t, az.IsZero())

		ao, err := a.Mul(one)
		require.NoError(t, err)
		assert.True(t, ao.Equal(a))

		if a.IsZero() {
			continue
		}
		inv, err := a.Inv()
		require.NoError(t, err)
		prod, err := a.Mul(inv)
		require.NoError(t, err)
		assert.True(t, prod.Equal(one), "%v * %v", a, inv)
	}
}

func TestMulDistributesOverAdd(t *testing.T) {
	f := mustField(t, 3)
	elems := allElements(f)

	for _, a := range elems {
		for _, b := range elems {
			for _, c := range elems {
				bc, err := b.Add(c)
				require.NoError(t, err)
				left, err := a.Mul(bc)
				require.NoError(t, err)

				ab, err := a.Mul(b)
				require.NoError(t, err)
				ac, err := a.Mul(c)
				require.NoError(t, err)
				right, err := ab.Add(ac)
				require.NoError(t, err)

				assert.True(t, left.Equal(right), "%v*(%v+%v)", a, b, c)
			}
		}
	}
}

func TestGF8WorkedExample(t *testing.T) {
	f, err := NewField(3, 0xB)
	require.NoError(t, err)

	// a^3 * a^5 = a^(8 mod 7) = a^1, vector 010.
	prod, err := NewElement(f, 3).Mul(NewElement(f, 5))
	require.NoError(t, err)
	assert.Equal(t, 1, prod.Power())
	assert.Equal(t, uint(0b010), prod.Vector())

	// (a^3)^-1 = a^(7-3) = a^4, vector 110.
	inv, err := NewElement(f, 3).Inv()
	require.NoError(t, err)
	assert.Equal(t, 4, inv.Power())
	assert.Equal(t, uint(0b110), inv.Vector())
}

func TestDivAndInvErrors(t *testing.T) {
	f := mustField(t, 3)

	_, err := Zero(f).Inv()
	assert.ErrorIs(t, err, ErrDivideByZero)

	_, err = One(f).Div(Zero(f))
	assert.ErrorIs(t, err, ErrDivideByZero)

	q, err := Zero(f).Div(NewElement(f, 3))
	require.NoError(t, err)
	assert.True(t, q.IsZero())

	a, b := NewElement(f, 5), NewElement(f, 2)
	q, err = a.Div(b)
	require.NoError(t, err)
	back, err := q.Mul(b)
	require.NoError(t, err)
	assert.True(t, back.Equal(a))
}

func TestExp(t *testing.T) {
	f := mustField(t, 4)
	a := NewElement(f, 3)

	assert.Equal(t, 0, a.Exp(0).Power())
	assert.Equal(t, 6, a.Exp(2).Power())
	assert.Equal(t, 0, a.Exp(5).Power())  // a^15 = 1
	assert.Equal(t, 12, a.Exp(-1).Power()) // inverse of a^3
	assert.True(t, Zero(f).Exp(4).IsZero())
}

func TestMismatchedFields(t *testing.T) {
	f1 := mustField(t, 3)
	f2 := mustField(t, 4)

	// Two fields with identical parameters are still distinct tables.
	f3 := mustField(t, 3)

	a := NewElement(f1, 2)
	for _, b := range []Element{NewElement(f2, 2), NewElement(f3, 2)} {
		_, err := a.Add(b)
		assert.ErrorIs(t, err, ErrMismatchedField)
		_, err = a.Mul(b)
		assert.ErrorIs(t, err, ErrMismatchedField)
		_, err = a.Div(b)
		assert.ErrorIs(t, err, ErrMismatchedField)
		assert.False(t, a.Equal(b))
	}
}

func TestElementString(t *testing.T) {
	f := mustField(t, 3)

	assert.Equal(t, "0", Zero(f).String())
	assert.Equal(t, "1", One(f).String())
	assert.Equal(t, "a^5", NewElement(f, 5).String())
}
