package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldlab/gf2m/pkg/galois"
)

func TestValidatePolySpec(t *testing.T) {
	valid := []string{
		"x^3+x+1",
		"X^4 + X + 1",
		"0,1,3",
		"0b1011",
		"0x11D",
		"10011",
		"285",
	}
	for _, input := range valid {
		assert.NoError(t, ValidatePolySpec(input), "input %q", input)
	}

	invalid := []string{
		"",
		"x^3-x+1",
		"y^3+1",
		"0,0,3",
		"0bxyz",
		"x^3++1",
	}
	for _, input := range invalid {
		assert.Error(t, ValidatePolySpec(input), "input %q", input)
	}
}

func TestValidateDegree(t *testing.T) {
	assert.NoError(t, ValidateDegree(1))
	assert.NoError(t, ValidateDegree(MaxDegree))
	assert.Error(t, ValidateDegree(0))
	assert.Error(t, ValidateDegree(-3))
	assert.Error(t, ValidateDegree(MaxDegree+1))
}

func TestParseElement(t *testing.T) {
	f, err := galois.NewField(3, 0xB)
	require.NoError(t, err)

	tests := []struct {
		input string
		want  galois.Element
	}{
		{"zero", galois.Zero(f)},
		{"-", galois.Zero(f)},
		{"0", galois.One(f)},
		{"a^3", galois.NewElement(f, 3)},
		{"3", galois.NewElement(f, 3)},
		{"10", galois.NewElement(f, 3)}, // powers wrap mod 7
		{"a^-1", galois.NewElement(f, 6)},
		{"v:110", galois.NewElement(f, 4)},
		{"0b110", galois.NewElement(f, 4)},
	}

	for _, tt := range tests {
		got, err := ParseElement(f, tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.True(t, got.Equal(tt.want), "input %q: got %v, want %v", tt.input, got, tt.want)
	}
}

func TestParseElementErrors(t *testing.T) {
	f, err := galois.NewField(3, 0xB)
	require.NoError(t, err)

	for _, input := range []string{"", "a^", "b^3", "v:", "v:102", "one"} {
		_, err := ParseElement(f, input)
		assert.Error(t, err, "input %q", input)
	}

	// Vector outside the field.
	_, err = ParseElement(f, "v:1000")
	assert.ErrorIs(t, err, galois.ErrUnknownVector)
}
