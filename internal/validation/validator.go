package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/fieldlab/gf2m/pkg/galois"
)

var (
	algebraicPattern = regexp.MustCompile(`^(?i)(x(\^\d+)?|1)(\+(x(\^\d+)?|1))*$`)
	exponentPattern  = regexp.MustCompile(`^\d+(,\d+)+$`)
	bitmaskPattern   = regexp.MustCompile(`^(0[bB][01]+|0[xX][0-9a-fA-F]+|\d+)$`)
	elementPattern   = regexp.MustCompile(`^(zero|-|a\^-?\d+|-?\d+|v:[01]+|0[bB][01]+)$`)
)

// MaxDegree bounds the accepted extension degree: the tables hold 2^m
// entries, so large m is rejected up front rather than left to exhaust
// memory.
const MaxDegree = 24

// ValidatePolySpec checks that the input is a well-formed polynomial
// specification in one of the forms galois.ParsePoly accepts.
func ValidatePolySpec(input string) error {
	input = strings.ReplaceAll(strings.TrimSpace(input), " ", "")
	if input == "" {
		return fmt.Errorf("polynomial cannot be empty")
	}

	if !algebraicPattern.MatchString(input) &&
		!exponentPattern.MatchString(input) &&
		!bitmaskPattern.MatchString(input) {
		return fmt.Errorf("unrecognized polynomial form: %q", input)
	}

	if _, err := galois.ParsePoly(input); err != nil {
		return fmt.Errorf("invalid polynomial: %w", err)
	}
	return nil
}

// ValidateDegree checks the extension degree range.
func ValidateDegree(m int) error {
	if m < 1 {
		return fmt.Errorf("extension degree must be at least 1 (got %d)", m)
	}
	if m > MaxDegree {
		return fmt.Errorf("extension degree must be at most %d (got %d)", MaxDegree, m)
	}
	return nil
}

// ValidateElementSpec checks that the input names a field element:
// a power "a^k" or bare integer k (so "0" is the one element a^0), a
// vector "v:0110" (binary form "0b0110" also accepted), or "zero"/"-"
// for the zero element.
func ValidateElementSpec(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("element cannot be empty")
	}
	if !elementPattern.MatchString(input) {
		return fmt.Errorf("unrecognized element form: %q (want a power like \"a^3\" or a vector like \"v:110\")", input)
	}
	return nil
}

// ParseElement resolves an element specification against a field.
func ParseElement(f *galois.Field, input string) (galois.Element, error) {
	input = strings.TrimSpace(input)
	if err := ValidateElementSpec(input); err != nil {
		return galois.Element{}, err
	}

	switch {
	case input == "zero" || input == "-":
		return galois.Zero(f), nil
	case strings.HasPrefix(input, "a^"):
		power, err := strconv.Atoi(input[2:])
		if err != nil {
			return galois.Element{}, fmt.Errorf("invalid power in %q: %w", input, err)
		}
		return galois.NewElement(f, power), nil
	case strings.HasPrefix(input, "v:"), strings.HasPrefix(input, "0b"), strings.HasPrefix(input, "0B"):
		vec, err := strconv.ParseUint(input[2:], 2, 64)
		if err != nil {
			return galois.Element{}, fmt.Errorf("invalid vector in %q: %w", input, err)
		}
		return galois.ElementFromVector(f, uint(vec))
	default:
		power, err := strconv.Atoi(input)
		if err != nil {
			return galois.Element{}, fmt.Errorf("invalid element %q: %w", input, err)
		}
		return galois.NewElement(f, power), nil
	}
}
