package hbag

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValue signals an error in attribute value parsing
	ErrValue = errors.New("Value error")
)

// MaxUnsigned is the largest value a reflected unsigned integer attribute can
// hold. Values written above this limit are clamped down to it.
const MaxUnsigned = 2147483647

// ParseUnsigned reads an attribute value as a non-negative integer. Leading
// whitespace and a single leading plus sign are allowed, anything after the
// digit sequence is ignored. Values above MaxUnsigned are out of range.
func ParseUnsigned(value string) (int, error) {
	s := strings.TrimLeft(value, " \t\n\f\r")
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	if len(s) == 0 || s[0] < '0' || s[0] > '9' {
		return 0, fmt.Errorf("%w no digits in %q", ErrValue, value)
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		if n > MaxUnsigned {
			return 0, fmt.Errorf("%w %q out of range", ErrValue, value)
		}
	}
	return n, nil
}

// ClampUnsigned forces n into the range of a reflected unsigned integer
// attribute. Negative values become 0, values above MaxUnsigned become
// MaxUnsigned.
func ClampUnsigned(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxUnsigned {
		return MaxUnsigned
	}
	return n
}

// MustUnsigned parses the attribute value as a non-negative integer. In case
// of an error, the function panics.
func MustUnsigned(value string) int {
	n, err := ParseUnsigned(value)
	if err != nil {
		if errors.Is(err, ErrValue) {
			fmt.Println(errors.Unwrap(err))
		}
		panic(err)
	}
	return n
}
