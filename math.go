package codejam

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// PrefixSums returns out with out[0] = 0 and out[i+1] = out[i] + x[i].
func PrefixSums[T Number](x []T) []T {
	out := make([]T, len(x)+1)
	for i, v := range x {
		out[i+1] = out[i] + v
	}
	return out
}

// FormatFixed formats v with exactly prec digits after the decimal point.
func FormatFixed(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}
