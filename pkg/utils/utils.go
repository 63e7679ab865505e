package utils

import (
	"math"
	"reflect"
)

func Optional[T any](args ...T) T {
	var _nil T
	for _, e := range args {
		if !reflect.DeepEqual(e, _nil) {
			return e
		}
	}
	return _nil
}

func OptionalDefaulted[T any](def T, args ...T) T {
	var _nil T
	for _, e := range args {
		if !reflect.DeepEqual(e, _nil) {
			return e
		}
	}
	return def
}

func Pointer[T any](t T) *T {
	return &t
}

type Stringable interface {
	String() string
}

func Join[S Stringable](list []S, seps ...string) string {
	separator := OptionalDefaulted(", ", seps...)
	sep := ""
	r := ""
	for _, e := range list {
		r += sep + e.String()
		sep = separator
	}
	return r
}

// RoundTo rounds a value to the given number of decimal digits.
// Values without fractional digits at the requested precision are
// returned unchanged, as are infinities and NaN.
func RoundTo(x float64, precision int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x) >= 1e15 {
		return x
	}
	m := math.Pow10(precision)
	if m == 0 || math.IsInf(m, 0) {
		return x
	}
	s := x * m
	if math.IsInf(s, 0) || math.Abs(s) >= 1<<52 {
		return x
	}
	return math.Round(s) / m
}
