// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dec64

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/avdva/dec64/internal/mathutil"
)

// FromInt64 returns a value for given int64 number.
// Numbers wider than 56 bits are rounded to 17 significant digits.
func FromInt64(n int64) Dec64 {
	return Pack(n, 0)
}

// FromFloat64 returns a value for given float64 number.
// It uses the shortest decimal representation, which converts back to the same float,
// so FromFloat64(0.1) is exactly 0.1.
// NaN and infinities are converted to NaN.
func FromFloat64(f float64) Dec64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NaN
	}
	if f == 0 {
		return Zero
	}
	d := decimal.NewFromFloat(f)
	c := d.Coefficient()
	if !c.IsInt64() { // should not normally happen, a float64 has at most 17 significant digits.
		return NaN
	}
	return Pack(c.Int64(), d.Exponent())
}

// Int64 returns the integer part of v.
// If it doesn't fit an int64, the result is math.MaxInt64 or math.MinInt64.
// NaN is converted to 0.
func (v Dec64) Int64() int64 {
	c, e := v.Coefficient(), int(v.Exponent())
	switch {
	case e == nanExp || c == 0:
		return 0
	case e < 0:
		p := mathutil.Pow10(-e)
		if p == 0 {
			return 0
		}
		return c / p
	case e > 0:
		p := mathutil.Pow10(e)
		if r, ok := mathutil.MulInt64(c, p); ok && p != 0 {
			return r
		}
		if c < 0 {
			return math.MinInt64
		}
		return math.MaxInt64
	default:
		return c
	}
}

// Float64 returns the nearest float64 value.
// NaN is converted to math.NaN().
func (v Dec64) Float64() float64 {
	c, e := v.Coefficient(), int(v.Exponent())
	if e == nanExp {
		return math.NaN()
	}
	f := float64(c)
	if p, exact := mathutil.ExactPow10(mathutil.AbsInt(e)); exact {
		if e < 0 {
			return f / p
		}
		return f * p
	}
	return f * math.Pow10(e)
}
