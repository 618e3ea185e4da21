// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dec64

import (
	"github.com/avdva/dec64/internal/mathutil"
)

// Add returns v + other.
// If either argument is NaN, the result is NaN.
// If the exponents differ and the larger one cannot be lowered to the smaller one,
// the operand with the smaller exponent loses its least significant digits, which are truncated.
// If the sum can't be represented, NaN is returned.
func (v Dec64) Add(other Dec64) Dec64 {
	if v.IsNaN() || other.IsNaN() {
		return NaN
	}
	e := v.Exponent()
	if e == other.Exponent() {
		if e == 0 {
			// integers can be summed as is, the exponent bits are all zeros.
			if sum, ok := mathutil.AddInt64(int64(v), int64(other)); ok {
				return Dec64(sum)
			}
		} else {
			// zero out the exponents so that there is no carry into the coefficients.
			sum, ok := mathutil.AddInt64(int64(v)&coefficientMask, int64(other)&coefficientMask)
			if ok {
				if sum == 0 {
					return Zero
				}
				return Dec64(sum | int64(v)&expMask)
			}
		}
		// the shifted sum has overflown, but 56-bit coefficients can't overflow an int64.
		return Pack(v.Coefficient()+other.Coefficient(), int32(e))
	}
	return addWithExp(v, other)
}

// addWithExp sums two non-NaN values with different exponents.
func addWithExp(a, b Dec64) Dec64 {
	hi, lo := a, b
	if hi.Exponent() < lo.Exponent() {
		hi, lo = lo, hi
	}
	lc, le := lo.Coefficient(), int32(lo.Exponent())
	if lc == 0 {
		return hi
	}
	hc, he := hi.Coefficient(), int32(hi.Exponent())

	// first, try to lower hi's exponent, multiplying its coefficient.
	// the coefficient has at least 8 spare bits, so this can be done at least twice.
	for {
		m, ok := mathutil.MulInt64(hc, 10)
		if !ok {
			break
		}
		hc, he = m, he-1
		if he == le {
			return packSum(hc, lc, he)
		}
	}

	// hi can't be scaled anymore, so lo's exponent is raised instead,
	// and its least significant digits are lost.
	for {
		lc /= 10
		le++
		if he == le {
			return packSum(hc, lc, he)
		}
	}
}

// packSum packs a + b with the given exponent.
// a is a scaled coefficient and can be close to the int64 limits.
func packSum(a, b int64, exp int32) Dec64 {
	if sum, ok := mathutil.AddInt64(a, b); ok {
		return Pack(sum, exp)
	}
	// both have the same sign here. drop the last digit of each,
	// the result is too wide for a coefficient anyway, and Pack will round it.
	carry := (a%10 + b%10) / 10
	return Pack(a/10+b/10+carry, exp+1)
}
