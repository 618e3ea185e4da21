// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dec64

import (
	"github.com/avdva/dec64/internal/mathutil"
)

// Eq returns true if both values represent the same number.
// All zeros are equal regardless of their exponents.
// NaNs are equal only if their bits are identical,
// so a NaN with a payload, like FromRawParts(42, -128), is not Eq to NaN, though both are IsNaN.
func (v Dec64) Eq(other Dec64) bool {
	if v == other {
		return true
	}
	if v.IsNaN() || other.IsNaN() {
		return false
	}
	c1, c2 := v.Coefficient(), other.Coefficient()
	if c1 == 0 || c2 == 0 {
		return c1 == c2
	}
	// same sign and same exponent, but different bits.
	if (int64(v)^int64(other))&(signBit|expMask) == 0 {
		return false
	}
	if !mathutil.SameSign(c1, c2) {
		return false
	}
	return eqWithExp(c1, v.Exponent(), c2, other.Exponent())
}

// eqWithExp compares nonzero coefficients of the same sign, scaling the one with the larger exponent.
func eqWithExp(c1 int64, e1 int8, c2 int64, e2 int8) bool {
	if e1 < e2 {
		c1, e1, c2, e2 = c2, e2, c1, e1
	}
	for ; e1 > e2; e1-- {
		m, ok := mathutil.MulInt64(c1, 10)
		if !ok { // c1 * 10^(e1-e2) is out of the coefficient range.
			return false
		}
		c1 = m
	}
	return c1 == c2
}

// Neg returns -v.
// Negating Min gives NaN, as its magnitude can't be represented.
func (v Dec64) Neg() Dec64 {
	if v.IsNaN() {
		return NaN
	}
	return Pack(-v.Coefficient(), int32(v.Exponent()))
}
