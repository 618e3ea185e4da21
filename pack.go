// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dec64

import (
	"github.com/avdva/dec64/internal/mathutil"
)

// Pack returns the value closest to coefficient * 10^exponent.
// The exponent can be out of the int8 range.
// If the coefficient is too wide, the least significant digits are dropped,
// and the result is rounded half away from zero.
// Values that are too small to be represented become Zero, too large become NaN.
func Pack(coefficient int64, exponent int32) Dec64 {
	if coefficient == 0 {
		return Zero
	}

	// fix too small exponent, lose digits.
	for exponent < MinExp {
		coefficient /= 10
		exponent++
		if coefficient == 0 {
			return Zero
		}
	}

	// fix too large exponent, while the coefficient has spare room for another digit.
	for exponent > MaxExp {
		m, ok := mathutil.MulInt64(coefficient, 10)
		if !ok || !coefficientFits(m) {
			return NaN
		}
		coefficient = m
		exponent--
	}

	if coefficientFits(coefficient) {
		return FromRawParts(coefficient, int8(exponent))
	}

	// the coefficient is too wide, scale it down.
	for {
		exponent++
		if exponent > MaxExp {
			return NaN
		}
		rem := coefficient % 10
		coefficient /= 10
		if !coefficientFits(coefficient) {
			continue
		}
		switch {
		case rem >= 5:
			coefficient++
		case rem <= -5:
			coefficient--
		}
		if coefficient == 0 {
			return Zero
		}
		if coefficientFits(coefficient) {
			return FromRawParts(coefficient, int8(exponent))
		}
		// rounding has carried the coefficient out of range again.
	}
}

func coefficientFits(c int64) bool {
	return MinCoefficient <= c && c <= MaxCoefficient
}
