// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package dec64 implements DEC64, a decimal floating-point number, where both coefficient
// and exponent are stored in a single int64.
// Unlike binary floating-point, values like 0.1 are represented exactly,
// so it fits financial calculations and other base-10 arithmetic.
package dec64

import (
	"github.com/avdva/dec64/internal/mathutil"
)

const (
	expBits = 8

	expMask         = 1<<expBits - 1
	coefficientMask = ^int64(expMask)
	signBit         = -1 << 63

	// MaxCoefficient is the largest coefficient, 2^55-1.
	MaxCoefficient = 1<<(63-expBits) - 1
	// MinCoefficient is the smallest coefficient, -2^55.
	MinCoefficient = -1 << (63 - expBits)

	// MaxExp is the largest exponent of a normal value.
	MaxExp = 1<<(expBits-1) - 1
	// MinExp is the smallest exponent of a normal value.
	MinExp = -MaxExp

	nanExp = MinExp - 1
)

const (
	// Zero is the canonical zero.
	Zero = Dec64(0)
	// NaN is the canonical not-a-number.
	NaN = Dec64(nanExp & expMask)
	// Max is the largest possible value, 36028797018963967e127.
	Max = Dec64(MaxCoefficient<<expBits | MaxExp)
	// Min is the smallest possible value, -36028797018963968e127.
	Min = Dec64(MinCoefficient<<expBits | MaxExp)
	// MinPositive is the smallest positive value, 1e-127.
	MinPositive = Dec64(1<<expBits | MinExp&expMask)
	// Epsilon is the difference between 1 and the next representable value with 16 fractional digits.
	Epsilon = Dec64(1<<expBits | -16&expMask)
)

// Dec64 is a decimal floating-point number.
// The high 56 bits hold a signed coefficient, the low 8 bits a signed exponent:
//   63                                                     8 7      0
//   ________________________________________________________|________
//   ccccccccccccccccccccccccccccccccccccccccccccccccccccccccceeeeeeee
//
// The value of a number is coefficient * 10^exponent.
// An exponent of -128 marks NaN, the coefficient is an arbitrary payload then.
// A zero coefficient is zero for any other exponent.
//
// Dec64 values are compared with the Eq method, as the == operator compares the bits,
// so 1e1 and 10e0 are different for ==, but equal for Eq.
type Dec64 int64

// FromRawParts packs the coefficient and the exponent as is.
// It does not validate anything: the coefficient must fit 56 bits,
// otherwise its high bits are lost. Use Pack for arbitrary input.
func FromRawParts(coefficient int64, exponent int8) Dec64 {
	// uint8 conversion prevents a negative exponent from filling the coefficient bits with ones.
	return Dec64(coefficient<<expBits | int64(uint8(exponent)))
}

// Coefficient returns the coefficient of v.
func (v Dec64) Coefficient() int64 {
	return int64(v) >> expBits
}

// Exponent returns the exponent of v.
func (v Dec64) Exponent() int8 {
	return int8(v)
}

// Raw returns the underlying bits.
func (v Dec64) Raw() int64 {
	return int64(v)
}

// IsNaN returns true if v is not-a-number.
func (v Dec64) IsNaN() bool {
	return v.Exponent() == nanExp
}

// IsZero returns true if v is zero, with any exponent.
func (v Dec64) IsZero() bool {
	return v.Coefficient() == 0 && !v.IsNaN()
}

// IsInteger returns true if v has no fractional part.
func (v Dec64) IsInteger() bool {
	c, e := v.Coefficient(), v.Exponent()
	switch {
	case e == nanExp:
		return false
	case e >= 0 || c == 0:
		return true
	}
	p := mathutil.Pow10(-int(e))
	if p == 0 { // a 17 digit coefficient can't have more than 16 trailing zeros.
		return false
	}
	return c%p == 0
}
