// Package mathutil contains integer helpers shared by the dec64 operations.
package mathutil

import (
	"math"
	"unsafe"
)

var (
	decimalFactorTable = [...]int64{ // up to 1e18
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000,
	}

	floatFactorTable = [...]float64{
		1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7,
		1e8, 1e9, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15,
		1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
	}
)

// Pow10 returns 10^pow, or 0 if it does not fit an int64.
func Pow10(pow int) int64 {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return 0
	}
	return decimalFactorTable[pow]
}

// ExactPow10 returns 10^pow as a float64, and true if the power is represented exactly.
func ExactPow10(pow int) (float64, bool) {
	if pow < 0 || pow >= len(floatFactorTable) {
		return 0, false
	}
	return floatFactorTable[pow], true
}

// AddInt64 returns a+b and false, if the sum overflows int64.
func AddInt64(a, b int64) (int64, bool) {
	sum := a + b
	return sum, (a^sum)&(b^sum) >= 0
}

// MulInt64 returns a*b and false, if the product overflows int64.
func MulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	prod := a * b
	if prod/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return prod, false
	}
	return prod, true
}

func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val + mask) ^ mask
}

func SameSign(a, b int64) bool {
	return (a>>63 ^ b>>63) == 0
}
