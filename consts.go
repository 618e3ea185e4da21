// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dec64

// Frequently used numbers.
const (
	One    = Dec64(1 << expBits)
	Two    = Dec64(2 << expBits)
	Ten    = Dec64(10 << expBits)
	NegOne = Dec64(-1 << expBits)

	// Half is 0.5
	Half = Dec64(5<<expBits | -1&expMask)
	// Tenth is 0.1
	Tenth = Dec64(1<<expBits | -1&expMask)
	// Cent is 0.01
	Cent = Dec64(1<<expBits | -2&expMask)
	// Googol is 10^100
	Googol = Dec64(1<<expBits | 100)
)

// Mathematical constants, with as many digits, as a coefficient can hold.
const (
	E       = Dec64(27182818284590452<<expBits | -16&expMask)
	Pi      = Dec64(31415926535897932<<expBits | -16&expMask)
	FracPi2 = Dec64(15707963267948966<<expBits | -16&expMask)
	Phi     = Dec64(16180339887498948<<expBits | -16&expMask)

	Sqrt2   = Dec64(14142135623730950<<expBits | -16&expMask)
	SqrtE   = Dec64(16487212707001281<<expBits | -16&expMask)
	SqrtPi  = Dec64(17724538509055160<<expBits | -16&expMask)
	SqrtPhi = Dec64(12720196495140690<<expBits | -16&expMask)

	Ln2    = Dec64(6931471805599453<<expBits | -16&expMask)
	Log2E  = Dec64(14426950408889634<<expBits | -16&expMask)
	Ln10   = Dec64(23025850929940457<<expBits | -16&expMask)
	Log10E = Dec64(4342944819032518<<expBits | -16&expMask)
)
