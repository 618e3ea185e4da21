// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dec64

import (
	"fmt"
	"io"
	"sync"
)

const (
	digitPairs = "00010203040506070809" +
		"10111213141516171819" +
		"20212223242526272829" +
		"30313233343536373839" +
		"40414243444546474849" +
		"50515253545556575859" +
		"60616263646566676869" +
		"70717273747576777879" +
		"80818283848586878889" +
		"90919293949596979899"

	// digitsBufSize fits 17 coefficient digits or 24 fractional digits plus a leading zero.
	digitsBufSize = 32
	// fixedPointLimit is the largest negative exponent magnitude, which is printed
	// without a scientific suffix, like 0.000000000000000000000001.
	// Smaller exponents are printed like 1.5e-30.
	fixedPointLimit = 24

	// maxTextLen is the length of the longest text, -0.000000000000000000000001 and alike.
	maxTextLen = 1 + 2 + fixedPointLimit

	delim = '.'
)

// textBufPool holds buffers for WriteTo, as a buffer passed to an io.Writer escapes to the heap.
var textBufPool = sync.Pool{
	New: func() interface{} {
		return new([maxTextLen]byte)
	},
}

// Append appends the text form of v to dst and returns the extended buffer.
// It does not allocate if dst has enough capacity.
//
// Integers are printed as is, positive exponents always use the scientific form, like 42e3.
// Negative exponents down to -24 are printed in the fixed-point form, like 123.456 or 0.05,
// smaller ones use the scientific form with one digit before the point, like 1.25e-30.
// NaN is printed as nan.
func (v Dec64) Append(dst []byte) []byte {
	c, e := v.Coefficient(), v.Exponent()
	switch {
	case e == nanExp:
		return append(dst, "nan"...)
	case c == 0:
		return append(dst, '0')
	}

	n := uint64(c)
	if c < 0 {
		dst = append(dst, '-')
		n = ^n + 1
	}

	var buf [digitsBufSize]byte
	i := putDigits(&buf, n)

	switch {
	case e == 0:
		return append(dst, buf[i:]...)
	case e > 0:
		dst = append(dst, buf[i:]...)
		dst = append(dst, 'e')
		return appendExp(dst, int(e))
	}

	frac := -int(e)
	if frac <= fixedPointLimit {
		// pad with zeros, so that there is at least one digit before the point.
		for len(buf)-i <= frac {
			i--
			buf[i] = '0'
		}
		point := len(buf) - frac
		dst = append(dst, buf[i:point]...)
		dst = append(dst, delim)
		return append(dst, buf[point:]...)
	}

	digits := buf[i:]
	dst = append(dst, digits[0])
	if len(digits) > 1 {
		dst = append(dst, delim)
		dst = append(dst, digits[1:]...)
	}
	dst = append(dst, 'e', '-')
	return appendExp(dst, frac-(len(digits)-1))
}

// putDigits writes decimal digits of n to the end of buf, and returns the index of the first one.
func putDigits(buf *[digitsBufSize]byte, n uint64) int {
	i := len(buf)
	// 4 digits at a time.
	for n >= 10000 {
		rem := n % 10000
		n /= 10000
		d1, d2 := (rem/100)<<1, (rem%100)<<1
		i -= 4
		buf[i], buf[i+1] = digitPairs[d1], digitPairs[d1+1]
		buf[i+2], buf[i+3] = digitPairs[d2], digitPairs[d2+1]
	}
	// n <= 9999 here.
	if n >= 100 {
		d := (n % 100) << 1
		n /= 100
		i -= 2
		buf[i], buf[i+1] = digitPairs[d], digitPairs[d+1]
	}
	if n < 10 {
		i--
		buf[i] = byte(n) + '0'
	} else {
		d := n << 1
		i -= 2
		buf[i], buf[i+1] = digitPairs[d], digitPairs[d+1]
	}
	return i
}

// appendExp appends an exponent magnitude from 1 to 128.
func appendExp(dst []byte, e int) []byte {
	switch {
	case e >= 100:
		// the first digit can only be 1.
		d := (e % 100) << 1
		return append(dst, '1', digitPairs[d], digitPairs[d+1])
	case e >= 10:
		d := e << 1
		return append(dst, digitPairs[d], digitPairs[d+1])
	default:
		return append(dst, byte(e)+'0')
	}
}

// WriteTo writes the text form of v to w. See Append for the format.
// Errors returned by w are returned as is.
// w must not retain the written slice.
func (v Dec64) WriteTo(w io.Writer) (int64, error) {
	buf := textBufPool.Get().(*[maxTextLen]byte)
	n, err := w.Write(v.Append(buf[:0]))
	textBufPool.Put(buf)
	return int64(n), err
}

// String returns the text form of v. See Append for the format.
func (v Dec64) String() string {
	var buf [maxTextLen]byte
	return string(v.Append(buf[:0]))
}

// Format implements fmt.Formatter.
// %v, %s and %d print the text form, %#v prints the debug form.
func (v Dec64) Format(fs fmt.State, c rune) {
	if c == 'v' && fs.Flag('#') {
		io.WriteString(fs, v.GoString())
		return
	}
	switch c {
	case 'v', 's', 'd':
		v.WriteTo(fs)
	default:
		fmt.Fprintf(fs, "%%!%c(dec64.Dec64=%s)", c, v.String())
	}
}

// GoString returns a debug representation of v.
// The flags are N for NaN, Z for zero, I for integer, - otherwise.
func (v Dec64) GoString() string {
	flags := [3]byte{'-', '-', '-'}
	if v.IsNaN() {
		flags[0] = 'N'
	}
	if v.IsZero() {
		flags[1] = 'Z'
	}
	if v.IsInteger() {
		flags[2] = 'I'
	}
	return fmt.Sprintf("dec64.Dec64{[%s] coef: %d exp: %d raw: %#x}", flags[:], v.Coefficient(), v.Exponent(), uint64(v))
}
