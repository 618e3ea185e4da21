// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dec64

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	// Only JSONModeCE output can always be unmarshaled back, so it is the default.
	JSONMode = JSONModeCE

	// Error is the class of errors returned by this package.
	Error = errs.Class("dec64")

	jsonParts = []string{`{"c":`, `,"e":`, `}`}
	jsonNull  = []byte("null")
	jsonNaN   = []byte(`"nan"`)
)

const (
	// JSONModeString produces values as strings, like `"1234.5678"`.
	JSONModeString = iota
	// JSONModeNumber produces values as json numbers, like `1234.5678`. NaN becomes `null`.
	JSONModeNumber
	// JSONModeCE marshals values with coefficient and exponent, like `{"c":12345678,"e":-4}`. NaN becomes `null`.
	JSONModeCE
	// JSONModeCompact will choose the shortest form between JSONModeString and JSONModeCE.
	// Strings can't be unmarshaled, so it is meant for output only.
	JSONModeCompact
)

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (v Dec64) MarshalJSON() ([]byte, error) {
	return v.appendJSON(nil, JSONMode)
}

func (v Dec64) appendJSON(dst []byte, mode int) ([]byte, error) {
	switch mode {
	case JSONModeString:
		dst = append(dst, '"')
		dst = v.Append(dst)
		return append(dst, '"'), nil
	case JSONModeNumber:
		if v.IsNaN() {
			return append(dst, jsonNull...), nil
		}
		return v.Append(dst), nil
	case JSONModeCE:
		if v.IsNaN() {
			return append(dst, jsonNull...), nil
		}
		dst = append(dst, jsonParts[0]...)
		dst = strconv.AppendInt(dst, v.Coefficient(), 10)
		dst = append(dst, jsonParts[1]...)
		dst = strconv.AppendInt(dst, int64(v.Exponent()), 10)
		return append(dst, jsonParts[2]...), nil
	case JSONModeCompact:
		var buf [64]byte
		str, _ := v.appendJSON(buf[:0], JSONModeString)
		ce, _ := v.appendJSON(buf[len(str):len(str)], JSONModeCE)
		if len(str) <= len(ce) {
			return append(dst, str...), nil
		}
		return append(dst, ce...), nil
	default:
		return nil, Error.New("unknown json mode %d", mode)
	}
}

// UnmarshalJSON unmarshals null or a coefficient-exponent object, like `{"c":125,"e":-2}`, into a value.
// The object is normalized with Pack, so the exponent can be out of the int8 range.
// null and "nan" are unmarshaled as NaN. Other strings and numbers are not supported,
// so only JSONModeCE output can always be unmarshaled back.
func (v *Dec64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Error.New("empty json")
	}
	switch data[0] {
	case 'n':
		if !bytes.Equal(data, jsonNull) {
			return Error.New("unexpected json %q", data)
		}
		*v = NaN
	case '"':
		if !bytes.Equal(data, jsonNaN) {
			return Error.New("unsupported json string %s, only \"nan\" is allowed", data)
		}
		*v = NaN
	case '{':
		d := struct {
			C *int64 `json:"c"`
			E *int32 `json:"e"`
		}{}
		if err := json.Unmarshal(data, &d); err != nil {
			return Error.Wrap(oops.Trace(err))
		}
		if d.C == nil || d.E == nil {
			return Error.New("both coefficient and exponent are required")
		}
		*v = Pack(*d.C, *d.E)
	default:
		return Error.New("unsupported json %q, an object or null is expected", data)
	}
	return nil
}
