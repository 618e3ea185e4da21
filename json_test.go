// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dec64

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	a := assert.New(t)
	defer func(mode int) {
		JSONMode = mode
	}(JSONMode)

	tests := []struct {
		v                    Dec64
		str, num, ce, compct string
	}{
		{
			Pi,
			`"3.1415926535897932"`,
			`3.1415926535897932`,
			`{"c":31415926535897932,"e":-16}`,
			`"3.1415926535897932"`,
		},
		{
			Zero,
			`"0"`,
			`0`,
			`{"c":0,"e":0}`,
			`"0"`,
		},
		{
			NaN,
			`"nan"`,
			`null`,
			`null`,
			`null`,
		},
		{
			FromRawParts(-42, 3),
			`"-42e3"`,
			`-42e3`,
			`{"c":-42,"e":3}`,
			`"-42e3"`,
		},
		{
			FromRawParts(1, -24),
			`"0.000000000000000000000001"`,
			`0.000000000000000000000001`,
			`{"c":1,"e":-24}`,
			`{"c":1,"e":-24}`,
		},
		{
			Min,
			`"-36028797018963968e127"`,
			`-36028797018963968e127`,
			`{"c":-36028797018963968,"e":127}`,
			`"-36028797018963968e127"`,
		},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			for mode, expected := range []string{test.str, test.num, test.ce, test.compct} {
				JSONMode = mode
				data, err := json.Marshal(test.v)
				if a.NoError(err) {
					a.Equal(expected, string(data), "mode %d", mode)
				}
			}
			JSONMode = JSONModeCE
			data, err := json.Marshal(test.v)
			require.NoError(t, err)
			var v Dec64
			if a.NoError(json.Unmarshal(data, &v)) {
				a.Equal(test.v, v)
			}
		})
	}

	JSONMode = 42
	_, err := Pi.MarshalJSON()
	a.True(Error.Has(err))
}

func TestUnmarshalJSON(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		data string
		v    Dec64
		err  bool
	}{
		{`{"c":125,"e":-2}`, FromRawParts(125, -2), false},
		{` {"e":-2, "c":-125} `, FromRawParts(-125, -2), false},
		{`{"c":1,"e":130}`, FromRawParts(1000, MaxExp), false},
		{`{"c":1,"e":1000}`, NaN, false},
		{`{"c":100,"e":-130}`, Zero, false},
		{`{"c":0,"e":90}`, Zero, false},
		{`null`, NaN, false},
		{`"nan"`, NaN, false},

		{``, Zero, true},
		{`nul`, Zero, true},
		{`"1.25"`, Zero, true},
		{`1.25`, Zero, true},
		{`{"c":1}`, Zero, true},
		{`{"e":1}`, Zero, true},
		{`{"c":"1","e":1}`, Zero, true},
		{`{"c":1,"e":1`, Zero, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var v Dec64
			err := v.UnmarshalJSON([]byte(test.data))
			if test.err {
				a.Error(err)
				a.True(Error.Has(err), "%v", err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.v, v)
			}
		})
	}
}

func TestUnmarshalJSONStruct(t *testing.T) {
	a := assert.New(t)
	var rate struct {
		Bid, Ask Dec64
	}
	err := json.Unmarshal([]byte(`{"Bid":{"c":12345,"e":-4},"Ask":{"c":12347,"e":-4}}`), &rate)
	if a.NoError(err) {
		a.Equal("1.2345", rate.Bid.String())
		a.Equal("1.2347", rate.Ask.String())
	}
}

func TestJSONDefaultModeRoundTrip(t *testing.T) {
	a := assert.New(t)
	require.Equal(t, JSONModeCE, JSONMode)
	type quote struct {
		Price Dec64
		Qty   Dec64 `json:"qty"`
	}
	values := []Dec64{Zero, One, Half, Pi, NaN, Max, Min, MinPositive, Googol, FromRawParts(-42, 3), FromRawParts(10, -1)}
	for i, v := range values {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			data, err := json.Marshal(quote{Price: v, Qty: v.Neg()})
			require.NoError(t, err)
			var back quote
			if a.NoError(json.Unmarshal(data, &back), string(data)) {
				a.Equal(v, back.Price, string(data))
				a.Equal(v.Neg(), back.Qty, string(data))
			}
		})
	}
}
