// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dec64

import (
	"encoding/json"
	"fmt"
	"os"
)

func ExampleDec64() {
	price := Pack(12345, -4)
	fee := FromFloat64(0.0005)
	fmt.Printf("%s + %s = %s\n", price, fee, price.Add(fee))

	tenth := FromFloat64(0.1)
	sum := Zero
	for i := 0; i < 10; i++ {
		sum = sum.Add(tenth)
	}
	fmt.Printf("ten times %s is %s, equals one: %v\n", tenth, sum, sum.Eq(One))

	fmt.Printf("%s has coefficient %d and exponent %d\n", Pi, Pi.Coefficient(), Pi.Exponent())
	fmt.Printf("%s, %s, %s\n", Googol, Max.Add(Max), Pack(1, -200))
	fmt.Printf("-(%s) = %s, as int64 = %d\n", FromRawParts(-123456, -3), FromRawParts(-123456, -3).Neg(), FromRawParts(123456, -3).Int64())

	data, err := json.Marshal(price)
	if err != nil {
		panic(err)
	}
	fmt.Printf("json for value: %s\n", string(data))

	JSONMode = JSONModeString
	data, err = json.Marshal(price)
	if err != nil {
		panic(err)
	}
	fmt.Printf("json for value and JSONModeString: %s\n", string(data))
	JSONMode = JSONModeCE

	if _, err := MinPositive.WriteTo(os.Stdout); err != nil {
		panic(err)
	}
	fmt.Println()

	// Output:
	// 1.2345 + 0.0005 = 1.2350
	// ten times 0.1 is 1.0, equals one: true
	// 3.1415926535897932 has coefficient 31415926535897932 and exponent -16
	// 1e100, nan, 0
	// -(-123.456) = 123.456, as int64 = 123
	// json for value: {"c":12345,"e":-4}
	// json for value and JSONModeString: "1.2345"
	// 1e-127
}
