package q_test

import (
	"fmt"

	"github.com/howerj/q"
)

// This example demonstrates parsing and printing a Q value in the default
// configuration.
func ExampleParse() {
	v, err := q.Parse("3.14159")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(v)
	// Output:
	// 3.141586
}

// This example shows saturating addition at the representable extremes.
func ExampleAdd() {
	fmt.Println(q.Add(q.MaxValue, q.One) == q.MaxValue)
	// Output:
	// true
}

func ExampleQ_MarshalText() {
	v := q.FromInt32(2)
	b, _ := v.MarshalText()
	fmt.Println(string(b))
	// Output:
	// 2
}
