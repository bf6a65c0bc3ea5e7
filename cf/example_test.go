// SPDX-License-Identifier: MIT

package cf_test

import (
	"fmt"

	"github.com/katalvlaran/contfrac/cf"
)

// ExampleFromRational expands 355/113 and lists its convergents.
func ExampleFromRational() {
	x, err := cf.FromRational(355, 113)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(x)
	for n := 0; n < x.Len(); n++ {
		p, q, _ := x.Convergent(n)
		fmt.Printf("%d/%d\n", p, q)
	}
	// Output:
	// [3; 7, 16]
	// 3/1
	// 22/7
	// 355/113
}

// ExampleSqrt shows the periodic notation and the unfolded value of √2.
func ExampleSqrt() {
	x, err := cf.Sqrt(2, 10)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(x, x.IsPeriodic())
	fmt.Printf("%.6f\n", x.Float64())
	// Output:
	// [1; (2)] true
	// 1.414214
}

// ExampleParse reads the bracketed text form.
func ExampleParse() {
	x, err := cf.Parse("[1; 2; 3]")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(x)
	fmt.Printf("%.6f\n", x.Float64())
	// Output:
	// [1; 2, 3]
	// 1.428571
}

// ExampleContinuedFraction_Quo demonstrates the float64-based division.
func ExampleContinuedFraction_Quo() {
	a := cf.New(12)
	q, err := a.Quo(cf.New(4))
	fmt.Println(q, err)

	_, err = a.Quo(cf.New(0))
	fmt.Println(err)
	// Output:
	// [3] <nil>
	// quo by [0]: cf: division by zero
}
