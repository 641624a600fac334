package result_test

import (
	"fmt"

	"github.com/charmingruby/ccl/result"
)

func ExampleResult() {
	probe := func(healthy bool) result.Result[int, int] {
		if healthy {
			return result.Ok[int, int](1)
		}
		return result.Err[int, int](-1)
	}

	res := probe(true)
	fmt.Println(res.IsOk(), res.Unwrap())

	res = probe(false)
	fmt.Println(res.IsErr(), res.UnwrapErr())
	// Output:
	// true 1
	// true -1
}

func ExampleResult_UnwrapOrElse() {
	read := func(pin int) result.Result[int, string] {
		if pin > 7 {
			return result.Err[int, string]("no such pin")
		}
		return result.Ok[int, string](pin * 10)
	}

	level := read(9).UnwrapOrElse(func(string) int { return 0 })
	fmt.Println(level)
	// Output:
	// 0
}

func ExampleTraverse() {
	pins := []int{1, 2, 3}
	op := result.Traverse(pins, func(pin int) result.Result[string, string] {
		if pin == 2 {
			return result.Err[string, string]("pin 2 shorted")
		}
		return result.Ok[string, string](fmt.Sprintf("pin-%d", pin))
	})
	if op.IsOk() {
		fmt.Println(op.Unwrap())
	} else {
		fmt.Println(op.UnwrapErr())
	}
	// Output:
	// pin 2 shorted
}
