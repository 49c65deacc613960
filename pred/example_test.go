package pred_test

import (
	"fmt"

	"github.com/hasbyte1/go-fp-utils/pred"
)

func ExampleNot() {
	fmt.Println(pred.Not(0), pred.Not(1), pred.Not(false))
	// Output: true false true
}

func ExampleAnd() {
	positive := pred.Pred[int](func(n int) bool { return n > 0 })
	even := pred.Pred[int](func(n int) bool { return n%2 == 0 })
	fmt.Println(pred.And(positive, even)(4), pred.And(positive, even)(-4))
	// Output: true false
}
