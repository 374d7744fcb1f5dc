package eval_test

import (
	"fmt"

	"github.com/howerj/q"
	"github.com/howerj/q/eval"
)

// This example shows a caller tracing an evaluator's first error: a zero
// divisor is rejected by "/"'s precondition check before any saturating
// arithmetic runs, and the failure is both returned and retained by Err
// until Reset.
func Example_tracingAnError() {
	ev := eval.New(eval.Config{}, nil)
	_, err := ev.Eval("10/(5-5)")
	fmt.Println(err)
	fmt.Println(ev.Err() == err)
	// Output:
	// eval: /: division by zero
	// true
}

// This example evaluates an expression against a variable environment set
// up ahead of time.
func Example_variables() {
	vars := eval.Variables{}
	vars.Set("radius", q.FromInt32(3))

	ev := eval.New(eval.Config{}, vars)
	area, err := ev.Eval("radius*radius")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(area == q.FromInt32(9))
	// Output:
	// true
}
