package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-nd/nd/core"
)

func ExampleApplyOperatorOptions() {
	cfg := core.ApplyOperatorOptions(core.WithName("median-3x3")).Named("median")

	fmt.Printf("name=%s logger=%t\n", cfg.Name, cfg.Logger != nil)

	// Output:
	// name=median-3x3 logger=true
}

func ExampleEnsureLen() {
	buf := make([]float64, 2, 4)
	buf[0], buf[1] = 1, 2

	grown := core.EnsureLen(buf, 4)
	fmt.Println(len(grown), cap(grown), grown[:2])

	fresh := core.EnsureLen(grown, 6)
	fmt.Println(len(fresh), fresh[0])

	// Output:
	// 4 4 [1 2]
	// 6 0
}
