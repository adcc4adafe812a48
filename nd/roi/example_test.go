package roi_test

import (
	"fmt"

	"github.com/cwbudde/algo-nd/nd/img"
	"github.com/cwbudde/algo-nd/nd/region"
	"github.com/cwbudde/algo-nd/nd/roi"
	"github.com/cwbudde/algo-nd/nd/value"
)

func ExampleNewMedian() {
	in, _ := img.FromSlice([]value.Float64{1, 9, 2, 8, 3}, 5)
	strel, _ := region.Box(3)

	op := roi.NewMedian[value.Float64](in, strel, nil)
	if !op.CheckInput() {
		fmt.Println(op.ErrorMessage())
		return
	}
	out := op.Process()
	fmt.Println(out.Status, img.ToSlice(op.Result()))

	// Output:
	// ok [1 2 8 3 3]
}

func ExampleNewConvolution() {
	in, _ := img.FromSlice([]value.Float64{1, 2, 3}, 3)
	kernel, _ := img.FromSlice([]value.Float64{1, 0, -1}, 3)

	out := roi.NewConvolution[value.Float64, value.Float64, value.Float64](in, kernel, nil).Process()
	fmt.Println(img.ToSlice(out.Result))

	// Output:
	// [2 2 -2]
}

func ExampleNew() {
	in, _ := img.FromSlice([]value.Int32{1, 2, 3, 4}, 4)

	// Difference between the right and left neighbor.
	diff := func(p *roi.Patch[value.Int32]) value.Int32 {
		var left, right value.Int32
		for p.Next() {
			switch p.Index() {
			case 0:
				left = *p.Get()
			case 2:
				right = *p.Get()
			}
		}
		return right - left
	}
	out := roi.New[value.Int32, value.Int32](in, []int64{1}, []int64{1}, nil, diff).Process()
	fmt.Println(img.ToSlice(out.Result))

	// Output:
	// [1 2 2 1]
}
