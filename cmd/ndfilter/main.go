// Command ndfilter runs a pipeline of local operators over a synthetic
// N-dimensional image and prints value statistics after every stage.
//
// Usage:
//
//	ndfilter run -c pipeline.yaml [--verbose]
//	ndfilter list
//
// A pipeline names one input and any number of stages, each stage consuming
// the result of the previous one:
//
//	input:
//	  kind: noise
//	  dims: [64, 64]
//	  seed: 7
//	  high: 255
//	stages:
//	  - op: median
//	    size: [3, 3]
//	  - op: open
//	    shape: ball
//	    radius: 2
//	  - op: gaussian
//	    sigma: [1.5]
//	    oob: mirror
//	  - op: convolve
//	    kernel: laplacian
//	    method: fft
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
