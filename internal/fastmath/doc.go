// Package fastmath selects between exact and approximate elementary
// functions at build time.
//
// By default every function forwards to the math package. Building with
//
//	go build -tags fastmath
//
// switches to the polynomial approximations of algo-approx, which trade a
// small relative error for speed. Kernel construction is the only caller,
// so the error ends up in the kernel weights and is removed again by
// normalisation.
package fastmath
