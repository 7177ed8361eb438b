// Package sequences implements the iterative computation of integer linear recurrences.
package sequences

import (
	"math/big"

	"github.com/tuneinsight/polymath/utils/bignum"
)

// Fibonacci returns the n-th term of the sequence f(1) = f(2) = 1,
// f(k) = f(k-1) + f(k-2). Any n < 3, including n <= 0, returns 1.
// The result overflows int for n > 92 on 64-bit platforms, see FibonacciBig.
func Fibonacci(n int) int {
	fn, fn1, fn2 := 1, 1, 1
	for i := 3; i <= n; i++ {
		fn = fn1 + fn2
		fn2 = fn1
		fn1 = fn
	}
	return fn
}

// Padovan returns the n-th term of the sequence p(1) = p(2) = p(3) = 1,
// p(k) = p(k-2) + p(k-3). Any n < 4, including n <= 0, returns 1.
//
// The sequence starts 1, 1, 1, 2, 2, 3, 4, 5, 7, 9.
func Padovan(n int) int {
	pn, pn1, pn2, pn3 := 1, 1, 1, 1
	for i := 4; i <= n; i++ {
		pn = pn2 + pn3
		pn3 = pn2
		pn2 = pn1
		pn1 = pn
	}
	return pn
}

// FibonacciBig returns the n-th term of the same sequence as Fibonacci, without overflow.
func FibonacciBig(n int) *big.Int {
	fn1, fn2 := bignum.NewInt(1), bignum.NewInt(1)
	for i := 3; i <= n; i++ {
		fn2.Add(fn2, fn1)
		fn1, fn2 = fn2, fn1
	}
	return fn1
}
