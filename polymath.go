/*
Package polymath is a small numeric library in pure Go.

It provides the iterative computation of integer recurrences (package sequences) and
dense univariate polynomials with float64 coefficients (package polynomial), with their
arithmetic, long division, composition, calculus, evaluation, Chebyshev approximation
and serialization.
*/
package polymath
