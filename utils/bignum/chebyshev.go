package bignum

import (
	"math/big"
)

// ChebyshevNodes returns the n Chebyshev nodes of the first kind of the
// interval [a, b], sorted in increasing order.
// The precision of a is used as reference precision.
func ChebyshevNodes(n int, a, b *big.Float) (nodes []*big.Float) {

	prec := a.Prec()

	nodes = make([]*big.Float, n)

	half := new(big.Float).SetPrec(prec).SetFloat64(0.5)

	x := new(big.Float).SetPrec(prec).Add(a, b)
	x.Mul(x, half)
	y := new(big.Float).SetPrec(prec).Sub(b, a)
	y.Mul(y, half)

	PiOverN := Pi(prec)
	PiOverN.Quo(PiOverN, new(big.Float).SetInt64(int64(n)))

	for k := 1; k < n+1; k++ {
		up := new(big.Float).SetPrec(prec).SetFloat64(float64(k) - 0.5)
		up.Mul(up, PiOverN)
		up = Cos(up)
		up.Mul(up, y)
		up.Add(up, x)
		nodes[n-k] = up
	}

	return
}

// ChebyshevCoefficients returns the coefficients c_j of the interpolant
// sum_j c_j * T_j(u), with u = (2x - a - b)/(b - a), of the values fi taken
// at the Chebyshev nodes of [a, b].
func ChebyshevCoefficients(nodes, fi []*big.Float, a, b *big.Float) (coeffs []*big.Float) {

	prec := a.Prec()

	n := len(nodes)

	coeffs = make([]*big.Float, n)
	for i := range coeffs {
		coeffs[i] = new(big.Float).SetPrec(prec)
	}

	two := new(big.Float).SetPrec(prec).SetInt64(2)

	minusab := new(big.Float).SetPrec(prec).Set(a)
	minusab.Neg(minusab)
	minusab.Sub(minusab, b)

	bminusa := new(big.Float).SetPrec(prec).Set(b)
	bminusa.Sub(bminusa, a)

	u := new(big.Float).SetPrec(prec)
	tmp := new(big.Float).SetPrec(prec)
	Tprev := new(big.Float).SetPrec(prec)
	T := new(big.Float).SetPrec(prec)
	Tnext := new(big.Float).SetPrec(prec)

	for i := 0; i < n; i++ {

		u.Mul(nodes[i], two)
		u.Add(u, minusab)
		u.Quo(u, bminusa)

		Tprev.SetFloat64(1)
		T.Set(u)

		for j := 0; j < n; j++ {

			coeffs[j].Add(coeffs[j], tmp.Mul(fi[i], Tprev))

			Tnext.Mul(u, T)
			Tnext.Mul(Tnext, two)
			Tnext.Sub(Tnext, Tprev)

			Tprev.Set(T)
			T.Set(Tnext)
		}
	}

	NHalf := new(big.Float).SetInt64(int64(n))

	coeffs[0].Quo(coeffs[0], NHalf)

	NHalf.Quo(NHalf, two)

	for i := 1; i < n; i++ {
		coeffs[i].Quo(coeffs[i], NHalf)
	}

	return
}
