package polynomial

import (
	"math"
	"math/big"
)

// Evaluate returns p(x) computed with Horner's method.
func (p *Polynomial) Evaluate(x float64) (y float64) {
	coeffs := p.values()
	for i := len(coeffs) - 1; i >= 0; i-- {
		y = y*x + coeffs[i]
	}
	return
}

// Evaluate returns p(x) for any integer or floating point x.
func Evaluate[T Number](p *Polynomial, x T) float64 {
	return p.Evaluate(float64(x))
}

// EvaluateBig returns p(x) computed with Horner's method with the precision of x.
// The coefficients of p must be finite.
func (p *Polynomial) EvaluateBig(x *big.Float) (y *big.Float) {
	prec := x.Prec()
	coeffs := p.values()
	y = new(big.Float).SetPrec(prec)
	c := new(big.Float).SetPrec(prec)
	for i := len(coeffs) - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, c.SetFloat64(coeffs[i]))
	}
	return
}

// Sample returns p(x) for each x in xs.
func (p *Polynomial) Sample(xs []float64) (ys []float64) {
	ys = make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = p.Evaluate(x)
	}
	return
}

// leading returns the degree and the value of the highest non-zero coefficient of p.
// It returns (0, 0) for the zero polynomial.
func (p *Polynomial) leading() (degree int, coeff float64) {
	for degree = len(p.coeffs) - 1; degree > 0; degree-- {
		if p.coeffs[degree] != 0 {
			return degree, p.coeffs[degree]
		}
	}
	return 0, p.Coefficient(0)
}

// LimitPositiveInfinity returns the limit of p(x) as x goes to +Inf.
// It is the constant term for constant polynomials (0 for the zero polynomial)
// and otherwise an infinity with the sign of the leading coefficient.
func (p *Polynomial) LimitPositiveInfinity() float64 {
	degree, coeff := p.leading()
	if degree == 0 {
		return coeff
	}
	return math.Copysign(math.Inf(1), coeff)
}

// LimitNegativeInfinity returns the limit of p(x) as x goes to -Inf.
// It is the constant term for constant polynomials (0 for the zero polynomial)
// and otherwise an infinity with the sign of the leading coefficient if the degree
// is even, and the opposite sign if it is odd.
func (p *Polynomial) LimitNegativeInfinity() float64 {
	degree, coeff := p.leading()
	if degree == 0 {
		return coeff
	}
	if degree&1 == 1 {
		coeff = -coeff
	}
	return math.Copysign(math.Inf(1), coeff)
}

// IsEven returns true if all the odd-degree coefficients of p are zero,
// that is p(-x) = p(x).
func (p *Polynomial) IsEven() bool {
	for i := 1; i < len(p.coeffs); i += 2 {
		if p.coeffs[i] != 0 {
			return false
		}
	}
	return true
}

// IsOdd returns true if all the even-degree coefficients of p are zero,
// that is p(-x) = -p(x).
func (p *Polynomial) IsOdd() bool {
	for i := 0; i < len(p.coeffs); i += 2 {
		if p.coeffs[i] != 0 {
			return false
		}
	}
	return true
}
