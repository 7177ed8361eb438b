package polynomial

import (
	"errors"
	"fmt"

	"github.com/tuneinsight/polymath/utils"
)

// ErrInvalidDivisor is returned when dividing by a polynomial whose leading coefficient is zero.
var ErrInvalidDivisor = errors.New("divisor leading coefficient is zero")

// Add returns p + other.
func (p *Polynomial) Add(other *Polynomial) (res *Polynomial) {
	res = NewPolynomialWithDegree(utils.Max(p.Degree(), other.Degree()))
	for i := range res.coeffs {
		res.coeffs[i] = p.Coefficient(i) + other.Coefficient(i)
	}
	res.Normalize()
	return
}

// Sub returns p - other.
func (p *Polynomial) Sub(other *Polynomial) (res *Polynomial) {
	res = NewPolynomialWithDegree(utils.Max(p.Degree(), other.Degree()))
	for i := range res.coeffs {
		res.coeffs[i] = p.Coefficient(i) - other.Coefficient(i)
	}
	res.Normalize()
	return
}

// AddScalar returns p + c. Only the constant term is affected.
func (p *Polynomial) AddScalar(c float64) (res *Polynomial) {
	res = p.CopyNew()
	res.coeffs[0] += c
	res.Normalize()
	return
}

// SubScalar returns p - c. Only the constant term is affected.
func (p *Polynomial) SubScalar(c float64) (res *Polynomial) {
	res = p.CopyNew()
	res.coeffs[0] -= c
	res.Normalize()
	return
}

// ScalarSub returns c - p.
func (p *Polynomial) ScalarSub(c float64) *Polynomial {
	return p.Neg().AddScalar(c)
}

// Mul returns p * other.
func (p *Polynomial) Mul(other *Polynomial) (res *Polynomial) {
	pd, od := p.Degree(), other.Degree()
	res = NewPolynomialWithDegree(pd + od)
	for i := 0; i <= pd; i++ {
		ci := p.Coefficient(i)
		for j := 0; j <= od; j++ {
			res.coeffs[i+j] += ci * other.Coefficient(j)
		}
	}
	res.Normalize()
	return
}

// MulScalar returns c * p.
func (p *Polynomial) MulScalar(c float64) (res *Polynomial) {
	res = p.CopyNew()
	for i := range res.coeffs {
		res.coeffs[i] *= c
	}
	res.Normalize()
	return
}

// QuoScalar returns p / c. Division by zero follows IEEE-754 and yields
// infinite or NaN coefficients.
func (p *Polynomial) QuoScalar(c float64) (res *Polynomial) {
	res = p.CopyNew()
	for i := range res.coeffs {
		res.coeffs[i] /= c
	}
	res.Normalize()
	return
}

// Neg returns -p.
func (p *Polynomial) Neg() *Polynomial {
	return p.MulScalar(-1)
}

// Pow returns p^n, with p^0 = 1.
func (p *Polynomial) Pow(n uint) (res *Polynomial) {
	res = NewPolynomial([]float64{1})
	base := p.CopyNew()
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			res = res.Mul(base)
		}
		if n > 1 {
			base = base.Mul(base)
		}
	}
	return
}

// QuoRem returns the quotient q and the remainder r of the long division of p by
// divisor, such that p = q * divisor + r with deg(r) < deg(divisor) or r = 0.
// It returns an error wrapping ErrInvalidDivisor if the coefficient of
// x^divisor.Degree() is zero, which is the case of the zero polynomial.
func (p *Polynomial) QuoRem(divisor *Polynomial) (q, r *Polynomial, err error) {

	dd := divisor.Degree()
	lead := divisor.Coefficient(dd)

	if lead == 0 {
		return nil, nil, fmt.Errorf("cannot QuoRem: %w", ErrInvalidDivisor)
	}

	r = p.CopyNew()

	if r.Degree() < dd {
		return NewZeroPolynomial(), r, nil
	}

	q = NewPolynomialWithDegree(r.Degree() - dd)

	for !r.IsZero() && r.Degree() >= dd {

		rd := r.Degree()
		coeff := r.coeffs[rd] / lead
		termDegree := rd - dd

		q.coeffs[termDegree] += coeff

		// r -= divisor * coeff * x^termDegree
		for j := 0; j < dd; j++ {
			r.coeffs[termDegree+j] -= coeff * divisor.coeffs[j]
		}

		// The leading term cancels by construction, rounding residues included.
		r.coeffs[rd] = 0
		r.Normalize()
	}

	q.Normalize()

	return
}

// Quo returns the quotient of the long division of p by divisor, see QuoRem.
func (p *Polynomial) Quo(divisor *Polynomial) (q *Polynomial, err error) {
	q, _, err = p.QuoRem(divisor)
	return
}

// Rem returns the remainder of the long division of p by divisor, see QuoRem.
func (p *Polynomial) Rem(divisor *Polynomial) (r *Polynomial, err error) {
	_, r, err = p.QuoRem(divisor)
	return
}

// Compose returns p(other(x)), evaluated with Horner's method over polynomials.
func (p *Polynomial) Compose(other *Polynomial) (res *Polynomial) {
	res = NewZeroPolynomial()
	for i := p.Degree(); i >= 0; i-- {
		res = res.Mul(other).AddScalar(p.Coefficient(i))
	}
	return
}
