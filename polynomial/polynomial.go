// Package polynomial implements dense univariate polynomials with float64 coefficients,
// along with their arithmetic, long division, composition, calculus, evaluation and
// end-behaviour analysis.
//
// A Polynomial is kept in canonical form: its highest-indexed coefficient is non-zero,
// unless it is the zero polynomial, which is stored as the single coefficient 0.
// Every operation returns a new Polynomial and never shares storage with its operands;
// only SetCoefficient and Normalize modify the receiver.
package polynomial

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"

	"github.com/tuneinsight/polymath/utils"
)

// Number is the set of scalar types accepted as coefficients and evaluation points.
// Integers are promoted to float64.
type Number interface {
	constraints.Integer | constraints.Float
}

// Polynomial is a polynomial c_0 + c_1 x + ... + c_n x^n stored by
// increasing degree.
// The zero value behaves as the zero polynomial for reads.
type Polynomial struct {
	coeffs []float64
}

// NewZeroPolynomial returns the zero polynomial.
func NewZeroPolynomial() *Polynomial {
	return &Polynomial{coeffs: []float64{0}}
}

// NewPolynomialWithDegree returns a polynomial with degree+1 zero coefficients.
// The result is not normalized: it is meant to be filled with SetCoefficient.
func NewPolynomialWithDegree(degree int) *Polynomial {
	if degree < 0 {
		panic(fmt.Sprintf("cannot NewPolynomialWithDegree: degree=%d < 0", degree))
	}
	return &Polynomial{coeffs: make([]float64, degree+1)}
}

// NewPolynomial returns the normalized polynomial whose coefficients, by increasing
// degree, are a copy of coeffs. A nil or empty coeffs returns the zero polynomial.
//
// For example, NewPolynomial([]float64{1, -2, 3}) represents 3x^2 - 2x + 1.
func NewPolynomial[T Number](coeffs []T) (p *Polynomial) {
	p = &Polynomial{coeffs: make([]float64, len(coeffs))}
	for i, c := range coeffs {
		p.coeffs[i] = float64(c)
	}
	p.Normalize()
	return
}

// NewMonomial returns the polynomial coeff * x^degree.
func NewMonomial(coeff float64, degree int) (p *Polynomial) {
	p = NewPolynomialWithDegree(degree)
	p.coeffs[degree] = coeff
	p.Normalize()
	return
}

// CopyNew returns a normalized deep copy of p.
func (p *Polynomial) CopyNew() *Polynomial {
	return NewPolynomial(p.coeffs)
}

// Normalize trims the trailing zero coefficients of p, keeping at least one
// coefficient. It is idempotent.
func (p *Polynomial) Normalize() {
	if len(p.coeffs) == 0 {
		p.coeffs = []float64{0}
		return
	}
	p.coeffs = utils.TrimTrailing(p.coeffs)
}

// values returns the stored coefficients, or the zero polynomial for the zero value.
func (p *Polynomial) values() []float64 {
	if len(p.coeffs) == 0 {
		return []float64{0}
	}
	return p.coeffs
}

// SetCoefficient sets the coefficient of x^degree to value.
// Storage grows with zero coefficients when degree exceeds the current degree.
// p is not normalized afterwards.
func (p *Polynomial) SetCoefficient(degree int, value float64) {
	if degree < 0 {
		panic(fmt.Sprintf("cannot SetCoefficient: degree=%d < 0", degree))
	}

	if n := len(p.coeffs); degree >= n {
		p.coeffs = append(p.coeffs, make([]float64, degree+1-n)...)
	}

	p.coeffs[degree] = value
}

// Coefficient returns the coefficient of x^degree.
// Degrees outside of the stored range return 0.
func (p *Polynomial) Coefficient(degree int) float64 {
	if degree < 0 || degree >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[degree]
}

// At is an alias of Coefficient.
func (p *Polynomial) At(degree int) float64 {
	return p.Coefficient(degree)
}

// Coefficients returns a copy of the coefficients of p by increasing degree.
func (p *Polynomial) Coefficients() []float64 {
	return utils.CopyNew(p.values())
}

// Degree returns the number of stored coefficients minus one.
// It is the degree of p only if p is normalized. The zero polynomial has degree 0.
func (p *Polynomial) Degree() int {
	return len(p.values()) - 1
}

// LeadingCoefficient returns the coefficient of x^p.Degree().
func (p *Polynomial) LeadingCoefficient() float64 {
	return p.Coefficient(p.Degree())
}

// IsZero returns true if all the coefficients of p are zero.
func (p *Polynomial) IsZero() bool {
	for _, c := range p.coeffs {
		if c != 0 {
			return false
		}
	}
	return true
}

// Equal returns true if p and other store the same number of coefficients
// and all coefficients are exactly equal.
// Both operands should be normalized for the comparison to be meaningful.
func (p *Polynomial) Equal(other *Polynomial) bool {
	return cmp.Equal(p.values(), other.values())
}
