package polynomial

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/tuneinsight/polymath/utils/bignum"
)

// ErrInvalidInterval is returned when an Interval cannot be used for an approximation.
var ErrInvalidInterval = errors.New("invalid interval")

// ApproximationPrec is the precision in bits of the interpolation step of Approximate.
const ApproximationPrec = 128

// Interval is a struct storing information about the domain of a polynomial approximation.
// Nodes: the number of points used for the interpolation, the degree of the
// approximation is Nodes-1.
// [A, B]: the domain of the interpolation.
type Interval struct {
	Nodes int     `json:"nodes" yaml:"nodes"`
	A     float64 `json:"a" yaml:"a"`
	B     float64 `json:"b" yaml:"b"`
}

// Validate checks that the interval has at least one node and finite bounds A < B.
func (i Interval) Validate() error {
	if i.Nodes < 1 {
		return fmt.Errorf("%w: Nodes=%d < 1", ErrInvalidInterval, i.Nodes)
	}
	if math.IsInf(i.A, 0) || math.IsInf(i.B, 0) {
		return fmt.Errorf("%w: [A=%v, B=%v] is not finite", ErrInvalidInterval, i.A, i.B)
	}
	if !(i.A < i.B) {
		return fmt.Errorf("%w: A=%v >= B=%v", ErrInvalidInterval, i.A, i.B)
	}
	return nil
}

// Approximate returns a polynomial approximation of f on interval, obtained by
// interpolating f at the Chebyshev nodes of [A, B] and converting the result
// to the monomial basis.
// f.(type) can be either:
//   - func(float64) float64
//   - func(*big.Float) *big.Float
//
// The interpolation is carried with ApproximationPrec bits of precision.
func Approximate(f interface{}, interval Interval) (p *Polynomial, err error) {

	if err = interval.Validate(); err != nil {
		return nil, fmt.Errorf("cannot Approximate: %w", err)
	}

	var fBig func(*big.Float) *big.Float

	switch f := f.(type) {
	case func(x float64) (y float64):
		fBig = func(x *big.Float) (y *big.Float) {
			xf64, _ := x.Float64()
			return bignum.NewFloat(f(xf64), ApproximationPrec)
		}
	case func(x *big.Float) (y *big.Float):
		fBig = f
	default:
		panic(fmt.Sprintf("cannot Approximate: invalid f.(type), allowed types are func(float64) float64 or func(*big.Float) *big.Float but is %T", f))
	}

	a := bignum.NewFloat(interval.A, ApproximationPrec)
	b := bignum.NewFloat(interval.B, ApproximationPrec)

	nodes := bignum.ChebyshevNodes(interval.Nodes, a, b)

	fi := make([]*big.Float, len(nodes))
	for i := range nodes {
		fi[i] = fBig(nodes[i])
	}

	coeffs := bignum.ChebyshevCoefficients(nodes, fi, a, b)

	c := make([]float64, len(coeffs))
	for i := range coeffs {
		c[i], _ = coeffs[i].Float64()
	}

	return chebyshevToMonomial(c, interval.A, interval.B), nil
}

// chebyshevToMonomial returns sum_j c[j] * T_j(u(x)) in the monomial basis,
// with u(x) = (2x - a - b)/(b - a).
func chebyshevToMonomial(c []float64, a, b float64) (p *Polynomial) {

	u := NewPolynomial([]float64{-(a + b) / (b - a), 2 / (b - a)})

	p = NewPolynomial([]float64{c[0]})

	Tprev := NewPolynomial([]float64{1})
	T := u

	for j := 1; j < len(c); j++ {
		p = p.Add(T.MulScalar(c[j]))
		// T_{j+1} = 2u T_j - T_{j-1}
		Tprev, T = T, T.Mul(u).MulScalar(2).Sub(Tprev)
	}

	return
}
