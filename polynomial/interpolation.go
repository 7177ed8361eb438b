package polynomial

import (
	"fmt"

	"github.com/tuneinsight/polymath/utils"
)

// Interpolate returns the Lagrange polynomial of degree at most len(xs)-1
// going through the points (xs[i], ys[i]). The abscissae must be distinct.
func Interpolate(xs, ys []float64) (p *Polynomial, err error) {

	if len(xs) != len(ys) {
		return nil, fmt.Errorf("cannot Interpolate: len(xs)=%d != len(ys)=%d", len(xs), len(ys))
	}

	if len(xs) == 0 {
		return nil, fmt.Errorf("cannot Interpolate: no points")
	}

	if !utils.AllDistinct(xs) {
		return nil, fmt.Errorf("cannot Interpolate: xs are not distinct")
	}

	p = NewZeroPolynomial()

	for i := range xs {

		// l_i(x) = prod_{j != i} (x - x_j) / (x_i - x_j)
		basis := NewPolynomial([]float64{1})
		denom := 1.0

		for j := range xs {
			if j == i {
				continue
			}
			basis = basis.Mul(NewPolynomial([]float64{-xs[j], 1}))
			denom *= xs[i] - xs[j]
		}

		p = p.Add(basis.MulScalar(ys[i] / denom))
	}

	return
}
