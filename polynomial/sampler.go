package polynomial

import (
	"fmt"

	"github.com/tuneinsight/polymath/utils/sampling"
)

// SampleUniform returns a polynomial of the given degree whose coefficients
// are sampled uniformly in [-bound, bound] from prng.
// The leading coefficient is resampled until non-zero.
func SampleUniform(prng sampling.PRNG, degree int, bound float64) (p *Polynomial) {

	if degree > 0 && bound == 0 {
		panic(fmt.Sprintf("cannot SampleUniform: bound=0 with degree=%d > 0", degree))
	}

	p = NewPolynomialWithDegree(degree)
	for i := range p.coeffs {
		p.coeffs[i] = sampling.RandFloat64(prng, -bound, bound)
	}

	for degree > 0 && p.coeffs[degree] == 0 {
		p.coeffs[degree] = sampling.RandFloat64(prng, -bound, bound)
	}

	p.Normalize()
	return
}

// SampleInteger returns a polynomial of the given degree whose coefficients
// are integers sampled uniformly in [-bound, bound] from prng, with
// bound at most sampling.MaxIntBound.
// The leading coefficient is resampled until non-zero.
func SampleInteger(prng sampling.PRNG, degree int, bound int64) (p *Polynomial) {

	if degree > 0 && bound <= 0 {
		panic(fmt.Sprintf("cannot SampleInteger: bound=%d <= 0 with degree=%d > 0", bound, degree))
	}

	p = NewPolynomialWithDegree(degree)
	for i := range p.coeffs {
		p.coeffs[i] = float64(sampling.RandInt64(prng, bound))
	}

	for degree > 0 && p.coeffs[degree] == 0 {
		p.coeffs[degree] = float64(sampling.RandInt64(prng, bound))
	}

	p.Normalize()
	return
}
