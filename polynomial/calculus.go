package polynomial

// Derivative returns dp/dx. The derivative of a constant is the zero polynomial.
func (p *Polynomial) Derivative() (res *Polynomial) {

	n := p.Degree()

	if n == 0 {
		return NewZeroPolynomial()
	}

	res = NewPolynomialWithDegree(n - 1)
	for i := range res.coeffs {
		res.coeffs[i] = p.Coefficient(i+1) * float64(i+1)
	}
	res.Normalize()
	return
}

// Primitive returns the antiderivative of p whose constant term is constant.
func (p *Polynomial) Primitive(constant float64) (res *Polynomial) {

	n := p.Degree()

	res = NewPolynomialWithDegree(n + 1)
	res.coeffs[0] = constant
	for i := 0; i <= n; i++ {
		res.coeffs[i+1] = p.Coefficient(i) / float64(i+1)
	}
	res.Normalize()
	return
}

// Integral returns the definite integral of p between lower and upper.
func (p *Polynomial) Integral(lower, upper float64) float64 {
	primitive := p.Primitive(0)
	return primitive.Evaluate(upper) - primitive.Evaluate(lower)
}

// Tangent returns the tangent line of p at x0, that is slope*x + (p(x0) - slope*x0)
// with slope = p'(x0).
func (p *Polynomial) Tangent(x0 float64) *Polynomial {
	slope := p.Derivative().Evaluate(x0)
	y0 := p.Evaluate(x0)
	return NewPolynomial([]float64{y0 - slope*x0, slope})
}
