package polynomial

// Add returns a + b.
func Add(a, b *Polynomial) *Polynomial {
	return a.Add(b)
}

// Subtract returns a - b.
func Subtract(a, b *Polynomial) *Polynomial {
	return a.Sub(b)
}

// Multiply returns a * b.
func Multiply(a, b *Polynomial) *Polynomial {
	return a.Mul(b)
}

// Divide returns the quotient of the long division of a by b.
func Divide(a, b *Polynomial) (*Polynomial, error) {
	return a.Quo(b)
}

// Remainder returns the remainder of the long division of a by b.
func Remainder(a, b *Polynomial) (*Polynomial, error) {
	return a.Rem(b)
}

// Negate returns -a.
func Negate(a *Polynomial) *Polynomial {
	return a.Neg()
}

// Equals returns true if a and b are equal, see Polynomial.Equal.
func Equals(a, b *Polynomial) bool {
	return a.Equal(b)
}
