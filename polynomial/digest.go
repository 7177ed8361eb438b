package polynomial

import (
	"github.com/zeebo/blake3"
)

// DigestSize is the size in bytes of the output of Digest.
const DigestSize = 32

// Digest returns the blake3 hash of the binary form of p.
// Polynomials with the same normalized coefficients have the same digest.
func (p *Polynomial) Digest() []byte {
	data, err := p.MarshalBinary()
	if err != nil {
		// The buffer is allocated with the exact binary size.
		panic(err)
	}

	hasher := blake3.New()
	if _, err = hasher.Write(data); err != nil {
		panic(err)
	}

	return hasher.Sum(nil)[:DigestSize]
}
