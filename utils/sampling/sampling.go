// Package sampling implements the sampling of bytes, integers and floats from a PRNG.
package sampling

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// RandUint64 returns a random value between 0 and 0xFFFFFFFFFFFFFFFF read from r.
func RandUint64(r io.Reader) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := io.ReadFull(r, b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandFloat64 returns a random float in [min, max] read from r.
func RandFloat64(r io.Reader, min, max float64) float64 {
	f := float64(RandUint64(r)) / 1.8446744073709552e+19
	return min + f*(max-min)
}

// MaxIntBound is the largest bound accepted by RandInt64.
const MaxIntBound = (math.MaxInt64 - 1) / 2

// RandInt64 returns a random integer in [-bound, bound] read from r.
// The distribution is uniform up to a bias of at most (2*bound+1)/2^64.
// bound must be in [0, MaxIntBound].
func RandInt64(r io.Reader, bound int64) int64 {
	if bound < 0 || bound > MaxIntBound {
		panic(fmt.Sprintf("cannot RandInt64: bound=%d not in [0, %d]", bound, int64(MaxIntBound)))
	}
	return int64(RandUint64(r)%uint64(2*bound+1)) - bound
}
