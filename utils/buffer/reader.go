package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ReadUint64 reads an uint64 from r and stores the result into c.
func ReadUint64(r Reader, c *uint64) (n int, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	if n, err = r.Read(bb[:]); err != nil {
		return
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return n, nil
}

// ReadFloat64Slice reads len(c) IEEE-754 encoded float64 from r into c.
func ReadFloat64Slice(r Reader, c []float64) (n int, err error) {

	if len(c) == 0 {
		return
	}

	// Avoid EOF
	size := r.Size()
	if len(c)<<3 < size {
		size = len(c) << 3
	}

	var slice []byte
	if slice, err = r.Peek(size); err != nil {
		return
	}

	buffered := len(slice) >> 3

	if buffered == 0 {
		return 0, fmt.Errorf("cannot ReadFloat64Slice: %d values left to read but less than 8 bytes buffered", len(c))
	}

	N := len(c)
	if N > buffered {
		N = buffered
	}

	for i, j := 0, 0; i < N; i, j = i+1, j+8 {
		c[i] = math.Float64frombits(binary.LittleEndian.Uint64(slice[j:]))
	}

	if n, err = r.Discard(N << 3); err != nil {
		return
	}

	if N == len(c) {
		return
	}

	var inc int
	inc, err = ReadFloat64Slice(r, c[N:])

	return n + inc, err
}
