package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// WriteUint64 writes an uint64 c to w.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available()>>3 == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available()>>3 == 0 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer/8 is zero even after flush")
		}
	}

	buf := w.AvailableBuffer()[:8]

	binary.LittleEndian.PutUint64(buf, c)

	nint, err := w.Write(buf)

	return int64(nint), err
}

// WriteFloat64Slice writes the IEEE-754 bits of a slice of float64 c to w.
func WriteFloat64Slice(w Writer, c []float64) (n int64, err error) {

	if len(c) == 0 {
		return
	}

	// Remaining available space in the internal buffer
	available := w.Available() >> 3

	if available == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		available = w.Available() >> 3

		if available == 0 {
			return 0, fmt.Errorf("cannot WriteFloat64Slice: available buffer/8 is zero even after flush")
		}
	}

	N := len(c)
	if N > available {
		N = available
	}

	buf := w.AvailableBuffer()[:N<<3]
	for i, j := 0, 0; i < N; i, j = i+1, j+8 {
		binary.LittleEndian.PutUint64(buf[j:], math.Float64bits(c[i]))
	}

	var inc int
	if inc, err = w.Write(buf); err != nil {
		return int64(inc), err
	}

	n += int64(inc)

	if N == len(c) {
		return
	}

	if err = w.Flush(); err != nil {
		return n, err
	}

	var inc64 int64
	inc64, err = WriteFloat64Slice(w, c[N:])

	return n + inc64, err
}
