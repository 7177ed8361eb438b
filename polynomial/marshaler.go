package polynomial

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/tuneinsight/polymath/utils"
	"github.com/tuneinsight/polymath/utils/buffer"
)

// readChunkSize is the number of coefficients allocated at a time by ReadFrom.
const readChunkSize = 1 << 16

// BinarySize returns the size in bytes of the object once serialized:
// 8 bytes for the number of coefficients and 8 bytes per coefficient of
// the normalized form of p.
func (p *Polynomial) BinarySize() int {
	return 8 + 8*len(utils.TrimTrailing(p.values()))
}

// WriteTo writes the normalized coefficients of p on an io.Writer.
// It implements the io.WriterTo interface and writes exactly p.BinarySize() bytes.
//
// Unless w implements the buffer.Writer interface (see polymath/utils/buffer),
// it will be wrapped into a bufio.Writer. When writing to a pre-allocated
// []byte, it is preferable to pass buffer.NewBuffer(b) as w.
func (p *Polynomial) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		coeffs := utils.TrimTrailing(p.values())

		var inc int64
		if inc, err = buffer.WriteUint64(w, uint64(len(coeffs))); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteUint64: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteFloat64Slice(w, coeffs); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteFloat64Slice: %w", err)
		}

		n += inc

		return n, w.Flush()

	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader and normalizes it.
// It implements the io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see polymath/utils/buffer),
// it will be wrapped into a bufio.Reader.
func (p *Polynomial) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var size uint64
		var inc int
		if inc, err = buffer.ReadUint64(r, &size); err != nil {
			return n + int64(inc), fmt.Errorf("buffer.ReadUint64: %w", err)
		}

		n += int64(inc)

		if size == 0 || size > math.MaxInt32 {
			return n, fmt.Errorf("cannot ReadFrom: invalid number of coefficients %d", size)
		}

		if b, ok := r.(*buffer.Buffer); ok && size<<3 > uint64(b.Size()) {
			return n, fmt.Errorf("cannot ReadFrom: %d coefficients announced but %d bytes left", size, b.Size())
		}

		// Storage grows with the data actually read.
		coeffs := make([]float64, 0, utils.Min(int(size), readChunkSize))

		for len(coeffs) < int(size) {

			start := len(coeffs)
			coeffs = append(coeffs, make([]float64, utils.Min(int(size)-start, readChunkSize))...)

			if inc, err = buffer.ReadFloat64Slice(r, coeffs[start:]); err != nil {
				return n + int64(inc), fmt.Errorf("buffer.ReadFloat64Slice: %w", err)
			}

			n += int64(inc)
		}

		p.coeffs = coeffs
		p.Normalize()

		return n, nil

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (p *Polynomial) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary
// or WriteTo on the object.
func (p *Polynomial) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}

// MarshalJSON encodes p as the JSON list of its normalized coefficients by increasing degree.
func (p *Polynomial) MarshalJSON() ([]byte, error) {
	return json.Marshal(utils.TrimTrailing(p.values()))
}

// UnmarshalJSON decodes a JSON list of coefficients by increasing degree.
func (p *Polynomial) UnmarshalJSON(data []byte) (err error) {
	var coeffs []float64
	if err = json.Unmarshal(data, &coeffs); err != nil {
		return fmt.Errorf("cannot UnmarshalJSON: %w", err)
	}
	p.coeffs = coeffs
	p.Normalize()
	return
}

// MarshalYAML encodes p as the YAML sequence of its normalized coefficients by increasing degree.
func (p *Polynomial) MarshalYAML() (interface{}, error) {
	return utils.CopyNew(utils.TrimTrailing(p.values())), nil
}

// UnmarshalYAML decodes a YAML sequence of coefficients by increasing degree.
func (p *Polynomial) UnmarshalYAML(value *yaml.Node) (err error) {
	var coeffs []float64
	if err = value.Decode(&coeffs); err != nil {
		return fmt.Errorf("cannot UnmarshalYAML: %w", err)
	}
	p.coeffs = coeffs
	p.Normalize()
	return
}
