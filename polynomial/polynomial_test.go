package polynomial

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/polymath/utils"
	"github.com/tuneinsight/polymath/utils/sampling"
)

var testKey = []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
	0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

// testTrials is the number of random instances of each randomized test.
const testTrials = 64

func testString(opname string, p *Polynomial) string {
	return fmt.Sprintf("%s/p=%s", opname, p)
}

func newTestPRNG(t *testing.T) *sampling.KeyedPRNG {
	prng, err := sampling.NewKeyedPRNG(testKey)
	require.NoError(t, err)
	return prng
}

func TestPolynomial(t *testing.T) {

	t.Run("NewZeroPolynomial", func(t *testing.T) {
		p := NewZeroPolynomial()
		require.Equal(t, 0, p.Degree())
		require.Equal(t, []float64{0}, p.Coefficients())
		require.True(t, p.IsZero())
		require.Equal(t, "0", p.String())
	})

	t.Run("NewPolynomialWithDegree", func(t *testing.T) {
		p := NewPolynomialWithDegree(3)
		require.Equal(t, 3, p.Degree())
		require.Equal(t, []float64{0, 0, 0, 0}, p.Coefficients())
		require.True(t, p.IsZero())
		require.Panics(t, func() { NewPolynomialWithDegree(-1) })
	})

	t.Run("NewPolynomial", func(t *testing.T) {
		require.Equal(t, []float64{1, 2}, NewPolynomial([]int{1, 2, 0, 0}).Coefficients())
		require.Equal(t, []float64{0, 0, 3}, NewPolynomial([]int64{0, 0, 3}).Coefficients())
		require.Equal(t, []float64{0.5}, NewPolynomial([]float32{0.5}).Coefficients())
		require.Equal(t, []float64{0}, NewPolynomial[float64](nil).Coefficients())
		require.Equal(t, []float64{0}, NewPolynomial([]uint8{0, 0, 0}).Coefficients())

		coeffs := []float64{1, 2, 3}
		p := NewPolynomial(coeffs)
		require.False(t, utils.Alias1D(coeffs, p.coeffs))
		coeffs[0] = 42
		require.Equal(t, 1.0, p.Coefficient(0), "should not share the input slice")
	})

	t.Run("NewMonomial", func(t *testing.T) {
		require.Equal(t, []float64{0, 0, -2}, NewMonomial(-2, 2).Coefficients())
		require.True(t, NewMonomial(0, 5).Equal(NewZeroPolynomial()))
	})

	t.Run("CopyNew", func(t *testing.T) {
		p := NewPolynomial([]float64{1, 2, 3})
		q := p.CopyNew()
		require.True(t, p.Equal(q))
		require.False(t, utils.Alias1D(p.coeffs, q.coeffs))
		q.SetCoefficient(0, 7)
		require.Equal(t, 1.0, p.Coefficient(0))

		// A copy of a non normalized polynomial is normalized.
		r := NewPolynomialWithDegree(4)
		r.SetCoefficient(1, 5)
		require.Equal(t, []float64{0, 5}, r.CopyNew().Coefficients())
	})

	t.Run("SetCoefficient", func(t *testing.T) {
		p := NewZeroPolynomial()
		p.SetCoefficient(3, 2)
		require.Equal(t, []float64{0, 0, 0, 2}, p.Coefficients())
		require.Equal(t, 3, p.Degree())

		p.SetCoefficient(1, -1)
		require.Equal(t, []float64{0, -1, 0, 2}, p.Coefficients())
		require.Equal(t, "2x^3-x", p.String())

		// Setting the leading coefficient to zero requires a Normalize.
		p.SetCoefficient(3, 0)
		require.Equal(t, 3, p.Degree())
		p.Normalize()
		require.Equal(t, 1, p.Degree())

		require.Panics(t, func() { p.SetCoefficient(-1, 1) })

		var z Polynomial
		z.SetCoefficient(1, 1)
		require.Equal(t, "x", z.String())
	})

	t.Run("Coefficient", func(t *testing.T) {
		p := NewPolynomial([]float64{1, 2, 3})
		require.Equal(t, 3.0, p.Coefficient(2))
		require.Equal(t, 0.0, p.Coefficient(3))
		require.Equal(t, 0.0, p.Coefficient(100))
		require.Equal(t, 0.0, p.Coefficient(-1))
		for i := -1; i < 5; i++ {
			require.Equal(t, p.Coefficient(i), p.At(i))
		}
		require.Equal(t, 3.0, p.LeadingCoefficient())
	})

	t.Run("Normalize", func(t *testing.T) {
		p := NewPolynomialWithDegree(4)
		p.SetCoefficient(1, 5)
		p.Normalize()
		require.Equal(t, []float64{0, 5}, p.Coefficients())
		p.Normalize()
		require.Equal(t, []float64{0, 5}, p.Coefficients())

		z := NewPolynomialWithDegree(3)
		z.Normalize()
		require.Equal(t, []float64{0}, z.Coefficients())

		var empty Polynomial
		empty.Normalize()
		require.True(t, empty.Equal(NewZeroPolynomial()))
	})

	t.Run("Equal", func(t *testing.T) {
		p := NewPolynomial([]float64{1, 2})
		require.True(t, p.Equal(NewPolynomial([]float64{1, 2})))
		require.True(t, Equals(p, NewPolynomial([]int{1, 2})))
		require.False(t, p.Equal(NewPolynomial([]float64{1, 2, 3})))
		require.False(t, p.Equal(NewPolynomial([]float64{1, 2.0000000001})))
		require.True(t, cmp.Equal(p, NewPolynomial([]float64{1, 2})))

		// Coefficient counts are compared as stored.
		q := NewPolynomialWithDegree(2)
		q.SetCoefficient(0, 1)
		q.SetCoefficient(1, 2)
		require.False(t, p.Equal(q))
		q.Normalize()
		require.True(t, p.Equal(q))

		var zero Polynomial
		require.True(t, zero.Equal(NewZeroPolynomial()))
	})
}

func TestString(t *testing.T) {

	testCases := []struct {
		coeffs []float64
		want   string
	}{
		{nil, "0"},
		{[]float64{0, 0}, "0"},
		{[]float64{2, 0, 3}, "3x^2+2"},
		{[]float64{0, 1}, "x"},
		{[]float64{-1, 0, 1}, "x^2-1"},
		{[]float64{0, 0, -1}, "-x^2"},
		{[]float64{1}, "1"},
		{[]float64{-1}, "-1"},
		{[]float64{1, -1}, "-x+1"},
		{[]float64{0.5, -2, 1, 3}, "3x^3+x^2-2x+0.5"},
		{[]float64{-3, 0, 0, -2.5}, "-2.5x^3-3"},
		{[]float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, "x^11"},
		{[]float64{1e21, 1}, "x+1e+21"},
		{[]float64{math.Inf(1), 1}, "x+Inf"},
		{[]float64{math.Inf(-1), 1}, "x-Inf"},
		{[]float64{1, math.Inf(1)}, "+Infx+1"},
	}

	for _, tc := range testCases {
		p := NewPolynomial(tc.coeffs)
		t.Run(testString("String", p), func(t *testing.T) {
			require.Equal(t, tc.want, p.String())
			require.Equal(t, tc.want, fmt.Sprint(p))
		})
	}

	t.Run("NotNormalized", func(t *testing.T) {
		p := NewPolynomialWithDegree(3)
		require.Equal(t, "0", p.String())
		p.SetCoefficient(1, -1)
		require.Equal(t, "-x", p.String())
	})
}

func TestEvaluate(t *testing.T) {

	p := NewPolynomial([]float64{1, 2, 3})

	t.Run("Float64", func(t *testing.T) {
		require.Equal(t, 17.0, p.Evaluate(2))
		require.Equal(t, 1.0, p.Evaluate(0))
		require.Equal(t, 2.0, p.Evaluate(-1))
		require.Equal(t, 0.0, NewZeroPolynomial().Evaluate(3))
	})

	t.Run("Generic", func(t *testing.T) {
		require.Equal(t, 17.0, Evaluate(p, 2))
		require.Equal(t, 17.0, Evaluate(p, int8(2)))
		require.Equal(t, 17.0, Evaluate(p, uint64(2)))
		require.Equal(t, 2.75, Evaluate(p, float32(0.5)))
	})

	t.Run("Big", func(t *testing.T) {
		x := new(big.Float).SetPrec(256).SetFloat64(2)
		y := p.EvaluateBig(x)
		require.Equal(t, uint(256), y.Prec())
		yf, _ := y.Float64()
		require.Equal(t, 17.0, yf)
	})

	t.Run("Sample", func(t *testing.T) {
		require.Equal(t, []float64{2, 1, 6, 17}, p.Sample([]float64{-1, 0, 1, 2}))
	})
}

func TestLimits(t *testing.T) {

	inf := math.Inf(1)

	testCases := []struct {
		coeffs   []float64
		pos, neg float64
	}{
		{nil, 0, 0},
		{[]float64{5}, 5, 5},
		{[]float64{-3}, -3, -3},
		{[]float64{0, 2}, inf, -inf},
		{[]float64{0, -2}, -inf, inf},
		{[]float64{1, 0, 3}, inf, inf},
		{[]float64{1, 0, -3}, -inf, -inf},
		{[]float64{0, 0, 0, 1}, inf, -inf},
		{[]float64{7, 0, 0, -0.5}, -inf, inf},
	}

	for _, tc := range testCases {
		p := NewPolynomial(tc.coeffs)
		t.Run(testString("Limits", p), func(t *testing.T) {
			require.Equal(t, tc.pos, p.LimitPositiveInfinity())
			require.Equal(t, tc.neg, p.LimitNegativeInfinity())
		})
	}

	t.Run("NotNormalized", func(t *testing.T) {
		p := NewPolynomialWithDegree(3)
		p.SetCoefficient(1, -1)
		require.Equal(t, -inf, p.LimitPositiveInfinity())
		require.Equal(t, inf, p.LimitNegativeInfinity())
	})
}

func TestSymmetry(t *testing.T) {

	testCases := []struct {
		coeffs      []float64
		even, odd   bool
		description string
	}{
		{nil, true, true, "zero"},
		{[]float64{3}, true, false, "constant"},
		{[]float64{1, 0, 1}, true, false, "x^2+1"},
		{[]float64{0, 1, 0, 1}, false, true, "x^3+x"},
		{[]float64{1, 1}, false, false, "x+1"},
		{[]float64{0, 0, -4}, true, false, "-4x^2"},
	}

	for _, tc := range testCases {
		p := NewPolynomial(tc.coeffs)
		t.Run("IsEven&IsOdd/"+tc.description, func(t *testing.T) {
			require.Equal(t, tc.even, p.IsEven())
			require.Equal(t, tc.odd, p.IsOdd())
		})
	}

	t.Run("Definition", func(t *testing.T) {
		prng := newTestPRNG(t)
		for i := 0; i < testTrials; i++ {
			p := SampleInteger(prng, 6, 10)
			even := p.Add(p.Compose(NewPolynomial([]float64{0, -1}))).QuoScalar(2)
			odd := p.Sub(p.Compose(NewPolynomial([]float64{0, -1}))).QuoScalar(2)
			require.True(t, even.IsEven(), even.String())
			require.True(t, odd.IsOdd(), odd.String())
			require.True(t, even.Add(odd).Equal(p))
		}
	})
}
