package polynomial

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// PrecisionStats is a struct storing statistics about the absolute error
// between reference values and values computed with a polynomial.
type PrecisionStats struct {
	N         int
	MinErr    float64
	MaxErr    float64
	MeanErr   float64
	MedianErr float64
	StdErr    float64
}

// GetPrecisionStats returns the statistics of |want[i] - have[i]|.
func GetPrecisionStats(want, have []float64) (s PrecisionStats, err error) {

	if len(want) != len(have) {
		return s, fmt.Errorf("cannot GetPrecisionStats: len(want)=%d != len(have)=%d", len(want), len(have))
	}

	if len(want) == 0 {
		return s, fmt.Errorf("cannot GetPrecisionStats: no values")
	}

	errs := make(stats.Float64Data, len(want))
	for i := range want {
		errs[i] = math.Abs(want[i] - have[i])
	}

	s.N = len(errs)

	if s.MinErr, err = stats.Min(errs); err != nil {
		return s, fmt.Errorf("stats.Min: %w", err)
	}

	if s.MaxErr, err = stats.Max(errs); err != nil {
		return s, fmt.Errorf("stats.Max: %w", err)
	}

	if s.MeanErr, err = stats.Mean(errs); err != nil {
		return s, fmt.Errorf("stats.Mean: %w", err)
	}

	if s.MedianErr, err = stats.Median(errs); err != nil {
		return s, fmt.Errorf("stats.Median: %w", err)
	}

	if s.StdErr, err = stats.StandardDeviation(errs); err != nil {
		return s, fmt.Errorf("stats.StandardDeviation: %w", err)
	}

	return
}

func (s PrecisionStats) String() string {
	return fmt.Sprintf(`
┌─────────┬──────────────┐
│ Samples │ %12d │
├─────────┼──────────────┤
│ Log2    │ Abs. Error   │
├─────────┼──────────────┤
│ MIN     │ %12.4f │
│ MAX     │ %12.4f │
│ AVG     │ %12.4f │
│ MED     │ %12.4f │
│ STD     │ %12.4f │
└─────────┴──────────────┘
`,
		s.N,
		math.Log2(s.MinErr),
		math.Log2(s.MaxErr),
		math.Log2(s.MeanErr),
		math.Log2(s.MedianErr),
		math.Log2(s.StdErr))
}
