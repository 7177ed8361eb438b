package polynomial

import (
	"strconv"
	"strings"

	"github.com/tuneinsight/polymath/utils"
)

// String returns p by decreasing degree, for example "3x^2-x+2".
// Coefficients of magnitude 1 are omitted except for the constant term
// and the zero polynomial is "0".
func (p *Polynomial) String() string {

	coeffs := utils.TrimTrailing(p.values())
	degree := len(coeffs) - 1

	if degree == 0 && coeffs[0] == 0 {
		return "0"
	}

	var sb strings.Builder

	for i := degree; i >= 0; i-- {

		c := coeffs[i]

		if c == 0 {
			continue
		}

		var num string
		switch {
		case i != 0 && c == 1:
		case i != 0 && c == -1:
			num = "-"
		default:
			num = strconv.FormatFloat(c, 'g', -1, 64)
		}

		// +Inf already carries its sign.
		if c > 0 && i != degree && !strings.HasPrefix(num, "+") {
			sb.WriteByte('+')
		}

		sb.WriteString(num)

		switch {
		case i > 1:
			sb.WriteString("x^")
			sb.WriteString(strconv.Itoa(i))
		case i == 1:
			sb.WriteByte('x')
		}
	}

	return sb.String()
}
