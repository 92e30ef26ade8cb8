package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// splitDigits renders the absolute value of v as an exact base-10 string and
// splits it at the decimal point. Exact and Max policies render at the
// policy width; Min renders the shortest representation that round-trips and
// leaves padding to resolveDecimals. Rounding happens inside FormatFloat, so
// a carry across a power of ten lands in the integer digits (999.9 at zero
// decimals yields "1000").
func splitDigits(v float64, policy Decimals) (integer, fraction string) {
	prec := policy.Count
	if policy.Mode == DecimalsMin {
		prec = -1
	}
	rendered := strconv.FormatFloat(math.Abs(v), 'f', prec, 64)
	integer, fraction, _ = strings.Cut(rendered, ".")
	return integer, fraction
}
