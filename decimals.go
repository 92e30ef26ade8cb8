package numfmt

import "strings"

// DecimalsMode tags the fractional digit-count strategies.
type DecimalsMode int

const (
	// DecimalsMin pads the fractional part with zeros up to Count and never
	// truncates digits the value carries.
	DecimalsMin DecimalsMode = iota
	// DecimalsMax rounds at Count digits and then drops trailing zeros.
	DecimalsMax
	// DecimalsExact always shows exactly Count digits.
	DecimalsExact
)

// Decimals is the fractional digit-count policy of a Locale.
type Decimals struct {
	Mode  DecimalsMode
	Count int
}

// Min returns a policy showing at least n fractional digits.
func Min(n int) Decimals { return Decimals{Mode: DecimalsMin, Count: n} }

// Max returns a policy showing at most n fractional digits.
func Max(n int) Decimals { return Decimals{Mode: DecimalsMax, Count: n} }

// Exact returns a policy showing exactly n fractional digits.
func Exact(n int) Decimals { return Decimals{Mode: DecimalsExact, Count: n} }

// resolveDecimals adjusts the splitter's raw fractional digits to the
// policy: Min pads with zeros, Max strips trailing zeros (possibly down to
// the empty string), Exact passes through since the splitter already
// rendered at the exact width.
func resolveDecimals(policy Decimals, digits string) string {
	switch policy.Mode {
	case DecimalsMin:
		if len(digits) < policy.Count {
			return digits + strings.Repeat("0", policy.Count-len(digits))
		}
		return digits
	case DecimalsMax:
		for len(digits) > 0 && digits[len(digits)-1] == '0' {
			digits = digits[:len(digits)-1]
		}
		return digits
	default:
		return digits
	}
}
