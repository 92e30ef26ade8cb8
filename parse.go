package numfmt

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reconstructs the numeric value of text formatted under locale.
//
// It is a best-effort inverse of Format: the input is negative only when
// both the locale's negative prefix and suffix are present (empty affixes
// match trivially), thousand separators and any other non-digit characters
// are discarded, and the remaining digit runs around the decimal separator
// become the value. When the thousand and decimal separators cannot be told
// apart in the input, the digit grouping wins, so ambiguous inputs may parse
// to a different magnitude than the one originally formatted. That
// limitation is inherent to the format, not resolved heuristically here.
func Parse(locale Locale, text string) (float64, error) {
	input := text

	// A locale with neither negative affix has no way to mark negativity,
	// so nothing parses as negative under it. Otherwise an empty half of
	// the pair matches trivially, keeping one-sided affixes like "−"/""
	// working.
	marked := locale.NegativePrefix != "" || locale.NegativeSuffix != ""
	negative := marked && affixesMatch(text, locale.NegativePrefix, locale.NegativeSuffix)
	if negative {
		text = text[len(locale.NegativePrefix) : len(text)-len(locale.NegativeSuffix)]
	}

	integer := text
	fraction := ""
	if locale.DecimalSeparator != "" {
		parts := strings.Split(text, locale.DecimalSeparator)
		if len(parts) > 2 {
			return 0, fmt.Errorf("parse %q: more than one decimal separator: %w", input, ErrParse)
		}
		integer = parts[0]
		if len(parts) == 2 {
			fraction = parts[1]
		}
	}

	integer = keepDigits(integer)
	fraction = keepDigits(fraction)
	if integer == "" && fraction == "" {
		return 0, fmt.Errorf("parse %q: no digits: %w", input, ErrParse)
	}
	if integer == "" {
		integer = "0"
	}

	repr := integer
	if fraction != "" {
		repr = integer + "." + fraction
	}
	value, err := strconv.ParseFloat(repr, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", input, ErrParse)
	}

	if negative {
		value = -value
	}
	return value, nil
}

// affixesMatch reports whether text carries both affixes without the prefix
// and suffix overlapping each other.
func affixesMatch(text, prefix, suffix string) bool {
	if len(text) < len(prefix)+len(suffix) {
		return false
	}
	return strings.HasPrefix(text, prefix) && strings.HasSuffix(text, suffix)
}

// keepDigits drops every byte that is not an ASCII digit.
func keepDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
