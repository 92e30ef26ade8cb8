// Package numfmt formats floating-point numbers as locale-aware strings and
// parses them back.
//
// A Locale describes separators, sign affixes, a fractional digit-count
// policy, and a numbering system (Western or Indian grouping). Format
// renders a float through that configuration, Parse is its best-effort
// inverse, and GuessLocale infers a Locale from a sample string such as the
// output of a host runtime's native number formatter.
//
//	s, _ := numfmt.Format(numfmt.USLocale, 1234567.89) // "1,234,567.89"
//	v, _ := numfmt.Parse(numfmt.USLocale, s)           // 1.23456789e+06
//
// Every operation is pure: no I/O, no shared state, safe for concurrent use.
package numfmt

import (
	"fmt"
	"math"
	"strings"
)

// Format renders value according to locale. It returns ErrInvalidValue for
// NaN and infinities; every finite value formats without error.
func Format(locale Locale, value float64) (string, error) {
	n, err := Decompose(locale, value)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(n.Prefix)
	b.WriteString(strings.Join(n.Groups, locale.ThousandSeparator))
	if n.Decimals != "" {
		b.WriteString(locale.DecimalSeparator)
		b.WriteString(n.Decimals)
	}
	b.WriteString(n.Suffix)
	return b.String(), nil
}

// Decompose runs the formatting pipeline short of final assembly, exposing
// the digit groups, resolved fractional digits, and selected affixes.
func Decompose(locale Locale, value float64) (FormattedNumber, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return FormattedNumber{}, fmt.Errorf("format %v: %w", value, ErrInvalidValue)
	}

	integer, fraction := splitDigits(value, locale.Decimals)
	fraction = resolveDecimals(locale.Decimals, fraction)

	n := FormattedNumber{
		Value:    value,
		Groups:   groupDigits(integer, locale.System),
		Decimals: fraction,
	}

	switch Classify(value, integer, fraction) {
	case Negative:
		n.Prefix, n.Suffix = locale.NegativePrefix, locale.NegativeSuffix
	case Zero:
		n.Prefix, n.Suffix = locale.ZeroPrefix, locale.ZeroSuffix
	default:
		n.Prefix, n.Suffix = locale.PositivePrefix, locale.PositiveSuffix
	}
	return n, nil
}

// Classify buckets a number by its displayed digits. A value whose rounded
// digits are all '0' is Zero no matter its original sign, so -0.001 shown
// with two decimals carries no negative affix. Otherwise the original sign
// decides. The digits must already be rounded; classifying raw digits would
// leak a sign the display cannot justify.
func Classify(value float64, integer, fraction string) Category {
	digits := integer + fraction
	for i := 0; i < len(digits); i++ {
		if digits[i] != '0' {
			if value < 0 {
				return Negative
			}
			return Positive
		}
	}
	return Zero
}
