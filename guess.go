package numfmt

import "fmt"

// GuessLocale infers a Locale from a sample formatted number, typically the
// output of a host runtime's native number-to-string routine for a probe
// value like 123456.789.
//
// The leading and trailing non-digit runs become the negative prefix and
// suffix. The non-digit runs between digits are the separator tokens: the
// last one is the decimal separator and the first token that differs from it
// is the thousand separator. A thousand separator seen once means Western
// grouping, seen twice means Indian grouping. The decimal policy is
// Exact(n) for the n digits after the decimal separator.
//
// Samples with no separators, with a single separator occurrence, or where
// every separator token is identical do not distinguish the thousand from
// the decimal separator and yield ErrAmbiguousLocale. The decision rules are
// deliberately rigid; callers relying on them should feed probe values whose
// shape keeps Western and Indian grouping distinguishable.
func GuessLocale(sample string) (Locale, error) {
	start := 0
	for start < len(sample) && !isDigit(sample[start]) {
		start++
	}
	if start == len(sample) {
		return Locale{}, fmt.Errorf("guess %q: no digits: %w", sample, ErrAmbiguousLocale)
	}
	end := len(sample)
	for end > start && !isDigit(sample[end-1]) {
		end--
	}

	prefix := sample[:start]
	suffix := sample[end:]
	body := sample[start:end]

	tokens := separatorTokens(body)
	if len(tokens) == 0 {
		return Locale{}, fmt.Errorf("guess %q: no separators: %w", sample, ErrAmbiguousLocale)
	}
	if allIdentical(tokens) {
		return Locale{}, fmt.Errorf("guess %q: cannot tell thousand from decimal separator: %w", sample, ErrAmbiguousLocale)
	}

	decimalSep := tokens[len(tokens)-1]
	thousandSep := ""
	for _, token := range tokens {
		if token != decimalSep {
			thousandSep = token
			break
		}
	}

	occurrences := 0
	for _, token := range tokens {
		if token == thousandSep {
			occurrences++
		}
	}

	var system NumberingSystem
	switch occurrences {
	case 1:
		system = Western
	case 2:
		system = Indian
	default:
		return Locale{}, fmt.Errorf("guess %q: cannot confirm grouping system: %w", sample, ErrAmbiguousLocale)
	}

	decimals := 0
	for i := len(body) - 1; i >= 0 && isDigit(body[i]); i-- {
		decimals++
	}

	return Locale{
		Decimals:          Exact(decimals),
		ThousandSeparator: thousandSep,
		DecimalSeparator:  decimalSep,
		NegativePrefix:    prefix,
		NegativeSuffix:    suffix,
		System:            system,
	}, nil
}

// separatorTokens collects the maximal non-digit runs between digits, in
// order of appearance.
func separatorTokens(body string) []string {
	var tokens []string
	for i := 0; i < len(body); {
		if isDigit(body[i]) {
			i++
			continue
		}
		j := i
		for j < len(body) && !isDigit(body[j]) {
			j++
		}
		tokens = append(tokens, body[i:j])
		i = j
	}
	return tokens
}

func allIdentical(tokens []string) bool {
	for _, token := range tokens[1:] {
		if token != tokens[0] {
			return false
		}
	}
	return true
}
