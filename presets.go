package numfmt

// Preset locales. Each is a plain Locale value with no special code paths;
// copy one and adjust fields to derive a variant.
//
// The default negative prefix is the Unicode minus sign U+2212, not ASCII
// hyphen-minus. The exact character is part of the output contract.
var (
	// BaseLocale has no thousand separator and shows only the fractional
	// digits the value itself carries.
	BaseLocale = Locale{
		Decimals:         Min(0),
		DecimalSeparator: ".",
		NegativePrefix:   "−",
		System:           Western,
	}

	// USLocale formats 1234567.89 as "1,234,567.89".
	USLocale = Locale{
		Decimals:          Exact(2),
		ThousandSeparator: ",",
		DecimalSeparator:  ".",
		NegativePrefix:    "−",
		System:            Western,
	}

	// FrenchLocale formats 1234567.89 as "1 234 567,890" with narrow
	// no-break spaces between groups.
	FrenchLocale = Locale{
		Decimals:          Exact(3),
		ThousandSeparator: " ",
		DecimalSeparator:  ",",
		NegativePrefix:    "−",
		System:            Western,
	}

	// SpanishLocale formats 1234567.89 as "1.234.567,890".
	SpanishLocale = Locale{
		Decimals:          Exact(3),
		ThousandSeparator: ".",
		DecimalSeparator:  ",",
		NegativePrefix:    "−",
		System:            Western,
	}

	// IndianLocale formats 12345678.9 as "1,23,45,678.90".
	IndianLocale = Locale{
		Decimals:          Exact(2),
		ThousandSeparator: ",",
		DecimalSeparator:  ".",
		NegativePrefix:    "−",
		System:            Indian,
	}
)
