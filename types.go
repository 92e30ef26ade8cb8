package numfmt

// NumberingSystem selects the digit-grouping rule family.
type NumberingSystem string

const (
	// Western groups integer digits in threes: 1,234,567.
	Western NumberingSystem = "western"
	// Indian keeps the rightmost three digits together and groups the rest
	// in twos: 12,34,567.
	Indian NumberingSystem = "indian"
)

// Category classifies a number by its displayed, post-rounding form.
type Category string

const (
	Positive Category = "positive"
	Zero     Category = "zero"
	Negative Category = "negative"
)

// Locale bundles the separators, affixes, decimal-count policy, and
// numbering system used to format and parse numbers. Separators and affixes
// are plain strings and may be empty; an empty affix means no affix. The
// zero value formats with no separators, Min(0) decimals, and Western
// grouping.
type Locale struct {
	Decimals          Decimals
	ThousandSeparator string
	DecimalSeparator  string
	NegativePrefix    string
	NegativeSuffix    string
	PositivePrefix    string
	PositiveSuffix    string
	ZeroPrefix        string
	ZeroSuffix        string
	System            NumberingSystem
}

// FormattedNumber is the intermediate Decompose produces: the original value
// broken into integer digit groups (most significant first), the resolved
// fractional digits, and the affixes selected for its category.
type FormattedNumber struct {
	Value    float64
	Groups   []string
	Decimals string
	Prefix   string
	Suffix   string
}
