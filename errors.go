package numfmt

import "errors"

// ErrInvalidValue indicates a non-finite value was passed to Format.
var ErrInvalidValue = errors.New("numfmt: invalid value")

// ErrParse indicates input that does not reduce to a number under the locale.
var ErrParse = errors.New("numfmt: unparsable input")

// ErrAmbiguousLocale indicates a sample GuessLocale cannot decide on.
var ErrAmbiguousLocale = errors.New("numfmt: ambiguous locale sample")

// ErrUnknownLocale indicates a locale code with no registered configuration.
var ErrUnknownLocale = errors.New("numfmt: unknown locale")
