package voxnova

import (
	"strconv"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// selectPluralCategory picks the CLDR plural category for a locale and a
// numeric value, honoring the cardinal/ordinal mode and the fraction
// digits the value will be rendered with.
func selectPluralCategory(locale string, mode PluralMode, value float64, opts NumberOptions) PluralCategory {
	rules := plural.Cardinal
	if mode == PluralOrdinal {
		rules = plural.Ordinal
	}

	tag := language.Make(locale)
	i, v, w, f, t := pluralOperands(value, opts)

	return categoryForForm(rules.MatchPlural(tag, i, v, w, f, t))
}

// pluralOperands derives the CLDR selection operands from the digits the
// value renders with: i integer digits, v/f visible fraction digit count
// and value, w/t the same without trailing zeros.
func pluralOperands(value float64, opts NumberOptions) (i, v, w, f, t int) {
	if value < 0 {
		value = -value
	}

	digits := -1
	if opts.MaxFraction != nil {
		digits = *opts.MaxFraction
	}
	rendered := strconv.FormatFloat(value, 'f', digits, 64)

	intPart := rendered
	fracPart := ""
	if idx := strings.IndexByte(rendered, '.'); idx >= 0 {
		intPart = rendered[:idx]
		fracPart = rendered[idx+1:]
	}
	if opts.MinFraction != nil {
		for len(fracPart) < *opts.MinFraction {
			fracPart += "0"
		}
	}

	trimmed := strings.TrimRight(fracPart, "0")

	i = digitsValue(intPart)
	v = len(fracPart)
	f = digitsValue(fracPart)
	w = len(trimmed)
	t = digitsValue(trimmed)
	return i, v, w, f, t
}

// digitsValue parses a digit run as an int. CLDR conditions only inspect
// small moduli, so overly long runs are truncated to their least
// significant digits instead of overflowing.
func digitsValue(digits string) int {
	const maxDigits = 15
	if len(digits) > maxDigits {
		digits = digits[len(digits)-maxDigits:]
	}
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

func categoryForForm(form plural.Form) PluralCategory {
	switch form {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}
