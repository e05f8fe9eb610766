package rial

import (
	"math/big"
	"strings"

	"golang.org/x/text/language"
)

// Group separators per numbering system. Persian locales use the Arabic
// thousands separator (U+066C); everything else falls back to a comma.
const (
	latinSeparator   = ","
	persianSeparator = "٬"
)

var persianLang, _ = language.Persian.Base()

// usesPersianDigits reports whether the locale renders numbers in the
// Extended Arabic-Indic digit script.
func usesPersianDigits(locale language.Tag) bool {
	b, _ := locale.Base()
	return b == persianLang
}

// GroupSeparator returns the thousands separator glyph of the locale.
func GroupSeparator(locale language.Tag) string {
	if usesPersianDigits(locale) {
		return persianSeparator
	}
	return latinSeparator
}

// LocalizeDigits rewrites every ASCII digit in an already-formatted string
// to the digit glyphs the locale requires. All other characters, including
// separators, signs, and words, pass through unchanged. Locales without
// their own digit script return s as is.
func LocalizeDigits(s string, locale language.Tag) string {
	if !usesPersianDigits(locale) {
		return s
	}
	return mapDigits(s, &persianDigits)
}

// FormatLocalized renders n with thousands grouping, a leading sign for
// negative values, and the digit script of the locale. A nil n renders as
// the localized zero.
//
// For example, -1234567 formats as "-1,234,567" under [language.English]
// and as "-۱٬۲۳۴٬۵۶۷" under [language.Persian].
func FormatLocalized(n *big.Int, locale language.Tag) string {
	if n == nil {
		return LocalizeDigits("0", locale)
	}
	digits := n.String()
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	s := GroupDigits(digits, GroupSeparator(locale))
	if neg {
		s = "-" + s
	}
	return LocalizeDigits(s, locale)
}
