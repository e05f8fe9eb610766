package rial

import "strings"

// Digit glyph runs for the scripts the converter accepts.
// Persian uses Extended Arabic-Indic digits, Arabic uses Arabic-Indic digits.
const (
	persianZero = '۰' // ۰
	persianNine = '۹' // ۹
	arabicZero  = '٠' // ٠
	arabicNine  = '٩' // ٩
)

// NormalizeDigits extracts every digit found in text, translating Persian
// and Arabic-Indic digits to their ASCII equivalents, and drops all other
// characters. Text with no digits yields an empty string.
//
// NormalizeDigits is idempotent: applying it to its own output returns the
// output unchanged.
func NormalizeDigits(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			b.WriteByte(byte(r))
		case r >= persianZero && r <= persianNine:
			b.WriteByte(byte(r-persianZero) + '0')
		case r >= arabicZero && r <= arabicNine:
			b.WriteByte(byte(r-arabicZero) + '0')
		}
	}
	return b.String()
}

// GroupDigits inserts sep every three digits of an unsigned ASCII digit
// string, counting from the least-significant digit. The separator is never
// placed before the leading digit.
//
// Leading zeros are removed first, so the zero-value digit string (and the
// empty string) formats as "0", never as an empty result.
// GroupDigits is purely syntactic and performs no sign handling.
func GroupDigits(digits, sep string) string {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "0"
	}
	if len(digits) <= 3 || sep == "" {
		return digits
	}
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	var b strings.Builder
	b.Grow(len(digits) + (len(digits)-1)/3*len(sep))
	b.WriteString(digits[:head])
	for pos := head; pos < len(digits); pos += 3 {
		b.WriteString(sep)
		b.WriteString(digits[pos : pos+3])
	}
	return b.String()
}

// mapDigits rewrites every ASCII digit in s to the glyph at the same index
// of table, leaving all other characters untouched.
func mapDigits(s string, table *[10]rune) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(table[r-'0'])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var persianDigits = [10]rune{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'}
