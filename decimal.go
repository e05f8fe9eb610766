package rial

import (
	"math"
	"math/big"
	"strings"

	"github.com/govalues/decimal"
)

// maxTomanCoef is the largest toman amount whose scale-2 decimal
// coefficient still fits an int64.
const maxTomanCoef = math.MaxInt64/100 - 1

// ParseTomanText converts decimal toman text, such as "55.31" or "۵۵٫۳۱",
// to the equivalent old-rial amount. The whole part counts tomans and the
// fraction, truncated to two digits, counts qirans.
//
// Like the integer parsers, ParseTomanText is forgiving: digits are
// extracted from mixed-script text first, input without digits yields zero,
// and amounts beyond the decimal range degrade to exact integer parsing of
// the two parts instead of failing.
func ParseTomanText(text string) *big.Int {
	s := normalizeDecimalText(text)
	if s == "" {
		return new(big.Int)
	}
	d, err := decimal.Parse(s)
	if err != nil {
		// Beyond the 19-digit decimal range; split the text exactly.
		whole, frac, _ := strings.Cut(s, ".")
		return NewToOld(ParseNewAmount(whole), parseQiranFraction(frac))
	}
	toman, qiran, ok := d.Trunc(2).Int64(2)
	if !ok {
		whole, frac, _ := strings.Cut(s, ".")
		return NewToOld(ParseNewAmount(whole), parseQiranFraction(frac))
	}
	return NewToOld(big.NewInt(toman), int(qiran))
}

// parseQiranFraction interprets the fractional digits of a toman amount as
// qirans: one digit counts tenths of a toman, further digits are truncated.
func parseQiranFraction(frac string) int {
	if frac == "" {
		return 0
	}
	if len(frac) == 1 {
		return int(frac[0]-'0') * 10
	}
	return ParseSubUnit(frac)
}

// TomanDecimal returns the conversion as a decimal toman amount with two
// fractional digits holding the qiran part, for example 55.31 for 553140
// rials. It returns false if the amount does not fit the decimal range.
// See also constructor [ParseTomanText].
func (c Conversion) TomanDecimal() (decimal.Decimal, bool) {
	toman, qiran := OldToNew(&c.old)
	if !toman.IsInt64() {
		return decimal.Decimal{}, false
	}
	t := toman.Int64()
	if t > maxTomanCoef || t < 0 {
		return decimal.Decimal{}, false
	}
	d, err := decimal.New(t*100+int64(qiran), 2)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// normalizeDecimalText extracts digits in any accepted script together with
// the first decimal separator, accepting both the ASCII point and the
// Arabic decimal separator (U+066B). A leading separator gains a zero and
// a trailing one is dropped, keeping the result parseable.
func normalizeDecimalText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	seenSep := false
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			b.WriteByte(byte(r))
		case r >= persianZero && r <= persianNine:
			b.WriteByte(byte(r-persianZero) + '0')
		case r >= arabicZero && r <= arabicNine:
			b.WriteByte(byte(r-arabicZero) + '0')
		case (r == '.' || r == '٫') && !seenSep:
			seenSep = true
			if b.Len() == 0 {
				b.WriteByte('0')
			}
			b.WriteByte('.')
		}
	}
	return strings.TrimSuffix(b.String(), ".")
}
