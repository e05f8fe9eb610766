package rial

import (
	"fmt"
	"math/big"
	"strconv"

	"golang.org/x/text/language"
)

// Conversion represents an amount of Iranian currency across the
// redenomination. Its zero value corresponds to zero rials.
// Conversion is designed to be safe for concurrent use by multiple goroutines.
//
// The old-rial amount is the canonical representation; the toman and qiran
// parts are derived on demand, so the identity
//
//	old = toman*10000 + qiran*100 + old mod 100
//
// holds for every value by construction.
type Conversion struct {
	old big.Int // canonical amount in old rials
}

// NewConversion returns a conversion holding the given old-rial amount.
// The amount is copied, so later mutation of old does not affect the result.
// Monetary amounts are nonnegative, so a nil or negative old yields the
// zero conversion.
func NewConversion(old *big.Int) Conversion {
	var c Conversion
	if old != nil && old.Sign() > 0 {
		c.old.Set(old)
	}
	return c
}

// ConversionFromToman returns a conversion holding toman tomans and qiran
// qirans. The qiran part is clamped to [0, 99].
// See also constructor [NewConversion].
func ConversionFromToman(toman *big.Int, qiran int) Conversion {
	return NewConversion(NewToOld(toman, qiran))
}

// ParseConversion converts free text holding an old-rial amount to a
// conversion. Like [ParseOldAmount], it extracts digits in any accepted
// script and degrades to the zero conversion when no digits are present.
func ParseConversion(text string) Conversion {
	return NewConversion(ParseOldAmount(text))
}

// Old returns the amount in old rials.
// The result is a fresh copy and never aliases internal state.
func (c Conversion) Old() *big.Int {
	return new(big.Int).Set(&c.old)
}

// Toman returns the amount in new tomans, truncating as defined by [OldToNew].
func (c Conversion) Toman() *big.Int {
	toman, _ := OldToNew(&c.old)
	return toman
}

// Qiran returns the qiran part of the amount, in [0, 99].
func (c Conversion) Qiran() int {
	_, qiran := OldToNew(&c.old)
	return qiran
}

// OldToman returns the amount in old tomans, the colloquial 10-rial unit.
// See also function [OldToman].
func (c Conversion) OldToman() *big.Int {
	return OldToman(&c.old)
}

// amount returns the amount expressed in the given unit.
// For [QRN] this is the qiran part of the toman representation, not the
// whole amount divided by 100.
func (c Conversion) amount(u Unit) *big.Int {
	switch u {
	case TMN:
		return c.Toman()
	case QRN:
		return big.NewInt(int64(c.Qiran()))
	default:
		return c.Old()
	}
}

// IsZero returns:
//
//	true  if c = 0
//	false otherwise
func (c Conversion) IsZero() bool {
	return c.old.Sign() == 0
}

// Equal returns true if both conversions hold the same old-rial amount.
func (c Conversion) Equal(d Conversion) bool {
	return c.old.Cmp(&d.old) == 0
}

// Words renders the amount expressed in the given unit as a Persian phrase.
// The qiran part is at most two digits, so its rendering never carries a
// scale word.
// See also function [ToWords].
func (c Conversion) Words(u Unit) string {
	return ToWords(c.amount(u))
}

// Localized renders the amount expressed in the given unit with the
// grouping and digit script of the locale.
// See also function [FormatLocalized].
func (c Conversion) Localized(u Unit, locale language.Tag) string {
	return FormatLocalized(c.amount(u), locale)
}

// String implements the [fmt.Stringer] interface and returns the unit code
// followed by the canonical old-rial amount, for example "IRR 553140".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Conversion) String() string {
	return IRR.Code() + " " + c.old.String()
}

// MarshalJSON implements the [json.Marshaler] interface.
// The rial and toman amounts are encoded as decimal strings since their
// magnitude is unbounded.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Conversion) MarshalJSON() ([]byte, error) {
	toman, qiran := OldToNew(&c.old)
	text := make([]byte, 0, 64)
	text = append(text, `{"rial":"`...)
	text = append(text, c.old.String()...)
	text = append(text, `","toman":"`...)
	text = append(text, toman.String()...)
	text = append(text, `","qiran":`...)
	text = strconv.AppendInt(text, int64(qiran), 10)
	text = append(text, '}')
	return text, nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example      | Description                 |
//	| ------ | ------------ | --------------------------- |
//	| %s, %v | IRR 553140   | Unit code and rial amount   |
//	| %q     | "IRR 553140" | Quoted code and rial amount |
//	| %d     | 553140       | Rial amount                 |
//	| %t     | 55.31        | Toman amount with qirans    |
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Conversion) Format(state fmt.State, verb rune) {
	var out string
	switch verb {
	case 's', 'S', 'v', 'V':
		out = c.String()
	case 'q', 'Q':
		out = "\"" + c.String() + "\""
	case 'd', 'D':
		out = c.old.String()
	case 't', 'T':
		toman, qiran := OldToNew(&c.old)
		out = toman.String() + "." + twoDigits(qiran)
	default:
		//nolint:errcheck
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(rial.Conversion="))
		state.Write([]byte(c.String()))
		state.Write([]byte(")"))
		return
	}
	//nolint:errcheck
	state.Write([]byte(out))
}

// twoDigits formats a qiran value in [0, 99] with a leading zero.
func twoDigits(qiran int) string {
	return string([]byte{byte(qiran/10) + '0', byte(qiran%10) + '0'})
}
