package rial

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
)

// Unit type represents a denomination of the Iranian currency system.
// The zero value is [IRR], the old rial.
//
// Unit is implemented as an integer index into an in-memory array that
// stores the denomination's code, Persian name, and value in old rials.
// This design ensures safe concurrency for multiple goroutines accessing
// the same Unit value.
//
// When persisting a unit value, use the alphabetic code returned by the
// [Unit.Code] method rather than the integer index, as the mapping between
// index and denomination may change in future versions.
type Unit uint8

// Denominations, ordered by introduction: the old rial, the redenominated
// toman worth 10,000 rials, and its sub-unit the qiran worth 100 rials.
const (
	IRR Unit = iota
	TMN
	QRN
)

var errInvalidUnit = errors.New("invalid unit")

var unitData = [...]struct {
	code    string
	persian string
	factor  int64 // value in old rials
}{
	IRR: {"IRR", "ریال", 1},
	TMN: {"TMN", "تومان", 10_000},
	QRN: {"QRN", "قران", 100},
}

var unitLookup = map[string]Unit{
	"IRR":   IRR,
	"RIAL":  IRR,
	"ریال":  IRR,
	"TMN":   TMN,
	"TOMAN": TMN,
	"تومان": TMN,
	"QRN":   QRN,
	"QIRAN": QRN,
	"قران":  QRN,
}

// ParseUnit converts a string to a unit.
// The input string must be a code, an English name, or a Persian name of
// a denomination, in any letter case:
//
//	IRR
//	rial
//	تومان
//
// ParseUnit returns an error if the string does not represent a valid unit.
func ParseUnit(unit string) (Unit, error) {
	u, ok := unitLookup[strings.ToUpper(unit)]
	if !ok {
		return IRR, errInvalidUnit
	}
	return u, nil
}

// MustParseUnit is like [ParseUnit] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding units.
func MustParseUnit(unit string) Unit {
	u, err := ParseUnit(unit)
	if err != nil {
		panic(fmt.Sprintf("ParseUnit(%q) failed: %v", unit, err))
	}
	return u
}

// Code returns the 3-letter code of the unit.
func (u Unit) Code() string {
	return unitData[u].code
}

// PersianName returns the Persian name of the unit.
func (u Unit) PersianName() string {
	return unitData[u].persian
}

// Factor returns the value of one unit expressed in old rials.
func (u Unit) Factor() int64 {
	return unitData[u].factor
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the Unit value.
// See also method [Unit.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (u Unit) String() string {
	return u.Code()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseUnit].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (u *Unit) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*u, err = ParseUnit(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", IRR, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a 3-letter code.
// See also method [Unit.Code].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (u Unit) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 5)
	text = append(text, '"')
	text = append(text, u.Code()...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseUnit].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (u *Unit) UnmarshalText(text []byte) error {
	var err error
	*u, err = ParseUnit(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", IRR, err)
	}
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns a 3-letter code.
// See also method [Unit.Code].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.Code()), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (u *Unit) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*u, err = ParseUnit(value)
	case []byte:
		*u, err = ParseUnit(string(value))
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, IRR, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (u Unit) Value() (driver.Value, error) {
	return u.Code(), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description |
//	| ---------- | ------- | ----------- |
//	| %c, %s, %v | TMN     | Unit        |
//	| %q         | "TMN"   | Quoted unit |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (u Unit) Format(state fmt.State, verb rune) {
	code := u.Code()

	// Opening and closing quotes
	if verb == 'q' || verb == 'Q' {
		code = "\"" + code + "\""
	}

	// Calculating padding
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > len(code) {
		if state.Flag('-') {
			tspaces = w - len(code)
		} else {
			lspaces = w - len(code)
		}
	}

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write([]byte(strings.Repeat(" ", lspaces)))
		state.Write([]byte(code))
		state.Write([]byte(strings.Repeat(" ", tspaces)))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(rial.Unit="))
		state.Write([]byte(code))
		state.Write([]byte(")"))
	}
}
