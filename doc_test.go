package rial_test

import (
	"fmt"
	"math/big"

	"golang.org/x/text/language"

	rial "github.com/devyari1985/rialconverter"
)

// In this example, a price typed with Persian digits and grouping is
// converted to the redenominated toman and rendered back for display.
func Example_liveEntry() {
	c := rial.ParseConversion("۵۵۳٬۱۴۰ ریال")

	fmt.Println(c.Localized(rial.TMN, language.Persian), rial.TMN.PersianName())
	fmt.Println(c.Words(rial.TMN))
	fmt.Println(c.Qiran(), "qiran")
	// Output:
	// ۵۵ تومان
	// پنجاه و پنج
	// 31 qiran
}

func ExampleOldToNew() {
	toman, qiran := rial.OldToNew(big.NewInt(553140))
	fmt.Println(toman, qiran)
	// Output: 55 31
}

func ExampleNewToOld() {
	old := rial.NewToOld(big.NewInt(55), 40)
	fmt.Println(old)
	// Output: 554000
}

func ExampleOldToman() {
	fmt.Println(rial.OldToman(big.NewInt(553140)))
	// Output: 55314
}

func ExampleToWords() {
	fmt.Println(rial.ToWords(big.NewInt(1234)))
	fmt.Println(rial.ToWords(big.NewInt(0)))
	// Output:
	// یک هزار و دویست و سی و چهار
	// صفر
}

func ExampleNormalizeDigits() {
	fmt.Println(rial.NormalizeDigits("۵۵ تومان و ٣١ قران"))
	// Output: 5531
}

func ExampleGroupDigits() {
	fmt.Println(rial.GroupDigits("553140", ","))
	// Output: 553,140
}

func ExampleFormatLocalized() {
	n := big.NewInt(-1234567)
	fmt.Println(rial.FormatLocalized(n, language.English))
	fmt.Println(rial.FormatLocalized(n, language.Persian))
	// Output:
	// -1,234,567
	// -۱٬۲۳۴٬۵۶۷
}

func ExampleParseTomanText() {
	fmt.Println(rial.ParseTomanText("55.31"))
	// Output: 553100
}

func ExampleConversion_TomanDecimal() {
	c := rial.NewConversion(big.NewInt(553140))
	if d, ok := c.TomanDecimal(); ok {
		fmt.Println(d)
	}
	// Output: 55.31
}

func ExampleParseUnit() {
	u, err := rial.ParseUnit("toman")
	if err != nil {
		panic(err)
	}
	fmt.Println(u, u.Factor())
	// Output: TMN 10000
}
