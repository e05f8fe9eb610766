package rial

import "math/big"

// Fixed redenomination factors, in old rials.
var (
	rialsPerToman    = big.NewInt(10_000)
	rialsPerQiran    = big.NewInt(100)
	rialsPerOldToman = big.NewInt(10)
)

// ParseOldAmount converts free text to a nonnegative old-rial amount.
// Digits in any accepted script are extracted first, so partial or mixed
// input such as "۵۵ ریال" parses as 55. Text with no digits yields zero.
func ParseOldAmount(text string) *big.Int {
	return parseAmount(text)
}

// ParseNewAmount converts free text to a nonnegative toman amount.
// It applies the same forgiving digit extraction as [ParseOldAmount].
func ParseNewAmount(text string) *big.Int {
	return parseAmount(text)
}

func parseAmount(text string) *big.Int {
	digits := NormalizeDigits(text)
	if digits == "" {
		return new(big.Int)
	}
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return new(big.Int)
	}
	return n
}

// ParseSubUnit converts free text to a qiran value in [0, 99].
// Only the first two extracted digits are significant: "150" truncates to
// "15" before interpretation. Text with no digits yields zero.
func ParseSubUnit(text string) int {
	digits := NormalizeDigits(text)
	if digits == "" {
		return 0
	}
	if len(digits) > 2 {
		digits = digits[:2]
	}
	n := 0
	for i := 0; i < len(digits); i++ {
		n = n*10 + int(digits[i]-'0')
	}
	return clampSubUnit(n)
}

func clampSubUnit(n int) int {
	if n < 0 {
		return 0
	}
	if n > 99 {
		return 99
	}
	return n
}

// OldToNew converts an old-rial amount to its toman and qiran parts:
//
//	toman = ⌊old / 10000⌋
//	qiran = ⌊(old mod 10000) / 100⌋
//
// The sub-hundred remainder of old carries no qiran value and is discarded,
// so the conversion truncates rather than rounds. A nil old is treated as
// zero. The returned toman value never aliases old.
func OldToNew(old *big.Int) (toman *big.Int, qiran int) {
	if old == nil {
		return new(big.Int), 0
	}
	toman, rem := new(big.Int).QuoRem(old, rialsPerToman, new(big.Int))
	rem.Quo(rem, rialsPerQiran)
	return toman, int(rem.Int64())
}

// NewToOld converts toman and qiran parts back to old rials:
//
//	old = toman*10000 + qiran*100
//
// The result is exact. It equals the amount a prior [OldToNew] started from
// only when that amount's last two decimal digits were zero, since those
// digits are dropped on the way in. The qiran part is clamped to [0, 99]
// and a nil toman is treated as zero.
func NewToOld(toman *big.Int, qiran int) *big.Int {
	old := new(big.Int)
	if toman != nil {
		old.Mul(toman, rialsPerToman)
	}
	sub := big.NewInt(int64(clampSubUnit(qiran)) * 100)
	return old.Add(old, sub)
}

// OldToman converts an old-rial amount to old tomans, the pre-redenomination
// colloquial unit worth 10 rials:
//
//	⌊old / 10⌋
//
// A nil old is treated as zero. The result never aliases old.
func OldToman(old *big.Int) *big.Int {
	if old == nil {
		return new(big.Int)
	}
	return new(big.Int).Quo(old, rialsPerOldToman)
}
