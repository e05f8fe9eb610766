package rial

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// sampleAmounts returns deterministic nonnegative amounts spanning edge
// cases and magnitudes well beyond int64.
func sampleAmounts(t *testing.T) []*big.Int {
	t.Helper()
	amounts := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(99),
		big.NewInt(100),
		big.NewInt(9999),
		big.NewInt(10000),
		big.NewInt(553140),
	}
	rng := rand.New(rand.NewSource(1))
	for digits := 1; digits <= 40; digits++ {
		n := new(big.Int)
		for i := 0; i < digits; i++ {
			n.Mul(n, big.NewInt(10))
			n.Add(n, big.NewInt(rng.Int63n(10)))
		}
		amounts = append(amounts, n)
	}
	return amounts
}

func TestProperty_ConversionBounds(t *testing.T) {
	// toman*10000 + qiran*100 <= x < toman*10000 + qiran*100 + 100
	for _, x := range sampleAmounts(t) {
		toman, qiran := OldToNew(x)
		require.GreaterOrEqual(t, qiran, 0)
		require.LessOrEqual(t, qiran, 99)

		lo := NewToOld(toman, qiran)
		hi := new(big.Int).Add(lo, big.NewInt(100))
		assert.LessOrEqual(t, lo.Cmp(x), 0, "NewToOld(OldToNew(%v)) = %v exceeds the original", x, lo)
		assert.Negative(t, x.Cmp(hi), "%v not within 100 rials of %v", x, lo)
	}
}

func TestProperty_GroupExtractRoundTrip(t *testing.T) {
	for _, x := range sampleAmounts(t) {
		digits := x.String()
		grouped := GroupDigits(digits, ",")
		assert.Equal(t, digits, NormalizeDigits(grouped), "grouping %v did not round-trip", x)
	}
}

func TestProperty_LocalizedExtractRoundTrip(t *testing.T) {
	// Persian-script formatting normalizes back to the canonical digits.
	for _, x := range sampleAmounts(t) {
		formatted := FormatLocalized(x, language.Persian)
		assert.Equal(t, x.String(), NormalizeDigits(formatted), "formatting %v did not round-trip", x)
	}
}

func TestProperty_NormalizeIdempotent(t *testing.T) {
	for _, x := range sampleAmounts(t) {
		once := NormalizeDigits(FormatLocalized(x, language.Persian))
		assert.Equal(t, once, NormalizeDigits(once))
	}
}

func TestProperty_WordsNeverEmpty(t *testing.T) {
	for _, x := range sampleAmounts(t) {
		assert.NotEmpty(t, ToWords(x), "ToWords(%v) is empty", x)
		neg := new(big.Int).Neg(x)
		assert.NotEmpty(t, ToWords(neg), "ToWords(%v) is empty", neg)
	}
}
