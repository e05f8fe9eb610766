package rial

import (
	"math/big"
	"strings"
)

//go:generate go run scripts/scale/codegen.go

const (
	wordZero     = "صفر"
	wordNegative = "منفی"
	sepAnd       = " و "

	growWords = 64 // estimated bytes for a typical rendering
)

var onesWords = [10]string{
	"",
	"یک",
	"دو",
	"سه",
	"چهار",
	"پنج",
	"شش",
	"هفت",
	"هشت",
	"نه",
}

// teensWords is indexed by value-11 and holds the irregular forms 11–19,
// which override the composed tens-and-ones reading.
var teensWords = [9]string{
	"یازده",
	"دوازده",
	"سیزده",
	"چهارده",
	"پانزده",
	"شانزده",
	"هفده",
	"هجده",
	"نوزده",
}

// tensWords is indexed by the tens digit; index 0 is unused.
var tensWords = [10]string{
	"",
	"ده",
	"بیست",
	"سی",
	"چهل",
	"پنجاه",
	"شصت",
	"هفتاد",
	"هشتاد",
	"نود",
}

// hundredsWords is indexed by the hundreds digit; index 0 is unused.
var hundredsWords = [10]string{
	"",
	"صد",
	"دویست",
	"سیصد",
	"چهارصد",
	"پانصد",
	"ششصد",
	"هفتصد",
	"هشتصد",
	"نهصد",
}

var (
	bigThousand = big.NewInt(1000)

	// scaleLimit is 1000 raised to the largest scale-word index. Magnitudes
	// at or above it are composed recursively in writeWords.
	scaleLimit = new(big.Int).Exp(bigThousand, big.NewInt(int64(len(scaleWords)-1)), nil)
)

// ToWords renders n as a Persian cardinal phrase.
// Zero renders as صفر and negative values prefix منفی to the rendering of
// the absolute value. A nil n is treated as zero, so the result is never
// empty.
//
// The value is decomposed into base-1000 triplets; each nonzero triplet is
// rendered with its scale word (هزار, میلیون, …) and zero triplets are
// skipped. The scale table ends at دسیلیون (10^33); for larger magnitudes
// the excess high-order part is itself rendered in words before the largest
// scale word, so 10^36 reads «یک هزار دسیلیون» and ToWords stays total.
func ToWords(n *big.Int) string {
	if n == nil || n.Sign() == 0 {
		return wordZero
	}
	var b strings.Builder
	b.Grow(growWords)
	abs := n
	if n.Sign() < 0 {
		b.WriteString(wordNegative)
		b.WriteByte(' ')
		abs = new(big.Int).Neg(n)
	}
	writeWords(&b, abs)
	return b.String()
}

// writeWords writes the cardinal rendering of abs into b.
// Callers must ensure abs > 0.
func writeWords(b *strings.Builder, abs *big.Int) {
	if abs.Cmp(scaleLimit) >= 0 {
		q, r := new(big.Int).QuoRem(abs, scaleLimit, new(big.Int))
		writeWords(b, q)
		b.WriteByte(' ')
		b.WriteString(scaleWords[len(scaleWords)-1])
		if r.Sign() > 0 {
			b.WriteString(sepAnd)
			writeWords(b, r)
		}
		return
	}

	// Base-1000 triplets, least-significant first.
	var triplets [16]int
	count := 0
	rem := new(big.Int).Set(abs)
	mod := new(big.Int)
	for rem.Sign() > 0 {
		rem.QuoRem(rem, bigThousand, mod)
		triplets[count] = int(mod.Int64())
		count++
	}

	wrote := false
	for i := count - 1; i >= 0; i-- {
		if triplets[i] == 0 {
			continue
		}
		if wrote {
			b.WriteString(sepAnd)
		}
		writeTriplet(b, triplets[i])
		if i > 0 {
			b.WriteByte(' ')
			b.WriteString(scaleWords[i])
		}
		wrote = true
	}
}

// writeTriplet writes a number in [1, 999] as Persian text into b.
// The irregular forms 11–19 take precedence over tens-and-ones composition.
func writeTriplet(b *strings.Builder, n int) {
	h := n / 100
	r := n % 100
	if h > 0 {
		b.WriteString(hundredsWords[h])
		if r == 0 {
			return
		}
		b.WriteString(sepAnd)
	}
	if r >= 11 && r <= 19 {
		b.WriteString(teensWords[r-11])
		return
	}
	t, o := r/10, r%10
	if t > 0 {
		b.WriteString(tensWords[t])
		if o > 0 {
			b.WriteString(sepAnd)
		}
	}
	if o > 0 {
		b.WriteString(onesWords[o])
	}
}
