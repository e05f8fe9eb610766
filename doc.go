/*
Package rial implements exact conversions between the Iranian rial and its
redenominated successor, the new toman, together with locale-aware number
formatting and Persian numeral-to-words rendering.

# Features

  - Immutable conversion values, ensuring safe usage across multiple goroutines
  - Exact arbitrary-precision arithmetic with no floating point anywhere
  - Forgiving parsers that extract digits from mixed Persian, Arabic-Indic,
    and ASCII text and never fail on partial input
  - Thousands grouping and digit localization for Persian and Latin scripts
  - Rendering of arbitrarily large integers as Persian words

# Redenomination

One new toman equals 10,000 old rials, and one qiran, the toman's sub-unit,
equals 100 old rials (100 qirans per toman). Converting rials to tomans
truncates: the last two decimal digits of the rial amount carry no qiran
value and are discarded, never rounded. Converting back is exact, so a
round trip restores the original rial amount only when those two digits
were zero.

# Representation

The package consists of two main types: Conversion and Unit.
A Conversion holds the canonical old-rial amount as an arbitrary-precision
integer and derives the toman and qiran parts on demand, so the
redenomination identity holds by construction.
The Unit type represents a denomination and is implemented as an integer
index into an in-memory array containing its code, Persian name, and value
in old rials.

# Parsing

All amount parsers are total: text that contains no usable digits yields
zero rather than an error. Live keystroke-by-keystroke input therefore
always produces a stable value and never a failure state. Digits written in
the Persian (۰–۹) or Arabic-Indic (٠–٩) scripts are accepted anywhere ASCII
digits are.

# Words

ToWords renders any integer, regardless of magnitude, as a Persian phrase
using triplet decomposition and scale words up to دسیلیون (10^33); larger
magnitudes compose recursively, so the function remains total.
*/
package rial
