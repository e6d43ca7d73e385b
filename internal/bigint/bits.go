package bigint

import (
	"github.com/agbru/magia/internal/magia"
	"github.com/agbru/magia/internal/sign"
)

// And, Or, Xor operate on magnitudes only (§4.2) and always return a
// non-negative result; callers needing signed bitwise semantics should
// convert through two's complement bytes first.
func (v SignedInt) And(w SignedInt) SignedInt {
	return normalized(sign.NonNegative, magia.And(v.abs, w.abs))
}

func (v SignedInt) Or(w SignedInt) SignedInt {
	return normalized(sign.NonNegative, magia.Or(v.abs, w.abs))
}

func (v SignedInt) Xor(w SignedInt) SignedInt {
	return normalized(sign.NonNegative, magia.Xor(v.abs, w.abs))
}

// BitLen returns the number of bits required to represent |v|.
func (v SignedInt) BitLen() int { return magia.BitLen(v.abs) }

// BitLenBigIntStyle returns the number of bits in v's minimal two's
// complement representation, excluding the sign bit, matching Java's
// BigInteger.bitLength(): BitLenBigIntStyle(-1) == 0,
// BitLenBigIntStyle(-128) == 7.
func (v SignedInt) BitLenBigIntStyle() int {
	return magia.BitLenBigIntStyle(v.neg.IsNegative(), v.abs)
}

// ShiftLeft returns v << n.
func (v SignedInt) ShiftLeft(n int) SignedInt {
	return normalized(v.neg, magia.ShiftLeft(v.abs, n))
}

// ShiftRight returns v >> n, rounding toward negative infinity for
// negative v: a two's-complement-style -1 correction is applied when any
// of the n discarded low bits were set (§4.2, §8's "-5 >> 1 == -3").
func (v SignedInt) ShiftRight(n int) SignedInt {
	shifted := magia.ShiftRight(v.abs, n)
	if !v.neg.IsNegative() {
		return normalized(sign.NonNegative, shifted)
	}
	if magia.TestAnyBitInLowerN(v.abs, n) {
		shifted = magia.Add(shifted, magia.Magia{1})
	}
	return normalized(sign.Negative, shifted)
}

// TestBit reports whether bit i of |v| is set.
func (v SignedInt) TestBit(i int) bool { return magia.TestBit(v.abs, i) }
