package bigint

import (
	"github.com/agbru/magia/internal/magia"
	"github.com/agbru/magia/internal/sign"
)

// ToBytes serializes v into exactly width bytes (§4.1.10). If width <= 0,
// the minimal width is computed: ceil((bitLen+1)/8) for two's complement
// (the extra bit reserves room for the sign) except for negative powers
// of two, which take ceil(bitLen/8), or ceil(bitLen/8) for
// sign-magnitude, floor-clamped to 1 byte.
func (v SignedInt) ToBytes(width int, end magia.Endianness, enc magia.Encoding) []byte {
	if width <= 0 {
		width = v.minimalWidth(enc)
	}
	return magia.ToBinaryBytes(v.neg.IsNegative(), v.abs, width, end, enc)
}

func (v SignedInt) minimalWidth(enc magia.Encoding) int {
	bitLen := magia.BitLen(v.abs)
	var bits int
	switch {
	case enc != magia.TwosComplement:
		bits = bitLen
	case v.neg.IsNegative() && magia.PopCount(v.abs) == 1:
		// A negative power of two (e.g. -128) sits exactly on the
		// lower boundary of an n-bit two's-complement range, so it
		// needs no extra sign bit beyond the magnitude's own width.
		bits = bitLen
	default:
		bits = bitLen + 1
	}
	width := (bits + 7) / 8
	if width < 1 {
		width = 1
	}
	return width
}

// FromBytes parses data back into a SignedInt.
func FromBytes(data []byte, end magia.Endianness, enc magia.Encoding) SignedInt {
	neg, abs := magia.FromBinaryBytes(data, end, enc)
	return normalized(sign.Of(neg), abs)
}
