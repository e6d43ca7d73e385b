package magia

import "github.com/agbru/magia/internal/randsrc"

// RandomWithMaxBitLen returns a uniformly distributed magnitude with bit
// length at most maxBits (§4.1.11). maxBits == 0 always yields zero.
func RandomWithMaxBitLen(src randsrc.Source, maxBits int) Magia {
	if maxBits <= 0 {
		return nil
	}
	nLimbs := (maxBits + wordBits - 1) / wordBits
	z := make(Magia, nLimbs)
	for i := range z {
		z[i] = Word(src.Uint64())
	}
	if excess := nLimbs*wordBits - maxBits; excess > 0 {
		mask := ^Word(0) >> uint(excess)
		z[nLimbs-1] &= mask
	}
	return Norm(z)
}

// RandomWithBitLen returns a uniformly distributed magnitude whose bit
// length is exactly n (the top bit is forced set), for n >= 1.
func RandomWithBitLen(src randsrc.Source, n int) Magia {
	if n <= 0 {
		return nil
	}
	z := RandomWithMaxBitLen(src, n)
	z = Grow(z, (n+wordBits-1)/wordBits)
	topLimb := (n - 1) / wordBits
	topBit := uint((n - 1) % wordBits)
	z[topLimb] |= 1 << topBit
	return Norm(z)
}

// RandomWithRandomBitLen returns a magnitude whose bit length is itself
// drawn uniformly from [0, maxBits] before generating that many random
// bits, rather than always spending the full maxBits budget the way
// RandomWithMaxBitLen's rejection-free top-down fill does.
func RandomWithRandomBitLen(src randsrc.Source, maxBits int) Magia {
	if maxBits < 0 {
		panic("magia: RandomWithRandomBitLen requires a non-negative bound")
	}
	n := int(src.Uint64() % uint64(maxBits+1))
	return RandomWithMaxBitLen(src, n)
}

// RandomBelow returns a uniformly distributed magnitude in [0, bound)
// using rejection sampling against the smallest bit length that covers
// bound, so the distribution stays uniform instead of biased toward low
// values the way a naive modulo would produce. Precondition: bound != 0.
func RandomBelow(src randsrc.Source, bound Magia) Magia {
	bound = Norm(bound)
	bits := BitLen(bound)
	if bits == 0 {
		panic("magia: RandomBelow requires a nonzero bound")
	}
	for {
		candidate := RandomWithMaxBitLen(src, bits)
		if Cmp(candidate, bound) < 0 {
			return candidate
		}
	}
}
