package magia

import "math"

// Isqrt returns floor(sqrt(x)) (§4.4). Values whose bit length fits
// within a float64's 53-bit mantissa are seeded directly from
// math.Sqrt; larger values are seeded from the top 53 bits and refined
// with a floor-aware Newton iteration, since a naive Newton step from a
// poor seed can take many rounds to converge.
func Isqrt(x Magia) Magia {
	x = Norm(x)
	if len(x) == 0 {
		return nil
	}
	if BitLen(x) <= 53 {
		return isqrtSmall(x)
	}
	return isqrtLarge(x)
}

func toFloat64(x Magia) float64 {
	var f float64
	for i := len(x) - 1; i >= 0; i-- {
		f = f*4294967296.0 + float64(x[i])
	}
	return f
}

func isqrtSmall(x Magia) Magia {
	f := toFloat64(x)
	guess := uint64(math.Sqrt(f))
	g := wordsFromU64(guess)
	// math.Sqrt can be off by one at the edges of the exactly
	// representable range; nudge to the true floor.
	for Cmp(Mul(g, g), x) > 0 {
		g = Sub(g, Magia{1})
	}
	for Cmp(Mul(Add(g, Magia{1}), Add(g, Magia{1})), x) <= 0 {
		g = Add(g, Magia{1})
	}
	return Norm(g)
}

func wordsFromU64(v uint64) Magia {
	if v == 0 {
		return nil
	}
	if v>>32 == 0 {
		return Magia{Word(v)}
	}
	return Magia{Word(v), Word(v >> 32)}
}

// isqrtLarge runs Newton's method x_{n+1} = floor((x_n + floor(a/x_n))/2)
// from a seed built out of a's top bits: the 52- or 53-bit window
// starting at an even bit index t is read out, increased by 2, and its
// ceiling square root is shifted left by t/2. The +2 and the ceiling put
// the seed at or above the true root, so the iteration decreases
// monotonically until it settles.
func isqrtLarge(a Magia) Magia {
	topIndex := (BitLen(a) - 52) &^ 1
	top := ExtractU64AtBitIndex(a, topIndex) + 2
	topSqrt := uint64(math.Ceil(math.Sqrt(float64(top))))
	for topSqrt*topSqrt < top {
		topSqrt++
	}
	x := ShiftLeft(wordsFromU64(topSqrt), topIndex/2)

	for {
		q, _ := DivMod(a, x)
		next := floorHalf(Add(x, q))
		if Cmp(next, x) >= 0 {
			break
		}
		x = next
	}
	for Cmp(Mul(x, x), a) > 0 {
		x = Sub(x, Magia{1})
	}
	for {
		x1 := Add(x, Magia{1})
		if Cmp(Mul(x1, x1), a) > 0 {
			break
		}
		x = x1
	}
	return Norm(x)
}

// floorHalf computes floor(x/2) for a magnitude.
func floorHalf(x Magia) Magia { return ShiftRight(x, 1) }
