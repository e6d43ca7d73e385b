package magia

// MulInto writes the schoolbook product of x and y into p, which must have
// length at least len(x)+len(y). Per §4.1.4, p's first len(y) limbs are
// zeroed by this routine before the outer sweep over x; every row writes
// its final carry to the limb above its nominal top limb whether or not
// that carry is non-zero, so a pre-extended destination never needs a
// separate zero-fill pass. Returns the normalized output length.
func MulInto(p, x, y Magia) int {
	yLen := len(y)
	for i := 0; i < yLen; i++ {
		p[i] = 0
	}
	xLen := len(x)
	if xLen == 0 || yLen == 0 {
		return 0
	}
	for i := 0; i < xLen; i++ {
		p[i+yLen] = addMulVVW(p[i:i+yLen], y, x[i])
	}
	total := xLen + yLen
	for total > 0 && p[total-1] == 0 {
		total--
	}
	return total
}

// Mul returns x * y as a freshly normalized Magia.
func Mul(x, y Magia) Magia {
	x, y = Norm(x), Norm(y)
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	p := make(Magia, len(x)+len(y))
	n := MulInto(p, x, y)
	return p[:n]
}

// MutateMulScalar multiplies x by the single limb y in place, returning
// the carry out of the top limb. The caller must grow x by one limb
// beforehand if that carry needs to be preserved, the same discipline
// MutateAdd uses.
func MutateMulScalar(x Magia, y Word) (carryOut Word) {
	return mulAddVWW(x, x, y, 0)
}

// MulScalar32 returns x * y for a single 32-bit limb y.
func MulScalar32(x Magia, y Word) Magia {
	x = Norm(x)
	if len(x) == 0 || y == 0 {
		return nil
	}
	z := make(Magia, len(x)+1)
	c := mulAddVWW(z[:len(x)], x, y, 0)
	z[len(x)] = c
	return Norm(z)
}

// shiftWholeLimbs prepends n zero limbs (a shift left by n*32 bits).
func shiftWholeLimbs(x Magia, n int) Magia {
	x = Norm(x)
	if len(x) == 0 || n == 0 {
		return x
	}
	z := make(Magia, len(x)+n)
	copy(z[n:], x)
	return z
}

// MulScalar64 returns x * y for a 64-bit scalar y, interleaving the low
// and high 32-bit partial products of y so a single accumulation carries
// the result (§4.1.1).
func MulScalar64(x Magia, y uint64) Magia {
	x = Norm(x)
	if len(x) == 0 || y == 0 {
		return nil
	}
	lo := Word(y)
	hi := Word(y >> 32)
	result := MulScalar32(x, lo)
	if hi != 0 {
		result = Add(result, shiftWholeLimbs(MulScalar32(x, hi), 1))
	}
	return result
}
