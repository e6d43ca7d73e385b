package magia

// Add returns x + y as a freshly normalized Magia.
func Add(x, y Magia) Magia {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(Magia, len(x)+1)
	c := addVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		c = addVW(z[len(y):len(x)], x[len(y):], c)
	}
	z[len(x)] = c
	return Norm(z)
}

// MutateAdd adds the lower len(y) limbs of y into x pairwise, then
// propagates the resulting carry through the remaining high limbs of x.
// Precondition: len(x) >= len(y). Returns the carry out of x's top limb;
// the caller is responsible for growing x by one limb beforehand if that
// carry must be preserved (this is how Accumulator.mutateAdd avoids
// allocating on the common case where no growth is needed).
func MutateAdd(x Magia, y Magia) (carryOut Word) {
	n := len(y)
	c := addVV(x[:n], x[:n], y)
	if n < len(x) {
		c = addVW(x[n:], x[n:], c)
	}
	return c
}

// Sub returns x - y as a freshly normalized Magia. Precondition: x >= y
// (unsigned). The result may be the empty magnitude (exact zero).
func Sub(x, y Magia) Magia {
	z := make(Magia, len(x))
	c := subVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		c = subVW(z[len(y):], x[len(y):], c)
	}
	if c != 0 {
		panic("magia: Sub precondition violated (x < y)")
	}
	return Norm(z)
}

// MutateSub subtracts y from x in place. Precondition: x >= y.
func MutateSub(x Magia, y Magia) {
	n := len(y)
	c := subVV(x[:n], x[:n], y)
	if n < len(x) {
		c = subVW(x[n:], x[n:], c)
	}
	if c != 0 {
		panic("magia: MutateSub precondition violated (x < y)")
	}
}

// MutateReverseSub computes y - x into x's own buffer, for callers who
// have already established y > x. len(x) must be >= len(y); the excess
// high limbs of x (beyond len(y)) must be zero.
func MutateReverseSub(x Magia, y Magia) {
	n := len(y)
	c := subVV(x[:n], y, x[:n])
	if n < len(x) {
		for i := n; i < len(x); i++ {
			if x[i] != 0 {
				panic("magia: MutateReverseSub precondition violated")
			}
		}
	}
	if c != 0 {
		panic("magia: MutateReverseSub precondition violated (y < x)")
	}
}
