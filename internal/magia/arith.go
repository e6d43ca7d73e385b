package magia

import "math/bits"

// This file provides the vector-arithmetic primitives the rest of the
// package is built from: one function per operation, operating on
// caller-sized slices and returning a single carry/borrow word. The shape
// mirrors bigfft's AddVV/SubVV/AddMulVVW family, which links into
// math/big's platform-Word (uint) internals; here the limb width is fixed
// at 32 bits regardless of host architecture, so the primitives are
// implemented directly against math/bits rather than shimmed in.

// addVV computes z = x + y for len(z) == len(x) == len(y) and returns the
// carry out of the top limb.
func addVV(z, x, y []Word) (c Word) {
	for i := range z {
		sum, carry := bits.Add32(x[i], y[i], uint32(c))
		z[i] = sum
		c = Word(carry)
	}
	return c
}

// subVV computes z = x - y for len(z) == len(x) == len(y) and returns the
// borrow out of the top limb.
func subVV(z, x, y []Word) (c Word) {
	for i := range z {
		diff, borrow := bits.Sub32(x[i], y[i], uint32(c))
		z[i] = diff
		c = Word(borrow)
	}
	return c
}

// addVW computes z = x + y where y is a single limb, and returns the
// carry.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		sum, carry := bits.Add32(x[i], c, 0)
		z[i] = sum
		c = Word(carry)
		if c == 0 {
			if len(z) > i+1 {
				copy(z[i+1:], x[i+1:])
			}
			return 0
		}
	}
	return c
}

// subVW computes z = x - y where y is a single limb, and returns the
// borrow.
func subVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		diff, borrow := bits.Sub32(x[i], c, 0)
		z[i] = diff
		c = Word(borrow)
		if c == 0 {
			if len(z) > i+1 {
				copy(z[i+1:], x[i+1:])
			}
			return 0
		}
	}
	return c
}

// shlVU computes z = x << s (0 <= s < wordBits) and returns the bits
// shifted out of the top limb.
func shlVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	n := len(x)
	if n == 0 {
		return 0
	}
	c = x[n-1] >> (wordBits - s)
	for i := n - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>(wordBits-s)
	}
	z[0] = x[0] << s
	return c
}

// shrVU computes z = x >> s (0 <= s < wordBits) and returns the bits
// shifted out of the bottom limb, left-justified in the returned word.
func shrVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	n := len(x)
	if n == 0 {
		return 0
	}
	c = x[0] << (wordBits - s)
	for i := 0; i < n-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<(wordBits-s)
	}
	z[n-1] = x[n-1] >> s
	return c
}

// mulAddVWW computes z = x*y + r element-wise (a fused multiply-add sweep)
// and returns the carry out of the top limb. Used by the decimal parser's
// "every ninth digit" fold (§4.1.8) and by scalar multiplication.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := range z {
		hi, lo := bits.Mul32(x[i], y)
		lo2, carry := bits.Add32(lo, c, 0)
		z[i] = lo2
		c = hi + Word(carry)
	}
	return c
}

// addMulVVW computes z += x*y element-wise and returns the carry out of
// the top limb. This is the inner loop of schoolbook multiplication.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := range x {
		hi, lo := bits.Mul32(x[i], y)
		lo2, carry1 := bits.Add32(lo, z[i], 0)
		hi2, carry2 := bits.Add32(hi, 0, carry1)
		lo3, carry3 := bits.Add32(lo2, c, 0)
		z[i] = lo3
		c = hi2 + Word(carry2) + Word(carry3)
	}
	return c
}

// mulWW returns the 64-bit product of two limbs split into (hi, lo).
func mulWW(x, y Word) (hi, lo Word) {
	return bits.Mul32(x, y)
}

// divWW divides the 64-bit dividend (hi<<32 | lo) by the limb y, returning
// quotient and remainder. Precondition: hi < y (so the quotient fits in a
// limb).
func divWW(hi, lo, y Word) (q, r Word) {
	qq, rr := bits.Div32(hi, lo, y)
	return qq, rr
}

// mulHi64 returns the upper 64 bits of the unsigned 128-bit product x*y —
// the mul_hi primitive spec.md delegates to a platform shim; Go's
// math/bits.Mul64 already compiles to the native widening multiply on
// every architecture Go supports, so no further shim is needed.
func mulHi64(x, y uint64) uint64 {
	hi, _ := bits.Mul64(x, y)
	return hi
}
