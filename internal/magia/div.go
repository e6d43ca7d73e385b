package magia

import "math/bits"

// DivModScalar32 divides x by the single limb y, high limb to low, and
// returns the quotient and remainder. Precondition: y != 0.
func DivModScalar32(x Magia, y Word) (q Magia, r Word) {
	x = Norm(x)
	if len(x) == 0 {
		return nil, 0
	}
	z := make(Magia, len(x))
	for i := len(x) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return Norm(z), r
}

// DivModScalar64 divides x by the 64-bit scalar y. Precondition: y != 0.
func DivModScalar64(x Magia, y uint64) (q Magia, r uint64) {
	if y>>32 == 0 {
		qq, rr := DivModScalar32(x, Word(y))
		return qq, uint64(rr)
	}
	v := Magia{Word(y), Word(y >> 32)}
	qq, rem := DivMod(x, v)
	rem = Norm(rem)
	switch len(rem) {
	case 0:
		r = 0
	case 1:
		r = uint64(rem[0])
	default:
		r = uint64(rem[0]) | uint64(rem[1])<<32
	}
	return qq, r
}

// DivMod divides u by v and returns the quotient and remainder such that
// u == q*v + r and 0 <= r < v (§4.1.6). Precondition: v is not the zero
// magnitude; callers at the SignedInt/Accumulator layer are responsible
// for turning that precondition into a DivisionByZeroError before ever
// reaching this function.
func DivMod(u, v Magia) (q, r Magia) {
	u, v = Norm(u), Norm(v)
	if len(v) == 0 {
		panic("magia: DivMod division by zero")
	}
	if Cmp(u, v) < 0 {
		return nil, u.Clone()
	}
	if len(v) == 1 {
		qq, rr := DivModScalar32(u, v[0])
		if rr == 0 {
			return qq, nil
		}
		return qq, Magia{rr}
	}
	return divModKnuth(u, v)
}

// leadingZeros32 returns the number of leading zero bits in w.
func leadingZeros32(w Word) uint { return uint(bits.LeadingZeros32(w)) }

// divModKnuth implements Knuth's Algorithm D (TAOCP vol 2, §4.3.1) using
// the int64 borrow-tracking formulation from Warren's Hacker's Delight
// (the same technique math/big's divLarge is built on): v is normalized so
// its top limb's high bit is set, a trial quotient digit q-hat is refined
// with at most two decrements via the three-limb test, and the resulting
// subtract-multiply step is corrected with a single conditional add-back.
// Precondition: len(v) >= 2, v normalized (no leading zero limb), u >= v.
func divModKnuth(u, v Magia) (q, r Magia) {
	n := len(v)
	m := len(u) - n

	shift := leadingZeros32(v[n-1])
	vn := make(Magia, n)
	shlVU(vn, v, shift)

	un := make(Magia, len(u)+1)
	top := shlVU(un[:len(u)], u, shift)
	un[len(u)] = top

	q = make(Magia, m+1)
	const b = 1 << 32

	for j := m; j >= 0; j-- {
		num := uint64(un[j+n])<<32 | uint64(un[j+n-1])

		var qhat, rhat uint64
		if uint64(un[j+n]) == uint64(vn[n-1]) {
			qhat = b - 1
			rhat = num - qhat*uint64(vn[n-1])
		} else {
			qhat = num / uint64(vn[n-1])
			rhat = num % uint64(vn[n-1])
		}
		for rhat < b && qhat*uint64(vn[n-2]) > rhat*b+uint64(un[j+n-2]) {
			qhat--
			rhat += uint64(vn[n-1])
		}

		// Multiply and subtract qhat*v from u's current window, tracking
		// the running borrow in a signed 64-bit accumulator.
		var k int64
		for i := 0; i < n; i++ {
			p := qhat * uint64(vn[i])
			t := int64(un[i+j]) - k - int64(p&0xffffffff)
			un[i+j] = uint32(t)
			k = int64(p>>32) - (t >> 32)
		}
		t := int64(un[j+n]) - k
		un[j+n] = uint32(t)
		q[j] = Word(qhat)

		if t < 0 {
			// qhat was one too large; add v back once and decrement.
			q[j]--
			var carry uint64
			for i := 0; i < n; i++ {
				sum := uint64(un[i+j]) + uint64(vn[i]) + carry
				un[i+j] = Word(sum)
				carry = sum >> 32
			}
			un[j+n] += Word(carry)
		}
	}

	rem := make(Magia, n)
	shrVU(rem, un[:n], shift)
	return Norm(q), Norm(rem)
}
