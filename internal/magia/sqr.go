package magia

import "math/bits"

// Sqr computes x*x, exploiting the symmetry of the partial products:
// cross terms x[i]*x[j] for i<j are accumulated once and then doubled,
// diagonal terms x[i]^2 are added once (§4.1.2, §4.1.5). Output length is
// 2*len(x) or 2*len(x)-1 after normalization.
func Sqr(x Magia) Magia {
	x = Norm(x)
	n := len(x)
	if n == 0 {
		return nil
	}
	// One spare limb above 2n absorbs the carry produced when the
	// accumulated cross terms are doubled.
	p := make(Magia, 2*n+1)
	return p[:SqrInto(p, x)]
}

// SqrInto writes x*x into p, which must have length at least
// 2*len(x)+1, and returns the normalized output length. This lets
// callers reuse a scratch buffer across repeated squarings instead of
// allocating one per call, the way Accumulator.AddSquareOf does.
func SqrInto(p, x Magia) int {
	x = Norm(x)
	n := len(x)
	for i := range p {
		p[i] = 0
	}
	if n == 0 {
		return 0
	}

	// Cross terms: for each i, add x[i]*x[i+1:] into p starting at 2i+1,
	// propagating its carry past the nominal row width exactly as far as
	// needed (§4.1.5 — this may ripple across more than one limb).
	for i := 0; i < n-1; i++ {
		xi := x[i]
		if xi == 0 {
			continue
		}
		width := n - i - 1
		c := addMulVVW(p[2*i+1:2*i+1+width], x[i+1:], xi)
		j := 2*i + 1 + width
		for c != 0 {
			sum, carry := bits.Add32(p[j], c, 0)
			p[j] = sum
			c = Word(carry)
			j++
		}
	}

	// Double the cross-term accumulation.
	if dc := shlVU(p, p, 1); dc != 0 {
		panic("magia: Sqr internal overflow doubling cross terms")
	}

	// Diagonal terms x[i]^2, added at position 2i with independent carry
	// propagation per term.
	var carry Word
	for i := 0; i < n; i++ {
		hi, lo := mulWW(x[i], x[i])
		sum0, c0 := bits.Add32(p[2*i], lo, uint32(carry))
		p[2*i] = sum0
		sum1, c1 := bits.Add32(p[2*i+1], hi, c0)
		p[2*i+1] = sum1
		carry = Word(c1)
		j := 2*i + 2
		for carry != 0 && j < len(p) {
			sum, c := bits.Add32(p[j], carry, 0)
			p[j] = sum
			carry = Word(c)
			j++
		}
	}

	total := len(p)
	for total > 0 && p[total-1] == 0 {
		total--
	}
	return total
}
