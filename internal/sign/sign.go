// Package sign implements the branch-free sign-mask representation shared
// by every layer of the magia stack: a sign is encoded as a 0/-1 mask so
// that conditional negation collapses to two ALU operations instead of a
// branch.
package sign

// Mask is a sign encoded as a 32-bit mask: 0 for non-negative, all-ones
// (-1) for negative. It composes under XOR the same way IEEE sign bits do,
// which is what makes it the right representation for products and
// quotients (§4.2: "For ×: XOR signs").
type Mask int32

const (
	// NonNegative is the canonical mask for zero and positive values.
	NonNegative Mask = 0
	// Negative is the canonical mask for negative values.
	Negative Mask = -1
)

// Of returns Negative if neg is true, NonNegative otherwise.
func Of(neg bool) Mask {
	if neg {
		return Negative
	}
	return NonNegative
}

// IsNegative reports whether m encodes a negative sign.
func (m Mask) IsNegative() bool { return m != NonNegative }

// Bool returns the mask as a bool, true meaning negative.
func (m Mask) Bool() bool { return m != NonNegative }

// Xor combines two sign masks the way multiplication/division combine
// operand signs.
func (m Mask) Xor(other Mask) Mask { return m ^ other }

// NegateIf conditionally negates x using the branch-free identity
// (x XOR mask) - mask, which yields x when mask is NonNegative and -x
// when mask is Negative.
func (m Mask) NegateIf(x int64) int64 {
	return (x ^ int64(m)) - int64(m)
}

// NegateIf32 is the 32-bit form of NegateIf.
func (m Mask) NegateIf32(x int32) int32 {
	return (x ^ int32(m)) - int32(m)
}

// String renders the mask as "+" or "-", useful in diagnostic output.
func (m Mask) String() string {
	if m.IsNegative() {
		return "-"
	}
	return "+"
}
