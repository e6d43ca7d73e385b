package magia

// BinaryGCD computes the greatest common divisor of x and y using Stein's
// algorithm, following the shape of Go's historical math/big binaryGCD:
// strip common factors of two, then repeatedly subtract the smaller
// (odd) operand from the larger and strip the factors of two the
// subtraction introduces. A zero operand yields the other operand
// (gcd(0,y)=y, gcd(x,0)=x, gcd(0,0)=0).
func BinaryGCD(x, y Magia) Magia {
	x, y = Norm(x).Clone(), Norm(y).Clone()
	if len(x) == 0 {
		return y
	}
	if len(y) == 0 {
		return x
	}

	xz := TrailingZeroCount(x)
	yz := TrailingZeroCount(y)
	shift := xz
	if yz < shift {
		shift = yz
	}
	x = ShiftRight(x, xz)
	y = ShiftRight(y, yz)

	// Ensure x is odd; loop invariant restores this after each round.
	for {
		if tz := TrailingZeroCount(y); tz > 0 {
			y = ShiftRight(y, tz)
		}
		if Cmp(x, y) > 0 {
			x, y = y, x
		}
		y = Sub(y, x)
		if len(Norm(y)) == 0 {
			break
		}
	}

	return ShiftLeft(x, shift)
}
