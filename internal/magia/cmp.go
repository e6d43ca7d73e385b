package magia

// Cmp performs an unsigned comparison of x and y, ignoring any
// non-normalized leading zero limbs, and returns -1, 0, or +1.
func Cmp(x, y Magia) int {
	x, y = Norm(x), Norm(y)
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether x and y represent the same magnitude.
func Equal(x, y Magia) bool { return Cmp(x, y) == 0 }
