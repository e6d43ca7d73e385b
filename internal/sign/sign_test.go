package sign

import "testing"

func TestNegateIf(t *testing.T) {
	if got := NonNegative.NegateIf(42); got != 42 {
		t.Errorf("NonNegative.NegateIf(42) = %d, want 42", got)
	}
	if got := Negative.NegateIf(42); got != -42 {
		t.Errorf("Negative.NegateIf(42) = %d, want -42", got)
	}
	if got := Negative.NegateIf(0); got != 0 {
		t.Errorf("Negative.NegateIf(0) = %d, want 0", got)
	}
}

func TestXor(t *testing.T) {
	cases := []struct {
		a, b Mask
		want Mask
	}{
		{NonNegative, NonNegative, NonNegative},
		{NonNegative, Negative, Negative},
		{Negative, NonNegative, Negative},
		{Negative, Negative, NonNegative},
	}
	for _, c := range cases {
		if got := c.a.Xor(c.b); got != c.want {
			t.Errorf("%v.Xor(%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestOf(t *testing.T) {
	if Of(true) != Negative {
		t.Error("Of(true) should be Negative")
	}
	if Of(false) != NonNegative {
		t.Error("Of(false) should be NonNegative")
	}
}
