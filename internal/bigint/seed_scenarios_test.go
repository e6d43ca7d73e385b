package bigint

import (
	"testing"

	"github.com/agbru/magia/internal/barrett"
	"github.com/agbru/magia/internal/magia"
)

// These mirror the literal, bit-for-bit scenarios used to pin down
// otherwise-ambiguous formatting and boundary rules.

func TestSeedDecimalParseRoundTrip(t *testing.T) {
	v, err := FromDecimal("123_456_789_012_345_678_901_234_567_890")
	if err != nil {
		t.Fatal(err)
	}
	want := "123456789012345678901234567890"
	if v.String() != want {
		t.Errorf("String() = %q, want %q", v.String(), want)
	}
}

func TestSeedHexParseRoundTrip(t *testing.T) {
	v, err := FromHex("-0xCAFE_BABE_FACE_DEAD_BEEF")
	if err != nil {
		t.Fatal(err)
	}
	want := "-0xCAFEBABEFACEDEADBEEF"
	if got := v.HexString(); got != want {
		t.Errorf("HexString() = %q, want %q", got, want)
	}
}

func TestSeedDivision(t *testing.T) {
	a, _ := FromDecimal("16943852051772892430707956759219")
	b, _ := FromDecimal("16883797134507450982")
	q, r, err := a.QuoRem(b)
	if err != nil {
		t.Fatal(err)
	}
	if q.String() != "1003555739" {
		t.Errorf("quotient = %s, want 1003555739", q)
	}
	if r.Sign() < 0 || r.Cmp(b) >= 0 {
		t.Errorf("remainder %s not in [0, %s)", r, b)
	}
	if got := q.Mul(b).Add(r); !got.Equal(a) {
		t.Errorf("q*d + r = %s, want %s", got, a)
	}
}

func TestSeedSquareRoot(t *testing.T) {
	base := FromInt64(89515880)
	n := base.Sqr()
	if got := magia.BitLen(n.Magnitude()); got != 53 {
		t.Fatalf("bit length of sqr(89515880) = %d, want 53", got)
	}
	root, err := n.Isqrt()
	if err != nil {
		t.Fatal(err)
	}
	if root.String() != "89515880" {
		t.Errorf("isqrt(n) = %s, want 89515880", root)
	}
	nMinus1 := n.Sub(FromInt64(1))
	rootMinus1, err := nMinus1.Isqrt()
	if err != nil {
		t.Fatal(err)
	}
	if rootMinus1.String() != "89515879" {
		t.Errorf("isqrt(n-1) = %s, want 89515879", rootMinus1)
	}
}

func TestSeedPower(t *testing.T) {
	ten := FromInt64(10)
	if got := ten.Pow(20).String(); got != "100000000000000000000" {
		t.Errorf("10^20 = %q, want 100000000000000000000", got)
	}
}

func TestSeedBarrett(t *testing.T) {
	m, _ := FromDecimal("12345678901234567890")
	x, _ := FromDecimal("123456789012345678901234567890")
	r, err := barrett.New(m)
	if err != nil {
		t.Fatal(err)
	}
	got, err := r.Remainder(x)
	if err != nil {
		t.Fatal(err)
	}
	_, want, err := x.QuoRem(m)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Errorf("Barrett.Remainder(x) = %s, want %s", got, want)
	}
}

func TestSeedTwosComplementBytes(t *testing.T) {
	cases := []struct {
		v    int64
		want []byte
	}{
		{-1, []byte{0xFF}},
		{-128, []byte{0x80}},
		{128, []byte{0x00, 0x80}},
	}
	for _, c := range cases {
		v := FromInt64(c.v)
		got := v.ToBytes(0, magia.BigEndian, magia.TwosComplement)
		if len(got) != len(c.want) {
			t.Errorf("ToBytes(%d) = %x, want %x", c.v, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("ToBytes(%d) = %x, want %x", c.v, got, c.want)
				break
			}
		}
	}
}

func TestSeedBitLenBigIntStyle(t *testing.T) {
	if got := FromInt64(-1).BitLenBigIntStyle(); got != 0 {
		t.Errorf("BitLenBigIntStyle(-1) = %d, want 0", got)
	}
	if got := FromInt64(-128).BitLenBigIntStyle(); got != 7 {
		t.Errorf("BitLenBigIntStyle(-128) = %d, want 7", got)
	}
}

func TestSeedFactorialBoundary(t *testing.T) {
	f20, err := Factorial(20)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f20.Uint64(); err != nil {
		t.Errorf("factorial(20) should fit in 64 bits: %v", err)
	}
	f21, err := Factorial(21)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f21.Uint64(); err == nil {
		t.Error("factorial(21) should not fit in 64 bits")
	}
}

func TestSeedGCDScaling(t *testing.T) {
	x := FromInt64(48)
	y := FromInt64(18)
	k := FromInt64(7)
	lhs := x.Mul(k).GCD(y.Mul(k))
	rhs := k.Abs().Mul(x.GCD(y))
	if !lhs.Equal(rhs) {
		t.Errorf("gcd(x*k, y*k) = %s, want %s", lhs, rhs)
	}
}
