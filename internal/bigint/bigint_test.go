package bigint

import (
	"testing"

	"github.com/agbru/magia/internal/magia"
	"github.com/agbru/magia/internal/randsrc"
)

func TestFromDecimalRoundTrip(t *testing.T) {
	cases := []string{"0", "-0", "42", "-42", "+7", "123456789012345678901234567890", "-123456789012345678901234567890"}
	for _, s := range cases {
		v, err := FromDecimal(s)
		if err != nil {
			t.Fatalf("FromDecimal(%q) error: %v", s, err)
		}
		back, err := FromDecimal(v.String())
		if err != nil || !back.Equal(v) {
			t.Errorf("round trip of %q: got %v, %v", s, back, err)
		}
	}
}

func TestAddSignRules(t *testing.T) {
	a, _ := FromDecimal("100")
	b, _ := FromDecimal("-40")
	if got := a.Add(b).String(); got != "60" {
		t.Errorf("100 + -40 = %q, want 60", got)
	}
	c, _ := FromDecimal("-100")
	d, _ := FromDecimal("40")
	if got := c.Add(d).String(); got != "-60" {
		t.Errorf("-100 + 40 = %q, want -60", got)
	}
	e, _ := FromDecimal("-5")
	f, _ := FromDecimal("5")
	if got := e.Add(f); !got.IsZero() {
		t.Errorf("-5 + 5 = %q, want 0", got.String())
	}
}

func TestMulSignXOR(t *testing.T) {
	a, _ := FromDecimal("-7")
	b, _ := FromDecimal("6")
	if got := a.Mul(b).String(); got != "-42" {
		t.Errorf("-7 * 6 = %q, want -42", got)
	}
	c, _ := FromDecimal("-7")
	d, _ := FromDecimal("-6")
	if got := c.Mul(d).String(); got != "42" {
		t.Errorf("-7 * -6 = %q, want 42", got)
	}
}

func TestQuoRemDividendSignConvention(t *testing.T) {
	a, _ := FromDecimal("-7")
	b, _ := FromDecimal("2")
	q, r, err := a.QuoRem(b)
	if err != nil {
		t.Fatal(err)
	}
	if q.String() != "-3" || r.String() != "-1" {
		t.Errorf("-7 QuoRem 2 = (%s, %s), want (-3, -1)", q, r)
	}
	// q*b + r == a
	if got := q.Mul(b).Add(r); !got.Equal(a) {
		t.Errorf("q*b + r = %s, want %s", got, a)
	}
}

func TestQuoRemDivisionByZero(t *testing.T) {
	a, _ := FromDecimal("5")
	if _, _, err := a.QuoRem(Zero); err == nil {
		t.Error("expected DivisionByZeroError")
	}
}

func TestPowSmallExponents(t *testing.T) {
	base, _ := FromDecimal("3")
	if got := base.Pow(0).String(); got != "1" {
		t.Errorf("3^0 = %q, want 1", got)
	}
	if got := base.Pow(1).String(); got != "3" {
		t.Errorf("3^1 = %q, want 3", got)
	}
	if got := base.Pow(2).String(); got != "9" {
		t.Errorf("3^2 = %q, want 9", got)
	}
	if got := base.Pow(10).String(); got != "59049" {
		t.Errorf("3^10 = %q, want 59049", got)
	}
}

func TestGCDLCM(t *testing.T) {
	a, _ := FromDecimal("48")
	b, _ := FromDecimal("18")
	if got := a.GCD(b).String(); got != "6" {
		t.Errorf("gcd(48,18) = %q, want 6", got)
	}
	if got := a.LCM(b).String(); got != "144" {
		t.Errorf("lcm(48,18) = %q, want 144", got)
	}
}

func TestIsqrtRejectsNegative(t *testing.T) {
	v, _ := FromDecimal("-4")
	if _, err := v.Isqrt(); err == nil {
		t.Error("expected error for negative Isqrt")
	}
}

func TestShiftRightRoundsTowardNegativeInfinity(t *testing.T) {
	v, _ := FromDecimal("-5")
	if got := v.ShiftRight(1).String(); got != "-3" {
		t.Errorf("-5 >> 1 = %q, want -3", got)
	}
}

func TestInt64RoundTrip(t *testing.T) {
	v := FromInt64(-1234567890123)
	n, err := v.Int64()
	if err != nil {
		t.Fatal(err)
	}
	if n != -1234567890123 {
		t.Errorf("Int64() = %d, want -1234567890123", n)
	}
}

func TestInt64OutOfRange(t *testing.T) {
	v, _ := FromDecimal("123456789012345678901234567890")
	if _, err := v.Int64(); err == nil {
		t.Error("expected OutOfRangeError")
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	v, _ := FromDecimal("-123456789012345678901234567890")
	data := v.ToBytes(0, magia.LittleEndian, magia.TwosComplement)
	got := FromBytes(data, magia.LittleEndian, magia.TwosComplement)
	if !got.Equal(v) {
		t.Errorf("round trip mismatch: got %s, want %s", got, v)
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	a, _ := FromDecimal("42")
	// SignedInt's invariant keeps abs always normalized, so a value
	// built from magia limbs padded with a trailing zero must still
	// hash and compare equal to the value built without it.
	padded := normalized(a.neg, append(a.abs.Clone(), 0))
	if !a.Equal(padded) || a.Hash() != padded.Hash() {
		t.Error("trailing-zero-limb variants should hash and compare equal")
	}

	b, _ := FromDecimal("-42")
	if a.Hash() == b.Hash() {
		t.Error("expected different signs to usually produce different hashes")
	}
}

func TestFactorial(t *testing.T) {
	f, err := Factorial(10)
	if err != nil {
		t.Fatal(err)
	}
	if got := f.String(); got != "3628800" {
		t.Errorf("10! = %q, want 3628800", got)
	}
}

func TestFactorialOverflowEstimate(t *testing.T) {
	if _, err := Factorial(1 << 40); err == nil {
		t.Error("expected an OverflowError for a factorial far beyond 32-bit limb capacity")
	}
}

func TestInt32Uint32RoundTrip(t *testing.T) {
	v := FromInt64(-123456)
	n, err := v.Int32()
	if err != nil {
		t.Fatal(err)
	}
	if n != -123456 {
		t.Errorf("Int32() = %d, want -123456", n)
	}

	u, err := FromInt64(123456).Uint32()
	if err != nil {
		t.Fatal(err)
	}
	if u != 123456 {
		t.Errorf("Uint32() = %d, want 123456", u)
	}
}

func TestInt32OutOfRange(t *testing.T) {
	v := FromInt64(1 << 32)
	if _, err := v.Int32(); err == nil {
		t.Error("expected OutOfRangeError for int32")
	}
}

func TestUint32RejectsNegative(t *testing.T) {
	if _, err := FromInt64(-1).Uint32(); err == nil {
		t.Error("expected OutOfRangeError for uint32 of a negative value")
	}
}

func TestClampConversions(t *testing.T) {
	huge, _ := FromDecimal("123456789012345678901234567890")
	if got := huge.ClampToInt64(); got != 1<<63-1 {
		t.Errorf("ClampToInt64() = %d, want MaxInt64", got)
	}
	if got := huge.Neg().ClampToInt64(); got != -1<<63 {
		t.Errorf("ClampToInt64() of a huge negative = %d, want MinInt64", got)
	}
	if got := huge.Neg().ClampToUint64(); got != 0 {
		t.Errorf("ClampToUint64() of a negative = %d, want 0", got)
	}
	if got := huge.ClampToUint64(); got != ^uint64(0) {
		t.Errorf("ClampToUint64() = %d, want MaxUint64", got)
	}
	if got := huge.ClampToInt32(); got != 1<<31-1 {
		t.Errorf("ClampToInt32() = %d, want MaxInt32", got)
	}
	if got := huge.Neg().ClampToInt32(); got != -1<<31 {
		t.Errorf("ClampToInt32() of a huge negative = %d, want MinInt32", got)
	}
	if got := huge.Neg().ClampToUint32(); got != 0 {
		t.Errorf("ClampToUint32() of a negative = %d, want 0", got)
	}
	if got := huge.ClampToUint32(); got != ^uint32(0) {
		t.Errorf("ClampToUint32() = %d, want MaxUint32", got)
	}
}

func TestTruncateConversionsWrapLikeFixedWidthArithmetic(t *testing.T) {
	v := FromUint64(1<<32 + 5)
	if got := v.TruncateUint32(); got != 5 {
		t.Errorf("TruncateUint32() = %d, want 5", got)
	}
	if got := v.TruncateInt32(); got != 5 {
		t.Errorf("TruncateInt32() = %d, want 5", got)
	}

	neg := FromInt64(-5)
	if got := neg.TruncateUint32(); got != ^uint32(5)+1 {
		t.Errorf("TruncateUint32() of -5 = %d, want %d", got, ^uint32(5)+1)
	}
	if got := neg.TruncateInt32(); got != -5 {
		t.Errorf("TruncateInt32() of -5 = %d, want -5", got)
	}

	huge, _ := FromDecimal("340282366920938463463374607431768211461") // 2^128 + 5
	if got := huge.TruncateUint64(); got != 5 {
		t.Errorf("TruncateUint64() = %d, want 5", got)
	}
}

func TestLittleEndianIntsRoundTrip(t *testing.T) {
	v, _ := FromDecimal("-123456789012345678901234567890")
	ints := v.ToLittleEndianInts()
	got := FromLittleEndianInts(v.Sign() < 0, ints)
	if !got.Equal(v) {
		t.Errorf("little-endian round trip mismatch: got %s, want %s", got, v)
	}

	if got := Zero.ToLittleEndianInts(); len(got) != 0 {
		t.Errorf("ToLittleEndianInts() of zero = %v, want empty", got)
	}
}

func TestWithBitMaskFactories(t *testing.T) {
	if got := WithBitMask(4).String(); got != "15" {
		t.Errorf("WithBitMask(4) = %q, want 15", got)
	}
	if got := WithIndexedBitMask(4, 4).String(); got != "240" {
		t.Errorf("WithIndexedBitMask(4, 4) = %q, want 240 (0b11110000)", got)
	}
	if got := WithBitMask(0); !got.IsZero() {
		t.Errorf("WithBitMask(0) = %s, want 0", got)
	}
	if got := WithSetBit(3).String(); got != "8" {
		t.Errorf("WithSetBit(3) = %q, want 8", got)
	}
	base, _ := FromDecimal("1")
	if got := base.WithSetBit(3).String(); got != "9" {
		t.Errorf("1.WithSetBit(3) = %q, want 9", got)
	}
}

func TestPrimitiveOperandSeamMatchesSignedIntPath(t *testing.T) {
	a, _ := FromDecimal("-123456789012345")
	b := FromInt64(987654321)

	if got, want := a.AddI64(987654321), a.Add(b); !got.Equal(want) {
		t.Errorf("AddI64 = %s, want %s", got, want)
	}
	if got, want := a.SubI64(987654321), a.Sub(b); !got.Equal(want) {
		t.Errorf("SubI64 = %s, want %s", got, want)
	}
	if got, want := a.MulI64(987654321), a.Mul(b); !got.Equal(want) {
		t.Errorf("MulI64 = %s, want %s", got, want)
	}
	if got, want := a.CmpI64(987654321), a.Cmp(b); got != want {
		t.Errorf("CmpI64 = %d, want %d", got, want)
	}
	qWant, rWant, err := a.QuoRem(b)
	if err != nil {
		t.Fatal(err)
	}
	q, r, err := a.QuoRemI64(987654321)
	if err != nil {
		t.Fatal(err)
	}
	if !q.Equal(qWant) || !r.Equal(rWant) {
		t.Errorf("QuoRemI64 = (%s, %s), want (%s, %s)", q, r, qWant, rWant)
	}

	if got, want := a.AddU32(42), a.Add(FromUint64(42)); !got.Equal(want) {
		t.Errorf("AddU32 = %s, want %s", got, want)
	}
	if got, want := a.CmpU64(42), a.Cmp(FromUint64(42)); got != want {
		t.Errorf("CmpU64 = %d, want %d", got, want)
	}
}

func TestRandomWithRandomBitLenNeverExceedsMax(t *testing.T) {
	src := randsrc.FromSeed(1, 2)
	for i := 0; i < 100; i++ {
		v := RandomWithRandomBitLen(src, 64)
		if v.Sign() < 0 {
			t.Fatal("expected a non-negative magnitude without WithRandomSign")
		}
		if magia.BitLen(v.Magnitude()) > 64 {
			t.Errorf("RandomWithRandomBitLen(64) produced a value with bit length > 64")
		}
	}
}

func TestRandomWithSignZeroIsTwiceAsLikely(t *testing.T) {
	src := randsrc.FromSeed(7, 9)
	bound := FromUint64(3) // magnitudes drawn uniformly from {0, 1, 2}
	counts := map[string]int{}
	const trials = 6000
	for i := 0; i < trials; i++ {
		v, err := Random(src, bound, WithRandomSign())
		if err != nil {
			t.Fatal(err)
		}
		counts[v.String()]++
	}
	// Zero has no sign to flip, so it should land twice as often as any
	// single specific signed non-zero outcome (e.g. "+1" alone, not
	// "+1"/"-1" combined, since the coin flip splits magnitude 1's share
	// of the draws between them).
	zero := counts["0"]
	plusOne := counts["1"]
	if plusOne == 0 {
		t.Fatal("expected some +1 draws")
	}
	ratio := float64(zero) / float64(plusOne)
	if ratio < 1.5 || ratio > 2.5 {
		t.Errorf("zero:+1 ratio = %.2f, want close to 2.0", ratio)
	}
}
