package magia

import (
	"math/big"
	"testing"
)

func TestDivModMatchesBig(t *testing.T) {
	cases := []struct{ u, v uint64 }{
		{100, 7}, {1<<63 + 17, 3}, {0, 5}, {5, 100}, {1<<64 - 1, 1<<32 - 1},
	}
	for _, c := range cases {
		u := wordsFromU64(c.u)
		v := wordsFromU64(c.v)
		q, r := DivMod(u, v)
		wantQ, wantR := new(big.Int).QuoRem(toBig(u), toBig(v), new(big.Int))
		if toBig(q).Cmp(wantQ) != 0 || toBig(r).Cmp(wantR) != 0 {
			t.Errorf("DivMod(%d,%d) = (%v,%v), want (%v,%v)", c.u, c.v, toBig(q), toBig(r), wantQ, wantR)
		}
	}
}

func TestDivModMultiLimbDivisor(t *testing.T) {
	u, _ := ParseHex("1000000000000000000000000000001")
	v, _ := ParseHex("ffffffffffffffff")
	q, r := DivMod(u, v)
	wantQ, wantR := new(big.Int).QuoRem(toBig(u), toBig(v), new(big.Int))
	if toBig(q).Cmp(wantQ) != 0 || toBig(r).Cmp(wantR) != 0 {
		t.Errorf("DivMod multi-limb = (%v,%v), want (%v,%v)", toBig(q), toBig(r), wantQ, wantR)
	}
}

func TestDivModByLargerOperandIsZeroQuotient(t *testing.T) {
	q, r := DivMod(Magia{5}, Magia{100})
	if !q.IsZero() {
		t.Errorf("expected zero quotient, got %v", q)
	}
	if Cmp(r, Magia{5}) != 0 {
		t.Errorf("expected remainder 5, got %v", r)
	}
}

func TestDivModScalar64(t *testing.T) {
	x, _ := ParseDecimal("123456789012345678901234567890")
	q, r := DivModScalar64(x, 1<<40+7)
	wantQ, wantR := new(big.Int).QuoRem(toBig(x), big.NewInt(0).SetUint64(1<<40+7), new(big.Int))
	if toBig(q).Cmp(wantQ) != 0 {
		t.Errorf("quotient mismatch: got %v want %v", toBig(q), wantQ)
	}
	if r != wantR.Uint64() {
		t.Errorf("remainder mismatch: got %d want %d", r, wantR.Uint64())
	}
}
