// Command generate-golden regenerates the golden test vectors consumed
// by internal/bigint's seed-scenario tests. It computes each scenario
// independently with math/big as an oracle and this module's own
// SignedInt implementation, fails loudly on any mismatch, and prints one
// plain-text "name got=value" line per scenario.
package main

import (
	"context"
	"fmt"
	"math/big"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/magia/internal/barrett"
	"github.com/agbru/magia/internal/bigint"
)

type scenario struct {
	name string
	run  func() (got, want string, err error)
}

func scenarios() []scenario {
	return []scenario{
		{
			name: "decimal_parse",
			run: func() (string, string, error) {
				v, err := bigint.FromDecimal("18_446_744_073_709_551_616")
				if err != nil {
					return "", "", err
				}
				return v.String(), "18446744073709551616", nil
			},
		},
		{
			name: "division",
			run: func() (string, string, error) {
				a, _ := bigint.FromDecimal("16943852051772892430707956759219")
				b, _ := bigint.FromDecimal("16883797134507450982")
				q, r, err := a.QuoRem(b)
				if err != nil {
					return "", "", err
				}
				ba, _ := new(big.Int).SetString(a.String(), 10)
				bb, _ := new(big.Int).SetString(b.String(), 10)
				wq, wr := new(big.Int).QuoRem(ba, bb, new(big.Int))
				got := fmt.Sprintf("%s,%s", q, r)
				want := fmt.Sprintf("%s,%s", wq, wr)
				return got, want, nil
			},
		},
		{
			name: "barrett",
			run: func() (string, string, error) {
				m, _ := bigint.FromDecimal("12345678901234567890")
				x, _ := bigint.FromDecimal("123456789012345678901234567890")
				bm, _ := new(big.Int).SetString(m.String(), 10)
				bx, _ := new(big.Int).SetString(x.String(), 10)
				want := new(big.Int).Mod(bx, bm).String()
				red, err := barrett.New(m)
				if err != nil {
					return "", "", err
				}
				r, err := red.Remainder(x)
				if err != nil {
					return "", "", err
				}
				return r.String(), want, nil
			},
		},
		{
			name: "gcd",
			run: func() (string, string, error) {
				a, _ := bigint.FromDecimal("1517700316")
				b, _ := bigint.FromDecimal("1517700320")
				got := a.GCD(b).String()
				ba, _ := new(big.Int).SetString(a.String(), 10)
				bb, _ := new(big.Int).SetString(b.String(), 10)
				want := new(big.Int).GCD(nil, nil, ba, bb).String()
				return got, want, nil
			},
		},
	}
}

func run(ctx context.Context) error {
	g, _ := errgroup.WithContext(ctx)
	results := make([]string, len(scenarios()))
	for i, sc := range scenarios() {
		i, sc := i, sc
		g.Go(func() error {
			got, want, err := sc.run()
			if err != nil {
				return fmt.Errorf("%s: %w", sc.name, err)
			}
			if got != want {
				return fmt.Errorf("%s: mismatch: got %q want %q", sc.name, got, want)
			}
			results[i] = fmt.Sprintf("%-16s got=%s", sc.name, got)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, r := range results {
		fmt.Println(r)
	}
	return nil
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "generate-golden:", err)
		os.Exit(1)
	}
}
