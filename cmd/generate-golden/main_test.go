package main

import (
	"context"
	"testing"
)

func TestScenariosMatchOracle(t *testing.T) {
	for _, sc := range scenarios() {
		sc := sc
		t.Run(sc.name, func(t *testing.T) {
			got, want, err := sc.run()
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Errorf("%s: got %q, want %q", sc.name, got, want)
			}
		})
	}
}

func TestRunSucceeds(t *testing.T) {
	if err := run(context.Background()); err != nil {
		t.Fatal(err)
	}
}
