// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package fsmtest provides utility functions for testing machines.
package fsmtest

import (
	"math/rand"
	"testing"

	"github.com/db47h/fsmsim"
)

// Compare drives a and b with every input sequence of length 1 to maxLen,
// resetting both before each sequence, and fails the test on the first
// output divergence. With maxLen around 10 this is exhaustive yet cheap
// for the machine sizes this package targets.
func Compare(t *testing.T, a, b *fsmsim.Machine, maxLen int) {
	t.Helper()
	for l := 1; l <= maxLen; l++ {
		seq := make([]fsmsim.Bit, l)
		for v := 0; v < 1<<uint(l); v++ {
			for i := range seq {
				seq[i] = fsmsim.Bit(v >> uint(i) & 1)
			}
			compareSeq(t, a, b, seq)
		}
	}
}

// CompareRandom drives a and b with runs random input sequences of the
// given length, resetting both before each sequence, and fails the test
// on the first output divergence.
func CompareRandom(t *testing.T, a, b *fsmsim.Machine, runs, length int) {
	t.Helper()
	for r := 0; r < runs; r++ {
		seq := make([]fsmsim.Bit, length)
		for i := range seq {
			seq[i] = fsmsim.Bit(rand.Intn(2))
		}
		compareSeq(t, a, b, seq)
	}
}

func compareSeq(t *testing.T, a, b *fsmsim.Machine, seq []fsmsim.Bit) {
	t.Helper()
	a.Reset()
	b.Reset()
	oa, err := a.Outputs(seq)
	if err != nil {
		t.Fatal(err)
	}
	ob, err := b.Outputs(seq)
	if err != nil {
		t.Fatal(err)
	}
	for i := range oa {
		if oa[i] != ob[i] {
			t.Fatalf("input %s: outputs diverge at cycle %d: %s != %s",
				fsmsim.FormatBits(seq), i, fsmsim.FormatBits(oa), fsmsim.FormatBits(ob))
		}
	}
}
