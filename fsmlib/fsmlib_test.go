// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fsmlib_test

import (
	"testing"

	"github.com/db47h/fsmsim"
	"github.com/db47h/fsmsim/fsmlib"
	"github.com/db47h/fsmsim/fsmtest"
)

func TestDetect11(t *testing.T) {
	m := fsmsim.MustNew(fsmlib.Detect11())
	in, err := fsmsim.ParseBits("1110111")
	if err != nil {
		t.Fatal(err)
	}
	out, err := m.Outputs(in)
	if err != nil {
		t.Fatal(err)
	}
	if got := fsmsim.FormatBits(out); got != "0010001" {
		t.Fatalf("expected 0010001, got %s", got)
	}
}

// The literal-table and default-transition constructions describe the
// same machine.
func TestDetect11_equivalence(t *testing.T) {
	a := fsmsim.MustNew(fsmlib.Detect11())
	b := fsmsim.MustNew(fsmlib.Detect11Builder())
	fsmtest.Compare(t, a, b, 10)
	fsmtest.CompareRandom(t, a, b, 50, 1000)
}

func TestParity(t *testing.T) {
	m := fsmsim.MustNew(fsmlib.Parity())
	in, err := fsmsim.ParseBits("011010001111")
	if err != nil {
		t.Fatal(err)
	}
	ones := 0
	for i, b := range in {
		out, err := m.Step(b)
		if err != nil {
			t.Fatal(err)
		}
		// output reflects the parity before this bit is consumed
		if int(out) != ones&1 {
			t.Fatalf("cycle %d: expected parity %d, got %d", i, ones&1, out)
		}
		ones += int(b)
	}
}
