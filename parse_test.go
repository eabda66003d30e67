// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fsmsim_test

import (
	"os"
	"testing"

	"github.com/db47h/fsmsim"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpec(t *testing.T) {
	src := `
# pulse on the cycle after two consecutive ones
states  S0, S1, S2, S3
initial S0
trans   S0: 0=S0, 1=S1
trans   S1: 0=S0, 1=S2
trans   S2: 0=S0, 1=S3
trans   S3: 0=S0, 1=S3
out     S2=1
`
	spec, err := fsmsim.ParseSpec(src)
	require.NoError(t, err)
	assert.Equal(t, detect11(), spec)

	_, err = fsmsim.New(spec)
	require.NoError(t, err)
}

func TestParseSpec_errors(t *testing.T) {
	td := []struct {
		name string
		src  string
		msg  string
	}{
		{"unknown directive", "state S0", `line 1: unknown directive "state"`},
		{"empty states", "states", "line 1: empty state list"},
		{"bad state name", "states S0, S-1", "line 1: invalid state name"},
		{"duplicate initial", "initial S0\ninitial S1", "line 2: duplicate initial"},
		{"missing colon", "trans S0 0=S0", "line 1: expected ':'"},
		{"missing equals", "trans S0: 0 S0", "line 1: expected input=state"},
		{"bad input bit", "trans S0: 2=S0", "line 1: invalid bit"},
		{"duplicate edge", "trans S0: 0=S0, 0=S1", "line 1: duplicate transition S0/0"},
		{"bad out", "out S2", "line 1: expected state=bit"},
		{"bad out bit", "out S2=3", "line 1: invalid bit"},
		{"duplicate out", "out S2=1\nout S2=0", "line 2: duplicate output for state S2"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, err := fsmsim.ParseSpec(d.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), d.msg)
		})
	}
}

// Semantic errors are left to New: a parsed but partial machine must
// still be rejected at construction.
func TestParseSpec_partial(t *testing.T) {
	spec, err := fsmsim.ParseSpec("states S0, S1\ninitial S0\ntrans S0: 0=S0, 1=S1")
	require.NoError(t, err)
	_, err = fsmsim.New(spec)
	require.Error(t, err)
	assert.Equal(t, fsmsim.ErrInvalidSpec, errors.Cause(err))
}

func TestParseSpec_testdata(t *testing.T) {
	src, err := os.ReadFile("testdata/detect11.fsm")
	require.NoError(t, err)
	spec, err := fsmsim.ParseSpec(string(src))
	require.NoError(t, err)
	m, err := fsmsim.New(spec)
	require.NoError(t, err)

	in, err := fsmsim.ParseBits("1110111")
	require.NoError(t, err)
	out, err := m.Outputs(in)
	require.NoError(t, err)
	assert.Equal(t, "0010001", fsmsim.FormatBits(out))
}

func TestParseBits(t *testing.T) {
	bits, err := fsmsim.ParseBits("0110")
	require.NoError(t, err)
	assert.Equal(t, []fsmsim.Bit{0, 1, 1, 0}, bits)
	assert.Equal(t, "0110", fsmsim.FormatBits(bits))

	bits, err = fsmsim.ParseBits("")
	require.NoError(t, err)
	assert.Empty(t, bits)

	_, err = fsmsim.ParseBits("0120")
	require.Error(t, err)
	assert.Equal(t, fsmsim.ErrInvalidInput, errors.Cause(err))
	assert.Contains(t, err.Error(), "position 2")
}
