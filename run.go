// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fsmsim

import "github.com/google/uuid"

// A Run pairs an input sequence with the outputs it produced. The ID keys
// the run for downstream consumers that collect output sequences by run
// identifier.
type Run struct {
	ID      uuid.UUID
	Inputs  []Bit
	Outputs []Bit
}

// Record resets the machine, runs it over inputs and returns the completed
// run under a fresh identifier. If an input is invalid no Run is produced
// and the machine is left in the state reached so far.
func (m *Machine) Record(inputs []Bit) (*Run, error) {
	m.Reset()
	outs, err := m.Outputs(inputs)
	if err != nil {
		return nil, err
	}
	return &Run{
		ID:      uuid.New(),
		Inputs:  append([]Bit(nil), inputs...),
		Outputs: outs,
	}, nil
}
