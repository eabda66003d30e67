// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fsmsim

import (
	"iter"

	"github.com/pkg/errors"
)

// Root causes for the two failure modes. Errors returned by this package
// wrap one of these; use errors.Cause (or errors.Is) to discriminate.
var (
	// ErrInvalidSpec is the cause of errors returned by New when the
	// supplied Spec is incomplete or references undeclared states.
	ErrInvalidSpec = errors.New("invalid machine spec")
	// ErrInvalidInput is the cause of errors returned when an input
	// value is not 0 or 1.
	ErrInvalidInput = errors.New("input is not a bit")
)

// A Bit is a single wire value. Only 0 and 1 are valid.
type Bit uint8

// A State names one state of a machine. States are opaque identifiers;
// the simulator attaches no meaning to the name.
type State string

// An Edge keys the transition table by source state and input bit.
type Edge struct {
	From State
	In   Bit
}

// A Spec is the static description of a Moore machine. It is consumed by
// New and never mutated afterwards.
//
// Transitions must be total over States × {0, 1}. Outputs may omit states;
// an omitted state outputs 0, matching designs that assign a default
// output and override it for the asserted state.
type Spec struct {
	States      []State
	Initial     State
	Transitions map[Edge]State
	Outputs     map[State]Bit
}

// A Machine is a compiled, runnable machine. The zero value is not usable;
// obtain instances from New or MustNew.
//
// A Machine owns its state exclusively. Distinct instances are fully
// independent and need no synchronization; a single instance must not be
// shared between goroutines.
type Machine struct {
	states  []State
	next    [][2]int // next[ordinal][input bit]
	out     []Bit
	initial int
	cur     int
}

// New compiles spec into a Machine, lowering the transition and output
// maps to dense arrays indexed by state ordinal. The new machine starts
// in the initial state.
//
// New fails with cause ErrInvalidSpec if the initial state is not
// declared, if the transition table is not total over States × {0, 1},
// or if any table entry references an undeclared state or a non-bit
// value.
func New(spec *Spec) (*Machine, error) {
	if len(spec.States) == 0 {
		return nil, errors.Wrap(ErrInvalidSpec, "no states declared")
	}
	index := make(map[State]int, len(spec.States))
	for i, s := range spec.States {
		if _, ok := index[s]; ok {
			return nil, errors.Wrapf(ErrInvalidSpec, "state %s declared twice", s)
		}
		index[s] = i
	}
	initial, ok := index[spec.Initial]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidSpec, "initial state %s not declared", spec.Initial)
	}

	m := &Machine{
		states:  append([]State(nil), spec.States...),
		next:    make([][2]int, len(spec.States)),
		out:     make([]Bit, len(spec.States)),
		initial: initial,
		cur:     initial,
	}

	for e, to := range spec.Transitions {
		from, ok := index[e.From]
		if !ok {
			return nil, errors.Wrapf(ErrInvalidSpec, "transition from undeclared state %s", e.From)
		}
		if e.In > 1 {
			return nil, errors.Wrapf(ErrInvalidSpec, "transition %s: input %d is not a bit", e.From, e.In)
		}
		n, ok := index[to]
		if !ok {
			return nil, errors.Wrapf(ErrInvalidSpec, "transition %s/%d to undeclared state %s", e.From, e.In, to)
		}
		m.next[from][e.In] = n + 1 // 0 marks a missing entry
	}
	for i, nx := range m.next {
		for b := range nx {
			if nx[b] == 0 {
				return nil, errors.Wrapf(ErrInvalidSpec, "no transition from state %s on input %d", m.states[i], b)
			}
			m.next[i][b]--
		}
	}

	for s, v := range spec.Outputs {
		i, ok := index[s]
		if !ok {
			return nil, errors.Wrapf(ErrInvalidSpec, "output for undeclared state %s", s)
		}
		if v > 1 {
			return nil, errors.Wrapf(ErrInvalidSpec, "output for state %s: %d is not a bit", s, v)
		}
		m.out[i] = v
	}

	return m, nil
}

// MustNew is like New but panics if the spec is invalid. It simplifies
// initialization of machines known to be well formed.
func MustNew(spec *Spec) *Machine {
	m, err := New(spec)
	if err != nil {
		panic(err)
	}
	return m
}

// Current returns the machine's current state.
func (m *Machine) Current() State {
	return m.states[m.cur]
}

// Reset returns the machine to its initial state, like a synchronous
// reset sampled on the next clock edge. Resetting an already reset
// machine is a no-op.
func (m *Machine) Reset() {
	m.cur = m.initial
}

// Step consumes one input bit and returns the output of the current
// cycle. The output is a function of the state at the start of the cycle;
// the state register then advances to the next state, which takes effect
// on the following Step.
//
// Step fails with cause ErrInvalidInput if in is not 0 or 1, and in that
// case leaves the state unchanged.
func (m *Machine) Step(in Bit) (Bit, error) {
	if in > 1 {
		return 0, errors.Wrapf(ErrInvalidInput, "input %d", in)
	}
	out := m.out[m.cur]
	m.cur = m.next[m.cur][in]
	return out, nil
}

// Run returns a lazy sequence of output bits, one per input bit consumed,
// computed by stepping the machine as the sequence is iterated. Iteration
// stops after the last input, or at the first invalid input, which is
// yielded once as an error with the machine state left unchanged.
//
// A run is not restartable: iterating again continues from wherever the
// previous iteration left the state register. Call Reset to start over.
func (m *Machine) Run(inputs []Bit) iter.Seq2[Bit, error] {
	return func(yield func(Bit, error) bool) {
		for _, in := range inputs {
			out, err := m.Step(in)
			if err != nil {
				yield(0, err)
				return
			}
			if !yield(out, nil) {
				return
			}
		}
	}
}

// Outputs runs the machine over inputs and collects the produced bits.
// It is the eager form of Run.
func (m *Machine) Outputs(inputs []Bit) ([]Bit, error) {
	outs := make([]Bit, 0, len(inputs))
	for out, err := range m.Run(inputs) {
		if err != nil {
			return nil, err
		}
		outs = append(outs, out)
	}
	return outs, nil
}
