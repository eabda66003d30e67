// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fsmsim

// A Builder assembles a Spec incrementally. Its main purpose is the
// Default transition, the programmatic equivalent of the default/else
// branch that register-transfer designs use to keep the next-state
// logic total.
//
// The builder performs no validation; New remains the single place
// where a spec is checked.
type Builder struct {
	states  []State
	initial State
	edges   map[Edge]State
	outs    map[State]Bit
	def     State
	hasDef  bool
}

// NewBuilder returns a builder for a machine over the given states,
// starting in initial.
func NewBuilder(initial State, states ...State) *Builder {
	return &Builder{
		states:  states,
		initial: initial,
		edges:   make(map[Edge]State),
		outs:    make(map[State]Bit),
	}
}

// Default sets the next state for every (state, input) pair not given
// explicitly with On.
func (b *Builder) Default(next State) *Builder {
	b.def = next
	b.hasDef = true
	return b
}

// On sets the next state for the (from, in) pair, overriding the default.
func (b *Builder) On(from State, in Bit, to State) *Builder {
	b.edges[Edge{from, in}] = to
	return b
}

// Out sets the output bit for state s. States without an explicit output
// emit 0.
func (b *Builder) Out(s State, v Bit) *Builder {
	b.outs[s] = v
	return b
}

// Spec materializes the description built so far. Pairs not covered by On
// or Default are left out of the transition table, so New will reject the
// spec as partial.
func (b *Builder) Spec() *Spec {
	edges := make(map[Edge]State, 2*len(b.states))
	for e, to := range b.edges {
		edges[e] = to
	}
	if b.hasDef {
		for _, s := range b.states {
			for in := Bit(0); in <= 1; in++ {
				if _, ok := edges[Edge{s, in}]; !ok {
					edges[Edge{s, in}] = b.def
				}
			}
		}
	}
	outs := make(map[State]Bit, len(b.outs))
	for s, v := range b.outs {
		outs[s] = v
	}
	return &Spec{
		States:      append([]State(nil), b.states...),
		Initial:     b.initial,
		Transitions: edges,
		Outputs:     outs,
	}
}
