/*
Package fsmsim provides a small deterministic simulator for Moore state
machines: a registered state, a total next-state table keyed by (state,
input bit) and a combinational output that depends on the state alone.

A machine is described by a Spec and compiled with New into an immutable
transition arena indexed by state ordinal. The only mutable quantity is the
current state, which advances exactly once per input bit consumed and
returns to the initial state on Reset.

Machines are intentionally tiny transducers, not acceptors: there are no
terminal states, and a run is just the output sequence produced while an
input sequence lasts.
*/
package fsmsim
