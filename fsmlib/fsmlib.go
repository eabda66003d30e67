// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package fsmlib provides ready-made machine descriptions for common
// small synchronous designs.
package fsmlib

import "github.com/db47h/fsmsim"

// State names shared by the machines in this package.
const (
	S0 fsmsim.State = "S0"
	S1 fsmsim.State = "S1"
	S2 fsmsim.State = "S2"
	S3 fsmsim.State = "S3"
)

// Detect11 returns a 4-state detector that asserts its output for the
// cycle following two consecutive ones, once per run of ones. Any zero
// returns the machine to S0; further ones beyond the second saturate in
// S3 with the output low.
//
//	Input:  1 1 1 0 1 1 1
//	Output: 0 0 1 0 0 0 1
func Detect11() *fsmsim.Spec {
	return &fsmsim.Spec{
		States:  []fsmsim.State{S0, S1, S2, S3},
		Initial: S0,
		Transitions: map[fsmsim.Edge]fsmsim.State{
			{From: S0, In: 0}: S0, {From: S0, In: 1}: S1,
			{From: S1, In: 0}: S0, {From: S1, In: 1}: S2,
			{From: S2, In: 0}: S0, {From: S2, In: 1}: S3,
			{From: S3, In: 0}: S0, {From: S3, In: 1}: S3,
		},
		Outputs: map[fsmsim.State]fsmsim.Bit{S2: 1},
	}
}

// Detect11Builder returns the Detect11 machine assembled with a default
// transition instead of literal tables, the way designs written with an
// else branch express the same next-state logic. It is behaviorally
// identical to Detect11.
func Detect11Builder() *fsmsim.Spec {
	return fsmsim.NewBuilder(S0, S0, S1, S2, S3).
		Default(S0).
		On(S0, 1, S1).
		On(S1, 1, S2).
		On(S2, 1, S3).
		On(S3, 1, S3).
		Out(S2, 1).
		Spec()
}

// Parity returns a 2-state machine whose output is the parity of the ones
// consumed so far: a one toggles the state, a zero keeps it.
func Parity() *fsmsim.Spec {
	const (
		even fsmsim.State = "EVEN"
		odd  fsmsim.State = "ODD"
	)
	return &fsmsim.Spec{
		States:  []fsmsim.State{even, odd},
		Initial: even,
		Transitions: map[fsmsim.Edge]fsmsim.State{
			{From: even, In: 0}: even, {From: even, In: 1}: odd,
			{From: odd, In: 0}: odd, {From: odd, In: 1}: even,
		},
		Outputs: map[fsmsim.State]fsmsim.Bit{odd: 1},
	}
}
