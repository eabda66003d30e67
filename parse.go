// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fsmsim

import (
	"strings"

	"github.com/pkg/errors"
)

// ParseSpec parses a textual machine description into a Spec. The format
// is line oriented; '#' starts a comment and blank lines are skipped.
// Directives may appear in any order:
//
//	states  S0, S1, S2, S3
//	initial S0
//	trans   S0: 0=S0, 1=S1
//	out     S2=1
//
// A trans line lists the next state for each input bit of one source
// state; an out line sets the output bit of one state. ParseSpec checks
// syntax and rejects duplicate initial, trans and out entries, but leaves
// semantic validation (totality, undeclared states) to New.
func ParseSpec(src string) (*Spec, error) {
	spec := &Spec{
		Transitions: make(map[Edge]State),
		Outputs:     make(map[State]Bit),
	}
	seenInitial := false

	for n, line := range strings.Split(src, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		directive, rest := fields[0], strings.Join(fields[1:], " ")
		var err error
		switch directive {
		case "states":
			err = parseStates(spec, rest)
		case "initial":
			if seenInitial {
				err = errors.New("duplicate initial directive")
			} else {
				seenInitial = true
				err = parseInitial(spec, rest)
			}
		case "trans":
			err = parseTrans(spec, rest)
		case "out":
			err = parseOut(spec, rest)
		default:
			err = errors.Errorf("unknown directive %q", directive)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n+1)
		}
	}
	return spec, nil
}

func parseStates(spec *Spec, rest string) error {
	if rest == "" {
		return errors.New("empty state list")
	}
	for _, f := range strings.Split(rest, ",") {
		name, err := stateName(f)
		if err != nil {
			return err
		}
		spec.States = append(spec.States, name)
	}
	return nil
}

func parseInitial(spec *Spec, rest string) error {
	name, err := stateName(rest)
	if err != nil {
		return err
	}
	spec.Initial = name
	return nil
}

// parseTrans parses "S0: 0=S0, 1=S1".
func parseTrans(spec *Spec, rest string) error {
	head, tail, ok := strings.Cut(rest, ":")
	if !ok {
		return errors.New("expected ':' after source state")
	}
	from, err := stateName(head)
	if err != nil {
		return err
	}
	for _, f := range strings.Split(tail, ",") {
		lhs, rhs, ok := strings.Cut(f, "=")
		if !ok {
			return errors.Errorf("expected input=state in %q", strings.TrimSpace(f))
		}
		in, err := bitValue(lhs)
		if err != nil {
			return err
		}
		to, err := stateName(rhs)
		if err != nil {
			return err
		}
		e := Edge{from, in}
		if _, ok := spec.Transitions[e]; ok {
			return errors.Errorf("duplicate transition %s/%d", from, in)
		}
		spec.Transitions[e] = to
	}
	return nil
}

// parseOut parses "S2=1".
func parseOut(spec *Spec, rest string) error {
	lhs, rhs, ok := strings.Cut(rest, "=")
	if !ok {
		return errors.New("expected state=bit")
	}
	s, err := stateName(lhs)
	if err != nil {
		return err
	}
	v, err := bitValue(rhs)
	if err != nil {
		return err
	}
	if _, ok := spec.Outputs[s]; ok {
		return errors.Errorf("duplicate output for state %s", s)
	}
	spec.Outputs[s] = v
	return nil
}

func stateName(s string) (State, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("missing state name")
	}
	for _, r := range s {
		if r != '_' && !('a' <= r && r <= 'z') && !('A' <= r && r <= 'Z') && !('0' <= r && r <= '9') {
			return "", errors.Errorf("invalid state name %q", s)
		}
	}
	return State(s), nil
}

func bitValue(s string) (Bit, error) {
	switch strings.TrimSpace(s) {
	case "0":
		return 0, nil
	case "1":
		return 1, nil
	}
	return 0, errors.Errorf("invalid bit %q", strings.TrimSpace(s))
}

// ParseBits converts a string of '0' and '1' characters into a bit
// sequence. Any other character fails with cause ErrInvalidInput.
func ParseBits(s string) ([]Bit, error) {
	bits := make([]Bit, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			bits[i] = 0
		case '1':
			bits[i] = 1
		default:
			return nil, errors.Wrapf(ErrInvalidInput, "character %q at position %d", s[i], i)
		}
	}
	return bits, nil
}

// FormatBits renders a bit sequence as a string of '0' and '1'
// characters, the inverse of ParseBits.
func FormatBits(bits []Bit) string {
	var b strings.Builder
	b.Grow(len(bits))
	for _, v := range bits {
		if v == 0 {
			b.WriteByte('0')
		} else {
			b.WriteByte('1')
		}
	}
	return b.String()
}
