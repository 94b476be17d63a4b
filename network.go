package sburger

import (
	"fmt"
	"slices"
	"strings"
)

type opKind uint8

const (
	opXorConst opKind = iota + 1
	opXorKey
	opInvert
	opRotl
	opRotr
)

// step is one per-byte operation of the network.
type step struct {
	kind opKind
	arg  byte
}

func (s step) apply(b, k byte) byte {
	switch s.kind {
	case opXorConst:
		return b ^ s.arg
	case opXorKey:
		return b ^ k
	case opInvert:
		return invert(b)
	case opRotl:
		return rotl(b, int(s.arg))
	case opRotr:
		return rotr(b, int(s.arg))
	}
	panic(fmt.Sprintf("sburger: unknown step kind %d", s.kind))
}

func (s step) inverse() step {
	switch s.kind {
	case opRotl:
		return step{kind: opRotr, arg: s.arg}
	case opRotr:
		return step{kind: opRotl, arg: s.arg}
	}
	// xor and inversion undo themselves
	return s
}

func (s step) String() string {
	switch s.kind {
	case opXorConst:
		return fmt.Sprintf("xor(%#02x)", s.arg)
	case opXorKey:
		return "xor(key)"
	case opInvert:
		return "not"
	case opRotl:
		return fmt.Sprintf("rotl(%d)", s.arg)
	case opRotr:
		return fmt.Sprintf("rotr(%d)", s.arg)
	}
	panic(fmt.Sprintf("sburger: unknown step kind %d", s.kind))
}

// network is the transformation compiled from one set of settings.
// undo holds the inverse of each step in reverse order.
type network struct {
	reverseIn  bool
	reverseOut bool
	steps      []step
	undo       []step
}

func compile(s Settings) *network {
	n := &network{
		reverseIn:  s.F[1]%2 == 1,
		reverseOut: s.F[3]%2 == 1,
	}

	add := func(on bool, st step) {
		if on {
			n.steps = append(n.steps, st)
		}
	}
	add(s.B[2]%2 == 0, step{kind: opXorConst, arg: byte(s.B[2])})
	add(s.B[0]%2 == 1, step{kind: opInvert})
	add(s.F[0]%8 != 0, step{kind: opRotl, arg: byte(s.F[0] % 8)})
	add(true, step{kind: opXorKey})
	add(s.B[1]%2 == 1, step{kind: opInvert})
	add(s.F[2]%8 != 0, step{kind: opRotr, arg: byte(s.F[2] % 8)})
	add(s.B[3]%2 == 0, step{kind: opXorConst, arg: byte(s.B[3])})

	n.undo = make([]step, len(n.steps))
	for i, st := range n.steps {
		n.undo[len(n.steps)-1-i] = st.inverse()
	}
	return n
}

// encrypt transforms data in place. len(data) must be in 1..BlockSize.
func (n *network) encrypt(key *[KeySize]byte, data []byte) {
	if n.reverseIn {
		slices.Reverse(data)
	}
	run(n.steps, key, data)
	if n.reverseOut {
		slices.Reverse(data)
	}
}

// decrypt undoes encrypt.
func (n *network) decrypt(key *[KeySize]byte, data []byte) {
	if n.reverseOut {
		slices.Reverse(data)
	}
	run(n.undo, key, data)
	if n.reverseIn {
		slices.Reverse(data)
	}
}

func run(steps []step, key *[KeySize]byte, data []byte) {
	for i, b := range data {
		for _, st := range steps {
			b = st.apply(b, key[i])
		}
		data[i] = b
	}
}

// String describes the compiled network, e.g. "rev-in xor(0x0a) not xor(key)".
func (n *network) String() string {
	var parts []string
	if n.reverseIn {
		parts = append(parts, "rev-in")
	}
	for _, st := range n.steps {
		parts = append(parts, st.String())
	}
	if n.reverseOut {
		parts = append(parts, "rev-out")
	}
	return strings.Join(parts, " ")
}
