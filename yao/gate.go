//
// gate.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package yao implements classical two-input binary garbled gates,
// the baseline that arithmetic garbling is measured against. The
// garbler assigns each wire two random labels, encrypts the gate's
// truth table row by row, and the evaluator recovers the output
// label for its inputs from the input labels alone, without learning
// the underlying bits.
package yao

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
)

// TableSize is the number of entries in a two-input garbled table.
const TableSize = 4

// ErrDecryptionFailed is returned when the garbled table has no
// usable entry for the held input labels.
var ErrDecryptionFailed = errors.New("yao: garbled table decryption failed")

// Op defines a binary gate operation.
type Op byte

// Binary gate operations.
const (
	AND Op = iota
	XOR
	OR
)

func (op Op) String() string {
	switch op {
	case AND:
		return "AND"
	case XOR:
		return "XOR"
	case OR:
		return "OR"
	default:
		return fmt.Sprintf("{Op %d}", op)
	}
}

func (op Op) eval(a, b int) (int, error) {
	switch op {
	case AND:
		return a & b, nil
	case XOR:
		return a ^ b, nil
	case OR:
		return a | b, nil
	default:
		return 0, fmt.Errorf("yao: invalid operation %s", op)
	}
}

// Gate is a garbled two-input boolean gate. The garbled table is
// built once at construction and is immutable afterwards.
type Gate struct {
	Op    Op
	InA   Wire
	InB   Wire
	Out   Wire
	table [TableSize][]byte
}

// NewGate garbles a two-input gate. For every input combination the
// output label is XOR-masked under a key hashed from the two input
// labels, and the ciphertext is stored at the row selected by the
// input labels' S bits. The S bits are random per wire, so the
// visible row order is a random permutation of the truth table, but
// row selection at evaluation time is deterministic.
func NewGate(op Op, inA, inB, out Wire) (*Gate, error) {
	gate := &Gate{
		Op:  op,
		InA: inA,
		InB: inB,
		Out: out,
	}
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			la := inA.Label(a)
			lb := inB.Label(b)

			v, err := op.eval(a, b)
			if err != nil {
				return nil, err
			}

			c := out.Label(v)
			c.Xor(encKey(la, lb))

			var buf LabelData
			data := make([]byte, len(buf))
			copy(data, c.Bytes(&buf))

			gate.table[idx(la, lb)] = data
		}
	}
	return gate, nil
}

// Eval decrypts the garbled table row selected by the S bits of the
// held input labels and returns the output label. The evaluator
// learns only the label, not the bit it stands for.
func (g *Gate) Eval(a, b Label) (Label, error) {
	row := g.table[idx(a, b)]
	if len(row) != 16 {
		return Label{}, ErrDecryptionFailed
	}
	var out Label
	out.SetBytes(row)
	out.Xor(encKey(a, b))
	return out, nil
}

// Table returns the garbled table.
func (g *Gate) Table() [TableSize][]byte {
	return g.table
}

// Garble creates the three wires of a gate and garbles it. This is
// the garbler's single-shot setup for one gate instance.
func Garble(rand io.Reader, op Op) (*Gate, error) {
	inA, err := NewWire(rand)
	if err != nil {
		return nil, err
	}
	inB, err := NewWire(rand)
	if err != nil {
		return nil, err
	}
	out, err := NewWire(rand)
	if err != nil {
		return nil, err
	}
	return NewGate(op, inA, inB, out)
}

// encKey derives the row encryption key by hashing the input labels.
func encKey(a, b Label) Label {
	var abuf, bbuf LabelData

	h := sha256.New()
	h.Write(a.Bytes(&abuf))
	h.Write(b.Bytes(&bbuf))
	digest := h.Sum(nil)

	var key Label
	key.SetBytes(digest[:16])
	return key
}

// idx computes the garbled table row index from the label S bits.
func idx(a, b Label) int {
	var ret int
	if a.S() {
		ret |= 0x2
	}
	if b.S() {
		ret |= 0x1
	}
	return ret
}
