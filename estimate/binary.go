//
// binary.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package estimate implements gate-count models for finite field and
// elliptic curve operations, both as binary circuits (the
// traditional garbled-circuit decomposition into boolean gates) and
// as arithmetic circuits where wires carry field elements directly.
// The models quantify the overhead that motivates arithmetic
// garbling.
package estimate

import (
	"fmt"
)

// GateCount tracks gate usage in a binary circuit.
type GateCount struct {
	AND int
	XOR int
	NOT int
}

// Total returns the total number of gates.
func (c GateCount) Total() int {
	return c.AND + c.XOR + c.NOT
}

// Add returns the sum of the gate counts.
func (c GateCount) Add(o GateCount) GateCount {
	return GateCount{
		AND: c.AND + o.AND,
		XOR: c.XOR + o.XOR,
		NOT: c.NOT + o.NOT,
	}
}

// Mul returns the gate counts multiplied by n.
func (c GateCount) Mul(n int) GateCount {
	return GateCount{
		AND: c.AND * n,
		XOR: c.XOR * n,
		NOT: c.NOT * n,
	}
}

func (c GateCount) String() string {
	return fmt.Sprintf("AND: %d, XOR: %d, NOT: %d | Total: %d",
		c.AND, c.XOR, c.NOT, c.Total())
}

// BinaryCircuit models binary circuit construction for finite field
// arithmetic at a given bit width. The counts are estimates based on
// known circuit constructions; real implementations are similar or
// worse.
type BinaryCircuit struct {
	Bits int
}

// NewBinaryCircuit creates a gate-count model for bits-wide field
// elements.
func NewBinaryCircuit(bits int) *BinaryCircuit {
	return &BinaryCircuit{
		Bits: bits,
	}
}

// Addition counts a ripple-carry addition of two n-bit numbers: one
// full adder per bit.
func (c *BinaryCircuit) Addition() GateCount {
	return GateCount{
		AND: 2 * c.Bits,
		XOR: 3 * c.Bits,
	}
}

// Multiplication counts a schoolbook multiplication of two n-bit
// numbers: n partial products of n AND gates each, then n-1
// additions.
func (c *BinaryCircuit) Multiplication() GateCount {
	n := c.Bits
	return GateCount{
		AND: n*n + (n-1)*2*n,
		XOR: (n - 1) * 3 * n,
	}
}

// ModularReduction counts the reduction of a 2n-bit product modulo
// an n-bit prime, roughly two multiplications plus comparisons.
func (c *BinaryCircuit) ModularReduction() GateCount {
	mul := c.Multiplication()
	return GateCount{
		AND: mul.AND * 2,
		XOR: mul.XOR * 2,
		NOT: c.Bits,
	}
}

// FieldMul counts a full finite field multiplication: multiply and
// reduce.
func (c *BinaryCircuit) FieldMul() GateCount {
	return c.Multiplication().Add(c.ModularReduction())
}

// FieldInv counts a field inversion with the extended Euclidean
// algorithm: ~n iterations of comparisons, conditional subtractions,
// and shifts.
func (c *BinaryCircuit) FieldInv() GateCount {
	n := c.Bits
	return GateCount{
		AND: n * n * 10,
		XOR: n * n * 15,
		NOT: n * n,
	}
}

// ECAdd counts one elliptic curve point addition: the slope needs an
// inversion and a multiplication, the output coordinates three more
// multiplications and four subtractions.
func (c *BinaryCircuit) ECAdd() GateCount {
	gates := c.FieldInv()
	gates = gates.Add(c.FieldMul())
	gates = gates.Add(c.FieldMul())
	gates = gates.Add(c.FieldMul())
	gates = gates.Add(c.Addition().Mul(4))
	return gates
}

// ECScalarMul counts a scalar multiplication with double-and-add:
// n doublings and n/2 additions on average for an n-bit scalar.
func (c *BinaryCircuit) ECScalarMul(scalarBits int) GateCount {
	ops := scalarBits + scalarBits/2
	return c.ECAdd().Mul(ops)
}
