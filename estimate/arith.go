//
// arith.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package estimate

import (
	"fmt"
)

// ArithCount tracks gate usage in an arithmetic circuit where every
// gate operates on full field elements.
type ArithCount struct {
	Add   int
	Mul   int
	Inv   int
	Const int
}

// Total returns the total number of gates.
func (c ArithCount) Total() int {
	return c.Add + c.Mul + c.Inv + c.Const
}

// Sum returns the sum of the gate counts.
func (c ArithCount) Sum(o ArithCount) ArithCount {
	return ArithCount{
		Add:   c.Add + o.Add,
		Mul:   c.Mul + o.Mul,
		Inv:   c.Inv + o.Inv,
		Const: c.Const + o.Const,
	}
}

// Scale returns the gate counts multiplied by n.
func (c ArithCount) Scale(n int) ArithCount {
	return ArithCount{
		Add:   c.Add * n,
		Mul:   c.Mul * n,
		Inv:   c.Inv * n,
		Const: c.Const * n,
	}
}

func (c ArithCount) String() string {
	return fmt.Sprintf("ADD: %d, MUL: %d, INV: %d, CONST: %d | Total: %d",
		c.Add, c.Mul, c.Inv, c.Const, c.Total())
}

// ArithCircuit models arithmetic circuit construction for finite
// field operations. A field operation is a single gate regardless of
// the bit width; this is the efficiency source of the scheme.
type ArithCircuit struct {
	Bits int
}

// NewArithCircuit creates an arithmetic gate-count model for
// bits-wide field elements.
func NewArithCircuit(bits int) *ArithCircuit {
	return &ArithCircuit{
		Bits: bits,
	}
}

// Addition counts a field addition: one gate. Subtraction is
// addition with negation, which is free.
func (c *ArithCircuit) Addition() ArithCount {
	return ArithCount{Add: 1}
}

// Multiplication counts a field multiplication: one gate.
func (c *ArithCircuit) Multiplication() ArithCount {
	return ArithCount{Mul: 1}
}

// Inversion counts a field inversion: one gate.
func (c *ArithCircuit) Inversion() ArithCount {
	return ArithCount{Inv: 1}
}

// ConstMul counts a multiplication by a known constant: one gate.
func (c *ArithCircuit) ConstMul() ArithCount {
	return ArithCount{Const: 1}
}

// ECAdd counts one elliptic curve point addition: slope from two
// subtractions, an inversion, and a multiplication; coordinates from
// a squaring, a multiplication, and four subtractions.
func (c *ArithCircuit) ECAdd() ArithCount {
	return ArithCount{
		Add: 6,
		Mul: 3,
		Inv: 1,
	}
}

// ECDouble counts one elliptic curve point doubling.
func (c *ArithCircuit) ECDouble() ArithCount {
	return ArithCount{
		Add:   5,
		Mul:   4,
		Inv:   1,
		Const: 1,
	}
}

// ECScalarMul counts a scalar multiplication with double-and-add:
// n doublings and n/2 additions on average for an n-bit scalar.
func (c *ArithCircuit) ECScalarMul(scalarBits int) ArithCount {
	gates := c.ECDouble().Scale(scalarBits)
	return gates.Sum(c.ECAdd().Scale(scalarBits / 2))
}
