//
// wire.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package arith implements authenticated arithmetic wires. A wire
// carries a value and its homomorphic MAC tag; the MAC key is known
// only to the garbler. The evaluator can add wires and multiply them
// by known constants without the key, and the garbler detects
// tampering by verifying the tag. There is no wire-by-wire
// multiplication gate: only addition and known-constant scaling are
// authenticated by this scheme.
package arith

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"

	"github.com/markkurossi/argo/ec"
	"github.com/markkurossi/argo/mac"
)

// ErrWireMismatch is returned when combining wires that do not share
// the same secondary generator H.
var ErrWireMismatch = errors.New("arith: wires use different generators")

// Wire is an arithmetic circuit wire: a value mod N and its MAC tag.
// The value is visible to the evaluator; the key never is.
type Wire struct {
	curve *ec.Curve
	value *big.Int
	mac   *mac.Mac
	h     ec.Point
}

// NewWire creates a wire for the value, authenticated under the key.
// This is a garbler operation; the evaluator never sees the key.
func NewWire(curve *ec.Curve, value, key *big.Int, h ec.Point) (
	*Wire, error) {

	value = new(big.Int).Mod(value, curve.N)
	m, err := mac.New(curve, key, value, h)
	if err != nil {
		return nil, err
	}
	return &Wire{
		curve: curve,
		value: value,
		mac:   m,
		h:     h,
	}, nil
}

// RawWire creates a wire from an existing MAC without authenticating
// the value. It models wire data received from an untrusted
// evaluator; Verify decides whether the pair is genuine.
func RawWire(curve *ec.Curve, value *big.Int, m *mac.Mac, h ec.Point) *Wire {
	return &Wire{
		curve: curve,
		value: new(big.Int).Mod(value, curve.N),
		mac:   m,
		h:     h,
	}
}

// Value returns the wire value.
func (w *Wire) Value() *big.Int {
	return new(big.Int).Set(w.value)
}

// Mac returns the wire's MAC.
func (w *Wire) Mac() *mac.Mac {
	return w.mac
}

// H returns the wire's secondary generator.
func (w *Wire) H() ec.Point {
	return w.h
}

// Add computes the addition gate. The evaluator can compute this
// without the key: the sum of the tags authenticates the sum of the
// values under the sum of the keys.
func (w *Wire) Add(o *Wire) (*Wire, error) {
	if !w.h.Eq(o.h) {
		return nil, ErrWireMismatch
	}
	value := new(big.Int).Add(w.value, o.value)
	value.Mod(value, w.curve.N)

	m, err := w.mac.Add(o.mac)
	if err != nil {
		return nil, err
	}
	return &Wire{
		curve: w.curve,
		value: value,
		mac:   m,
		h:     w.h,
	}, nil
}

// MulConst computes the constant-multiplication gate. The evaluator
// scales the value and the tag identically; the result verifies
// under the scaled key.
func (w *Wire) MulConst(c *big.Int) (*Wire, error) {
	c = new(big.Int).Mod(c, w.curve.N)

	value := new(big.Int).Mul(c, w.value)
	value.Mod(value, w.curve.N)

	m, err := w.mac.ScalarMul(c)
	if err != nil {
		return nil, err
	}
	return &Wire{
		curve: w.curve,
		value: value,
		mac:   m,
		h:     w.h,
	}, nil
}

// Verify checks the wire's MAC against the key. This is a garbler
// operation: the tag is recomputed for the visible value and
// compared against the wire's tag in constant time. A tampered value
// passes only by breaking the discrete-log binding of G and H.
func (w *Wire) Verify(key *big.Int) (bool, error) {
	expected, err := mac.New(w.curve, key, w.value, w.h)
	if err != nil {
		return false, err
	}
	ok := subtle.ConstantTimeCompare(w.mac.Tag().Bytes(),
		expected.Tag().Bytes())
	return ok == 1, nil
}

func (w *Wire) String() string {
	return fmt.Sprintf("Wire(%s, %s)", w.value, w.mac)
}
