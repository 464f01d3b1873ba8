//
// mac.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package mac implements an additively homomorphic MAC whose tag is
// an elliptic curve point:
//
//	MAC(k, v) = k·G + v·H
//
// where G is the curve generator and H is a secondary generator with
// unknown discrete logarithm relative to G. The scheme supports
// addition and scalar multiplication of tags that track the same
// operations on the authenticated values:
//
//	MAC(k1, v1) + MAC(k2, v2) = MAC(k1+k2, v1+v2)
//	          c · MAC(k,  v ) = MAC(c·k,  c·v )
package mac

import (
	"fmt"
	"math/big"

	"github.com/markkurossi/argo/ec"
)

// Mac is a homomorphic MAC tag. The tag point is the only observable
// artifact: neither the key nor the value is ever stored.
type Mac struct {
	curve *ec.Curve
	tag   ec.Point
}

// New creates the MAC tag key·G + value·H.
func New(curve *ec.Curve, key, value *big.Int, h ec.Point) (*Mac, error) {
	gTerm, err := curve.ScalarMul(key, curve.G)
	if err != nil {
		return nil, fmt.Errorf("mac: %w", err)
	}
	hTerm, err := curve.ScalarMul(value, h)
	if err != nil {
		return nil, fmt.Errorf("mac: %w", err)
	}
	tag, err := curve.Add(gTerm, hTerm)
	if err != nil {
		return nil, fmt.Errorf("mac: %w", err)
	}
	return &Mac{
		curve: curve,
		tag:   tag,
	}, nil
}

// Add combines two MACs with point addition. The result
// authenticates the sum of the values under the sum of the keys.
func (m *Mac) Add(o *Mac) (*Mac, error) {
	tag, err := m.curve.Add(m.tag, o.tag)
	if err != nil {
		return nil, fmt.Errorf("mac: %w", err)
	}
	return &Mac{
		curve: m.curve,
		tag:   tag,
	}, nil
}

// ScalarMul scales the MAC with the scalar c. The result
// authenticates c·value under the key c·key.
func (m *Mac) ScalarMul(c *big.Int) (*Mac, error) {
	tag, err := m.curve.ScalarMul(c, m.tag)
	if err != nil {
		return nil, fmt.Errorf("mac: %w", err)
	}
	return &Mac{
		curve: m.curve,
		tag:   tag,
	}, nil
}

// Tag returns the MAC tag point.
func (m *Mac) Tag() ec.Point {
	return m.tag
}

// Eq tests if the MAC tags are equal.
func (m *Mac) Eq(o *Mac) bool {
	return m.tag.Eq(o.tag)
}

func (m *Mac) String() string {
	return fmt.Sprintf("Mac(%s)", m.tag)
}
