//
// h.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mac

import (
	"crypto/sha256"
	"errors"
	"math/big"

	"github.com/markkurossi/argo/ec"
)

// HDomain is the domain-separation string hashed to derive the
// secondary generator H.
const HDomain = "argo-h-generator"

// hMaxRetries bounds the number of x-coordinate increments HPoint
// tries before giving up.
const hMaxRetries = 64

// ErrInvalidCurvePoint is returned when no valid curve point was
// found within the retry bound.
var ErrInvalidCurvePoint = errors.New("mac: no valid curve point found")

var one = big.NewInt(1)

// HPoint derives the "nothing-up-my-sleeve" secondary generator H:
// the SHA-256 digest of HDomain gives a candidate x-coordinate and
// y is solved from y² = x³ + B with the P ≡ 3 (mod 4) square root.
// Non-residue candidates are incremented by one until a valid point
// is found; ErrInvalidCurvePoint is returned if the retry bound is
// exhausted. The derivation is deterministic so all parties obtain
// the same H without anyone knowing its discrete log.
func HPoint(curve *ec.Curve) (ec.Point, error) {
	digest := sha256.Sum256([]byte(HDomain))

	x := new(big.Int).SetBytes(digest[:])
	x.Mod(x, curve.P)

	for i := 0; i < hMaxRetries; i++ {
		// y² = x³ + B
		y2 := new(big.Int).Mul(x, x)
		y2.Mul(y2, x)
		y2.Add(y2, curve.B)
		y2.Mod(y2, curve.P)

		y, ok := curve.SqrtMod(y2)
		if ok {
			return ec.NewPoint(x, y), nil
		}
		x.Add(x, one)
		x.Mod(x, curve.P)
	}
	return ec.Infinity(), ErrInvalidCurvePoint
}
