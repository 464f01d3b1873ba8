//
// curve.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package ec implements affine elliptic curve arithmetic over prime
// fields for short-Weierstrass curves y² = x³ + B.
package ec

import (
	"errors"
	"fmt"
	"io"
	"math/big"
)

// ErrNonInvertible is returned by ModInverse when the element has no
// inverse modulo m, i.e. gcd(a, m) != 1.
var ErrNonInvertible = errors.New("ec: element is not invertible")

var (
	one   = big.NewInt(1)
	three = big.NewInt(3)
)

// Curve defines the parameters of a short-Weierstrass curve
// y² = x³ + B over the prime field of modulus P, with group
// order N and generator G. Curve coordinates live mod P; scalars
// live mod N and are reduced before every point multiplication.
// Curve must not be modified after creation. It is safe for
// concurrent use as the operations do not modify it.
type Curve struct {
	P *big.Int
	N *big.Int
	B *big.Int
	G Point
}

// Secp256k1 returns the secp256k1 curve parameters.
func Secp256k1() *Curve {
	p, _ := new(big.Int).SetString(
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F",
		16)
	n, _ := new(big.Int).SetString(
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141",
		16)
	gx, _ := new(big.Int).SetString(
		"79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798",
		16)
	gy, _ := new(big.Int).SetString(
		"483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8",
		16)

	return &Curve{
		P: p,
		N: n,
		B: big.NewInt(7),
		G: Point{
			x: gx,
			y: gy,
		},
	}
}

// ModInverse computes a⁻¹ mod m with the iterative extended
// Euclidean algorithm. Negative a is first normalized into [0, m).
// It returns ErrNonInvertible if gcd(a, m) != 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	r0 := new(big.Int).Set(m)
	r1 := new(big.Int).Mod(a, m)

	t0 := new(big.Int)
	t1 := big.NewInt(1)

	for r1.Sign() != 0 {
		q := new(big.Int).Quo(r0, r1)

		r := new(big.Int).Mul(q, r1)
		r.Sub(r0, r)
		r0, r1 = r1, r

		t := new(big.Int).Mul(q, t1)
		t.Sub(t0, t)
		t0, t1 = t1, t
	}
	if r0.Cmp(one) != 0 {
		return nil, ErrNonInvertible
	}
	return t0.Mod(t0, m), nil
}

// Add adds the points p and q. The special cases are handled in
// priority order: either operand at infinity returns the other;
// equal x with differing y returns infinity; equal points use the
// doubling formula; otherwise the chord formula applies.
func (c *Curve) Add(p, q Point) (Point, error) {
	if p.inf {
		return q, nil
	}
	if q.inf {
		return p, nil
	}
	if p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) != 0 {
		return Infinity(), nil
	}

	var lambda *big.Int

	if p.x.Cmp(q.x) == 0 {
		// Doubling: λ = 3x² / 2y.
		den := new(big.Int).Lsh(p.y, 1)
		inv, err := ModInverse(den, c.P)
		if err != nil {
			return Infinity(), fmt.Errorf("ec: point doubling: %w", err)
		}
		lambda = new(big.Int).Mul(p.x, p.x)
		lambda.Mul(lambda, three)
		lambda.Mul(lambda, inv)
		lambda.Mod(lambda, c.P)
	} else {
		// Chord: λ = (y2-y1) / (x2-x1).
		den := new(big.Int).Sub(q.x, p.x)
		inv, err := ModInverse(den, c.P)
		if err != nil {
			return Infinity(), fmt.Errorf("ec: point addition: %w", err)
		}
		lambda = new(big.Int).Sub(q.y, p.y)
		lambda.Mul(lambda, inv)
		lambda.Mod(lambda, c.P)
	}

	// x3 = λ² - x1 - x2
	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p.x)
	x3.Sub(x3, q.x)
	x3.Mod(x3, c.P)

	// y3 = λ(x1 - x3) - y1
	y3 := new(big.Int).Sub(p.x, x3)
	y3.Mul(lambda, y3)
	y3.Sub(y3, p.y)
	y3.Mod(y3, c.P)

	return Point{
		x: x3,
		y: y3,
	}, nil
}

// Neg returns the negation of the point p.
func (c *Curve) Neg(p Point) Point {
	if p.inf {
		return p
	}
	y := new(big.Int).Neg(p.y)
	y.Mod(y, c.P)
	return Point{
		x: new(big.Int).Set(p.x),
		y: y,
	}
}

// ScalarMul computes k·p with the double-and-add algorithm. The
// scalar is first reduced mod N. The loop always scans N.BitLen()
// bits so the iteration count does not depend on the scalar value;
// k ≡ 0 (mod N) yields the point at infinity.
func (c *Curve) ScalarMul(k *big.Int, p Point) (Point, error) {
	k = new(big.Int).Mod(k, c.N)

	result := Infinity()
	addend := p

	var err error
	for i := 0; i < c.N.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result, err = c.Add(result, addend)
			if err != nil {
				return Infinity(), err
			}
		}
		addend, err = c.Add(addend, addend)
		if err != nil {
			return Infinity(), err
		}
	}
	return result, nil
}

// IsOnCurve tests if the point satisfies the curve equation. The
// point at infinity is on the curve.
func (c *Curve) IsOnCurve(p Point) bool {
	if p.inf {
		return true
	}
	y2 := new(big.Int).Mul(p.y, p.y)
	y2.Mod(y2, c.P)

	x3 := new(big.Int).Mul(p.x, p.x)
	x3.Mul(x3, p.x)
	x3.Add(x3, c.B)
	x3.Mod(x3, c.P)

	return y2.Cmp(x3) == 0
}

// SqrtMod computes a square root of a modulo P with the exponent
// (P+1)/4, valid for P ≡ 3 (mod 4). The second return value
// reports whether a is a quadratic residue; when it is false the
// returned value is not a root.
func (c *Curve) SqrtMod(a *big.Int) (*big.Int, bool) {
	a = new(big.Int).Mod(a, c.P)

	e := new(big.Int).Add(c.P, one)
	e.Rsh(e, 2)

	y := new(big.Int).Exp(a, e, c.P)

	y2 := new(big.Int).Mul(y, y)
	y2.Mod(y2, c.P)

	return y, y2.Cmp(a) == 0
}

// RandomScalar returns a uniformly random scalar in [0, N) from the
// source rand.
func (c *Curve) RandomScalar(rand io.Reader) (*big.Int, error) {
	b := make([]byte, 40)
	if _, err := io.ReadFull(rand, b); err != nil {
		return nil, err
	}
	k := new(big.Int).SetBytes(b)
	return k.Mod(k, c.N), nil
}
