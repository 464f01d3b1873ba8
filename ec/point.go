//
// point.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ec

import (
	"fmt"
	"math/big"
)

// Point is an affine point on a short-Weierstrass curve, or the
// point at infinity. The zero value is not a valid point; use
// NewPoint or Infinity. Points are immutable and all arithmetic
// operations return new values.
type Point struct {
	x   *big.Int
	y   *big.Int
	inf bool
}

// NewPoint creates an affine point with the coordinates x, y. The
// coordinates are copied.
func NewPoint(x, y *big.Int) Point {
	return Point{
		x: new(big.Int).Set(x),
		y: new(big.Int).Set(y),
	}
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return Point{
		inf: true,
	}
}

// IsInfinity tests if the point is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.inf
}

// X returns a copy of the x-coordinate. It must not be called for
// the point at infinity.
func (p Point) X() *big.Int {
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y-coordinate. It must not be called for
// the point at infinity.
func (p Point) Y() *big.Int {
	return new(big.Int).Set(p.y)
}

// Eq tests if the points are equal. Two infinities are equal;
// otherwise the points are equal iff their coordinates match.
func (p Point) Eq(q Point) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// Bytes returns the point in uncompressed SEC form: 0x04 followed by
// the 32-byte big-endian x and y coordinates. The point at infinity
// encodes as a single zero byte.
func (p Point) Bytes() []byte {
	if p.inf {
		return []byte{0x00}
	}
	buf := make([]byte, 65)
	buf[0] = 0x04
	p.x.FillBytes(buf[1:33])
	p.y.FillBytes(buf[33:65])
	return buf
}

func (p Point) String() string {
	if p.inf {
		return "Point(∞)"
	}
	return fmt.Sprintf("Point(%s…, %s…)",
		clip(p.x.Text(16)), clip(p.y.Text(16)))
}

func clip(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
