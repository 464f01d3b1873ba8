//
// curve_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ec

import (
	"errors"
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/markkurossi/argo/env"
)

func TestModInverse(t *testing.T) {
	m := big.NewInt(17)
	for a := int64(1); a < 17; a++ {
		inv, err := ModInverse(big.NewInt(a), m)
		if err != nil {
			t.Fatalf("ModInverse(%d, 17): %v", a, err)
		}
		prod := new(big.Int).Mul(inv, big.NewInt(a))
		prod.Mod(prod, m)
		if prod.Cmp(big.NewInt(1)) != 0 {
			t.Errorf("ModInverse(%d, 17)=%s: product %s", a, inv, prod)
		}
	}
}

func TestModInverseNegative(t *testing.T) {
	m := big.NewInt(17)
	inv, err := ModInverse(big.NewInt(-3), m)
	if err != nil {
		t.Fatalf("ModInverse(-3, 17): %v", err)
	}
	// -3 normalizes to 14 and 14*11 = 154 = 9*17 + 1.
	if inv.Cmp(big.NewInt(11)) != 0 {
		t.Errorf("ModInverse(-3, 17)=%s, expected 11", inv)
	}
}

func TestModInverseNonInvertible(t *testing.T) {
	_, err := ModInverse(big.NewInt(6), big.NewInt(9))
	if !errors.Is(err, ErrNonInvertible) {
		t.Errorf("ModInverse(6, 9): expected ErrNonInvertible, got %v", err)
	}
}

func TestGroupLaws(t *testing.T) {
	curve := Secp256k1()
	g := curve.G

	p, err := curve.Add(g, Infinity())
	if err != nil {
		t.Fatalf("Add(G, inf): %v", err)
	}
	if !p.Eq(g) {
		t.Errorf("G + inf != G")
	}

	p, err = curve.Add(Infinity(), g)
	if err != nil {
		t.Fatalf("Add(inf, G): %v", err)
	}
	if !p.Eq(g) {
		t.Errorf("inf + G != G")
	}

	p, err = curve.Add(g, curve.Neg(g))
	if err != nil {
		t.Fatalf("Add(G, -G): %v", err)
	}
	if !p.IsInfinity() {
		t.Errorf("G + (-G) != inf")
	}

	p, err = curve.ScalarMul(big.NewInt(0), g)
	if err != nil {
		t.Fatalf("ScalarMul(0, G): %v", err)
	}
	if !p.IsInfinity() {
		t.Errorf("0*G != inf")
	}

	p, err = curve.ScalarMul(curve.N, g)
	if err != nil {
		t.Fatalf("ScalarMul(N, G): %v", err)
	}
	if !p.IsInfinity() {
		t.Errorf("N*G != inf")
	}
}

func TestAddCommutative(t *testing.T) {
	curve := Secp256k1()

	p, err := curve.ScalarMul(big.NewInt(2), curve.G)
	if err != nil {
		t.Fatal(err)
	}
	q, err := curve.ScalarMul(big.NewInt(3), curve.G)
	if err != nil {
		t.Fatal(err)
	}

	pq, err := curve.Add(p, q)
	if err != nil {
		t.Fatal(err)
	}
	qp, err := curve.Add(q, p)
	if err != nil {
		t.Fatal(err)
	}
	if !pq.Eq(qp) {
		t.Errorf("P+Q != Q+P")
	}
}

func TestDoubling(t *testing.T) {
	curve := Secp256k1()

	doubled, err := curve.Add(curve.G, curve.G)
	if err != nil {
		t.Fatalf("Add(G, G): %v", err)
	}
	expected, err := curve.ScalarMul(big.NewInt(2), curve.G)
	if err != nil {
		t.Fatalf("ScalarMul(2, G): %v", err)
	}
	if !doubled.Eq(expected) {
		t.Errorf("G+G != 2*G")
	}
	if !curve.IsOnCurve(doubled) {
		t.Errorf("2*G not on curve")
	}
}

func TestScalarMulReference(t *testing.T) {
	curve := Secp256k1()
	ref := btcec.S256()
	prg := env.NewPRG([32]byte{0x01})

	for i := 0; i < 10; i++ {
		k, err := curve.RandomScalar(prg)
		if err != nil {
			t.Fatal(err)
		}
		if k.Sign() == 0 {
			continue
		}
		p, err := curve.ScalarMul(k, curve.G)
		if err != nil {
			t.Fatalf("ScalarMul: %v", err)
		}
		x, y := ref.ScalarBaseMult(k.Bytes())
		if p.X().Cmp(x) != 0 || p.Y().Cmp(y) != 0 {
			t.Fatalf("ScalarMul(%s, G) disagrees with reference", k)
		}
	}
}

func TestAddReference(t *testing.T) {
	curve := Secp256k1()
	ref := btcec.S256()
	prg := env.NewPRG([32]byte{0x02})

	for i := 0; i < 10; i++ {
		k1, err := curve.RandomScalar(prg)
		if err != nil {
			t.Fatal(err)
		}
		k2, err := curve.RandomScalar(prg)
		if err != nil {
			t.Fatal(err)
		}
		p1, err := curve.ScalarMul(k1, curve.G)
		if err != nil {
			t.Fatal(err)
		}
		p2, err := curve.ScalarMul(k2, curve.G)
		if err != nil {
			t.Fatal(err)
		}
		sum, err := curve.Add(p1, p2)
		if err != nil {
			t.Fatal(err)
		}
		x, y := ref.Add(p1.X(), p1.Y(), p2.X(), p2.Y())
		if sum.X().Cmp(x) != 0 || sum.Y().Cmp(y) != 0 {
			t.Fatalf("Add disagrees with reference")
		}
	}
}

func TestIsOnCurve(t *testing.T) {
	curve := Secp256k1()

	if !curve.IsOnCurve(curve.G) {
		t.Errorf("G not on curve")
	}
	if !curve.IsOnCurve(Infinity()) {
		t.Errorf("inf not on curve")
	}
	bogus := NewPoint(big.NewInt(1), big.NewInt(2))
	if curve.IsOnCurve(bogus) {
		t.Errorf("(1, 2) on curve")
	}
}

func TestSqrtMod(t *testing.T) {
	curve := Secp256k1()

	y2 := new(big.Int).Mul(curve.G.Y(), curve.G.Y())
	y2.Mod(y2, curve.P)

	y, ok := curve.SqrtMod(y2)
	if !ok {
		t.Fatalf("G.y² not a quadratic residue")
	}
	neg := new(big.Int).Sub(curve.P, y)
	if y.Cmp(curve.G.Y()) != 0 && neg.Cmp(curve.G.Y()) != 0 {
		t.Errorf("SqrtMod returned neither root of G.y²")
	}
}

func TestPointEq(t *testing.T) {
	curve := Secp256k1()

	if !Infinity().Eq(Infinity()) {
		t.Errorf("inf != inf")
	}
	if Infinity().Eq(curve.G) || curve.G.Eq(Infinity()) {
		t.Errorf("inf == G")
	}
	if !curve.G.Eq(NewPoint(curve.G.X(), curve.G.Y())) {
		t.Errorf("G != copy of G")
	}
}
