//
// mac_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mac

import (
	"math/big"
	"testing"

	"github.com/markkurossi/argo/ec"
	"github.com/markkurossi/argo/env"
)

func TestHPoint(t *testing.T) {
	curve := ec.Secp256k1()

	h, err := HPoint(curve)
	if err != nil {
		t.Fatalf("HPoint: %v", err)
	}
	if h.IsInfinity() {
		t.Fatalf("H is infinity")
	}
	if !curve.IsOnCurve(h) {
		t.Fatalf("H not on curve")
	}
	if h.Eq(curve.G) {
		t.Fatalf("H equals G")
	}

	h2, err := HPoint(curve)
	if err != nil {
		t.Fatalf("HPoint: %v", err)
	}
	if !h.Eq(h2) {
		t.Fatalf("HPoint not deterministic")
	}
}

func TestAddHomomorphism(t *testing.T) {
	curve := ec.Secp256k1()
	h, err := HPoint(curve)
	if err != nil {
		t.Fatal(err)
	}
	prg := env.NewPRG([32]byte{0x03})

	for i := 0; i < 4; i++ {
		k1, _ := curve.RandomScalar(prg)
		k2, _ := curve.RandomScalar(prg)
		v1, _ := curve.RandomScalar(prg)
		v2, _ := curve.RandomScalar(prg)

		m1, err := New(curve, k1, v1, h)
		if err != nil {
			t.Fatal(err)
		}
		m2, err := New(curve, k2, v2, h)
		if err != nil {
			t.Fatal(err)
		}
		sum, err := m1.Add(m2)
		if err != nil {
			t.Fatal(err)
		}

		kSum := new(big.Int).Add(k1, k2)
		kSum.Mod(kSum, curve.N)
		vSum := new(big.Int).Add(v1, v2)
		vSum.Mod(vSum, curve.N)

		expected, err := New(curve, kSum, vSum, h)
		if err != nil {
			t.Fatal(err)
		}
		if !sum.Eq(expected) {
			t.Fatalf("MAC(k1,v1)+MAC(k2,v2) != MAC(k1+k2,v1+v2)")
		}
	}
}

func TestScalarMulHomomorphism(t *testing.T) {
	curve := ec.Secp256k1()
	h, err := HPoint(curve)
	if err != nil {
		t.Fatal(err)
	}
	prg := env.NewPRG([32]byte{0x04})

	for i := 0; i < 4; i++ {
		k, _ := curve.RandomScalar(prg)
		v, _ := curve.RandomScalar(prg)
		c, _ := curve.RandomScalar(prg)

		m, err := New(curve, k, v, h)
		if err != nil {
			t.Fatal(err)
		}
		scaled, err := m.ScalarMul(c)
		if err != nil {
			t.Fatal(err)
		}

		ck := new(big.Int).Mul(c, k)
		ck.Mod(ck, curve.N)
		cv := new(big.Int).Mul(c, v)
		cv.Mod(cv, curve.N)

		expected, err := New(curve, ck, cv, h)
		if err != nil {
			t.Fatal(err)
		}
		if !scaled.Eq(expected) {
			t.Fatalf("c*MAC(k,v) != MAC(c*k,c*v)")
		}
	}
}

func TestAddConcrete(t *testing.T) {
	curve := ec.Secp256k1()
	h, err := HPoint(curve)
	if err != nil {
		t.Fatal(err)
	}

	m1, err := New(curve, big.NewInt(3), big.NewInt(10), h)
	if err != nil {
		t.Fatal(err)
	}
	m2, err := New(curve, big.NewInt(5), big.NewInt(20), h)
	if err != nil {
		t.Fatal(err)
	}
	sum, err := m1.Add(m2)
	if err != nil {
		t.Fatal(err)
	}
	expected, err := New(curve, big.NewInt(8), big.NewInt(30), h)
	if err != nil {
		t.Fatal(err)
	}
	if !sum.Tag().Eq(expected.Tag()) {
		t.Fatalf("MAC(3,10)+MAC(5,20) != MAC(8,30)")
	}
}
