//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command argo-demo demonstrates the argo primitives: the
// homomorphic MAC, authenticated arithmetic wires, and the binary
// garbled gate baseline.
package main

import (
	"crypto/sha256"
	"flag"
	"fmt"
	"log"
	"math/big"

	"github.com/markkurossi/argo/arith"
	"github.com/markkurossi/argo/ec"
	"github.com/markkurossi/argo/env"
	"github.com/markkurossi/argo/mac"
	"github.com/markkurossi/argo/yao"
)

func main() {
	seed := flag.String("seed", "", "deterministic PRG seed")
	flag.Parse()

	cfg := new(env.Config)
	if len(*seed) > 0 {
		cfg.Rand = env.NewPRG(sha256.Sum256([]byte(*seed)))
	}

	curve := ec.Secp256k1()
	h, err := mac.HPoint(curve)
	if err != nil {
		log.Fatal(err)
	}

	if err := demoMac(cfg, curve, h); err != nil {
		log.Fatal(err)
	}
	if err := demoWires(cfg, curve, h); err != nil {
		log.Fatal(err)
	}
	if err := demoInnerProduct(cfg, curve, h); err != nil {
		log.Fatal(err)
	}
	if err := demoGate(cfg); err != nil {
		log.Fatal(err)
	}
}

func demoMac(cfg *env.Config, curve *ec.Curve, h ec.Point) error {
	fmt.Printf("Homomorphic MAC:\n")

	rand := cfg.GetRandom()

	k1, err := curve.RandomScalar(rand)
	if err != nil {
		return err
	}
	k2, err := curve.RandomScalar(rand)
	if err != nil {
		return err
	}

	v1 := big.NewInt(42)
	v2 := big.NewInt(100)
	fmt.Printf(" - v1=%s, v2=%s\n", v1, v2)

	mac1, err := mac.New(curve, k1, v1, h)
	if err != nil {
		return err
	}
	mac2, err := mac.New(curve, k2, v2, h)
	if err != nil {
		return err
	}

	sum, err := mac1.Add(mac2)
	if err != nil {
		return err
	}
	kSum := new(big.Int).Add(k1, k2)
	vSum := new(big.Int).Add(v1, v2)
	expected, err := mac.New(curve, kSum, vSum, h)
	if err != nil {
		return err
	}
	fmt.Printf(" - MAC(k1,v1)+MAC(k2,v2) == MAC(k1+k2,v1+v2): %v\n",
		sum.Eq(expected))

	c := big.NewInt(5)
	scaled, err := mac1.ScalarMul(c)
	if err != nil {
		return err
	}
	expected, err = mac.New(curve, new(big.Int).Mul(c, k1),
		new(big.Int).Mul(c, v1), h)
	if err != nil {
		return err
	}
	fmt.Printf(" - %s*MAC(k1,v1) == MAC(%s*k1,%s*v1): %v\n",
		c, c, c, scaled.Eq(expected))

	return nil
}

func demoWires(cfg *env.Config, curve *ec.Curve, h ec.Point) error {
	fmt.Printf("Arithmetic wires: 3x + 2y\n")

	rand := cfg.GetRandom()

	keyX, err := curve.RandomScalar(rand)
	if err != nil {
		return err
	}
	keyY, err := curve.RandomScalar(rand)
	if err != nil {
		return err
	}

	wireX, err := arith.NewWire(curve, big.NewInt(7), keyX, h)
	if err != nil {
		return err
	}
	wireY, err := arith.NewWire(curve, big.NewInt(11), keyY, h)
	if err != nil {
		return err
	}

	// Evaluator: no keys needed.
	x3, err := wireX.MulConst(big.NewInt(3))
	if err != nil {
		return err
	}
	y2, err := wireY.MulConst(big.NewInt(2))
	if err != nil {
		return err
	}
	result, err := x3.Add(y2)
	if err != nil {
		return err
	}
	fmt.Printf(" - 3*7 + 2*11 = %s\n", result.Value())

	// Garbler: verify under the combined key 3*keyX + 2*keyY.
	key := new(big.Int).Mul(big.NewInt(3), keyX)
	key.Add(key, new(big.Int).Mul(big.NewInt(2), keyY))
	key.Mod(key, curve.N)

	ok, err := result.Verify(key)
	if err != nil {
		return err
	}
	fmt.Printf(" - verify: %v\n", ok)

	// A forged value reusing the tag must fail.
	forged := arith.RawWire(curve, big.NewInt(999), result.Mac(), h)
	ok, err = forged.Verify(key)
	if err != nil {
		return err
	}
	fmt.Printf(" - forged value detected: %v\n", !ok)

	return nil
}

func demoInnerProduct(cfg *env.Config, curve *ec.Curve, h ec.Point) error {
	a := []int64{3, 5, 7, 2}
	b := []int64{4, 2, 1, 8}
	fmt.Printf("Inner product: %v · %v\n", a, b)

	rand := cfg.GetRandom()

	// The garbler authenticates each product a[i]*b[i]; the
	// evaluator sums the wires.
	var sum *arith.Wire
	keySum := new(big.Int)

	for i := 0; i < len(a); i++ {
		key, err := curve.RandomScalar(rand)
		if err != nil {
			return err
		}
		keySum.Add(keySum, key)

		wire, err := arith.NewWire(curve, big.NewInt(a[i]*b[i]), key, h)
		if err != nil {
			return err
		}
		if sum == nil {
			sum = wire
		} else {
			sum, err = sum.Add(wire)
			if err != nil {
				return err
			}
		}
	}
	keySum.Mod(keySum, curve.N)

	ok, err := sum.Verify(keySum)
	if err != nil {
		return err
	}
	fmt.Printf(" - result=%s, verify: %v\n", sum.Value(), ok)

	return nil
}

func demoGate(cfg *env.Config) error {
	fmt.Printf("Binary garbled AND gate:\n")

	gate, err := yao.Garble(cfg.GetRandom(), yao.AND)
	if err != nil {
		return err
	}
	fmt.Printf(" - garbled table: %d entries of 16 bytes\n",
		len(gate.Table()))

	// Evaluate with the labels for inputs (1, 1).
	out, err := gate.Eval(gate.InA.Label(1), gate.InB.Label(1))
	if err != nil {
		return err
	}

	var bit string
	switch {
	case out.Eq(gate.Out.L1):
		bit = "1"
	case out.Eq(gate.Out.L0):
		bit = "0"
	default:
		bit = "unknown"
	}
	fmt.Printf(" - AND(1, 1) evaluates to the label for: %s\n", bit)

	return nil
}
