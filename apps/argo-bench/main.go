//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command argo-bench measures wall-clock costs of the binary garbled
// gate baseline against arithmetic wire operations.
package main

import (
	"crypto/sha256"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"

	"github.com/markkurossi/argo/arith"
	"github.com/markkurossi/argo/ec"
	"github.com/markkurossi/argo/env"
	"github.com/markkurossi/argo/mac"
	"github.com/markkurossi/argo/timing"
	"github.com/markkurossi/argo/yao"
)

func main() {
	gates := flag.Int("gates", 1000, "number of binary gates")
	ops := flag.Int("ops", 100, "number of arithmetic wires")
	seed := flag.String("seed", "", "deterministic PRG seed")
	flag.Parse()

	cfg := new(env.Config)
	if len(*seed) > 0 {
		cfg.Rand = env.NewPRG(sha256.Sum256([]byte(*seed)))
	}

	if err := benchmark(cfg, *gates, *ops); err != nil {
		log.Fatal(err)
	}
}

func benchmark(cfg *env.Config, numGates, numOps int) error {
	rand := cfg.GetRandom()
	timer := timing.New()

	// Binary baseline: garble and evaluate a chain of AND gates.
	gates := make([]*yao.Gate, numGates)
	for i := 0; i < numGates; i++ {
		gate, err := yao.Garble(rand, yao.AND)
		if err != nil {
			return err
		}
		gates[i] = gate
	}
	sample := timer.Sample("Garble binary", nil)
	sample.Cols = []string{rate(sample, numGates)}

	for _, gate := range gates {
		if _, err := gate.Eval(gate.InA.L1, gate.InB.L1); err != nil {
			return err
		}
	}
	sample = timer.Sample("Eval binary", nil)
	sample.Cols = []string{rate(sample, numGates)}

	// Arithmetic wires: garble and sum.
	curve := ec.Secp256k1()
	h, err := mac.HPoint(curve)
	if err != nil {
		return err
	}

	wires := make([]*arith.Wire, numOps)
	for i := 0; i < numOps; i++ {
		key, err := curve.RandomScalar(rand)
		if err != nil {
			return err
		}
		wire, err := arith.NewWire(curve, big.NewInt(int64(i)), key, h)
		if err != nil {
			return err
		}
		wires[i] = wire
	}
	sample = timer.Sample("Garble wires", nil)
	sample.Cols = []string{rate(sample, numOps)}

	sum := wires[0]
	for _, wire := range wires[1:] {
		sum, err = sum.Add(wire)
		if err != nil {
			return err
		}
	}
	sample = timer.Sample("Eval wires", nil)
	sample.Cols = []string{rate(sample, numOps)}

	timer.Print(os.Stdout)
	return nil
}

// rate formats the operation rate of the sample.
func rate(sample *timing.Sample, count int) string {
	d := sample.End.Sub(sample.Start).Seconds()
	if d == 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f", float64(count)/d)
}
