//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command argo-compare prints binary vs arithmetic circuit
// gate-count comparisons for field and elliptic curve operations.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/markkurossi/argo/estimate"
)

func main() {
	bits := flag.Int("bits", 256, "field element bit width")
	detail := flag.Bool("detail", false, "print scalar multiplication breakdown")
	flag.Parse()

	fmt.Printf("Binary vs arithmetic garbled circuits (%d-bit field):\n\n",
		*bits)

	rows := estimate.Compare(*bits)
	estimate.Print(os.Stdout, rows)

	if *detail {
		printDetail(*bits)
	}
}

func printDetail(bits int) {
	p := message.NewPrinter(language.English)

	binary := estimate.NewBinaryCircuit(bits).ECScalarMul(bits)
	arith := estimate.NewArithCircuit(bits).ECScalarMul(bits)

	fmt.Printf("\nEC scalar multiplication breakdown:\n")

	p.Printf("  binary:     AND=%d, XOR=%d, NOT=%d, total=%d\n",
		binary.AND, binary.XOR, binary.NOT, binary.Total())
	p.Printf("  arithmetic: ADD=%d, MUL=%d, INV=%d, CONST=%d, total=%d\n",
		arith.Add, arith.Mul, arith.Inv, arith.Const, arith.Total())
	p.Printf("  improvement: %.0fx\n",
		float64(binary.Total())/float64(arith.Total()))
}
