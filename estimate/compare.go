//
// compare.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package estimate

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

// Row is one row of the binary vs arithmetic comparison.
type Row struct {
	Name   string
	Cost   string
	Binary GateCount
	Arith  ArithCount
}

// Improvement returns the binary-to-arithmetic gate-count ratio.
func (r Row) Improvement() float64 {
	if r.Arith.Total() == 0 {
		return 0
	}
	return float64(r.Binary.Total()) / float64(r.Arith.Total())
}

// Compare computes the binary vs arithmetic comparison rows for the
// bit width.
func Compare(bits int) []Row {
	bc := NewBinaryCircuit(bits)
	ac := NewArithCircuit(bits)

	sq := superscript.Itoa(2)
	cb := superscript.Itoa(3)

	return []Row{
		{
			Name:   "Field Addition",
			Cost:   "O(n)",
			Binary: bc.Addition(),
			Arith:  ac.Addition(),
		},
		{
			Name:   "Field Multiplication",
			Cost:   "O(n" + sq + ")",
			Binary: bc.FieldMul(),
			Arith:  ac.Multiplication(),
		},
		{
			Name:   "Field Inversion",
			Cost:   "O(n" + sq + ")",
			Binary: bc.FieldInv(),
			Arith:  ac.Inversion(),
		},
		{
			Name:   "EC Point Addition",
			Cost:   "O(n" + sq + ")",
			Binary: bc.ECAdd(),
			Arith:  ac.ECAdd(),
		},
		{
			Name:   "EC Scalar Multiply",
			Cost:   "O(n" + cb + ")",
			Binary: bc.ECScalarMul(bits),
			Arith:  ac.ECScalarMul(bits),
		},
	}
}

// Print renders the comparison rows as a table.
func Print(w io.Writer, rows []Row) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Operation").SetAlign(tabulate.ML)
	tab.Header("Binary").SetAlign(tabulate.MR)
	tab.Header("Gates").SetAlign(tabulate.MR)
	tab.Header("Arithmetic").SetAlign(tabulate.MR)
	tab.Header("Improvement").SetAlign(tabulate.MR)

	var binTotal, arithTotal int

	for _, r := range rows {
		binTotal += r.Binary.Total()
		arithTotal += r.Arith.Total()

		row := tab.Row()
		row.Column(r.Name)
		row.Column(r.Cost)
		row.Column(FormatCount(r.Binary.Total()))
		row.Column(FormatCount(r.Arith.Total()))
		row.Column(fmt.Sprintf("%.0fx", r.Improvement()))
	}

	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column(FormatCount(binTotal)).SetFormat(tabulate.FmtBold)
	row.Column(FormatCount(arithTotal)).SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%.0fx",
		float64(binTotal)/float64(arithTotal))).SetFormat(tabulate.FmtBold)

	tab.Print(w)
}

// FormatCount formats a gate count with K/M suffixes.
func FormatCount(n int) string {
	if n >= 1000*1000 {
		return fmt.Sprintf("%.1fM", float64(n)/(1000*1000))
	} else if n >= 1000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%d", n)
}
