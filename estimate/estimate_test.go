//
// estimate_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package estimate

import (
	"bytes"
	"testing"
)

func TestAddition(t *testing.T) {
	bc := NewBinaryCircuit(256)

	add := bc.Addition()
	if add.AND != 512 || add.XOR != 768 || add.NOT != 0 {
		t.Fatalf("256-bit addition: %s", add)
	}
	if add.Total() != 1280 {
		t.Fatalf("256-bit addition total %d, expected 1280", add.Total())
	}
}

func TestECAddArith(t *testing.T) {
	ac := NewArithCircuit(256)

	// EC point addition is ~10 arithmetic gates.
	if total := ac.ECAdd().Total(); total != 10 {
		t.Fatalf("arithmetic EC add total %d, expected 10", total)
	}
}

func TestImprovement(t *testing.T) {
	rows := Compare(256)
	if len(rows) == 0 {
		t.Fatal("no comparison rows")
	}
	for _, r := range rows {
		if r.Improvement() <= 1 {
			t.Errorf("%s: improvement %.2f not > 1", r.Name, r.Improvement())
		}
	}

	// The EC scalar multiplication speedup is the headline number.
	last := rows[len(rows)-1]
	if last.Improvement() < 1000 {
		t.Errorf("EC scalar multiply improvement %.0fx, expected >= 1000x",
			last.Improvement())
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, Compare(256))
	if buf.Len() == 0 {
		t.Fatal("empty comparison report")
	}
}

func TestFormatCount(t *testing.T) {
	if s := FormatCount(999); s != "999" {
		t.Errorf("FormatCount(999)=%s", s)
	}
	if s := FormatCount(1500); s != "1.5K" {
		t.Errorf("FormatCount(1500)=%s", s)
	}
	if s := FormatCount(2500000); s != "2.5M" {
		t.Errorf("FormatCount(2500000)=%s", s)
	}
}
