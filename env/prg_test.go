//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"bytes"
	"testing"
)

func TestPRGDeterministic(t *testing.T) {
	seed := [32]byte{0x42}

	a := make([]byte, 64)
	b := make([]byte, 64)

	NewPRG(seed).Read(a)
	NewPRG(seed).Read(b)

	if !bytes.Equal(a, b) {
		t.Fatal("same seed produced different streams")
	}

	var zero [64]byte
	if bytes.Equal(a, zero[:]) {
		t.Fatal("PRG produced all zeros")
	}

	NewPRG([32]byte{0x43}).Read(b)
	if bytes.Equal(a, b) {
		t.Fatal("different seeds produced the same stream")
	}
}

func TestGetRandomDefault(t *testing.T) {
	cfg := new(Config)
	if cfg.GetRandom() == nil {
		t.Fatal("no default entropy source")
	}

	prg := NewPRG([32]byte{0x44})
	cfg.Rand = prg
	if cfg.GetRandom() != prg {
		t.Fatal("configured source not returned")
	}
}
