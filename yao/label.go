//
// label.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package yao

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Label implements a 128 bit wire label.
type Label struct {
	d0 uint64
	d1 uint64
}

// LabelData contains label data as a byte array.
type LabelData [16]byte

func (l Label) String() string {
	return fmt.Sprintf("%016x%016x", l.d0, l.d1)
}

// Eq tests if the labels are equal.
func (l Label) Eq(o Label) bool {
	return l.d0 == o.d0 && l.d1 == o.d1
}

// NewLabel creates a new random label.
func NewLabel(rand io.Reader) (Label, error) {
	var buf LabelData
	var label Label

	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return label, err
	}
	label.SetData(&buf)
	return label, nil
}

// S tests the label's S bit. The S bit selects the garbled table row
// in point-and-permute.
func (l Label) S() bool {
	return (l.d0 & 0x8000000000000000) != 0
}

// SetS sets the label's S bit.
func (l *Label) SetS(set bool) {
	if set {
		l.d0 |= 0x8000000000000000
	} else {
		l.d0 &= 0x7fffffffffffffff
	}
}

// Xor xors the label with the argument label.
func (l *Label) Xor(o Label) {
	l.d0 ^= o.d0
	l.d1 ^= o.d1
}

// GetData gets the label as label data.
func (l Label) GetData(buf *LabelData) {
	binary.BigEndian.PutUint64(buf[0:8], l.d0)
	binary.BigEndian.PutUint64(buf[8:16], l.d1)
}

// SetData sets the label from label data.
func (l *Label) SetData(data *LabelData) {
	l.d0 = binary.BigEndian.Uint64((*data)[0:8])
	l.d1 = binary.BigEndian.Uint64((*data)[8:16])
}

// Bytes returns the label data as bytes.
func (l Label) Bytes(buf *LabelData) []byte {
	l.GetData(buf)
	return buf[:]
}

// SetBytes sets the label data from bytes.
func (l *Label) SetBytes(data []byte) {
	l.d0 = binary.BigEndian.Uint64(data[0:8])
	l.d1 = binary.BigEndian.Uint64(data[8:16])
}

// Wire implements a wire with 0 and 1 labels.
type Wire struct {
	L0 Label
	L1 Label
}

func (w Wire) String() string {
	return fmt.Sprintf("%s/%s", w.L0, w.L1)
}

// NewWire creates a wire with two fresh random labels. The labels
// get opposite S bits, chosen at random, so that the garbled table
// rows can be selected with point-and-permute.
func NewWire(rand io.Reader) (Wire, error) {
	var wire Wire

	l0, err := NewLabel(rand)
	if err != nil {
		return wire, err
	}
	l1, err := NewLabel(rand)
	if err != nil {
		return wire, err
	}

	var s [1]byte
	if _, err := io.ReadFull(rand, s[:]); err != nil {
		return wire, err
	}
	ws := (s[0] & 0x80) != 0

	l0.SetS(ws)
	l1.SetS(!ws)

	wire.L0 = l0
	wire.L1 = l1

	return wire, nil
}

// Label returns the label for the bit value.
func (w Wire) Label(bit int) Label {
	if bit == 0 {
		return w.L0
	}
	return w.L1
}
