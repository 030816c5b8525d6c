/*
DESCRIPTION
  reader_test.go provides testing for the Reader type in reader.go.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/
package bits

import (
	"io"
	"testing"
)

func TestReadBits(t *testing.T) {
	tests := []struct {
		buf  []byte
		n    int
		want uint32
	}{
		{buf: []byte{0b10110000}, n: 4, want: 0b1011},
		{buf: []byte{0b10110000}, n: 1, want: 1},
		{buf: []byte{0xFF, 0xFF}, n: 16, want: 0xFFFF},
		{buf: []byte{0x00, 0x00, 0x00, 0x01}, n: 32, want: 1},
		{buf: []byte{0xDE, 0xAD, 0xBE, 0xEF}, n: 32, want: 0xDEADBEEF},
	}

	for i, test := range tests {
		r := NewReader(test.buf)
		got, err := r.ReadBits(test.n)
		if err != nil {
			t.Fatalf("test %d: unexpected error: %v", i, err)
		}
		if got != test.want {
			t.Errorf("test %d: got %#x, want %#x", i, got, test.want)
		}
	}
}

func TestReadBitsAcrossBytes(t *testing.T) {
	r := NewReader([]byte{0b10110110, 0b01001101})
	got, err := r.ReadBits(12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := uint32(0b101101100100)
	if got != want {
		t.Errorf("got %#b, want %#b", got, want)
	}
}

func TestReadBitsEOF(t *testing.T) {
	r := NewReader([]byte{0xFF})
	if _, err := r.ReadBits(9); err != io.ErrUnexpectedEOF {
		t.Errorf("got %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestPeekDoesNotAdvance(t *testing.T) {
	r := NewReader([]byte{0xAB})
	peeked, err := r.PeekBits(8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if peeked != 0xAB {
		t.Fatalf("peeked %#x, want 0xAB", peeked)
	}
	if r.BitPos() != 0 {
		t.Errorf("PeekBits advanced the reader to bit %d", r.BitPos())
	}
	read, err := r.ReadBits(8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if read != peeked {
		t.Errorf("read %#x after peek %#x, want equal", read, peeked)
	}
}

func TestReadUnary(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		max  int
		want int
	}{
		{name: "immediate terminator", buf: []byte{0b00000000}, max: 8, want: 0},
		{name: "short run", buf: []byte{0b11100000}, max: 8, want: 3},
		{name: "capped at max", buf: []byte{0b11111111}, max: 4, want: 4},
		{name: "full byte run terminated next byte", buf: []byte{0b11111111, 0b00000000}, max: 8, want: 8},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := NewReader(test.buf)
			got, err := r.ReadUnary(test.max)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != test.want {
				t.Errorf("got %d, want %d", got, test.want)
			}
		})
	}
}

func TestAlignByte(t *testing.T) {
	r := NewReader([]byte{0xFF, 0xFF})
	if _, err := r.ReadBits(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.AlignByte()
	if !r.ByteAligned() {
		t.Fatalf("reader not byte aligned after AlignByte, bit pos %d", r.BitPos())
	}
	if r.BytePos() != 1 {
		t.Errorf("got byte pos %d, want 1", r.BytePos())
	}

	// AlignByte on an already-aligned reader is a no-op.
	r.AlignByte()
	if r.BytePos() != 1 {
		t.Errorf("AlignByte moved an already-aligned reader to byte pos %d", r.BytePos())
	}
}

func TestSkipBits(t *testing.T) {
	r := NewReader([]byte{0x00, 0xAB})
	if err := r.SkipBits(8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := r.ReadBits(8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0xAB {
		t.Errorf("got %#x, want 0xAB", got)
	}

	if err := r.SkipBits(1); err != io.ErrUnexpectedEOF {
		t.Errorf("got %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestLen(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	if got := r.Len(); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
}
