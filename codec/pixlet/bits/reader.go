/*
DESCRIPTION
  reader.go provides a bit reader implementation that reads big-endian,
  MSB-first bits from an in-memory byte slice.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bits provides a bit reader for MSB-first bitstreams backed by a
// fixed byte slice, as used by the Pixlet entropy coders.
package bits

import "io"

// Reader reads bits MSB-first from a byte slice. Unlike an io.Reader-backed
// bit reader, Reader can always peek ahead without committing to consuming
// the peeked bits, since the whole source is held in memory up front; this
// is what the entropy coders need for their unary-prefix-then-peek decode
// shape.
type Reader struct {
	buf    []byte
	bitPos int // next unread bit, counted from the start of buf
}

// NewReader returns a Reader over buf, positioned at its first bit.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// ReadBits reads the next n bits (0 <= n <= 32) and returns them as the
// low-order bits of the result, advancing the reader. It returns
// io.ErrUnexpectedEOF if fewer than n bits remain.
func (r *Reader) ReadBits(n int) (uint32, error) {
	v, err := r.PeekBits(n)
	if err != nil {
		return 0, err
	}
	r.bitPos += n
	return v, nil
}

// PeekBits returns the next n bits (0 <= n <= 32) without advancing the
// reader.
func (r *Reader) PeekBits(n int) (uint32, error) {
	if n == 0 {
		return 0, nil
	}
	if r.bitPos+n > len(r.buf)*8 {
		return 0, io.ErrUnexpectedEOF
	}
	byteOff := r.bitPos / 8
	bitOff := r.bitPos % 8
	nBytes := (bitOff + n + 7) / 8
	var acc uint64
	for i := 0; i < nBytes; i++ {
		acc = acc<<8 | uint64(r.buf[byteOff+i])
	}
	shift := uint(nBytes*8 - bitOff - n)
	mask := uint64(1)<<uint(n) - 1
	return uint32((acc >> shift) & mask), nil
}

// ReadUnary reads a run of 1-bits capped at max, consuming the terminating
// 0-bit when the run ends before the cap. If max consecutive 1-bits are
// read without a terminator, the reader stops at max without consuming a
// terminator (the caller's "escape" case).
func (r *Reader) ReadUnary(max int) (int, error) {
	for count := 0; count < max; count++ {
		bit, err := r.ReadBits(1)
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			return count, nil
		}
	}
	return max, nil
}

// SkipBits advances the reader by n bits without reading them.
func (r *Reader) SkipBits(n int) error {
	if r.bitPos+n > len(r.buf)*8 {
		return io.ErrUnexpectedEOF
	}
	r.bitPos += n
	return nil
}

// AlignByte advances the reader to the next byte boundary, if it isn't
// already on one.
func (r *Reader) AlignByte() {
	if rem := r.bitPos % 8; rem != 0 {
		r.bitPos += 8 - rem
	}
}

// ByteAligned returns true if the reader position is at the start of a byte.
func (r *Reader) ByteAligned() bool {
	return r.bitPos%8 == 0
}

// BytePos returns the current position in whole bytes. It is only
// meaningful once the reader is byte-aligned.
func (r *Reader) BytePos() int {
	return r.bitPos / 8
}

// BitPos returns the current position in bits from the start of the
// underlying buffer.
func (r *Reader) BitPos() int {
	return r.bitPos
}

// Len returns the number of bytes in the underlying buffer.
func (r *Reader) Len() int {
	return len(r.buf)
}
