/*
DESCRIPTION
  entropy.go implements the two adaptive, unary-prefix entropy coders used
  to reconstruct lowpass and detail subband coefficients: a "low" coder for
  the lowpass subband, and a "high" coder, parameterized per detail band by
  four stream-supplied integers, for the detail subbands.

  Both coders share the same overall shape, grounded on the same family of
  adaptive-Rice decoders as the ALAC lossless-audio entropy coder: a running
  state estimates the local coefficient magnitude, which derives a
  prefix-code bit width for the next value, and a short escape mechanism
  run-length-codes stretches of zeros.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pixlet

import (
	"math/bits"

	pbits "github.com/go-pixlet/pixlet/codec/pixlet/bits"
)

// coeffWriter walks a row-pitched region of a plane buffer, wrapping to the
// next row every width samples and advancing by stride samples per row.
// The same shape serves the lowpass top row, left column and interior
// (stride 0 and width 1 are both valid degenerate cases), as well as every
// detail subband.
type coeffWriter struct {
	buf    []int16
	pos    int
	width  int
	stride int
	col    int
}

func newCoeffWriter(buf []int16, offset, width, stride int) coeffWriter {
	return coeffWriter{buf: buf, pos: offset, width: width, stride: stride}
}

func (w *coeffWriter) put(v int32) {
	w.buf[w.pos+w.col] = int16(v)
	w.col++
	if w.col == w.width {
		w.col = 0
		w.pos += w.stride
	}
}

// log2Floor returns floor(log2(v)) for v > 0, i.e. 31 - clz32(v).
func log2Floor(v uint32) int {
	return 31 - bits.LeadingZeros32(v)
}

// zeroRunWidth computes the bit width used by both coders' zero-run gate,
// from the current adaptation state.
func zeroRunWidth(state int32) (int, error) {
	n := int((state+8)>>5) + bits.LeadingZeros32(uint32(state)) - 24
	if n < 0 || n > 16 {
		return 0, invalidData("zero-run width %d out of range", n)
	}
	return n, nil
}

// decodeLowBand runs the lowpass entropy coder over a region of size
// coefficients, described by w, and returns the number of whole bytes the
// call consumed from br (after byte-aligning the reader). state and flag
// are local to this call, per the format's convention that a coefficient
// run starts its adaptation fresh.
func decodeLowBand(br *pbits.Reader, w coeffWriter, size int) (int, error) {
	startBit := br.BitPos()

	state := int32(3)
	flag := int32(0)

	for i := 0; i < size; {
		// Value step.
		nbits := log2Floor(uint32(state>>8) + 3)
		if nbits > 14 {
			nbits = 14
		}

		cnt1, err := br.ReadUnary(8)
		if err != nil {
			return 0, invalidData("low coder: reading value prefix: %v", err)
		}

		var escape int32
		if cnt1 < 8 {
			v, err := br.PeekBits(nbits)
			if err != nil {
				return 0, invalidData("low coder: peeking value bits: %v", err)
			}
			ones := uint32(1)<<uint(nbits) - 1
			if v <= 1 {
				if err := br.SkipBits(nbits - 1); err != nil {
					return 0, invalidData("low coder: consuming value bits: %v", err)
				}
				escape = int32(ones) * int32(cnt1)
			} else {
				if err := br.SkipBits(nbits); err != nil {
					return 0, invalidData("low coder: consuming value bits: %v", err)
				}
				escape = int32(v) + int32(ones)*int32(cnt1) - 1
			}
		} else {
			v, err := br.ReadBits(16)
			if err != nil {
				return 0, invalidData("low coder: reading escape value: %v", err)
			}
			escape = int32(v)
		}

		sum := escape + flag
		parity := sum & 1
		mag := (sum + 1) >> 1
		sign := int32(1)
		if parity == 1 {
			sign = -1
		}
		w.put(sign * mag)
		i++

		state += 120*sum - (120*state)>>8
		if state < 0 {
			return 0, invalidData("low coder: state went negative")
		}
		flag = 0

		// Zero-run gate.
		if state*4 <= 0xFF && i < size {
			nbitsZ, err := zeroRunWidth(state)
			if err != nil {
				return 0, err
			}
			escapeMask := int32(1)<<uint(nbitsZ) - 1

			cnt1z, err := br.ReadUnary(8)
			if err != nil {
				return 0, invalidData("low coder: reading run prefix: %v", err)
			}

			var rlen int32
			if cnt1z > 7 {
				v, err := br.ReadBits(16)
				if err != nil {
					return 0, invalidData("low coder: reading run length: %v", err)
				}
				rlen = int32(v)
			} else {
				v, err := br.PeekBits(nbitsZ)
				if err != nil {
					return 0, invalidData("low coder: peeking run bits: %v", err)
				}
				if v > 1 {
					if err := br.SkipBits(nbitsZ); err != nil {
						return 0, invalidData("low coder: consuming run bits: %v", err)
					}
					rlen = int32(v) + escapeMask*int32(cnt1z) - 1
				} else {
					if err := br.SkipBits(nbitsZ - 1); err != nil {
						return 0, invalidData("low coder: consuming run bits: %v", err)
					}
					rlen = escapeMask * int32(cnt1z)
				}
			}

			if rlen < 0 || i+int(rlen) > size {
				return 0, invalidData("low coder: run length %d exceeds remaining %d", rlen, size-i)
			}

			for n := int32(0); n < rlen; n++ {
				w.put(0)
			}
			i += int(rlen)

			state = 0
			if rlen < 0xFFFF {
				flag = 1
			} else {
				flag = 0
			}
		}
	}

	br.AlignByte()
	return (br.BitPos() - startBit) / 8, nil
}

// decodeHighBand runs the high coefficient entropy coder over a region of
// size coefficients, described by w. c, scale and d are the three
// stream-supplied parameters that shape this detail band's adaptation
// (scale is the caller's sign-preserving max(b, |a|) per the format's
// per-band header). state and flag are local to a single detail band.
func decodeHighBand(br *pbits.Reader, w coeffWriter, size int, c, scale, d int32) (int, error) {
	if scale == 0 {
		return 0, invalidData("high coder: zero scale parameter")
	}

	m := int64(scale)
	if m < 0 {
		m = -m
	}

	var nbits int
	if m != 1 {
		nbits = 33 - bits.LeadingZeros32(uint32(m-1))
		if nbits > 16 {
			return 0, invalidData("high coder: prefix width %d exceeds 16", nbits)
		}
	} else {
		nbits = 1
	}
	length := 25 - nbits

	startBit := br.BitPos()
	state := int32(3)
	flag := int32(0)

	for i := 0; i < size; {
		v := -1
		if s8 := state >> 8; s8 != -3 {
			v = log2Floor(uint32(s8 + 3))
		}
		pfx := v
		if pfx > 14 {
			pfx = 14
		}

		cnt1, err := br.ReadUnary(length)
		if err != nil {
			return 0, invalidData("high coder: reading value prefix: %v", err)
		}
		if cnt1 >= length {
			raw, err := br.ReadBits(nbits)
			if err != nil {
				return 0, invalidData("high coder: reading escape value: %v", err)
			}
			cnt1 = int(raw)
		} else {
			if pfx < 0 {
				return 0, invalidData("high coder: negative prefix width")
			}
			ones := int32(1)<<uint(pfx) - 1
			cnt1 *= int(ones)
			s, err := br.PeekBits(pfx)
			if err != nil {
				return 0, invalidData("high coder: peeking value bits: %v", err)
			}
			if s <= 1 {
				if err := br.SkipBits(pfx - 1); err != nil {
					return 0, invalidData("high coder: consuming value bits: %v", err)
				}
			} else {
				if err := br.SkipBits(pfx); err != nil {
					return 0, invalidData("high coder: consuming value bits: %v", err)
				}
				cnt1 += int(s) - 1
			}
		}

		x := flag + int32(cnt1)
		if x == 0 {
			w.put(0)
		} else {
			p := x & 1
			tmp := c*((x+1)>>1) + (c >> 1)
			var emit int32
			if p == 1 {
				emit = -tmp
			} else {
				emit = tmp
			}
			w.put(emit)
		}
		i++

		state += d*x - (d*state)>>8
		if state < 0 {
			return 0, invalidData("high coder: state went negative")
		}
		flag = 0

		if state*4 <= 0xFF && i < size {
			pfxZ, err := zeroRunWidth(state)
			if err != nil {
				return 0, err
			}
			escapeMask := int32(1)<<uint(pfxZ) - 1

			cnt1z, err := br.ReadUnary(8)
			if err != nil {
				return 0, invalidData("high coder: reading run prefix: %v", err)
			}

			var rlen int32
			if cnt1z < 8 {
				vv, err := br.PeekBits(pfxZ)
				if err != nil {
					return 0, invalidData("high coder: peeking run bits: %v", err)
				}
				if vv > 1 {
					if err := br.SkipBits(pfxZ); err != nil {
						return 0, invalidData("high coder: consuming run bits: %v", err)
					}
					rlen = int32(vv) + escapeMask*int32(cnt1z) - 1
				} else {
					if err := br.SkipBits(pfxZ - 1); err != nil {
						return 0, invalidData("high coder: consuming run bits: %v", err)
					}
					rlen = escapeMask * int32(cnt1z)
				}
			} else {
				wide, err := br.ReadBits(1)
				if err != nil {
					return 0, invalidData("high coder: reading run-length selector: %v", err)
				}
				var value uint32
				if wide == 1 {
					value, err = br.ReadBits(16)
				} else {
					value, err = br.ReadBits(8)
				}
				if err != nil {
					return 0, invalidData("high coder: reading run length: %v", err)
				}
				rlen = int32(value) + 8*escapeMask
			}

			if rlen < 0 || rlen > 0xFFFF || i+int(rlen) > size {
				return 0, invalidData("high coder: run length %d invalid for remaining %d", rlen, size-i)
			}

			for n := int32(0); n < rlen; n++ {
				w.put(0)
			}
			i += int(rlen)

			state = 0
			if rlen < 0xFFFF {
				flag = 1
			} else {
				flag = 0
			}
		}
	}

	br.AlignByte()
	return (br.BitPos() - startBit) / 8, nil
}
