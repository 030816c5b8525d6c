/*
DESCRIPTION
  planereader.go reads one plane's wavelet coefficients from the
  bitstream: the per-level scaling prefix, the lowpass subband (DC seed
  plus three entropy-coded regions), and the detail subbands (each
  preceded by four parameters and a magic word).

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

import "github.com/go-pixlet/pixlet/codec/pixlet/bits"

// readScaling reads the L horizontal and L vertical synthesis scale
// factors for one plane. The stream carries them as L (H,V) pairs ordered
// coarsest-to-finest, with the first pair read stored at index L-1 and the
// last at index 0 — the format's own indexing convention, independent of
// which block size the synthesis pass happens to process first.
func readScaling(br *bits.Reader) (scaleTable, error) {
	var t scaleTable
	for idx := levelCount - 1; idx >= 0; idx-- {
		h, err := readS32(br)
		if err != nil {
			return t, invalidData("reading horizontal scale: %v", err)
		}
		v, err := readS32(br)
		if err != nil {
			return t, invalidData("reading vertical scale: %v", err)
		}
		if h == 0 || v == 0 {
			return t, invalidData("zero scale factor at level %d", idx)
		}
		t.h[idx] = 1e6 / float64(h)
		t.v[idx] = 1e6 / float64(v)
	}
	return t, nil
}

// readS32 reads a signed big-endian 32-bit integer.
func readS32(br *bits.Reader) (int32, error) {
	v, err := br.ReadBits(32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// readS16 reads a signed big-endian 16-bit integer.
func readS16(br *bits.Reader) (int16, error) {
	v, err := br.ReadBits(16)
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}

// readLowpass reads the DC seed and the lowpass subband's three
// entropy-coded regions (top row, left column, interior) into buf at
// band's offset.
func readLowpass(br *bits.Reader, buf []int16, stride int, band subBand) error {
	dc, err := readS16(br)
	if err != nil {
		return invalidData("reading lowpass DC seed: %v", err)
	}
	*bandAt(buf, stride, band, 0, 0) = dc

	bw, bh := band.width, band.height

	if bw > 1 {
		w := newCoeffWriter(buf, band.y*stride+band.x+1, bw-1, 0)
		if _, err := decodeLowBand(br, w, bw-1); err != nil {
			return invalidDataf("lowpass top row", err)
		}
	}

	if bh > 1 {
		w := newCoeffWriter(buf, (band.y+1)*stride+band.x, 1, stride)
		if _, err := decodeLowBand(br, w, bh-1); err != nil {
			return invalidDataf("lowpass left column", err)
		}
	}

	if bw > 1 && bh > 1 {
		w := newCoeffWriter(buf, (band.y+1)*stride+band.x+1, bw-1, stride)
		if _, err := decodeLowBand(br, w, (bw-1)*(bh-1)); err != nil {
			return invalidDataf("lowpass interior", err)
		}
	}

	return nil
}

// invalidDataf wraps a nested decode error with which lowpass region it
// came from.
func invalidDataf(stage string, err error) error {
	return invalidData("%s: %v", stage, err)
}

// readHighpass reads the 3*levelCount detail subbands: for each, four
// signed 32-bit parameters, the 0xDEADBEEF magic word, and its
// entropy-coded payload.
func readHighpass(br *bits.Reader, buf []int16, stride int, bands [subBandCount]subBand) error {
	for idx := 1; idx < subBandCount; idx++ {
		band := bands[idx]

		a, err := readS32(br)
		if err != nil {
			return invalidData("detail band %d: reading param a: %v", idx, err)
		}
		b, err := readS32(br)
		if err != nil {
			return invalidData("detail band %d: reading param b: %v", idx, err)
		}
		c, err := readS32(br)
		if err != nil {
			return invalidData("detail band %d: reading param c: %v", idx, err)
		}
		d, err := readS32(br)
		if err != nil {
			return invalidData("detail band %d: reading param d: %v", idx, err)
		}

		magic, err := br.ReadBits(32)
		if err != nil {
			return invalidData("detail band %d: reading magic: %v", idx, err)
		}
		if magic != detailMagic {
			return invalidData("detail band %d: bad magic %#x", idx, magic)
		}

		scale := a
		if int64(b) >= abs32(a) {
			scale = b
		}

		w := newCoeffWriter(buf, band.y*stride+band.x, band.width, stride)
		if _, err := decodeHighBand(br, w, band.size(), c, scale, d); err != nil {
			return invalidData("detail band %d: %v", idx, err)
		}
	}
	return nil
}

// abs32 returns the absolute value of v as an int64, safe against the
// int32 overflow that a literal -v would hit at math.MinInt32.
func abs32(v int32) int64 {
	n := int64(v)
	if n < 0 {
		return -n
	}
	return n
}

// bandAt returns a pointer to the sample at (x,y) within band, relative to
// band's own top-left offset, in the plane buffer buf with the given row
// stride.
func bandAt(buf []int16, stride int, band subBand, x, y int) *int16 {
	return &buf[(band.y+y)*stride+band.x+x]
}
