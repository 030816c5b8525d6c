/*
DESCRIPTION
  header.go parses the Pixlet packet header.

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

// headerSize is the fixed byte length of the packet header, as laid out in
// the table below.
const headerSize = 44

// supportedVersion is the only codec version this decoder understands.
const supportedVersion = 1

// headerSentinel is the fixed value that must follow the version field.
const headerSentinel = 1

// detailMagic is the 32-bit word that must precede every detail subband's
// entropy-coded payload.
const detailMagic = 0xDEADBEEF

// levelCount is the fixed wavelet decomposition depth this format uses.
const levelCount = 4

// minDepth and maxDepth bound the supported sample bit depth.
const (
	minDepth = 8
	maxDepth = 15
)

// header holds the parsed, validated fields of a packet header.
type header struct {
	width, height int
	levels        int
	depth         int
}

// readHeader parses and validates the 44-byte packet header described in
// the format's frame layout:
//
//	packet size  u32 BE   > headerSize, <= len(packet)
//	version      u32 LE   must equal supportedVersion
//	(skip 4)
//	sentinel     u32 BE   must equal headerSentinel
//	(skip 4)
//	width        u32 BE
//	height       u32 BE
//	levels       u32 BE   must equal levelCount
//	depth        u32 BE   minDepth..maxDepth
//	(skip 8)
func readHeader(br *bits.Reader) (header, error) {
	if br.Len() < 4 {
		return header{}, invalidData("packet too short to hold a size field")
	}

	size, err := br.ReadBits(32)
	if err != nil {
		return header{}, invalidData("reading packet size: %v", err)
	}
	if size <= headerSize || int(size) > br.Len() {
		return header{}, invalidData("packet size %d out of range for %d byte packet", size, br.Len())
	}

	versionBytes, err := readRawBytes(br, 4)
	if err != nil {
		return header{}, invalidData("reading version: %v", err)
	}
	version := uint32(versionBytes[0]) | uint32(versionBytes[1])<<8 | uint32(versionBytes[2])<<16 | uint32(versionBytes[3])<<24
	if version != supportedVersion {
		return header{}, unsupported("unsupported stream version %d", version)
	}

	if err := br.SkipBits(32); err != nil {
		return header{}, invalidData("skipping reserved field: %v", err)
	}

	sentinel, err := br.ReadBits(32)
	if err != nil {
		return header{}, invalidData("reading sentinel: %v", err)
	}
	if sentinel != headerSentinel {
		return header{}, invalidData("bad sentinel %#x", sentinel)
	}

	if err := br.SkipBits(32); err != nil {
		return header{}, invalidData("skipping reserved field: %v", err)
	}

	width, err := br.ReadBits(32)
	if err != nil {
		return header{}, invalidData("reading width: %v", err)
	}
	height, err := br.ReadBits(32)
	if err != nil {
		return header{}, invalidData("reading height: %v", err)
	}
	if width == 0 || height == 0 {
		return header{}, invalidData("zero-sized frame %dx%d", width, height)
	}

	levels, err := br.ReadBits(32)
	if err != nil {
		return header{}, invalidData("reading levels: %v", err)
	}
	if levels != levelCount {
		return header{}, invalidData("unsupported level count %d, want %d", levels, levelCount)
	}

	depth, err := br.ReadBits(32)
	if err != nil {
		return header{}, invalidData("reading depth: %v", err)
	}
	if depth < minDepth || depth > maxDepth {
		return header{}, unsupported("unsupported bit depth %d", depth)
	}

	if err := br.SkipBits(64); err != nil {
		return header{}, invalidData("skipping reserved field: %v", err)
	}

	return header{
		width:  int(width),
		height: int(height),
		levels: int(levels),
		depth:  int(depth),
	}, nil
}

// readRawBytes reads n byte-aligned bytes as a slice, MSB-first per byte,
// for fields (like the little-endian version word) whose numeric
// interpretation isn't plain big-endian.
func readRawBytes(br *bits.Reader, n int) ([]byte, error) {
	out := make([]byte, n)
	for i := range out {
		v, err := br.ReadBits(8)
		if err != nil {
			return nil, err
		}
		out[i] = byte(v)
	}
	return out, nil
}

// align returns the smallest multiple of pow2 that is >= v.
func align(v, pow2 int) int {
	return (v + pow2 - 1) &^ (pow2 - 1)
}
