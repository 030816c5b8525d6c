/*
DESCRIPTION
  pixlet.go provides a decoder for Pixlet intraframe video packets: a
  straight, single-threaded pipeline from a self-contained compressed
  frame to a 16-bit-per-channel YUV 4:2:0 picture.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package pixlet provides a decoder for the Apple Pixlet intraframe video
// codec. Decode consumes one self-contained compressed frame packet and
// produces a raster image in 16-bit YUV 4:2:0.
//
// A Decoder is not safe for concurrent use by multiple goroutines, but
// independent Decoder values may decode different packets concurrently:
// all mutable state (the plane scratch buffers) is per-instance, and
// decoding a single frame is itself single-threaded and sequential.
package pixlet

import (
	"github.com/pkg/errors"

	"github.com/go-pixlet/pixlet/codec/pixlet/bits"
)

// maxPlaneDimension bounds the aligned width or height this decoder will
// allocate scratch buffers for, guarding against a corrupt or hostile
// header declaring a picture too large to reasonably hold in memory.
const maxPlaneDimension = 1 << 16

// planeScratch holds one plane's reusable coefficient buffer, sized to the
// plane's full aligned dimensions and reallocated only when those
// dimensions change.
type planeScratch struct {
	buf           []int16
	width, height int
	stride        int
}

func (p *planeScratch) ensure(width, height int) {
	if p.width == width && p.height == height && p.buf != nil {
		return
	}
	p.buf = make([]int16, width*height)
	p.width, p.height = width, height
	p.stride = width
}

// Decoder decodes Pixlet packets. Its zero value is ready to use: a
// freshly constructed Decoder starts with no scratch buffers and allocates
// them lazily on its first Decode call. A copy of a Decoder that has
// already decoded a packet shares that Decoder's scratch buffers.
type Decoder struct {
	y, u, v planeScratch
}

// NewDecoder returns a ready-to-use Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Close releases the decoder's scratch buffers. It is safe to call more
// than once, and safe to call on a Decoder that never decoded a packet.
func (d *Decoder) Close() {
	d.y = planeScratch{}
	d.u = planeScratch{}
	d.v = planeScratch{}
}

// Decode parses and fully decodes one Pixlet packet, returning the decoded
// frame. On any error the returned frame is nil and the Decoder's scratch
// buffers may have been reset, but the Decoder itself remains reusable for
// the next Decode call.
func (d *Decoder) Decode(packet []byte) (*Frame, error) {
	frame, err := d.decode(packet)
	if err != nil {
		return nil, err
	}
	return frame, nil
}

func (d *Decoder) decode(packet []byte) (*Frame, error) {
	br := bits.NewReader(packet)

	hdr, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	alignTo := 1 << uint(levelCount+1)
	w := align(hdr.width, alignTo)
	h := align(hdr.height, alignTo)

	if w > maxPlaneDimension || h > maxPlaneDimension {
		return nil, errors.Wrapf(ErrOutOfMemory, "aligned dimensions %dx%d exceed %d", w, h, maxPlaneDimension)
	}

	d.y.ensure(w, h)
	d.u.ensure(w/2, h/2)
	d.v.ensure(w/2, h/2)

	planes := [3]*planeScratch{&d.y, &d.u, &d.v}
	for i, ps := range planes {
		if err := decodePlane(br, ps); err != nil {
			d.Close()
			return nil, invalidData("plane %d: %v", i, err)
		}
	}

	frame := &Frame{
		Width:      hdr.width,
		Height:     hdr.height,
		Depth:      hdr.depth,
		Type:       PictureTypeIntra,
		KeyFrame:   true,
		ColorRange: ColorRangeFull,
	}
	frame.Y = outputPlane(&d.y, hdr.depth, true)
	frame.U = outputPlane(&d.u, hdr.depth, false)
	frame.V = outputPlane(&d.v, hdr.depth, false)

	return frame, nil
}

// decodePlane runs the full per-plane pipeline: scaling prefix, lowpass and
// detail subband entropy decode, lowpass prediction, and inverse wavelet
// synthesis, leaving signed reconstructed samples in ps.buf.
func decodePlane(br *bits.Reader, ps *planeScratch) error {
	scale, err := readScaling(br)
	if err != nil {
		return err
	}

	if err := br.SkipBits(32); err != nil {
		return invalidData("skipping plane reserved field: %v", err)
	}

	bands := buildSubBands(ps.width, ps.height)

	if err := readLowpass(br, ps.buf, ps.stride, bands[0]); err != nil {
		return err
	}

	if err := readHighpass(br, ps.buf, ps.stride, bands); err != nil {
		return err
	}

	predictLowpass(ps.buf, bands[0].x, bands[0].y, bands[0].width, bands[0].height, ps.stride)

	if err := synthesizePlane(ps.buf, ps.width, ps.height, ps.stride, &scale); err != nil {
		return err
	}

	return nil
}

// outputPlane runs the postprocess step (gamma expansion for luma,
// bias-and-shift widening for chroma), producing the full-range unsigned
// 16-bit output plane at its aligned dimensions, per the decoder's
// external interface.
func outputPlane(ps *planeScratch, depth int, luma bool) Plane {
	out := Plane{
		Width:   ps.width,
		Height:  ps.height,
		Stride:  ps.stride,
		Samples: make([]uint16, len(ps.buf)),
	}
	if luma {
		postprocessLuma(ps.buf, out.Samples, depth)
	} else {
		postprocessChroma(ps.buf, out.Samples, depth)
	}
	return out
}
