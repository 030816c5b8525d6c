/*
DESCRIPTION
  frame.go describes the decoded frame output by the Pixlet decoder.

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

// PictureType classifies the coding type of a decoded picture. Pixlet only
// ever produces intra pictures, but the field is carried through so callers
// that stack this decoder alongside others have a uniform picture-type
// signal to branch on.
type PictureType int

const (
	// PictureTypeIntra indicates a picture coded without reference to any
	// other picture, as every Pixlet frame is.
	PictureTypeIntra PictureType = iota
)

// ColorRange classifies whether sample values span the full coded range or
// a studio-legal subset of it.
type ColorRange int

const (
	// ColorRangeFull indicates luma and chroma occupy the full 0..2^depth-1
	// coded range, as Pixlet always does.
	ColorRangeFull ColorRange = iota
)

// Plane is one decoded image plane: Width x Height unsigned 16-bit samples
// laid out row-major with the given Stride (samples per row, Stride >=
// Width). Samples[y*Stride+x] addresses pixel (x,y).
type Plane struct {
	Width, Height int
	Stride        int
	Samples       []uint16
}

// Frame is a single decoded Pixlet picture: one full-resolution luma plane
// and two chroma planes subsampled 2x in both dimensions (4:2:0), each at
// Depth bits of precision before the postprocess step widens everything to
// 16 bits per sample.
type Frame struct {
	// Width, Height are the coded picture dimensions, which may be smaller
	// than the planes' aligned Width/Height.
	Width, Height int

	// Depth is the source bit depth, 8..15, as declared by the packet
	// header. Luma and chroma planes are both widened to full 16-bit range
	// by Decode's postprocess step; Depth is retained for callers that need
	// to know the original precision.
	Depth int

	Y, U, V Plane

	Type       PictureType
	KeyFrame   bool
	ColorRange ColorRange
}
