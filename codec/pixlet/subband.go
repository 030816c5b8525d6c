/*
DESCRIPTION
  subband.go describes the wavelet subband layout of a decoded plane, and
  the per-level scaling table applied during synthesis.

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

// subBand describes one rectangular block of coefficients within a plane
// buffer: its dimensions in samples and its top-left offset within the
// plane.
type subBand struct {
	width, height int
	x, y          int
}

// size is the number of coefficients the subband holds.
func (s subBand) size() int {
	return s.width * s.height
}

// subBandCount is the number of subbands per plane: one lowpass plus three
// detail bands (HL, LH, HH) per decomposition level.
const subBandCount = 3*levelCount + 1

// buildSubBands lays out the subBandCount subbands of a plane of full
// dimensions w x h, per the dyadic decomposition this format always uses:
// band 0 is the lowpass at scale 2^levels, and bands 3k+1..3k+3 (k =
// 0..levels-1) are the HL/LH/HH detail bands at scale 2^(levels-k).
//
// The sum of every subband's size equals w*h.
func buildSubBands(w, h int) [subBandCount]subBand {
	var bands [subBandCount]subBand

	bands[0] = subBand{width: w >> levelCount, height: h >> levelCount}

	for k := 0; k < levelCount; k++ {
		s := levelCount - k
		bw, bh := w>>s, h>>s

		bands[3*k+1] = subBand{width: bw, height: bh, x: bw, y: 0}  // HL
		bands[3*k+2] = subBand{width: bw, height: bh, x: 0, y: bh}  // LH
		bands[3*k+3] = subBand{width: bw, height: bh, x: bw, y: bh} // HH
	}

	return bands
}

// direction selects which axis a scale factor or filter pass applies to.
type direction int

const (
	dirHorizontal direction = iota
	dirVertical
)

// scaleTable holds the L horizontal and L vertical synthesis scale factors
// for one plane, indexed by the stream's own convention: the first pair
// read from the bitstream lands at index levels-1, the last at index 0.
type scaleTable struct {
	h, v [levelCount]float64
}

// get returns the scale factor for dir at level.
func (t *scaleTable) get(dir direction, level int) float64 {
	if dir == dirHorizontal {
		return t.h[level]
	}
	return t.v[level]
}
