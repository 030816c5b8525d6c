/*
DESCRIPTION
  wavelet.go implements the multi-level inverse wavelet synthesis, using a
  fixed biorthogonal 5-tap/7-tap filter pair, that reconstructs a plane from
  its lowpass and detail subbands.

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
	"math"

	"gonum.org/v1/gonum/floats"
)

// Synthesis filter taps. The low-band taps reconstruct even output samples
// from the lowpass and highpass neighbourhoods; the high-band taps
// reconstruct odd output samples. Widened to float64 for accumulation, as
// permitted by the format (the source constants are single-precision).
const (
	lowTapCenter = 0.8586296626673486
	lowTapOuter  = -0.07576144003329376
	lowTapCross  = 0.3535533905932737

	highTapOuter  = -0.01515228715813062
	highTapInner  = 0.3687056777514043
	highTapCross  = 0.07071067811865475
	highTapCenter = -0.8485281374238569
)

// synthesizePlane runs levelCount levels of separable 1-D inverse wavelet
// synthesis over buf in place. w, h are the plane's full aligned
// dimensions and stride its row pitch; scale supplies the per-level,
// per-direction scale factors read from the stream.
func synthesizePlane(buf []int16, w, h, stride int, scale *scaleTable) error {
	for level := 0; level < levelCount; level++ {
		bw := w >> (levelCount - level - 1)
		bh := h >> (levelCount - level - 1)

		scaleV := scale.get(dirVertical, level)
		scaleH := scale.get(dirHorizontal, level)

		// Row pass: one 1-D synthesis per row of the current block.
		row := make([]float64, bw)
		for y := 0; y < bh; y++ {
			base := y * stride
			for x := 0; x < bw; x++ {
				row[x] = float64(buf[base+x])
			}
			if err := filter1D(row, scaleV); err != nil {
				return err
			}
			for x := 0; x < bw; x++ {
				buf[base+x] = clip16(row[x])
			}
		}

		// Column pass: one 1-D synthesis per column of the current block.
		col := make([]float64, bh)
		for x := 0; x < bw; x++ {
			for y := 0; y < bh; y++ {
				col[y] = float64(buf[y*stride+x])
			}
			if err := filter1D(col, scaleH); err != nil {
				return err
			}
			for y := 0; y < bh; y++ {
				buf[y*stride+x] = clip16(col[y])
			}
		}
	}
	return nil
}

// reflectBoundary mirrors a logical index v into [0,n), reflecting through
// the boundary between samples rather than through a sample itself:
// f(-1)=f(0), f(-2)=f(1), f(n)=f(n-1), f(n+1)=f(n-2). Both subbands' padding
// rules reduce to this single formula for every offset filter1D actually
// reaches (at most one sample past either edge).
func reflectBoundary(v, n int) int {
	if n == 1 {
		return 0
	}
	for {
		switch {
		case v < 0:
			v = -v - 1
		case v >= n:
			v = 2*n - 1 - v
		default:
			return v
		}
	}
}

// filter1D performs one dimension of inverse wavelet synthesis over dest
// in place, given the even/odd split into low and high subbands that the
// forward transform produced. SCALE is the reconstruction scale factor for
// this level and direction.
func filter1D(dest []float64, scale float64) error {
	n := len(dest)
	if n%2 != 0 {
		return invalidData("wavelet block length %d is odd", n)
	}
	half := n / 2
	if half == 0 {
		return nil
	}

	low := dest[:half]
	high := dest[half:]

	lowAt := func(i int) float64 { return low[reflectBoundary(i, half)] }
	highAt := func(i int) float64 { return high[reflectBoundary(i, half)] }

	evenVals := make([]float64, len(evenTaps))
	oddVals := make([]float64, len(oddTaps))
	out := make([]float64, n)
	for i := 0; i < half; i++ {
		evenVals[0] = lowAt(i - 1)
		evenVals[1] = lowAt(i + 1)
		evenVals[2] = lowAt(i)
		evenVals[3] = highAt(i - 1)
		evenVals[4] = highAt(i)

		oddVals[0] = lowAt(i - 1)
		oddVals[1] = lowAt(i + 2)
		oddVals[2] = lowAt(i)
		oddVals[3] = lowAt(i + 1)
		oddVals[4] = highAt(i - 1)
		oddVals[5] = highAt(i + 1)
		oddVals[6] = highAt(i)

		out[2*i] = scale * floats.Dot(evenTaps, evenVals)
		out[2*i+1] = scale * floats.Dot(oddTaps, oddVals)
	}

	copy(dest, out)
	return nil
}

// evenTaps and oddTaps are the synthesis filter's weights for the even and
// odd output samples respectively, ordered to match the evenVals/oddVals
// construction in filter1D. The per-sample dot product is computed with
// gonum's floats package rather than by hand, the same way it's used
// elsewhere in the retrieval pack for small fixed-size numeric reductions.
var (
	evenTaps = []float64{lowTapOuter, lowTapOuter, lowTapCenter, lowTapCross, lowTapCross}
	oddTaps  = []float64{highTapOuter, highTapOuter, highTapInner, highTapInner, highTapCross, highTapCross, highTapCenter}
)

// clip16 rounds x and saturates it to the signed 16-bit range.
func clip16(x float64) int16 {
	r := math.Round(x)
	switch {
	case r < math.MinInt16:
		return math.MinInt16
	case r > math.MaxInt16:
		return math.MaxInt16
	default:
		return int16(r)
	}
}
