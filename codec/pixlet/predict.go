/*
DESCRIPTION
  predict.go implements the lowpass subband's causal horizontal/vertical
  prediction decode.

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

// predictLowpass undoes the lowpass subband's 2-D causal prediction,
// in-place: every sample accumulates first its running column sum, then
// its running row sum. A width-long prediction cache tracks the per-column
// running sum across rows.
func predictLowpass(buf []int16, x0, y0, width, height, stride int) {
	pred := make([]int32, width)

	for row := 0; row < height; row++ {
		base := (y0+row)*stride + x0

		v := pred[0] + int32(buf[base])
		buf[base] = int16(v)
		pred[0] = v

		for j := 1; j < width; j++ {
			cur := pred[j] + int32(buf[base+j])
			pred[j] = cur
			buf[base+j] = int16(cur + int32(buf[base+j-1]))
		}
	}
}
