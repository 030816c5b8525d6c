/*
DESCRIPTION
  postprocess.go converts a synthesized signed 16-bit plane into its final
  unsigned 16-bit display representation: a gamma-style square-law
  expansion for luma, and a bias-and-shift widening for chroma.

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

import "math"

// postprocessLuma expands a depth-bit signed luma plane into full-range
// unsigned 16-bit samples: out = round((max(y,0) / (2^depth-1))^2 * 65535).
// Negative residual values clamp to 0, and values above 2^depth-1 clamp to
// 2^depth-1, before the square-law expansion, which is what lets this step
// reinterpret the plane's storage as unsigned without ever producing a
// value outside [0,65535].
func postprocessLuma(signed []int16, out []uint16, depth int) {
	maxVal := float64(int(1)<<uint(depth) - 1)
	for i, s := range signed {
		y := float64(s)
		if y < 0 {
			y = 0
		}
		if y > maxVal {
			y = maxVal
		}
		n := y / maxVal
		out[i] = uint16(math.Round(n * n * 65535))
	}
}

// postprocessChroma widens a depth-bit signed chroma plane to full-range
// unsigned 16-bit samples: out = (c + 2^(depth-1)) << (16-depth).
func postprocessChroma(signed []int16, out []uint16, depth int) {
	bias := int32(1) << uint(depth-1)
	shift := uint(16 - depth)
	for i, s := range signed {
		v := (int32(s) + bias) << shift
		out[i] = uint16(uint32(v))
	}
}
