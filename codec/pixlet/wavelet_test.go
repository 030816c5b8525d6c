/*
DESCRIPTION
  wavelet_test.go provides testing for the inverse wavelet synthesis in
  wavelet.go.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/
package pixlet

import (
	"math"
	"testing"
)

func TestReflectBoundary(t *testing.T) {
	tests := []struct {
		v, n, want int
	}{
		{v: 0, n: 4, want: 0},
		{v: 3, n: 4, want: 3},
		{v: -1, n: 4, want: 0},
		{v: -2, n: 4, want: 1},
		{v: 4, n: 4, want: 3},
		{v: 5, n: 4, want: 2},
		{v: 0, n: 1, want: 0},
		{v: -1, n: 1, want: 0},
		{v: 7, n: 1, want: 0},
	}
	for _, test := range tests {
		if got := reflectBoundary(test.v, test.n); got != test.want {
			t.Errorf("reflectBoundary(%d, %d) = %d, want %d", test.v, test.n, got, test.want)
		}
	}
}

func TestClip16(t *testing.T) {
	tests := []struct {
		x    float64
		want int16
	}{
		{x: 0, want: 0},
		{x: 1.4, want: 1},
		{x: 1.5, want: 2},
		{x: -1.5, want: -2},
		{x: math.MaxInt16, want: math.MaxInt16},
		{x: math.MaxInt16 + 100, want: math.MaxInt16},
		{x: math.MinInt16, want: math.MinInt16},
		{x: math.MinInt16 - 100, want: math.MinInt16},
	}
	for _, test := range tests {
		if got := clip16(test.x); got != test.want {
			t.Errorf("clip16(%v) = %d, want %d", test.x, got, test.want)
		}
	}
}

// identityScale is the per-level, per-direction scale factor at which the
// synthesis filter's DC gain (1/sqrt(2) per 1-D pass at scale 1.0) cancels
// out, so a constant lowpass block with a zero highpass block reconstructs
// to the same constant (to within about 2e-9 relative: the even taps sum
// to slightly more than 1/sqrt(2)).
const identityScale = math.Sqrt2

func TestFilter1DConstantDCIsApproximatelyIdentity(t *testing.T) {
	const half = 8
	const c = 1000.0

	dest := make([]float64, 2*half)
	for i := 0; i < half; i++ {
		dest[i] = c
	}

	if err := filter1D(dest, identityScale); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Even outputs carry the even taps' DC gain (about 1000.000002 here),
	// odd outputs the odd taps' gain (1000 to within float64 rounding).
	wantEven := c * identityScale * (2*lowTapOuter + lowTapCenter)
	wantOdd := c * identityScale * (2*highTapOuter + 2*highTapInner)
	const tolerance = 1e-6
	for i, v := range dest {
		want := wantEven
		if i%2 == 1 {
			want = wantOdd
		}
		if math.Abs(v-want) > tolerance {
			t.Errorf("dest[%d] = %v, want approximately %v", i, v, want)
		}
	}
}

func TestFilter1DZeroIsZero(t *testing.T) {
	dest := make([]float64, 8)
	if err := filter1D(dest, identityScale); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range dest {
		if v != 0 {
			t.Errorf("dest[%d] = %v, want 0", i, v)
		}
	}
}

func TestFilter1DRejectsOddLength(t *testing.T) {
	if err := filter1D(make([]float64, 3), 1.0); err == nil {
		t.Fatal("expected an error for an odd-length block")
	}
}

func TestFilter1DEmptyBlock(t *testing.T) {
	if err := filter1D(nil, 1.0); err != nil {
		t.Fatalf("unexpected error on an empty block: %v", err)
	}
}

func TestSynthesizePlaneConstantDCIsApproximatelyIdentity(t *testing.T) {
	// A plane whose lowpass subband is a single constant DC value and whose
	// detail subbands are all zero should reconstruct, under the identity
	// scale on every level and direction, to a uniform plane at that value.
	const w, h = 32, 32
	const stride = w
	const c = 500

	buf := make([]int16, h*stride)
	lowW, lowH := w>>levelCount, h>>levelCount
	for y := 0; y < lowH; y++ {
		for x := 0; x < lowW; x++ {
			buf[y*stride+x] = c
		}
	}

	var scale scaleTable
	for l := 0; l < levelCount; l++ {
		scale.h[l] = identityScale
		scale.v[l] = identityScale
	}

	if err := synthesizePlane(buf, w, h, stride, &scale); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const tolerance = 2 // rounding error accumulated over 4 levels of clip16
	for i, v := range buf {
		if diff := int(v) - c; diff > tolerance || diff < -tolerance {
			t.Errorf("buf[%d] = %d, want approximately %d", i, v, c)
		}
	}
}
