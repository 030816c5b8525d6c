/*
DESCRIPTION
  subband_test.go provides testing for the subband layout in subband.go.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/
package pixlet

import "testing"

func TestBuildSubBandsCoversPlane(t *testing.T) {
	tests := []struct {
		w, h int
	}{
		{32, 32},
		{64, 32},
		{128, 64},
		{16, 16},
	}

	for _, test := range tests {
		bands := buildSubBands(test.w, test.h)

		sum := 0
		for _, b := range bands {
			sum += b.size()
		}
		if sum != test.w*test.h {
			t.Errorf("w=%d h=%d: subband sizes sum to %d, want %d", test.w, test.h, sum, test.w*test.h)
		}
	}
}

func TestBuildSubBandsOffsets(t *testing.T) {
	bands := buildSubBands(64, 32)

	// The lowpass band sits at the origin, sized at the coarsest scale.
	if got, want := bands[0], (subBand{width: 4, height: 2}); got != want {
		t.Errorf("lowpass band = %+v, want %+v", got, want)
	}

	// The finest level's three detail bands (k=levelCount-1) sit adjacent to
	// the full-resolution half-planes.
	fin := bands[3*(levelCount-1)+1 : 3*(levelCount-1)+4]
	wantW, wantH := 32, 16
	for _, b := range fin {
		if b.width != wantW || b.height != wantH {
			t.Errorf("finest detail band = %dx%d, want %dx%d", b.width, b.height, wantW, wantH)
		}
	}
}

func TestScaleTableGet(t *testing.T) {
	var tbl scaleTable
	tbl.h[2] = 1.5
	tbl.v[2] = 0.5

	if got := tbl.get(dirHorizontal, 2); got != 1.5 {
		t.Errorf("get(horizontal, 2) = %v, want 1.5", got)
	}
	if got := tbl.get(dirVertical, 2); got != 0.5 {
		t.Errorf("get(vertical, 2) = %v, want 0.5", got)
	}
}
