/*
DESCRIPTION
  errors_test.go provides testing for the error taxonomy in errors.go.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/
package pixlet

import (
	"errors"
	"testing"
)

func TestInvalidDataWrapsSentinel(t *testing.T) {
	err := invalidData("bad field %d", 7)
	if !errors.Is(err, ErrInvalidData) {
		t.Errorf("errors.Is(%v, ErrInvalidData) = false, want true", err)
	}
	if errors.Is(err, ErrUnsupported) {
		t.Errorf("errors.Is(%v, ErrUnsupported) = true, want false", err)
	}
}

func TestUnsupportedWrapsSentinel(t *testing.T) {
	err := unsupported("version %d", 2)
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("errors.Is(%v, ErrUnsupported) = false, want true", err)
	}
	if errors.Is(err, ErrInvalidData) {
		t.Errorf("errors.Is(%v, ErrInvalidData) = true, want false", err)
	}
}
