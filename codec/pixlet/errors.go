/*
DESCRIPTION
  errors.go defines the Pixlet decoder's error taxonomy.

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

import "github.com/pkg/errors"

// Sentinel errors classifying why a decode failed. Callers should match
// against these with errors.Is; stage-specific context is layered on top
// with errors.Wrap as the error propagates out of the decoder.
var (
	// ErrInvalidData means the packet is structurally malformed: a header
	// field failed validation, a magic word didn't match, a run length or
	// bit-width computation went out of range, or the bitstream was
	// exhausted before the declared data did.
	ErrInvalidData = errors.New("pixlet: invalid data")

	// ErrUnsupported means the packet is well-formed but describes a
	// variant this decoder does not implement (wrong codec version, or a
	// bit depth outside the supported range).
	ErrUnsupported = errors.New("pixlet: unsupported stream")

	// ErrOutOfMemory means the packet declares aligned plane dimensions
	// larger than the decoder will allocate scratch buffers for; it is
	// returned before any allocation is attempted.
	ErrOutOfMemory = errors.New("pixlet: out of memory")
)

// invalidData wraps ErrInvalidData with stage-specific context.
func invalidData(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidData, format, args...)
}

// unsupported wraps ErrUnsupported with stage-specific context.
func unsupported(format string, args ...interface{}) error {
	return errors.Wrapf(ErrUnsupported, format, args...)
}
