// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted); grounded on
// _examples/original_source/src/lib.rs's Error enum and the
// crate::Error::FileTooLarge / crate::Error::BadChecksum variants
// referenced from td0.rs and lzw.rs.

package retrocodec

import (
	"errors"
	"fmt"

	"github.com/retrohaven/retrocodec/lzhuf"
	"github.com/retrohaven/retrocodec/lzw"
	"github.com/retrohaven/retrocodec/td0"
)

// Sentinel errors shared by every codec and by the td0 container format.
var (
	// ErrFileFormatMismatch is returned when a stream doesn't look like
	// the format a decoder was told to expect (e.g. a td0 signature other
	// than the one the direction expects, or an LZW code pointing at an
	// empty slot in the dictionary).
	ErrFileFormatMismatch = errors.New("retrocodec: file format mismatch")
	// ErrFileTooLarge is returned when an input exceeds what a codec
	// accepts: 2^32 bytes or more for lzhuf, more than MaxFileSize for lzw.
	ErrFileTooLarge = errors.New("retrocodec: file too large")
	// ErrBadChecksum is returned when a td0 header's CRC-16 doesn't match
	// its recorded value.
	ErrBadChecksum = errors.New("retrocodec: bad checksum")
	// ErrUnknownMethod is returned when a Method value has no registered codec.
	ErrUnknownMethod = errors.New("retrocodec: unknown method")
)

// wrapSubpackageErr translates a subpackage-local sentinel error into the
// matching root sentinel, wrapping both so errors.Is succeeds against
// either the root sentinel or the original subpackage error. Errors that
// don't match a known subpackage sentinel (I/O errors, for instance) pass
// through unchanged.
func wrapSubpackageErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, lzhuf.ErrFileTooLarge), errors.Is(err, lzw.ErrFileTooLarge):
		return fmt.Errorf("%w: %w", ErrFileTooLarge, err)
	case errors.Is(err, lzw.ErrFileFormatMismatch), errors.Is(err, td0.ErrFileFormatMismatch):
		return fmt.Errorf("%w: %w", ErrFileFormatMismatch, err)
	case errors.Is(err, td0.ErrBadChecksum):
		return fmt.Errorf("%w: %w", ErrBadChecksum, err)
	default:
		return err
	}
}
