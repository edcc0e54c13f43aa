// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted)

package td0

import "errors"

var (
	// ErrFileFormatMismatch is returned when the 12-byte header's
	// signature is not the one the call expects: "td" for Expand, "TD" for
	// Compress.
	ErrFileFormatMismatch = errors.New("td0: file format mismatch")
	// ErrBadChecksum is returned when the header's CRC-16 doesn't match
	// its recorded value.
	ErrBadChecksum = errors.New("td0: bad header checksum")
)
