// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted)

package lzhuf

import "errors"

// Sentinel errors for lzhuf encoding and decoding.
var (
	// ErrFileTooLarge is returned when the input is too large for the
	// 32-bit length header (>= 2^32 bytes).
	ErrFileTooLarge = errors.New("lzhuf: file too large for 32-bit header")
)
