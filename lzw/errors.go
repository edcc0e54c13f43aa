// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted)

package lzw

import "errors"

var (
	// ErrFileFormatMismatch is returned when a code points at a dictionary
	// entry that hasn't been created yet (a corrupt or truncated stream).
	ErrFileFormatMismatch = errors.New("lzw: file format mismatch")
	// ErrFileTooLarge is returned when an input exceeds Options.MaxFileSize.
	ErrFileTooLarge = errors.New("lzw: file too large")
	// ErrVariableWidthUnsupported is returned when MinCodeWidth != MaxCodeWidth.
	ErrVariableWidthUnsupported = errors.New("lzw: variable code width not supported")
	// ErrMinSymbolNonzero is returned when MinSymbol != 0.
	ErrMinSymbolNonzero = errors.New("lzw: minimum symbol value must be 0")
)
