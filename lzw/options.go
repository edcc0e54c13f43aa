// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted); grounded on
// _examples/original_source/src/lzw.rs's Options/STD_OPTIONS.

package lzw

import "github.com/retrohaven/retrocodec/bitio"

// NoCode marks ClearCode or StopCode as absent.
const NoCode = -1

// Options controls fixed-code-width LZW compression. Only fixed code
// widths are supported: MinCodeWidth and MaxCodeWidth must be equal.
type Options struct {
	// HeaderBits is the length in bits of a header written before each
	// chunk, giving the chunk's size in bits divided by HeaderDivisor; 0
	// disables it.
	HeaderBits int
	// HeaderDivisor: the header stores bit count divided by this number.
	HeaderDivisor int
	// InOffset is the starting byte position in the input.
	InOffset int64
	// OutOffset is the starting byte position in the output.
	OutOffset int64
	// ChunkSize is the number of codes written before the dictionary resets.
	ChunkSize int
	// MinSymbol is the minimum symbol value; must be 0.
	MinSymbol int
	// MaxSymbol is the maximum symbol value (usually 255).
	MaxSymbol int
	// ClearCode resets the dictionary mid-stream when emitted; NoCode to disable.
	ClearCode int
	// StopCode ends the stream when emitted; NoCode to disable.
	StopCode int
	// MinCodeWidth must equal MaxCodeWidth; present for symmetry with the
	// format this was ported from.
	MinCodeWidth int
	// MaxCodeWidth is the fixed code width in bits.
	MaxCodeWidth int
	// Order selects MSB-first or LSB-first bit packing.
	Order bitio.Order
	// MaxFileSize rejects an input (counted from InOffset) larger than this
	// many bytes; the output size is not checked.
	MaxFileSize int64
}

// StdOptions matches the reference STD_OPTIONS: byte-aligned streams with
// a 256 clear code, 257 stop code, and 12-bit codes, LSB-first.
var StdOptions = Options{
	HeaderBits:    0,
	HeaderDivisor: 1,
	ChunkSize:     4096,
	MinSymbol:     0,
	MaxSymbol:     255,
	ClearCode:     256,
	StopCode:      257,
	MinCodeWidth:  12,
	MaxCodeWidth:  12,
	Order:         bitio.LSB0,
	MaxFileSize:   1<<32/4 - 1,
}
