// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted); grounded on
// _examples/original_source/src/td0.rs's TD_V1_OPTIONS/TD_V2_OPTIONS.

package td0

import (
	"github.com/retrohaven/retrocodec/bitio"
	"github.com/retrohaven/retrocodec/lzw"
)

// V1Options configures the lzw package for Teledisk 1.x images: a 16-bit
// per-chunk bit-count header (divided by 4 when stored), no clear or stop
// code, 12-bit codes, LSB-first, positioned after the 12-byte TD0 header.
//
// Teledisk 2.x images need no equivalent Options value: their window size,
// match threshold, and lookahead are fixed, and happen to equal lzhuf's own
// hardcoded constants, so Expand/Compress call lzhuf directly.
var V1Options = lzw.Options{
	HeaderBits:    16,
	HeaderDivisor: 4,
	InOffset:      12,
	OutOffset:     12,
	ChunkSize:     4096,
	MinSymbol:     0,
	MaxSymbol:     255,
	ClearCode:     lzw.NoCode,
	StopCode:      lzw.NoCode,
	MinCodeWidth:  12,
	MaxCodeWidth:  12,
	Order:         bitio.LSB0,
	MaxFileSize:   3_000_000,
}
