// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted)

/*
Package lzw implements classic fixed-width LZW dictionary coding, the scheme
Teledisk 1.x disk images use: a fixed-width code stream with optional clear
and stop codes, MSB- or LSB-first bit packing, and an optional bit-length
header ahead of each chunk.

	out, err := lzw.CompressSlice(data, lzw.StdOptions)
	back, err := lzw.ExpandSlice(out, lzw.StdOptions)
*/
package lzw
