// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted); grounded on
// _examples/original_source/src/lib.rs's Options/STD_OPTIONS.

package retrocodec

// Method selects which codec Compress/Decompress dispatches to.
type Method int

const (
	// MethodLZHUF selects LZSS with adaptive Huffman coding (lzhuf package).
	MethodLZHUF Method = iota
	// MethodLZW selects fixed-width LZW dictionary coding (lzw package).
	MethodLZW
	// MethodTD0 selects Teledisk disk-image framing, which picks LZW or
	// LZHUF per-image from its 12-byte header (td0 package).
	MethodTD0
)

func (m Method) String() string {
	switch m {
	case MethodLZHUF:
		return "lzhuf"
	case MethodLZW:
		return "lzw"
	case MethodTD0:
		return "td0"
	default:
		return "unknown"
	}
}

// Options controls how much of the input and output streams a codec call
// actually touches. InOffset bytes are skipped at the start of the input
// before decoding begins; OutOffset bytes are left untouched at the start
// of the output before the first decoded byte is written. Both default to
// 0. Header is honored by MethodLZW only, where it controls whether each
// chunk is preceded by a bit-length header (see lzw.Options.HeaderBits).
type Options struct {
	Header    bool
	InOffset  int64
	OutOffset int64
}

// StdOptions is the zero-offset, no-header default.
var StdOptions = Options{Header: false}
