// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted)

/*
Package retrocodec is a thin façade over three independent retro
compression codecs, each importable on its own:

  - lzhuf: LZSS with adaptive (sibling-property) Huffman coding of
    literals and match lengths, and a fixed prefix code for positions.
  - lzw: fixed-width LZW dictionary coding with an optional clear code
    and per-chunk bit-length header.
  - td0: Teledisk disk image (.td0) framing, which picks lzw or lzhuf
    per image from its 12-byte header.

Compress and Decompress select a Method and operate on byte slices:

	out, err := retrocodec.Compress(retrocodec.MethodLZHUF, data, retrocodec.StdOptions)
	back, err := retrocodec.Decompress(retrocodec.MethodLZHUF, out, retrocodec.StdOptions)

Callers needing streaming I/O, or full control over a codec's own options
(chunk size, clear/stop codes, bit order), should import the codec package
directly instead.
*/
package retrocodec
