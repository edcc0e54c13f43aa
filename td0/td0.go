// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted); grounded on
// _examples/original_source/src/td0.rs's expand/compress.

/*
Package td0 re-compresses and expands Teledisk disk image (.td0) files. It
performs no analysis of the image itself: it verifies and flips the 2-byte
signature and 2-byte CRC-16 in the 12-byte header, then dispatches the
remainder of the file to lzw (Teledisk 1.x) or lzhuf (Teledisk 2.x) based on
the header's version byte.

Because TD0 does not record the expanded image's size, Expand may leave a
trailing pad byte at the end of the output; Teledisk itself pads its
expanded images by a few bytes, and decoders that rely on TD0 images
typically tolerate this.
*/
package td0

import (
	"encoding/binary"
	"io"
	"log/slog"

	"github.com/retrohaven/retrocodec/lzhuf"
	"github.com/retrohaven/retrocodec/lzw"
)

const headerLen = 12

// Expand converts a TD0 image from advanced (v1.x LZW or v2.x LZHUF)
// compression to normal, flipping its header signature from "td" to "TD".
func Expand(r io.ReadSeeker, w io.WriteSeeker) (inSize, outSize int64, err error) {
	var header [headerLen]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, 0, err
	}
	if string(header[0:2]) != "td" {
		return 0, 0, ErrFileFormatMismatch
	}
	if err := verifyAndFlipHeader(&header, "TD"); err != nil {
		return 0, 0, err
	}
	if _, err := w.Write(header[:]); err != nil {
		return 0, 0, err
	}

	if header[4] < 20 {
		in, out, err := lzw.Expand(r, w, V1Options)
		if err != nil {
			return 0, 0, err
		}
		slog.Debug("td0 expand complete", "version", "1.x", "inSize", in+headerLen, "outSize", out+headerLen)
		return in + headerLen, out + headerLen, nil
	}

	in, out, err := lzhuf.Decode(r, w)
	if err != nil {
		return 0, 0, err
	}
	slog.Debug("td0 expand complete", "version", "2.x", "inSize", in+headerLen, "outSize", out+headerLen)
	return in + headerLen, out + headerLen, nil
}

// Compress converts a TD0 image from normal to advanced compression,
// flipping its header signature from "TD" to "td".
func Compress(r io.ReadSeeker, w io.WriteSeeker) (inSize, outSize int64, err error) {
	var header [headerLen]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, 0, err
	}
	if string(header[0:2]) != "TD" {
		return 0, 0, ErrFileFormatMismatch
	}
	if err := verifyAndFlipHeader(&header, "td"); err != nil {
		return 0, 0, err
	}
	if _, err := w.Write(header[:]); err != nil {
		return 0, 0, err
	}

	if header[4] < 20 {
		in, out, err := lzw.Compress(r, w, V1Options)
		if err != nil {
			return 0, 0, err
		}
		slog.Debug("td0 compress complete", "version", "1.x", "inSize", in+headerLen, "outSize", out+headerLen)
		return in + headerLen, out + headerLen, nil
	}

	rest, err := io.ReadAll(r)
	if err != nil {
		return 0, 0, err
	}
	out, err := lzhuf.EncodeSlice(rest)
	if err != nil {
		return 0, 0, err
	}
	if _, err := w.Write(out); err != nil {
		return 0, 0, err
	}
	slog.Debug("td0 compress complete", "version", "2.x", "inSize", len(rest)+headerLen, "outSize", len(out)+headerLen)
	return int64(len(rest)) + headerLen, int64(len(out)) + headerLen, nil
}

// verifyAndFlipHeader checks the header's CRC-16 against its current
// signature, then rewrites the signature to newSig and recomputes the CRC.
func verifyAndFlipHeader(header *[headerLen]byte, newSig string) error {
	crc := crc16(0, header[0:10])
	if binary.LittleEndian.Uint16(header[10:12]) != crc {
		return ErrBadChecksum
	}
	copy(header[0:2], newSig)
	crc = crc16(0, header[0:10])
	binary.LittleEndian.PutUint16(header[10:12], crc)
	return nil
}

// ExpandSlice is a convenience wrapper around Expand for in-memory data.
func ExpandSlice(data []byte) ([]byte, error) {
	r := byteReadSeeker(data)
	w := newSliceWriteSeeker()
	if _, _, err := Expand(r, w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// CompressSlice is a convenience wrapper around Compress for in-memory data.
func CompressSlice(data []byte) ([]byte, error) {
	r := byteReadSeeker(data)
	w := newSliceWriteSeeker()
	if _, _, err := Compress(r, w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}
