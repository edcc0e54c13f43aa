// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted); grounded on
// _examples/original_source/src/lzw.rs's compress/expand.

/*
Package lzw implements fixed-code-width LZW dictionary compression with a
pluggable bit order, an optional clear code that resets the dictionary
mid-stream, and an optional per-chunk bit-length header (used by the
Teledisk v1.x container).
*/
package lzw

import (
	"io"
	"log/slog"

	"github.com/retrohaven/retrocodec/bitio"
)

// maxChunkBits stands in for "no header, run until the stream ends".
const maxChunkBits = int64(1) << 62

// Compress LZW-encodes the bytes of r (starting at opt.InOffset) into w
// (starting at opt.OutOffset), returning the number of input and output
// bytes involved.
func Compress(r io.ReadSeeker, w io.WriteSeeker, opt Options) (inSize, outSize int64, err error) {
	if opt.MinCodeWidth != opt.MaxCodeWidth {
		return 0, 0, ErrVariableWidthUnsupported
	}
	if opt.MinSymbol != 0 {
		return 0, 0, ErrMinSymbolNonzero
	}

	expandedLength, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, 0, err
	}
	if opt.InOffset > expandedLength {
		return 0, 0, ErrFileFormatMismatch
	}
	expandedLength -= opt.InOffset
	if expandedLength > opt.MaxFileSize {
		return 0, 0, ErrFileTooLarge
	}

	coder := bitio.NewSink(w, opt.Order)
	oldCoderState := bitio.NewSink(w, opt.Order)
	writeOffsetHeader := opt.OutOffset
	readChunkOffset := opt.InOffset

	var sym [1]byte
	for {
		d, derr := newLZWDict(opt)
		if derr != nil {
			return 0, 0, derr
		}
		if _, err := r.Seek(readChunkOffset, io.SeekStart); err != nil {
			return 0, 0, err
		}
		if _, err := w.Seek(writeOffsetHeader, io.SeekStart); err != nil {
			return 0, 0, err
		}
		if opt.HeaderBits > 0 {
			if err := coder.PutCode(opt.HeaderBits, 0); err != nil {
				return 0, 0, err
			}
		}
		coder.Count = 0

		for {
			d.currMatch = nil

			for {
				if _, rerr := io.ReadFull(r, sym[:]); rerr != nil {
					if rerr != io.EOF && rerr != io.ErrUnexpectedEOF {
						return 0, 0, rerr
					}
					if d.currMatch != nil {
						v := d.entries[dictKey{d.currMatch.code, d.currMatch.sym}]
						if err := coder.PutCode(opt.MaxCodeWidth, uint32(v.code)); err != nil {
							return 0, 0, err
						}
					}
					if opt.StopCode != NoCode {
						if err := coder.PutCode(opt.MaxCodeWidth, uint32(opt.StopCode)); err != nil {
							return 0, 0, err
						}
					}
					if opt.HeaderBits > 0 {
						if _, err := w.Seek(writeOffsetHeader, io.SeekStart); err != nil {
							return 0, 0, err
						}
						if err := oldCoderState.PutCode(opt.HeaderBits, uint32(coder.Count*opt.MaxCodeWidth/opt.HeaderDivisor)); err != nil {
							return 0, 0, err
						}
					}
					if _, err := w.Seek(0, io.SeekEnd); err != nil {
						return 0, 0, err
					}
					endPos, err := w.Seek(0, io.SeekCurrent)
					if err != nil {
						return 0, 0, err
					}
					slog.Debug("lzw compress complete", "inSize", expandedLength, "outSize", endPos-opt.OutOffset)
					return expandedLength, endPos - opt.OutOffset, nil
				}

				matched, _ := d.checkMatch(int(sym[0]))
				if matched {
					continue
				}
				break
			}

			curr := d.entries[dictKey{d.currMatch.code, d.currMatch.sym}]
			if err := coder.PutCode(opt.MaxCodeWidth, uint32(curr.code)); err != nil {
				return 0, 0, err
			}
			if _, err := r.Seek(-1, io.SeekCurrent); err != nil {
				return 0, 0, err
			}

			if coder.Count >= opt.ChunkSize {
				if opt.ClearCode != NoCode {
					if err := coder.PutCode(opt.MaxCodeWidth, uint32(opt.ClearCode)); err != nil {
						return 0, 0, err
					}
				}
				saveOffset, err := w.Seek(0, io.SeekCurrent)
				if err != nil {
					return 0, 0, err
				}
				if opt.HeaderBits > 0 {
					if _, err := w.Seek(writeOffsetHeader, io.SeekStart); err != nil {
						return 0, 0, err
					}
					if err := oldCoderState.PutCode(opt.HeaderBits, uint32(coder.Count*opt.MaxCodeWidth/opt.HeaderDivisor)); err != nil {
						return 0, 0, err
					}
				}
				oldCoderState = coder.Clone()
				writeOffsetHeader = saveOffset
				if readChunkOffset, err = r.Seek(0, io.SeekCurrent); err != nil {
					return 0, 0, err
				}
				break
			}
		}
	}
}

// Expand LZW-decodes the bytes of r (starting at opt.InOffset) into w
// (starting at opt.OutOffset), returning the number of input and output
// bytes involved.
func Expand(r io.ReadSeeker, w io.WriteSeeker, opt Options) (inSize, outSize int64, err error) {
	if opt.MinCodeWidth != opt.MaxCodeWidth {
		return 0, 0, ErrVariableWidthUnsupported
	}
	if opt.MinSymbol != 0 {
		return 0, 0, ErrMinSymbolNonzero
	}

	compressedSize, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, 0, err
	}
	if opt.InOffset > compressedSize {
		return 0, 0, ErrFileFormatMismatch
	}
	compressedSize -= opt.InOffset
	if compressedSize > opt.MaxFileSize {
		return 0, 0, ErrFileTooLarge
	}
	if _, err := r.Seek(opt.InOffset, io.SeekStart); err != nil {
		return 0, 0, err
	}
	if _, err := w.Seek(opt.OutOffset, io.SeekStart); err != nil {
		return 0, 0, err
	}

	src := bitio.NewSource(r, opt.Order)

	endOfData := false
	for !endOfData {
		d, derr := newLZWDict(opt)
		if derr != nil {
			return 0, 0, derr
		}

		chunkBits := maxChunkBits
		if opt.HeaderBits > 0 {
			code, cerr := src.TryGetCode(opt.HeaderBits)
			if cerr != nil {
				break
			}
			chunkBits = int64(opt.HeaderDivisor) * int64(code)
		}

		d.currCode = nil
		var prevCode *int
		var prevStr []byte
		var bitCount int64

		for bitCount < chunkBits {
			code, cerr := src.TryGetCode(opt.MaxCodeWidth)
			if cerr != nil {
				endOfData = true
				break
			}
			if opt.StopCode != NoCode && int(code) == opt.StopCode {
				endOfData = true
				break
			}
			if opt.ClearCode != NoCode && int(code) == opt.ClearCode {
				break
			}
			bitCount += int64(opt.MaxCodeWidth)

			var nextCode int
			haveNext := false
			if prevCode != nil {
				nc, ok := d.advanceCode()
				if ok {
					nextCode, haveNext = nc, true
				}
			}

			if _, ok := d.entries[dictKey{int(code), rootSym}]; !ok {
				if len(prevStr) == 0 {
					return 0, 0, ErrFileFormatMismatch
				}
				prevStr = append(prevStr, prevStr[0])
				if !haveNext || int(code) != nextCode {
					return 0, 0, ErrFileFormatMismatch
				}
			} else {
				prevStr = d.getString(int(code))
			}

			if haveNext && prevCode != nil {
				d.entries[dictKey{nextCode, rootSym}] = link{code: *prevCode, sym: int(prevStr[0])}
			}

			if _, err := w.Write(prevStr); err != nil {
				return 0, 0, err
			}

			c := int(code)
			prevCode = &c
		}
	}

	endPos, err := w.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, 0, err
	}
	slog.Debug("lzw expand complete", "inSize", compressedSize, "outSize", endPos-opt.OutOffset)
	return compressedSize, endPos - opt.OutOffset, nil
}

// CompressSlice is a convenience wrapper around Compress for in-memory data.
func CompressSlice(data []byte, opt Options) ([]byte, error) {
	r := byteReadSeeker(data)
	w := newSliceWriteSeeker()
	if _, _, err := Compress(r, w, opt); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// ExpandSlice is a convenience wrapper around Expand for in-memory data.
func ExpandSlice(data []byte, opt Options) ([]byte, error) {
	r := byteReadSeeker(data)
	w := newSliceWriteSeeker()
	if _, _, err := Expand(r, w, opt); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}
