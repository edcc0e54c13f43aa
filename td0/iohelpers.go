// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted)

package td0

import (
	"bytes"
	"io"
)

func byteReadSeeker(data []byte) io.ReadSeeker {
	return bytes.NewReader(data)
}

// sliceWriteSeeker is a growable in-memory io.WriteSeeker, the Go
// equivalent of Cursor<Vec<u8>> used throughout original_source for the
// *_slice convenience wrappers.
type sliceWriteSeeker struct {
	buf []byte
	pos int
}

func newSliceWriteSeeker() *sliceWriteSeeker {
	return &sliceWriteSeeker{}
}

func (s *sliceWriteSeeker) Write(p []byte) (int, error) {
	end := s.pos + len(p)
	if end > len(s.buf) {
		grown := make([]byte, end)
		copy(grown, s.buf)
		s.buf = grown
	}
	copy(s.buf[s.pos:end], p)
	s.pos = end
	return len(p), nil
}

func (s *sliceWriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var base int
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = s.pos
	case io.SeekEnd:
		base = len(s.buf)
	}
	s.pos = base + int(offset)
	return int64(s.pos), nil
}

func (s *sliceWriteSeeker) Bytes() []byte {
	return s.buf
}
