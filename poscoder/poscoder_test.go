// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven

package poscoder

import (
	"bytes"
	"io"
	"testing"

	"github.com/retrohaven/retrocodec/bitio"
)

// seekBuf supports the one-byte rewind bitio.Sink performs: the rewound byte
// stays in the buffer until the next Write overwrites it.
type seekBuf struct {
	bytes.Buffer
	back int
}

func (s *seekBuf) Seek(offset int64, whence int) (int64, error) {
	if offset == -1 && whence == io.SeekCurrent {
		s.back++
		return int64(s.Buffer.Len() - s.back), nil
	}
	return 0, nil
}

func (s *seekBuf) Write(p []byte) (int, error) {
	s.Buffer.Truncate(s.Buffer.Len() - s.back)
	s.back = 0
	return s.Buffer.Write(p)
}

func TestEncodeDecodePositionRoundtrip(t *testing.T) {
	offsets := []uint32{0, 1, 63, 64, 127, 128, 1000, 2048, 4094, 4095}
	for _, want := range offsets {
		var buf seekBuf
		sink := bitio.NewSink(&buf, bitio.MSB0)
		if err := EncodePosition(sink, want); err != nil {
			t.Fatalf("EncodePosition(%d): %v", want, err)
		}
		src := bitio.NewSource(bytes.NewReader(buf.Bytes()), bitio.MSB0)
		got := DecodePosition(src)
		if got != want {
			t.Fatalf("DecodePosition(EncodePosition(%d)) = %d", want, got)
		}
	}
}
