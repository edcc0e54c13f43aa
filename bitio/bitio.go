// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted)

package bitio

import "io"

// Order selects how bits are packed into (or unpacked from) a byte.
type Order int

const (
	// MSB0 packs the first bit of a group into the high bit of the byte.
	MSB0 Order = iota
	// LSB0 packs the first bit of a group into the low bit of the byte.
	LSB0
)

// Sink accumulates bits and writes completed bytes to an underlying
// io.WriteSeeker, keeping a trailing partial byte open by seeking back
// one byte after each flush so the next call can complete it in place.
type Sink struct {
	w       io.WriteSeeker
	order   Order
	pending []bool
	// Count is the number of PutCode calls made so far.
	Count int
}

// NewSink returns a Sink writing to w in the given bit order.
func NewSink(w io.WriteSeeker, order Order) *Sink {
	return &Sink{w: w, order: order}
}

// PutCode writes the low numBits bits of code, packed according to the
// sink's bit order: MSB0 emits the code's most significant bit first, LSB0
// its least significant bit first. The final partial byte,
// if any, is left writable: the underlying writer is seeked back one byte
// so the next PutCode (or a caller-driven final Seek to the stream end)
// completes it.
func (s *Sink) PutCode(numBits int, code uint32) error {
	bits := make([]bool, 0, numBits)
	switch s.order {
	case MSB0:
		c := code << (32 - numBits)
		for range numBits {
			bits = append(bits, c&0x80000000 != 0)
			c <<= 1
		}
	case LSB0:
		c := code
		for range numBits {
			bits = append(bits, c&1 != 0)
			c >>= 1
		}
	}

	all := append(s.pending, bits...)
	s.pending = nil

	full := len(all) / 8
	rem := len(all) % 8
	buf := make([]byte, full)
	for i := range full {
		buf[i] = packByte(all[i*8:i*8+8], s.order)
	}
	if rem > 0 {
		tail := make([]bool, 8)
		copy(tail, all[full*8:])
		buf = append(buf, packByte(tail, s.order))
	}

	if _, err := s.w.Write(buf); err != nil {
		return err
	}
	if rem > 0 {
		if _, err := s.w.Seek(-1, io.SeekCurrent); err != nil {
			return err
		}
		s.pending = append(s.pending, all[full*8:]...)
	}

	s.Count++
	return nil
}

// Clone returns a Sink with the same pending partial-byte state, writing to
// the same underlying stream. lzw uses this to stash a coder's bit-level
// state so it can later go back and patch a chunk header in place while a
// second, live Sink keeps appending past it.
func (s *Sink) Clone() *Sink {
	return &Sink{w: s.w, order: s.order, pending: append([]bool(nil), s.pending...), Count: s.Count}
}

// packByte packs 8 bits into a byte according to order.
func packByte(bits []bool, order Order) byte {
	var b byte
	for i, bit := range bits {
		if !bit {
			continue
		}
		switch order {
		case MSB0:
			b |= 1 << (7 - i)
		case LSB0:
			b |= 1 << i
		}
	}
	return b
}

// unpackByte splits a byte into 8 bits according to order, first-read-bit first.
func unpackByte(b byte, order Order) []bool {
	bits := make([]bool, 8)
	for i := range 8 {
		switch order {
		case MSB0:
			bits[i] = b&(1<<(7-i)) != 0
		case LSB0:
			bits[i] = b&(1<<i) != 0
		}
	}
	return bits
}

// Source reads bits from an underlying io.Reader. Once the reader is
// exhausted mid-symbol, GetBit returns 0 forever instead of an error —
// this reproduces LZHUF.C's behavior of silently zero-padding a
// truncated or deliberately short bitstream.
type Source struct {
	r       io.Reader
	order   Order
	pending []bool
	// Count is the number of whole bytes pulled from r so far.
	Count int
}

// NewSource returns a Source reading from r in the given bit order.
func NewSource(r io.Reader, order Order) *Source {
	return &Source{r: r, order: order}
}

// GetBit returns the next bit, or 0 past end of stream.
func (s *Source) GetBit() byte {
	if len(s.pending) > 0 {
		bit := s.pending[0]
		s.pending = s.pending[1:]
		return boolToByte(bit)
	}

	var b [1]byte
	if _, err := io.ReadFull(s.r, b[:]); err != nil {
		return 0
	}
	s.Count++
	bits := unpackByte(b[0], s.order)
	s.pending = bits[1:]
	return boolToByte(bits[0])
}

// TryGetBit returns the next bit, or io.EOF once the underlying reader is
// exhausted and no pending bits remain. Unlike GetBit, it does not silently
// zero-pad; lzw relies on this to detect chunk and stream boundaries the
// way lzw.rs's get_bit propagates std::io::ErrorKind::UnexpectedEof.
func (s *Source) TryGetBit() (byte, error) {
	if len(s.pending) > 0 {
		bit := s.pending[0]
		s.pending = s.pending[1:]
		return boolToByte(bit), nil
	}

	var b [1]byte
	if _, err := io.ReadFull(s.r, b[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, io.EOF
		}
		return 0, err
	}
	s.Count++
	bits := unpackByte(b[0], s.order)
	s.pending = bits[1:]
	return boolToByte(bits[0]), nil
}

// TryGetCode reads numBits bits packed in the source's bit order into a
// code, returning io.EOF if the stream runs out partway through.
func (s *Source) TryGetCode(numBits int) (uint32, error) {
	var ans uint32
	switch s.order {
	case MSB0:
		for range numBits {
			bit, err := s.TryGetBit()
			if err != nil {
				return 0, err
			}
			ans <<= 1
			ans |= uint32(bit)
		}
	case LSB0:
		for i := range numBits {
			bit, err := s.TryGetBit()
			if err != nil {
				return 0, err
			}
			ans |= uint32(bit) << i
		}
	}
	return ans, nil
}

// GetByte reads 8 bits MSB-first into a byte (used to decode LZHUF positions).
func (s *Source) GetByte() byte {
	var ans byte
	for range 8 {
		ans <<= 1
		ans |= s.GetBit()
	}
	return ans
}

// GetCode reads numBits bits packed in the source's bit order into a code.
func (s *Source) GetCode(numBits int) uint32 {
	var ans uint32
	switch s.order {
	case MSB0:
		for range numBits {
			ans <<= 1
			ans |= uint32(s.GetBit())
		}
	case LSB0:
		for i := range numBits {
			ans |= uint32(s.GetBit()) << i
		}
	}
	return ans
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
