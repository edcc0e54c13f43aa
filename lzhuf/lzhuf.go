// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted); grounded on
// _examples/original_source/src/direct_ports/lzhuf.rs's encode/decode.

/*
Package lzhuf implements LZSS compression with adaptive Huffman coding of
literals and match lengths; match positions use a fixed prefix code (see
poscoder). The wire format is a 4-byte
little-endian length header followed by the Huffman-coded bitstream.
*/
package lzhuf

import (
	"encoding/binary"
	"io"
	"log/slog"
	"sync"

	"github.com/retrohaven/retrocodec/adaptivehuff"
	"github.com/retrohaven/retrocodec/bitio"
	"github.com/retrohaven/retrocodec/indextree"
	"github.com/retrohaven/retrocodec/poscoder"
	"github.com/retrohaven/retrocodec/ringbuf"
)

const (
	winSize   = indextree.WinSize
	lookahead = indextree.Lookahead
	threshold = indextree.Threshold
)

// session bundles the per-call LZSS dictionary, match tree, and Huffman
// coder. A session is only ever used for one Encode or one Decode call.
type session struct {
	dict *ringbuf.Ring
	tree *indextree.Tree
	huff *adaptivehuff.Coder
}

var sessionPool = sync.Pool{
	New: func() any {
		return &session{
			dict: ringbuf.NewMirrored(winSize, lookahead-1, ' '),
			tree: indextree.New(),
			huff: adaptivehuff.New(),
		}
	},
}

func acquireSession() *session {
	s := sessionPool.Get().(*session)
	s.dict = ringbuf.NewMirrored(winSize, lookahead-1, ' ')
	s.tree.Reset()
	s.huff.Start()
	return s
}

func releaseSession(s *session) {
	sessionPool.Put(s)
}

// Encode LZSS+Huffman-compresses every byte of r into w, returning the
// original and compressed lengths. w must support Seek because the
// bitwise Huffman coder backs up over partially written bytes.
func Encode(r io.ReadSeeker, w io.WriteSeeker) (origLen, compLen int64, err error) {
	expandedLength, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, 0, err
	}
	if expandedLength >= 1<<32 {
		return 0, 0, ErrFileTooLarge
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0, 0, err
	}

	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], uint32(expandedLength))
	if _, err := w.Write(header[:]); err != nil {
		return 0, 0, err
	}

	sess := acquireSession()
	defer releaseSession(sess)
	dict, tree, huff := sess.dict, sess.tree, sess.huff
	sink := bitio.NewSink(w, bitio.MSB0)

	s := 0
	pos := winSize - lookahead
	buf := dict.Buf()

	length := 0
	var chunk [lookahead]byte
	n, err := io.ReadFull(r, chunk[:])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, 0, err
	}
	length = n
	for i := range length {
		dict.SetAbs(pos+i, chunk[i])
	}

	for i := 1; i <= lookahead; i++ {
		tree.InsertNode(buf, (pos-i)&(winSize-1))
	}
	tree.InsertNode(buf, pos)

	for {
		matchLen := tree.MatchLen
		if matchLen > length {
			matchLen = length
		}

		if matchLen <= threshold {
			matchLen = 1
			if err := huff.EncodeChar(sink, int(dict.GetAbs(pos))); err != nil {
				return 0, 0, err
			}
		} else {
			if err := huff.EncodeChar(sink, 255-threshold+matchLen); err != nil {
				return 0, 0, err
			}
			if err := poscoder.EncodePosition(sink, uint32(tree.MatchPos)); err != nil {
				return 0, 0, err
			}
		}

		lastMatchLen := matchLen
		i := 0
		var c [1]byte
		for ; i < lastMatchLen; i++ {
			if _, rerr := io.ReadFull(r, c[:]); rerr != nil {
				if rerr != io.EOF && rerr != io.ErrUnexpectedEOF {
					return 0, 0, rerr
				}
				break
			}
			tree.DeleteNode(s)
			dict.SetAbs(s, c[0])
			s = (s + 1) & (winSize - 1)
			pos = (pos + 1) & (winSize - 1)
			tree.InsertNode(buf, pos)
		}
		for ; i < lastMatchLen; i++ {
			tree.DeleteNode(s)
			s = (s + 1) & (winSize - 1)
			pos = (pos + 1) & (winSize - 1)
			length--
			if length > 0 {
				tree.InsertNode(buf, pos)
			}
		}

		if length <= 0 {
			break
		}
	}

	if _, err := w.Seek(0, io.SeekEnd); err != nil {
		return 0, 0, err
	}
	out, err := w.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, 0, err
	}
	slog.Debug("lzhuf encode complete", "origLen", expandedLength, "compLen", out)
	return expandedLength, out, nil
}

// Decode expands an lzhuf-compressed stream from r into w, returning the
// compressed byte count consumed and the expanded length written.
func Decode(r io.Reader, w io.WriteSeeker) (compLen, origLen int64, err error) {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, 0, err
	}
	textSize := int64(binary.LittleEndian.Uint32(header[:]))

	sess := acquireSession()
	defer releaseSession(sess)
	dict, huff := sess.dict, sess.huff
	src := bitio.NewSource(r, bitio.MSB0)

	for i := 0; i < winSize-lookahead; i++ {
		dict.SetAbs(i, ' ')
	}
	pos := winSize - lookahead

	var written int64
	for written < textSize {
		c := huff.DecodeChar(src)
		if c < 256 {
			if _, err := w.Write([]byte{byte(c)}); err != nil {
				return 0, 0, err
			}
			dict.SetAbs(pos, byte(c))
			pos = (pos + 1) & (winSize - 1)
			written++
		} else {
			strPos := (pos - int(poscoder.DecodePosition(src)) - 1) & (winSize - 1)
			strLen := c + threshold - 255
			for k := range strLen {
				ch := dict.GetAbs((strPos + k) & (winSize - 1))
				if _, err := w.Write([]byte{ch}); err != nil {
					return 0, 0, err
				}
				dict.SetAbs(pos, ch)
				pos = (pos + 1) & (winSize - 1)
				written++
			}
		}
	}

	slog.Debug("lzhuf decode complete", "compLen", src.Count, "origLen", written)
	return int64(src.Count) + 4, written, nil
}

// EncodeSlice is a convenience wrapper around Encode for in-memory data.
func EncodeSlice(data []byte) ([]byte, error) {
	r := newByteReadSeeker(data)
	w := newByteWriteSeeker()
	if _, _, err := Encode(r, w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// DecodeSlice is a convenience wrapper around Decode for in-memory data.
func DecodeSlice(data []byte) ([]byte, error) {
	r := newByteReadSeeker(data)
	w := newByteWriteSeeker()
	if _, _, err := Decode(r, w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}
