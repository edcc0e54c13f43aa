// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted); test vectors grounded on
// _examples/original_source/src/td0.rs's embedded tests and
// _examples/original_source/src/lzw.rs's TD-mode vectors.

package td0

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/retrohaven/retrocodec/lzw"
)

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatalf("bad hex fixture: %v", err)
	}
	return b
}

func withCRC(t *testing.T, header []byte) []byte {
	t.Helper()
	h := append([]byte(nil), header...)
	crc := crc16(0, h[0:10])
	binary.LittleEndian.PutUint16(h[10:12], crc)
	return h
}

func TestCompressionWorks(t *testing.T) {
	normalHeader := withCRC(t, []byte("TD0123456789"))
	normalData := []byte("I am Sam. Sam I am. I do not like this Sam I am.\n")

	advancedHeader := withCRC(t, []byte("td0123456789"))
	advancedData := hexBytes(t, "EA EB 3D BF 9C 4E FE 1E 16 EA 34 09 1C 0D C0 8C 02 FC 3F 77 3F 57 20 17 7F 1F 5F BF C6 AB 7F A5 AF FE 4C 39 96")

	testData := append(append([]byte(nil), normalHeader...), normalData...)
	compressed, err := CompressSlice(testData)
	if err != nil {
		t.Fatalf("CompressSlice: %v", err)
	}
	want := append(append([]byte(nil), advancedHeader...), advancedData...)
	if !bytes.Equal(compressed, want) {
		t.Fatalf("got %x, want %x", compressed, want)
	}
}

func TestInvertibility(t *testing.T) {
	testData := withCRC(t, []byte("TD0123456789I am Sam. Sam I am. I do not like this Sam I am.\n"))
	compressed, err := CompressSlice(testData)
	if err != nil {
		t.Fatalf("CompressSlice: %v", err)
	}
	expanded, err := ExpandSlice(compressed)
	if err != nil {
		t.Fatalf("ExpandSlice: %v", err)
	}
	if !bytes.Equal(testData, expanded) {
		t.Fatalf("roundtrip mismatch: got %x, want %x", expanded, testData)
	}
}

func TestV1ModeInvertibility(t *testing.T) {
	// V1Options skip a 12-byte TD0 header on both sides; a zero-filled
	// placeholder stands in for it, so the whole buffer round-trips.
	data := append(make([]byte, headerLen), "I am Sam. Sam I am. I do not like this Sam I am.\n"...)
	compressed, err := lzw.CompressSlice(data, V1Options)
	if err != nil {
		t.Fatalf("CompressSlice: %v", err)
	}
	expanded, err := lzw.ExpandSlice(compressed, V1Options)
	if err != nil {
		t.Fatalf("ExpandSlice: %v", err)
	}
	if !bytes.Equal(data, expanded) {
		t.Fatalf("roundtrip mismatch: got %q, want %q", expanded, data)
	}
}
