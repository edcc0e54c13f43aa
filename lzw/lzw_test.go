// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted); test vectors grounded on
// _examples/original_source/src/lzw.rs's embedded tests.

package lzw

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/retrohaven/retrocodec/bitio"
)

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatalf("bad hex fixture: %v", err)
	}
	return b
}

// wikipediaExample is adapted from the classic LZW walkthrough: 26 letters
// plus '#' and newline as symbols, '#' followed by newline marking the end.
const wikipediaExample = "TOBEORNOTTOBEORTOBEORNOT#\n"

func TestCompressionWorksMsb12Bit(t *testing.T) {
	opt := StdOptions
	opt.Order = bitio.MSB0
	got, err := CompressSlice([]byte(wikipediaExample), opt)
	if err != nil {
		t.Fatalf("CompressSlice: %v", err)
	}
	want := hexBytes(t, "054 04F 042 045 04F 052 04E 04F 054 102 104 106 10B 105 107 109 023 00A 101 0")
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestCompressionWorks16Bit(t *testing.T) {
	opt := StdOptions
	opt.Order = bitio.MSB0
	opt.MinCodeWidth = 16
	opt.MaxCodeWidth = 16
	got, err := CompressSlice([]byte(wikipediaExample), opt)
	if err != nil {
		t.Fatalf("CompressSlice: %v", err)
	}
	want := hexBytes(t, "0054 004F 0042 0045 004F 0052 004E 004F 0054 0102 0104 0106 010B 0105 0107 0109 0023 000A 0101")
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestCompressionWorksWithClear(t *testing.T) {
	opt := StdOptions
	opt.Order = bitio.MSB0
	opt.ChunkSize = 14
	got, err := CompressSlice([]byte(wikipediaExample), opt)
	if err != nil {
		t.Fatalf("CompressSlice: %v", err)
	}
	want := hexBytes(t, "054 04F 042 045 04F 052 04E 04F 054 102 104 106 10B 105 100 052 04E 04F 054 023 00A 101")
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestInvertibility(t *testing.T) {
	opt := StdOptions
	opt.Order = bitio.MSB0
	data := []byte("I am Sam. Sam I am. I do not like this Sam I am.\n")
	compressed, err := CompressSlice(data, opt)
	if err != nil {
		t.Fatalf("CompressSlice: %v", err)
	}
	expanded, err := ExpandSlice(compressed, opt)
	if err != nil {
		t.Fatalf("ExpandSlice: %v", err)
	}
	if !bytes.Equal(data, expanded) {
		t.Fatalf("roundtrip mismatch: got %q, want %q", expanded, data)
	}
}

func TestInvertibility16Bit(t *testing.T) {
	opt := StdOptions
	opt.Order = bitio.MSB0
	opt.MinCodeWidth = 16
	opt.MaxCodeWidth = 16
	data := []byte("I am Sam. Sam I am. I do not like this Sam I am.\n")
	compressed, err := CompressSlice(data, opt)
	if err != nil {
		t.Fatalf("CompressSlice: %v", err)
	}
	expanded, err := ExpandSlice(compressed, opt)
	if err != nil {
		t.Fatalf("ExpandSlice: %v", err)
	}
	if !bytes.Equal(data, expanded) {
		t.Fatalf("roundtrip mismatch: got %q, want %q", expanded, data)
	}
}

func TestInvertibilityWithClear(t *testing.T) {
	opt := StdOptions
	opt.Order = bitio.MSB0
	opt.ChunkSize = 14
	data := []byte("I am Sam. Sam I am. I do not like this Sam I am.\n")
	compressed, err := CompressSlice(data, opt)
	if err != nil {
		t.Fatalf("CompressSlice: %v", err)
	}
	expanded, err := ExpandSlice(compressed, opt)
	if err != nil {
		t.Fatalf("ExpandSlice: %v", err)
	}
	if !bytes.Equal(data, expanded) {
		t.Fatalf("roundtrip mismatch: got %q, want %q", expanded, data)
	}
}
