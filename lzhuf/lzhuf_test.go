// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted); test vectors grounded on
// _examples/original_source/src/direct_ports/lzhuf.rs's embedded tests.

package lzhuf

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
)

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatalf("bad hex fixture: %v", err)
	}
	return b
}

func TestCompressionWorks(t *testing.T) {
	cases := []struct {
		name string
		data string
		hex  string
	}{
		{
			name: "repeating digits",
			data: "12345123456789123456789\n",
			hex:  "18 00 00 00 DE EF B7 FC 0E 0C 70 13 85 C3 E2 71 64 81 19 60",
		},
		{
			name: "i am sam",
			data: "I am Sam. Sam I am. I do not like this Sam I am.\n",
			hex:  "31 00 00 00 EA EB 3D BF 9C 4E FE 1E 16 EA 34 09 1C 0D C0 8C 02 FC 3F 77 3F 57 20 17 7F 1F 5F BF C6 AB 7F A5 AF FE 4C 39 96",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := EncodeSlice([]byte(c.data))
			if err != nil {
				t.Fatalf("EncodeSlice: %v", err)
			}
			want := hexBytes(t, c.hex)
			if !bytes.Equal(got, want) {
				t.Fatalf("got %x, want %x", got, want)
			}
		})
	}
}

func TestInvertibility(t *testing.T) {
	data := []byte("I am Sam. Sam I am. I do not like this Sam I am.\n")
	compressed, err := EncodeSlice(data)
	if err != nil {
		t.Fatalf("EncodeSlice: %v", err)
	}
	expanded, err := DecodeSlice(compressed)
	if err != nil {
		t.Fatalf("DecodeSlice: %v", err)
	}
	if !bytes.Equal(data, expanded) {
		t.Fatalf("roundtrip mismatch: got %q, want %q", expanded, data)
	}
}

func TestInvertibilityShortInput(t *testing.T) {
	data := []byte("1234567")
	compressed, err := EncodeSlice(data)
	if err != nil {
		t.Fatalf("EncodeSlice: %v", err)
	}
	expanded, err := DecodeSlice(compressed)
	if err != nil {
		t.Fatalf("DecodeSlice: %v", err)
	}
	if len(expanded) < len(data) || !bytes.Equal(data, expanded[:len(data)]) {
		t.Fatalf("roundtrip mismatch: got %q, want prefix %q", expanded, data)
	}
}

func TestEmptyInput(t *testing.T) {
	compressed, err := EncodeSlice(nil)
	if err != nil {
		t.Fatalf("EncodeSlice: %v", err)
	}
	expanded, err := DecodeSlice(compressed)
	if err != nil {
		t.Fatalf("DecodeSlice: %v", err)
	}
	if len(expanded) != 0 {
		t.Fatalf("expected empty expansion, got %q", expanded)
	}
}
