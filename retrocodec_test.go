// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven

package retrocodec

import (
	"bytes"
	"testing"
)

func TestCompressDecompressRoundtrip(t *testing.T) {
	data := []byte("I am Sam. Sam I am. I do not like this Sam I am.\n")

	for _, method := range []Method{MethodLZHUF, MethodLZW} {
		t.Run(method.String(), func(t *testing.T) {
			compressed, err := Compress(method, data, StdOptions)
			if err != nil {
				t.Fatalf("Compress: %v", err)
			}
			got, err := Decompress(method, compressed, StdOptions)
			if err != nil {
				t.Fatalf("Decompress: %v", err)
			}
			if !bytes.Equal(got, data) {
				t.Fatalf("roundtrip mismatch for %s: got %q, want %q", method, got, data)
			}
		})
	}
}

func TestDecompressFromReader(t *testing.T) {
	data := []byte("hello hello hello retro world\n")
	compressed, err := Compress(MethodLZHUF, data, StdOptions)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	got, err := DecompressFromReader(bytes.NewReader(compressed), MethodLZHUF, StdOptions)
	if err != nil {
		t.Fatalf("DecompressFromReader: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("roundtrip mismatch: got %q, want %q", got, data)
	}
}

func TestUnknownMethodReturnsError(t *testing.T) {
	if _, err := Compress(Method(99), []byte("x"), StdOptions); err != ErrUnknownMethod {
		t.Fatalf("Compress with unknown method: got %v, want ErrUnknownMethod", err)
	}
	if _, err := Decompress(Method(99), []byte("x"), StdOptions); err != ErrUnknownMethod {
		t.Fatalf("Decompress with unknown method: got %v, want ErrUnknownMethod", err)
	}
}

func TestMethodString(t *testing.T) {
	cases := map[Method]string{
		MethodLZHUF: "lzhuf",
		MethodLZW:   "lzw",
		MethodTD0:   "td0",
		Method(99):  "unknown",
	}
	for m, want := range cases {
		if got := m.String(); got != want {
			t.Fatalf("Method(%d).String() = %q, want %q", m, got, want)
		}
	}
}
