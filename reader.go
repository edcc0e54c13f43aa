// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted)

package retrocodec

import "io"

// DecompressFromReader reads the full stream then calls Decompress. No
// decoding logic of its own.
func DecompressFromReader(r io.Reader, method Method, opts Options) ([]byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decompress(method, src, opts)
}
