// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted)

package retrocodec

import (
	"github.com/retrohaven/retrocodec/lzhuf"
	"github.com/retrohaven/retrocodec/lzw"
	"github.com/retrohaven/retrocodec/td0"
)

// Compress encodes data with the given Method. MethodTD0 ignores opts: a
// td0 image's offsets and header layout are fixed by its own 12-byte
// header, not by the caller.
func Compress(method Method, data []byte, opts Options) ([]byte, error) {
	switch method {
	case MethodLZHUF:
		body := data
		if opts.InOffset > 0 {
			body = body[opts.InOffset:]
		}
		out, err := lzhuf.EncodeSlice(body)
		if err != nil {
			return nil, wrapSubpackageErr(err)
		}
		return withOutPrefix(data, opts.OutOffset, out), nil

	case MethodLZW:
		lzwOpts := lzwOptionsFrom(opts)
		out, err := lzw.CompressSlice(data, lzwOpts)
		if err != nil {
			return nil, wrapSubpackageErr(err)
		}
		return out, nil

	case MethodTD0:
		out, err := td0.CompressSlice(data)
		if err != nil {
			return nil, wrapSubpackageErr(err)
		}
		return out, nil

	default:
		return nil, ErrUnknownMethod
	}
}

// withOutPrefix copies the first n bytes of src unchanged ahead of out, the
// convention td0 uses to preserve a fixed-format header ahead of a codec's
// own output.
func withOutPrefix(src []byte, n int64, out []byte) []byte {
	if n <= 0 {
		return out
	}
	result := make([]byte, 0, int(n)+len(out))
	result = append(result, src[:n]...)
	result = append(result, out...)
	return result
}

// lzwOptionsFrom adapts the façade's coarse Options into lzw.Options,
// starting from lzw.StdOptions and overriding only what the façade exposes.
func lzwOptionsFrom(opts Options) lzw.Options {
	o := lzw.StdOptions
	o.InOffset = opts.InOffset
	o.OutOffset = opts.OutOffset
	if opts.Header {
		o.HeaderBits = 16
		o.HeaderDivisor = 4
	}
	return o
}
