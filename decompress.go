// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted)

package retrocodec

import (
	"github.com/retrohaven/retrocodec/lzhuf"
	"github.com/retrohaven/retrocodec/lzw"
	"github.com/retrohaven/retrocodec/td0"
)

// Decompress decodes data with the given Method. MethodTD0 ignores opts,
// for the same reason Compress does.
func Decompress(method Method, data []byte, opts Options) ([]byte, error) {
	switch method {
	case MethodLZHUF:
		body := data
		if opts.InOffset > 0 {
			body = body[opts.InOffset:]
		}
		out, err := lzhuf.DecodeSlice(body)
		if err != nil {
			return nil, wrapSubpackageErr(err)
		}
		return withOutPrefix(data, opts.OutOffset, out), nil

	case MethodLZW:
		lzwOpts := lzwOptionsFrom(opts)
		out, err := lzw.ExpandSlice(data, lzwOpts)
		if err != nil {
			return nil, wrapSubpackageErr(err)
		}
		return out, nil

	case MethodTD0:
		out, err := td0.ExpandSlice(data)
		if err != nil {
			return nil, wrapSubpackageErr(err)
		}
		return out, nil

	default:
		return nil, ErrUnknownMethod
	}
}
