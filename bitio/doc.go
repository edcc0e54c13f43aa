// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted)

/*
Package bitio provides the bit-level sink and source shared by the lzhuf
and lzw codecs.

Sink accumulates bits MSB-first or LSB-first and writes whole bytes to an
io.Writer as they fill, seeking back one byte so a still-open partial byte
can be rewritten on the next call — this lets a caller emit variable-width
codes without buffering the whole stream. Source mirrors this on read,
treating EOF encountered mid-symbol as an infinite run of zero bits rather
than an error, which reproduces the bit-exact decode behavior of truncated
or padded streams that LZHUF.C relied on.
*/
package bitio
