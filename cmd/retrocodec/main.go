// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted); grounded on
// _examples/original_source/src/main.rs.

// Command retrocodec compresses and expands files with retro formats:
// lzhuf (LZSS + adaptive Huffman), lzw (fixed-width LZW), and td0
// (Teledisk disk image framing).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/retrohaven/retrocodec/lzhuf"
	"github.com/retrohaven/retrocodec/lzw"
	"github.com/retrohaven/retrocodec/td0"
)

const usage = `Usage:
  retrocodec compress -m <method> -i <input> -o <output>
  retrocodec expand   -m <method> -i <input> -o <output>

methods: lzhuf, lzw, td0

Examples:
  retrocodec compress -m lzhuf -i my.expanded -o my.compressed
  retrocodec expand   -m lzhuf -i my.compressed -o my.expanded
`

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "compress":
		run(os.Args[2:], compressWith)
	case "expand":
		run(os.Args[2:], expandWith)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

type codecFunc func(method string, in *os.File, out *os.File) (inSize, outSize int64, err error)

func run(args []string, do codecFunc) {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	fs := flag.NewFlagSet(args[0], flag.ExitOnError)
	method := fs.String("m", "", "compression algorithm (lzhuf, lzw, td0)")
	input := fs.String("i", "", "input path")
	output := fs.String("o", "", "output path")
	fs.Parse(args)

	if *method == "" || *input == "" || *output == "" {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	if !okToOverwrite(*output) {
		fmt.Fprintln(os.Stderr, "abort operation")
		return
	}

	inFile, err := os.Open(*input)
	if err != nil {
		slog.Error("open input", "error", err)
		os.Exit(1)
	}
	defer inFile.Close()

	outFile, err := os.OpenFile(*output, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		slog.Error("open output", "error", err)
		os.Exit(1)
	}
	defer outFile.Close()

	inSize, outSize, err := do(*method, inFile, outFile)
	if err != nil {
		slog.Error("operation failed", "error", err)
		os.Exit(1)
	}
	if err := outFile.Truncate(outSize); err != nil {
		slog.Error("truncate output", "error", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%s: %d into %d\n", args[0], inSize, outSize)
}

func compressWith(method string, in, out *os.File) (int64, int64, error) {
	switch method {
	case "lzhuf":
		return lzhuf.Encode(in, out)
	case "lzw":
		return lzw.Compress(in, out, lzw.StdOptions)
	case "td0":
		return td0.Compress(in, out)
	default:
		return 0, 0, fmt.Errorf("%s not supported", method)
	}
}

func expandWith(method string, in, out *os.File) (int64, int64, error) {
	switch method {
	case "lzhuf":
		return lzhuf.Decode(in, out)
	case "lzw":
		return lzw.Expand(in, out, lzw.StdOptions)
	case "td0":
		return td0.Expand(in, out)
	default:
		return 0, 0, fmt.Errorf("%s not supported", method)
	}
}

func okToOverwrite(path string) bool {
	if _, err := os.Stat(path); err != nil {
		return true
	}
	fmt.Fprintf(os.Stderr, "%s exists, overwrite? (y/n) ", path)
	reader := bufio.NewReader(os.Stdin)
	ans, _ := reader.ReadString('\n')
	ans = strings.TrimSpace(ans)
	if ans == "y" || ans == "Y" {
		slog.Warn("existing file will be overwritten")
		return true
	}
	return false
}
