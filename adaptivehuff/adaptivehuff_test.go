// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven

package adaptivehuff

import (
	"bytes"
	"io"
	"testing"

	"github.com/retrohaven/retrocodec/bitio"
)

// seekBuf supports the one-byte rewind bitio.Sink performs: the rewound byte
// stays in the buffer until the next Write overwrites it.
type seekBuf struct {
	bytes.Buffer
	back int
}

func (s *seekBuf) Seek(offset int64, whence int) (int64, error) {
	if offset == -1 && whence == io.SeekCurrent {
		s.back++
		return int64(s.Buffer.Len() - s.back), nil
	}
	return 0, nil
}

func (s *seekBuf) Write(p []byte) (int, error) {
	s.Buffer.Truncate(s.Buffer.Len() - s.back)
	s.back = 0
	return s.Buffer.Write(p)
}

func TestEncodeDecodeCharRoundtrip(t *testing.T) {
	symbols := []int{0, 1, 2, 65, 97, 97, 97, 255, NChar - 1, 10, 10, 10, 10}

	var buf seekBuf
	sink := bitio.NewSink(&buf, bitio.MSB0)
	enc := New()
	enc.Start()
	for _, s := range symbols {
		if err := enc.EncodeChar(sink, s); err != nil {
			t.Fatalf("EncodeChar(%d): %v", s, err)
		}
	}

	src := bitio.NewSource(bytes.NewReader(buf.Bytes()), bitio.MSB0)
	dec := New()
	dec.Start()
	for _, want := range symbols {
		got := dec.DecodeChar(src)
		if got != want {
			t.Fatalf("DecodeChar() = %d, want %d", got, want)
		}
	}
}

func TestUpdateKeepsFrequenciesNonDecreasing(t *testing.T) {
	c := New()
	c.Start()
	for i := 0; i < 2000; i++ {
		c.update(i % NChar)
		for j := 0; j < tabSize; j++ {
			if j > 0 && c.freq[j] < c.freq[j-1] {
				t.Fatalf("freq not non-decreasing at slot %d after %d updates: %v", j, i, c.freq[j-1:j+1])
			}
		}
	}
}

func TestRebuildTriggersUnderRepeatedSymbol(t *testing.T) {
	c := New()
	c.Start()
	// Hammer a single symbol enough times to force freq[Root] to MaxFreq and
	// exercise rebuild without panicking or corrupting the tree.
	for i := 0; i < MaxFreq+10; i++ {
		c.update(0)
	}
	if c.freq[Root] > MaxFreq {
		t.Fatalf("freq[Root] = %d, should never exceed MaxFreq after rebuild", c.freq[Root])
	}
}

func TestParentChildConsistency(t *testing.T) {
	c := New()
	c.Start()
	for i := 0; i < 500; i++ {
		c.update(i % NChar)
	}
	for node := 0; node < Root; node++ {
		parent := c.parent[node]
		if c.son[parent] != node && c.son[parent]+1 != node {
			t.Fatalf("node %d's parent %d does not list it as a child (son=%d)", node, parent, c.son[parent])
		}
	}
}
