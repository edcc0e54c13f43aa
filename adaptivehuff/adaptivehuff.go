// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted); grounded on
// _examples/original_source/src/direct_ports/lzhuf.rs's AdaptiveHuffman type
// and _examples/original_source/src/tools/adaptive_huff.rs.

/*
Package adaptivehuff implements a sibling-property adaptive Huffman coder:
a binary tree over a fixed alphabet whose leaf frequencies are updated one
symbol at a time, re-sorted in place to keep frequencies non-decreasing
left to right, and periodically rebuilt from scratch once the root
frequency saturates.
*/
package adaptivehuff

import "github.com/retrohaven/retrocodec/bitio"

const (
	// NChar is the size of the coded alphabet (literal bytes plus length codes).
	NChar = 256 - Threshold + Lookahead
	// Threshold mirrors indextree.Threshold; duplicated here so this package
	// has no dependency on indextree (the alphabet size is a pure Huffman concern).
	Threshold = 2
	// Lookahead mirrors indextree.Lookahead.
	Lookahead = 60
	// tabSize is the number of internal+leaf slots in the frequency table.
	tabSize = NChar*2 - 1
	// Root is the index of the tree root.
	Root = tabSize - 1
	// MaxFreq triggers a rebuild once the root frequency reaches it.
	MaxFreq = 0x8000
)

// Coder holds the live adaptive Huffman tree state. A Coder must be
// reinitialized with Start before use and is specific to one encode or
// decode session.
type Coder struct {
	// freq is the sorting key; a parent's frequency is the sum of its
	// children's. freq[tabSize] is a sentinel backstop larger than any
	// real frequency, bounding the reorder scan in update.
	freq [tabSize + 1]int
	// parent maps child nodes to their parent; parent[tabSize:tabSize+NChar]
	// additionally maps symbols to their leaf node.
	parent [tabSize + NChar]int
	// son holds each internal node's left child (the right child is always
	// son[i]+1); for a leaf, son[i] >= tabSize indexes into the symbol map.
	son [tabSize]int
}

// New returns an uninitialized Coder; call Start before use.
func New() *Coder {
	return &Coder{}
}

// Start initializes the tree: one leaf per symbol, each with frequency 1,
// assembled bottom-up into a balanced-by-construction tree whose
// frequencies are already in ascending order.
func (c *Coder) Start() {
	for i := range NChar {
		c.freq[i] = 1
		c.son[i] = i + tabSize
		c.parent[i+tabSize] = i
	}

	i, j := 0, NChar
	for j <= Root {
		c.freq[j] = c.freq[i] + c.freq[i+1]
		c.son[j] = i
		c.parent[i] = j
		c.parent[i+1] = j
		i += 2
		j++
	}

	c.freq[tabSize] = 0xFFFF
	c.parent[Root] = 0
}

// rebuild halves every leaf frequency (rounding up) and reconnects the
// tree from scratch, preserving relative frequency order while making
// room under MaxFreq again.
func (c *Coder) rebuild() {
	j := 0
	for i := range tabSize {
		if c.son[i] >= tabSize {
			c.freq[j] = (c.freq[i] + 1) / 2
			c.son[j] = c.son[i]
			j++
		}
	}

	i := 0
	j = NChar
	for j < tabSize {
		k := i + 1
		f := c.freq[i] + c.freq[k]
		c.freq[j] = f

		k = j - 1
		for f < c.freq[k] {
			k--
		}
		k++

		l := (j - k) * 2
		for kp := k + l - 1; kp >= k; kp-- {
			c.freq[kp+1] = c.freq[kp]
		}
		c.freq[k] = f
		for kp := k + l - 1; kp >= k; kp-- {
			c.son[kp+1] = c.son[kp]
		}
		c.son[k] = i

		i += 2
		j++
	}

	for i := range tabSize {
		k := c.son[i]
		c.parent[k] = i
		if k < tabSize {
			c.parent[k+1] = i
		}
	}
}

// update increments the frequency of leaf symbol c0 by one and restores
// the sibling property by swapping nodes up the tree as needed.
func (c *Coder) update(c0 int) {
	if c.freq[Root] == MaxFreq {
		c.rebuild()
	}

	node := c.parent[c0+tabSize]
	for {
		c.freq[node]++
		k := c.freq[node]

		l := node + 1
		if k > c.freq[l] {
			for k > c.freq[l] {
				l++
			}
			l--

			c.freq[node] = c.freq[l]
			c.freq[l] = k

			i := c.son[node]
			c.parent[i] = l
			if i < tabSize {
				c.parent[i+1] = l
			}

			j := c.son[l]
			c.son[l] = i
			c.parent[j] = node
			if j < tabSize {
				c.parent[j+1] = node
			}
			c.son[node] = j

			node = l
		}

		node = c.parent[node]
		if node == 0 {
			break
		}
	}
}

// EncodeChar writes the Huffman code for symbol c (0..NChar) to sink and
// updates the tree's frequency for c.
func (c *Coder) EncodeChar(sink *bitio.Sink, symbol int) error {
	var code, nbits uint32
	k := c.parent[symbol+tabSize]
	for {
		code >>= 1
		if k&1 != 0 {
			code += 0x8000
		}
		nbits++
		k = c.parent[k]
		if k == Root {
			break
		}
	}
	code >>= 16 - nbits
	if err := sink.PutCode(int(nbits), code); err != nil {
		return err
	}
	c.update(symbol)
	return nil
}

// DecodeChar reads one Huffman-coded symbol from src and updates the
// tree's frequency for it.
func (c *Coder) DecodeChar(src *bitio.Source) int {
	node := c.son[Root]
	for node < tabSize {
		node += int(src.GetBit())
		node = c.son[node]
	}
	symbol := node - tabSize
	c.update(symbol)
	return symbol
}
