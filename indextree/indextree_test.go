// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven

package indextree

import "testing"

// buildDict returns a WinSize+Lookahead dictionary filled with fill; callers
// copy their own repeated strings into it so InsertNode has real matches to
// find.
func buildDict(fill byte) []byte {
	d := make([]byte, WinSize+Lookahead)
	for i := range d {
		d[i] = fill
	}
	return d
}

func TestInsertNodeFindsExactRepeat(t *testing.T) {
	tree := New()
	dict := buildDict('a')
	copy(dict[100:], []byte("abcdefghij"))
	copy(dict[300:], []byte("abcdefghij"))

	for i := 0; i < 100; i++ {
		tree.InsertNode(dict, i)
	}
	tree.InsertNode(dict, 100)
	for i := 101; i < 300; i++ {
		tree.InsertNode(dict, i)
	}

	tree.InsertNode(dict, 300)
	if tree.MatchLen < 10 {
		t.Fatalf("expected a match of at least 10, got %d", tree.MatchLen)
	}
}

func TestInsertNodeTiesPreferSmallerOffset(t *testing.T) {
	tree := New()
	dict := buildDict('z')
	copy(dict[50:], []byte("match-string-here!"))
	copy(dict[200:], []byte("match-string-here!"))

	for i := 0; i < 50; i++ {
		tree.InsertNode(dict, i)
	}
	tree.InsertNode(dict, 50)
	for i := 51; i < 200; i++ {
		tree.InsertNode(dict, i)
	}
	tree.InsertNode(dict, 200)

	firstOffset := tree.MatchPos
	firstLen := tree.MatchLen

	copy(dict[400:], []byte("match-string-here!"))
	for i := 201; i < 400; i++ {
		tree.InsertNode(dict, i)
	}
	tree.InsertNode(dict, 400)

	if tree.MatchLen != firstLen {
		t.Fatalf("expected same match length %d, got %d", firstLen, tree.MatchLen)
	}
	// Repeats sit at 50 and 200; the nearer one (offset 400-200-1) must win
	// over the farther one (offset 400-50-1).
	if want := 400 - 200 - 1; tree.MatchPos != want {
		t.Fatalf("MatchPos = %d, want %d (nearer repeat; first match had offset %d)", tree.MatchPos, want, firstOffset)
	}
}

func TestDeleteNodeDoesNotPanic(t *testing.T) {
	tree := New()
	dict := buildDict('x')
	for i := 0; i < 500; i++ {
		tree.InsertNode(dict, i)
	}
	for i := 0; i < 500; i++ {
		tree.DeleteNode(i)
	}
}
