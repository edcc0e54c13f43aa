// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted)

/*
Package ringbuf implements a fixed-size ring buffer over absolute byte
positions, shared by the lzhuf dictionary and its match-finding index
tree so both address the same window through the same absolute positions.
*/
package ringbuf

// Ring is a fixed-size byte ring buffer addressed both by cursor-relative
// offset and by absolute position. A ring created with a non-zero mirror
// additionally keeps the first `mirror` bytes duplicated just past the end
// of the buffer, so Window can hand back a contiguous slice that spans the
// wraparound point without the caller having to special-case it — the same
// trick the teacher's sliding_window.go uses for its own lookahead mirror
// (bufferWrap).
type Ring struct {
	buf    []byte
	pos    int
	n      int
	mirror int
}

// New returns a ring buffer of size n, filled with fill.
func New(n int, fill byte) *Ring {
	return NewMirrored(n, 0, fill)
}

// NewMirrored returns a ring buffer of size n, filled with fill, that keeps
// an extra `mirror` bytes of wraparound duplicate so Window can return
// contiguous slices near the end of the buffer.
func NewMirrored(n, mirror int, fill byte) *Ring {
	buf := make([]byte, n+mirror)
	for i := range buf {
		buf[i] = fill
	}
	return &Ring{buf: buf, pos: 0, n: n, mirror: mirror}
}

// Window returns a contiguous slice of length bytes starting at absolute
// position pos. Valid only when length <= mirror+1 (the caller's match
// window must fit within the configured mirror depth).
func (r *Ring) Window(pos, length int) []byte {
	i := mod(pos, r.n)
	return r.buf[i : i+length]
}

// Buf exposes the backing array directly, including its mirrored tail, for
// callers (like indextree) that need to index several absolute positions
// against each other rather than through one fixed cursor-relative window.
func (r *Ring) Buf() []byte {
	return r.buf
}

// Len returns the ring's fixed size.
func (r *Ring) Len() int {
	return r.n
}

// GetPos returns the absolute position of the cursor plus offset.
func (r *Ring) GetPos(offset int) int {
	return mod(r.pos+offset, r.n)
}

// SetPos sets the cursor to an absolute position.
func (r *Ring) SetPos(pos int) {
	r.pos = mod(pos, r.n)
}

// GetAbs returns the byte at an absolute position; the cursor does not move.
func (r *Ring) GetAbs(abs int) byte {
	return r.buf[mod(abs, r.n)]
}

// SetAbs sets the byte at an absolute position; the cursor does not move.
// If abs falls within the mirrored region, the mirror copy is kept in sync.
func (r *Ring) SetAbs(abs int, val byte) {
	i := mod(abs, r.n)
	r.buf[i] = val
	if r.mirror > 0 && i < r.mirror {
		r.buf[r.n+i] = val
	}
}

// Get returns the byte at cursor+offset.
func (r *Ring) Get(offset int) byte {
	return r.buf[mod(r.pos+offset, r.n)]
}

// Set writes the byte at cursor+offset.
func (r *Ring) Set(offset int, val byte) {
	r.SetAbs(r.pos+offset, val)
}

// Advance moves the cursor forward by 1.
func (r *Ring) Advance() {
	r.pos = mod(r.pos+1, r.n)
}

// Retreat moves the cursor backward by 1.
func (r *Ring) Retreat() {
	r.pos = mod(r.pos-1, r.n)
}

// DistanceBehind returns how far other is behind the cursor, assuming other
// is "behind" in the ring's circular order.
func (r *Ring) DistanceBehind(other int) int {
	return mod(r.pos-other, r.n)
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
