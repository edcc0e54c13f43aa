// SPDX-License-Identifier: MIT
// Copyright (c) 2026 retrohaven
// Source: github.com/woozymasta/lzo (adapted); grounded on
// _examples/original_source/src/lzw.rs's Link/LZW types.

package lzw

// rootSym marks the sym half of a dictKey that addresses a root (or, in
// expansion mode, a decoded) entry rather than a compression extension.
const rootSym = -1

// link is a dictionary entry. During compression it records the code
// assigned to a (prefix, next symbol) extension. During expansion the same
// shape records, for a given code, the code of its prefix string and the
// last byte of the string the code decodes to.
type link struct {
	code int
	sym  int
}

// dictKey addresses a dictionary entry. Compression keys are
// (prefixCode, nextSymbol); expansion keys are (code, rootSym).
type dictKey struct {
	code int
	sym  int
}

// dict is the live LZW dictionary for one chunk. It is built fresh for
// every chunk (including after a clear code) and discarded at the chunk's
// end.
type dict struct {
	opt       Options
	entries   map[dictKey]link
	currCode  *int
	currMatch *link
}

func newLZWDict(opt Options) (*dict, error) {
	if opt.MinCodeWidth != opt.MaxCodeWidth {
		return nil, ErrVariableWidthUnsupported
	}
	if opt.MinSymbol != 0 {
		return nil, ErrMinSymbolNonzero
	}
	d := &dict{opt: opt, entries: make(map[dictKey]link, opt.MaxSymbol-opt.MinSymbol+1)}
	for i := opt.MinSymbol; i <= opt.MaxSymbol; i++ {
		d.entries[dictKey{i, rootSym}] = link{code: i, sym: i}
	}
	return d, nil
}

// getString walks the expansion-mode dictionary backward from code,
// reconstructing the string it represents.
func (d *dict) getString(code int) []byte {
	var rev []byte
	for {
		val := d.entries[dictKey{code, rootSym}]
		rev = append(rev, byte(val.sym))
		if val.sym == val.code && code >= d.opt.MinSymbol && code <= d.opt.MaxSymbol {
			break
		}
		code = val.code
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// advanceCode returns the next available code, skipping the clear/stop
// codes and the symbol range, or ok=false if the max code width would be
// exceeded.
func (d *dict) advanceCode() (int, bool) {
	maxCode := (1 << d.opt.MaxCodeWidth) - 1
	newCode := 0
	if d.currCode != nil {
		newCode = *d.currCode + 1
	}
	for {
		test := newCode
		if d.opt.ClearCode != NoCode && newCode == d.opt.ClearCode {
			newCode++
		}
		if d.opt.StopCode != NoCode && newCode == d.opt.StopCode {
			newCode++
		}
		if newCode >= d.opt.MinSymbol && newCode <= d.opt.MaxSymbol {
			newCode = d.opt.MaxSymbol + 1
		}
		if newCode == test {
			break
		}
	}
	if newCode > maxCode {
		c := maxCode
		d.currCode = &c
		return 0, false
	}
	c := newCode
	d.currCode = &c
	return newCode, true
}

// checkMatch tries to extend the current match with nextSym. matched=true
// means keep matching; matched=false means the caller should emit the code
// for the match so far (a new dictionary entry was created unless
// exhausted=true, meaning the code space is full).
func (d *dict) checkMatch(nextSym int) (matched, exhausted bool) {
	var searchKey dictKey
	if d.currMatch != nil {
		base := d.entries[dictKey{d.currMatch.code, d.currMatch.sym}]
		searchKey = dictKey{base.code, nextSym}
	} else {
		searchKey = dictKey{nextSym, rootSym}
	}

	if _, ok := d.entries[searchKey]; ok {
		m := link{code: searchKey.code, sym: searchKey.sym}
		d.currMatch = &m
		return true, false
	}

	code, ok := d.advanceCode()
	if !ok {
		return false, true
	}
	d.entries[searchKey] = link{code: code, sym: 0}
	return false, false
}
