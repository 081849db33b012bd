// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pagetab implements the two-level compressed lookup tables used for
// per-rune Unicode properties.
//
// The code space is split into pages of 256 runes. An index entry per page
// either selects a block holding one value per rune of the page or, if the
// entry is at least Uniform, encodes a single value shared by the whole page.
// Unicode assigns code points sparsely, so most pages collapse to a single
// index entry.
package pagetab

// Uniform is the first index value denoting a uniform page. An index entry x
// with x >= Uniform means every rune in the page has value x - Uniform.
const Uniform = 0x8000

// MaxPages is the number of pages needed to cover all runes up to
// unicode.MaxRune.
const MaxPages = 0x1100

// Value is the set of types that can be stored in a Table.
type Value interface {
	~uint8 | ~uint16
}

// A Table maps runes to values. Runes beyond the end of Index, including
// negative runes and runes above unicode.MaxRune, map to the zero value.
type Table[V Value] struct {
	Index  []uint16
	Blocks [][256]V
}

// Lookup returns the value for r.
func (t *Table[V]) Lookup(r rune) V {
	if r < 0 {
		return 0
	}
	p := uint32(r) >> 8
	if p >= uint32(len(t.Index)) {
		return 0
	}
	x := t.Index[p]
	if x >= Uniform {
		return V(x - Uniform)
	}
	return t.Blocks[x][r&0xff]
}

// IsUniform reports whether all runes in the page of r share a single value.
func (t *Table[V]) IsUniform(r rune) bool {
	if r < 0 {
		return true
	}
	p := uint32(r) >> 8
	return p >= uint32(len(t.Index)) || t.Index[p] >= Uniform
}
