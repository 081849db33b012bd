// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"sort"

	"github.com/utf8kit/text/internal/pagetab"
)

// notPresent marks an absent offset in a decompEntry.
const notPresent = 0xFFFF

// A decompEntry maps a scalar to its expansions in decompPool. An entry
// always has at least one of canon and compat set. The compat offset is set
// only if the compatibility expansion differs from the canonical one.
type decompEntry struct {
	r      rune
	canon  uint16
	compat uint16
}

var (
	cccTable     = pagetab.Table[uint8]{Index: cccIndex[:], Blocks: cccBlocks[:]}
	composeTable = pagetab.Table[uint16]{Index: composeIndex[:], Blocks: composeBlocks[:]}
)

// CombiningClass returns the canonical combining class of r. It returns 0 for
// starters, unassigned code points and values that are not scalar values.
func CombiningClass(r rune) uint8 {
	return cccTable.Lookup(r)
}

// findDecomposition returns the full expansion of r or nil if r does not
// decompose. If compat is set, the compatibility expansion is returned if
// present. The result aliases decompPool and must not be modified.
// Hangul syllables are not covered.
func findDecomposition(r rune, compat bool) []rune {
	if r < decompTable[0].r || r > decompTable[len(decompTable)-1].r {
		return nil
	}
	i := sort.Search(len(decompTable), func(i int) bool {
		return decompTable[i].r >= r
	})
	if i == len(decompTable) || decompTable[i].r != r {
		return nil
	}
	e := &decompTable[i]
	off := e.canon
	if compat && e.compat != notPresent {
		off = e.compat
	}
	if off == notPresent {
		return nil
	}
	n := int(decompPool[off])
	return decompPool[int(off)+1 : int(off)+1+n : int(off)+1+n]
}

// decompose returns the expansion of r, including Hangul syllables, or nil if
// r maps to itself.
func decompose(r rune, compat bool) []rune {
	if isHangul(r) {
		var buf [3]rune
		n := decomposeHangul(r, buf[:])
		return buf[:n:n]
	}
	return findDecomposition(r, compat)
}

// decomposedLen reports the number of scalars r expands to.
func decomposedLen(r rune, compat bool) int {
	if isHangul(r) {
		return decomposeHangul(r, nil)
	}
	if d := findDecomposition(r, compat); d != nil {
		return len(d)
	}
	return 1
}

// appendDecomposed appends the expansion of r to buf.
func appendDecomposed(buf []rune, r rune, compat bool) []rune {
	if isHangul(r) {
		var h [3]rune
		n := decomposeHangul(r, h[:])
		return append(buf, h[:n]...)
	}
	if d := findDecomposition(r, compat); d != nil {
		return append(buf, d...)
	}
	return append(buf, r)
}

// CanonicalDecomposition returns the full canonical decomposition of r. The
// result has at least one element; it is r itself if r does not decompose.
// The caller owns the returned slice.
func CanonicalDecomposition(r rune) []rune {
	return appendDecomposed(nil, r, false)
}

// CompatibilityDecomposition returns the full compatibility decomposition of
// r, which is the canonical decomposition if r has no compatibility mapping.
func CompatibilityDecomposition(r rune) []rune {
	return appendDecomposed(nil, r, true)
}

// HasDecomposition reports whether r maps to something other than itself
// under the canonical or, if compat is set, the compatibility decomposition.
func HasDecomposition(r rune, compat bool) bool {
	return isHangul(r) || findDecomposition(r, compat) != nil
}
