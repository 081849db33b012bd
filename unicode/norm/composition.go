// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

// combine returns the primary composite of a followed by b, if any.
// Composition exclusions never result.
func combine(a, b rune) (rune, bool) {
	if r, ok := composeHangul(a, b); ok {
		return r, true
	}
	ia := composeTable.Lookup(a)
	if composeFirstSingleStart <= ia && ia < composeSecondStart {
		e := composeFirstSingle[ia-composeFirstSingleStart]
		return e[1], e[0] == b
	}
	ib := composeTable.Lookup(b)
	if ib >= composeSecondSingleStart {
		e := composeSecondSingle[ib-composeSecondSingleStart]
		return e[1], e[0] == a
	}
	if composeFirstStart <= ia && ia < composeFirstSingleStart &&
		composeSecondStart <= ib && ib < composeSecondSingleStart {
		r := composeArray[ia-composeFirstStart][ib-composeSecondStart]
		return r, r != 0
	}
	return 0, false
}

// combinesBackward reports whether r may be the second scalar of a pair.
func combinesBackward(r rune) bool {
	return composeTable.Lookup(r) >= composeSecondStart || isJamoVT(r)
}

// compose applies canonical composition to buf, which must be in canonical
// order, and returns the compacted prefix of buf.
//
// A scalar is tried against the last starter only if nothing blocks it: it
// directly follows the starter, or the scalar before it is a mark of a lower
// class.
func compose(buf []rune) []rune {
	starter := -1
	var lastCC uint8
	w := 0
	for _, r := range buf {
		cc := CombiningClass(r)
		if starter >= 0 && (w-1 == starter || lastCC != 0 && lastCC < cc) {
			if c, ok := combine(buf[starter], r); ok {
				buf[starter] = c
				continue
			}
		}
		if cc == 0 {
			starter = w
		}
		buf[w] = r
		w++
		lastCC = cc
	}
	return buf[:w]
}
