// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCombiningClass(t *testing.T) {
	tests := []struct {
		r    rune
		want uint8
	}{
		{'A', 0},
		{0x300, 230},
		{0x315, 232},
		{0x31B, 216},
		{0x334, 1},
		{0x345, 240},
		{0x5B0, 10},
		{0x93C, 7},
		{0xE38, 103},
		{0x302A, 218},
		{0x3099, 8},
		{0xFE20, 230},
		{0x1D165, 216},
		{0x1D16D, 226},
		{0xAC00, 0},
		{0xE0000, 0},
		{0x10FFFF, 0},
		{0x110000, 0},
		{-1, 0},
		{0xD800, 0},
	}
	for _, tt := range tests {
		if got := CombiningClass(tt.r); got != tt.want {
			t.Errorf("%U: ccc was %d; want %d", tt.r, got, tt.want)
		}
	}
}

func TestDecomposition(t *testing.T) {
	tests := []struct {
		r             rune
		canon, compat []rune
	}{
		{'a', []rune{'a'}, []rune{'a'}},
		{0xC5, []rune{'A', 0x30A}, []rune{'A', 0x30A}},
		{0x1E0B, []rune{'d', 0x307}, []rune{'d', 0x307}},
		{0x2126, []rune{0x3A9}, []rune{0x3A9}},
		{0xFB01, []rune{0xFB01}, []rune{'f', 'i'}},
		{0x1F82, []rune{0x3B1, 0x313, 0x300, 0x345}, []rune{0x3B1, 0x313, 0x300, 0x345}},
		{0x958, []rune{0x915, 0x93C}, []rune{0x915, 0x93C}},
		{0x344, []rune{0x308, 0x301}, []rune{0x308, 0x301}},
		{0xBD, []rune{0xBD}, []rune{'1', 0x2044, '2'}},
		{0x3300, []rune{0x3300}, []rune{0x30A2, 0x30CF, 0x309A, 0x30FC, 0x30C8}},
		{0x2FA1D, []rune{0x2A600}, []rune{0x2A600}},
		{0xD55C, []rune{0x1112, 0x1161, 0x11AB}, []rune{0x1112, 0x1161, 0x11AB}},
		{0xAC00, []rune{0x1100, 0x1161}, []rune{0x1100, 0x1161}},
		{0x10FFFF, []rune{0x10FFFF}, []rune{0x10FFFF}},
		{-5, []rune{-5}, []rune{-5}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.canon, CanonicalDecomposition(tt.r)); diff != "" {
			t.Errorf("%U: canonical decomposition mismatch (-want +got):\n%s", tt.r, diff)
		}
		if diff := cmp.Diff(tt.compat, CompatibilityDecomposition(tt.r)); diff != "" {
			t.Errorf("%U: compatibility decomposition mismatch (-want +got):\n%s", tt.r, diff)
		}
		if got, want := HasDecomposition(tt.r, false), len(tt.canon) != 1 || tt.canon[0] != tt.r; got != want {
			t.Errorf("%U: HasDecomposition(canonical) was %v; want %v", tt.r, got, want)
		}
		if got, want := HasDecomposition(tt.r, true), len(tt.compat) != 1 || tt.compat[0] != tt.r; got != want {
			t.Errorf("%U: HasDecomposition(compat) was %v; want %v", tt.r, got, want)
		}
	}
}

func TestDecompositionIsCopy(t *testing.T) {
	d := CanonicalDecomposition(0xC5)
	d[0] = 'X'
	if got := CanonicalDecomposition(0xC5); got[0] != 'A' {
		t.Errorf("modifying a result changed the table: was %U; want %U", got[0], 'A')
	}
}

func TestDecompTableSorted(t *testing.T) {
	for i := 1; i < len(decompTable); i++ {
		if decompTable[i-1].r >= decompTable[i].r {
			t.Fatalf("decompTable not sorted at %d: %U >= %U", i, decompTable[i-1].r, decompTable[i].r)
		}
	}
	for _, e := range decompTable {
		if e.canon == notPresent && e.compat == notPresent {
			t.Errorf("%U: entry without expansion", e.r)
		}
	}
}

func TestDecompositionsAreNormal(t *testing.T) {
	for _, e := range decompTable {
		for _, compat := range []bool{false, true} {
			d := findDecomposition(e.r, compat)
			if d == nil {
				continue
			}
			if !isCanonicallyOrdered(d) {
				t.Errorf("%U: expansion %X is not in canonical order", e.r, d)
			}
			for _, r := range d {
				if HasDecomposition(r, compat) {
					t.Errorf("%U: expansion %X contains decomposable %U", e.r, d, r)
				}
			}
		}
	}
}

func TestFindDecompositionBounds(t *testing.T) {
	first, last := decompTable[0].r, decompTable[len(decompTable)-1].r
	for _, r := range []rune{-1, 0, first - 1, last + 1, 0x10FFFF, 0x7FFFFFFF} {
		if d := findDecomposition(r, true); d != nil {
			t.Errorf("%U: was %X; want nil", r, d)
		}
	}
	if findDecomposition(first, true) == nil || findDecomposition(last, false) == nil {
		t.Errorf("table bounds are not found")
	}
}
