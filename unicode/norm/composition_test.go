// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCombine(t *testing.T) {
	tests := []struct {
		a, b rune
		want rune
		ok   bool
	}{
		{'e', 0x301, 0xE9, true},
		{'A', 0x30A, 0xC5, true},
		{0xC5, 0x301, 0x1FA, true},
		{0x1100, 0x1161, 0xAC00, true},
		{0xAC00, 0x11A8, 0xAC01, true},
		{0x915, 0x93C, 0, false}, // composition exclusion
		{0x3C9, 0x342, 0x1FF6, true},
		{0x3A9, 0x342, 0, false},
		{'a', 'b', 0, false},
		{0x301, 'e', 0, false},
		{'q', 0x301, 0, false},
		{0x30AB, 0x3099, 0x30AC, true},
		{0x308, 0x301, 0, false}, // U+0344 is a non-starter decomposition
		{-1, 0x301, 0, false},
		{0x110000, 0x301, 0, false},
	}
	for _, tt := range tests {
		got, ok := combine(tt.a, tt.b)
		if ok != tt.ok || ok && got != tt.want {
			t.Errorf("%U+%U: was %U, %v; want %U, %v", tt.a, tt.b, got, ok, tt.want, tt.ok)
		}
	}
}

// TestCombineAll checks that every canonical pair recombines to its
// composite unless the composite is excluded.
func TestCombineAll(t *testing.T) {
	n := 0
	for _, e := range decompTable {
		if e.canon == notPresent {
			continue
		}
		want := NFC.Runes([]rune{e.r})
		if len(want) != 1 || want[0] != e.r {
			continue // excluded
		}
		d := findDecomposition(e.r, false)
		if got := NFC.Runes(d); !cmp.Equal(got, want) {
			t.Errorf("%U: NFC(%X) was %X", e.r, d, got)
		}
		n++
	}
	if n < 900 {
		t.Errorf("only %d composites; want at least 900", n)
	}
}

func TestCombinesBackward(t *testing.T) {
	for _, r := range []rune{0x301, 0x308, 0x1161, 0x11A8, 0x3099, 0x93C, 0xCD5} {
		if !combinesBackward(r) {
			t.Errorf("%U: combinesBackward was false", r)
		}
	}
	for _, r := range []rune{'a', 'e', 0x1100, 0xAC00, 0x11A7} {
		if combinesBackward(r) {
			t.Errorf("%U: combinesBackward was true", r)
		}
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		in, want []rune
	}{
		{[]rune{}, []rune{}},
		{[]rune{'e', 0x301}, []rune{0xE9}},
		{[]rune{'a', 0x316, 0x301}, []rune{0xE1, 0x316}},
		{[]rune{'a', 0x301, 0x301}, []rune{0xE1, 0x301}},
		{[]rune{0x1100, 0x1161, 0x301, 0x11A8}, []rune{0xAC00, 0x301, 0x11A8}},
		{[]rune{0x1100, 0x1161, 0x11A8, 'x'}, []rune{0xAC01, 'x'}},
		{[]rune{0x301, 'e'}, []rune{0x301, 'e'}},
		{[]rune{'A', 0x30A, 0x301}, []rune{0x1FA}},
		{[]rune{'a', 'b'}, []rune{'a', 'b'}},
	}
	for _, tt := range tests {
		buf := append([]rune{}, tt.in...)
		if diff := cmp.Diff(tt.want, compose(buf)); diff != "" {
			t.Errorf("%X: mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}
