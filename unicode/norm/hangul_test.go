// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import "testing"

func TestHangulRoundTrip(t *testing.T) {
	for s := rune(hangulBase); s < hangulEnd; s++ {
		var buf [3]rune
		n := decomposeHangul(s, buf[:])
		if m := decomposeHangul(s, nil); m != n {
			t.Fatalf("%U: measured %d scalars; wrote %d", s, m, n)
		}
		r, ok := composeHangul(buf[0], buf[1])
		if !ok {
			t.Fatalf("%U: could not compose %U+%U", s, buf[0], buf[1])
		}
		if n == 3 {
			if r, ok = composeHangul(r, buf[2]); !ok {
				t.Fatalf("%U: could not compose trailing %U", s, buf[2])
			}
		}
		if r != s {
			t.Fatalf("%U: round trip gave %U", s, r)
		}
		if got := NFC.Runes(NFD.Runes([]rune{s})); len(got) != 1 || got[0] != s {
			t.Fatalf("%U: NFC(NFD) was %X", s, got)
		}
	}
}

func TestDecomposeHangul(t *testing.T) {
	tests := []struct {
		s    rune
		want []rune
	}{
		{0xAC00, []rune{0x1100, 0x1161}},
		{0xAC01, []rune{0x1100, 0x1161, 0x11A8}},
		{0xD55C, []rune{0x1112, 0x1161, 0x11AB}},
		{0xD7A3, []rune{0x1112, 0x1175, 0x11C2}},
		{0xABFF, []rune{0xABFF}},
		{0xD7A4, []rune{0xD7A4}},
	}
	for _, tt := range tests {
		var buf [3]rune
		n := decomposeHangul(tt.s, buf[:])
		if got := buf[:n]; string(got) != string(tt.want) {
			t.Errorf("%U: was %X; want %X", tt.s, got, tt.want)
		}
	}
}

func TestComposeHangul(t *testing.T) {
	tests := []struct {
		a, b rune
		want rune
		ok   bool
	}{
		{0x1100, 0x1161, 0xAC00, true},
		{0xAC00, 0x11A8, 0xAC01, true},
		{0x1112, 0x1175, 0xD788, true},
		{0xD788, 0x11C2, 0xD7A3, true},
		{0xAC00, 0x11A7, 0, false}, // T index 0 is not a consonant
		{0xAC01, 0x11A8, 0, false}, // LVT syllables take no trailing consonant
		{0x1113, 0x1161, 0, false}, // archaic L outside the modern range
		{0x1100, 0x1176, 0, false},
		{0x1100, 0x11A8, 0, false},
		{'a', 'b', 0, false},
	}
	for _, tt := range tests {
		got, ok := composeHangul(tt.a, tt.b)
		if ok != tt.ok || ok && got != tt.want {
			t.Errorf("%U+%U: was %U, %v; want %U, %v", tt.a, tt.b, got, ok, tt.want, tt.ok)
		}
	}
}
