// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linebreak

import (
	"errors"
	"testing"
)

var lookupTests = []struct {
	r    rune
	want Class
}{
	{'a', AL},
	{' ', SP},
	{'\n', LF},
	{'\r', CR},
	{'\v', BK},
	{0x85, NL},
	{'(', OP},
	{')', CP},
	{'0', NU},
	{'$', PR},
	{'%', PO},
	{'!', EX},
	{'-', HY},
	{'"', QU},
	{',', IS},
	{'/', SY},
	{0xA0, GL},
	{0xB4, BB},
	{0x0301, CM},
	{0x05D0, HL},
	{0x0E01, SA},
	{0x1100, JL},
	{0x1161, JV},
	{0x11A8, JT},
	{0x200B, ZW},
	{0x200D, ZWJ},
	{0x2014, B2},
	{0x2026, IN},
	{0x2060, WJ},
	{0x3000, BA},
	{0x3041, CJ},
	{0x4E00, ID},
	{0xAC00, H2},
	{0xAC01, H3},
	{0xD800, SG},
	{0x1F1E6, RI},
	{0x1F3FB, EM},
	{0x1F466, EB},
	{0x20000, ID},

	{0x0378, XX},
	{0x10FFFF, XX},
	{-1, XX},
	{0x110000, XX},
}

func TestLookup(t *testing.T) {
	for _, tt := range lookupTests {
		if got := Lookup(tt.r); got != tt.want {
			t.Errorf("Lookup(%U): got %v; want %v", tt.r, got, tt.want)
		}
	}
}

func TestLookupBytes(t *testing.T) {
	tests := []struct {
		in   string
		want Class
		size int
	}{
		{"", XX, 0},
		{"a", AL, 1},
		{"\u00a0x", GL, 2},
		{"\uac00", H2, 3},
		{"\U0001f466", EB, 4},
		{"\xff", XX, 1},
		{"\xe2\x80", XX, 1},
	}
	for _, tt := range tests {
		c, size := LookupBytes([]byte(tt.in))
		if c != tt.want || size != tt.size {
			t.Errorf("LookupBytes(%+q): got %v, %d; want %v, %d", tt.in, c, size, tt.want, tt.size)
		}
		c, size = LookupString(tt.in)
		if c != tt.want || size != tt.size {
			t.Errorf("LookupString(%+q): got %v, %d; want %v, %d", tt.in, c, size, tt.want, tt.size)
		}
	}
}

func TestParseClass(t *testing.T) {
	for c := Class(0); c < numClasses; c++ {
		got, err := ParseClass(c.String())
		if err != nil || got != c {
			t.Errorf("ParseClass(%q): got %v, %v; want %v, nil", c.String(), got, err, c)
		}
	}
	if _, err := ParseClass("al"); !errors.Is(err, ErrUnknownClass) {
		t.Errorf("ParseClass(%q): got %v; want %v", "al", err, ErrUnknownClass)
	}
	if got := Class(numClasses).String(); got != "Class(43)" {
		t.Errorf("String: got %q; want %q", got, "Class(43)")
	}
}

func BenchmarkLookup(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for _, tt := range lookupTests {
			Lookup(tt.r)
		}
	}
}
