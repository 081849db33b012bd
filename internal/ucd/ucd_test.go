// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ucd

import (
	"io"
	"strings"
	"testing"
)

const file = `
# Comments should be skipped
# rune;  bool;  uint; int; float; runes; # Y
0..0005; Y;     0;    2;      -5.25 ;  0 1 2 3 4 5;
6..0007; Yes  ; 6;    1;     -4.25  ;  0006 0007;
8;       T ;    8 ;   0 ;-3.25  ;;# T
9;       True  ;9  ;  -1;-2.25  ;  0009;

# more comments to be ignored
@Part0  

A;       N;   10  ;   -2;  -1.25; ;# N
B;       No;   11 ;   -3;  -0.25; 
C;        False;12;   -4;   0.75;
D;        ;13;-5;1.75;

@Part1   # Another part. 
# We test part comments get removed by not commenting the next line.
E..10FFFF; F;   14  ; -6;   2.75;
`

var want = []struct {
	start, end rune
}{
	{0x00, 0x05},
	{0x06, 0x07},
	{0x08, 0x08},
	{0x09, 0x09},
	{0x0A, 0x0A},
	{0x0B, 0x0B},
	{0x0C, 0x0C},
	{0x0D, 0x0D},
	{0x0E, 0x10FFFF},
}

func TestGetters(t *testing.T) {
	parts := [][2]string{
		{"Part0", ""},
		{"Part1", "Another part."},
	}
	handler := func(p *Parser) {
		if len(parts) == 0 {
			t.Error("Part handler invoked too many times.")
			return
		}
		want := parts[0]
		parts = parts[1:]
		if got0, got1 := p.String(0), p.Comment(); got0 != want[0] || got1 != want[1] {
			t.Errorf(`part: got %q, %q; want %q"`, got0, got1, want)
		}
	}

	p := New(strings.NewReader(file), KeepRanges, Part(handler))
	for i := 0; p.Next(); i++ {
		start, end := p.Range(0)
		w := want[i]
		if start != w.start || end != w.end {
			t.Fatalf("%d:Range(0); got %#x..%#x; want %#x..%#x", i, start, end, w.start, w.end)
		}
		if w.start == w.end && p.Rune(0) != w.start {
			t.Errorf("%d:Range(0).start: got %U; want %U", i, p.Rune(0), w.start)
		}
		if got, want := p.Bool(1), w.start <= 9; got != want {
			t.Errorf("%d:Bool(1): got %v; want %v", i, got, want)
		}
		if got := p.Rune(4); got != 0 || p.Err() == nil {
			t.Errorf("%d:Rune(%q): got no error; want error", i, p.String(1))
		}
		p.err = nil
		if got := p.Uint(2); rune(got) != w.start {
			t.Errorf("%d:Uint(2): got %v; want %v", i, got, w.start)
		}
		if got := p.Runes(5); len(got) > 0 && got[0] != w.start {
			t.Errorf("%d:Runes(5): got %U; want first %U", i, got, w.start)
		}
		if got, want := p.Comment(), p.String(1); !strings.HasPrefix(want, got) {
			t.Errorf("%d:Comment(): got %v; want prefix of %v", i, got, want)
		}
	}
	if err := p.Err(); err != nil {
		t.Errorf("Parser.Err() = %v; want nil", err)
	}
	if len(parts) != 0 {
		t.Errorf("expected %d more invocations of part handler", len(parts))
	}
}

const legacy = `
3400;<CJK Ideograph Extension A, First>;Lo;0;L;;;;;N;;;;;
4DB5;<CJK Ideograph Extension A, Last>;Lo;0;L;;;;;N;;;;;
4DC0;HEXAGRAM FOR THE CREATIVE HEAVEN;So;0;ON;;;;;N;;;;;
`

func TestLegacyRange(t *testing.T) {
	var first, last rune
	n := 0
	err := Parse(io.NopCloser(strings.NewReader(legacy)), func(p *Parser) {
		if n == 0 {
			first = p.Rune(0)
		}
		last = p.Rune(0)
		n++
	})
	if err != nil {
		t.Fatal(err)
	}
	if want := 0x4DB5 - 0x3400 + 2; n != want {
		t.Errorf("got %d entries; want %d", n, want)
	}
	if first != 0x3400 || last != 0x4DC0 {
		t.Errorf("got %U..%U; want U+3400..U+4DC0", first, last)
	}
}

func TestEnum(t *testing.T) {
	p := New(strings.NewReader("0041;Lu\n0042;Xx\n"))
	p.Next()
	if got := p.Enum(1, "Ll", "Lu"); got != "Lu" {
		t.Errorf("Enum: got %q; want %q", got, "Lu")
	}
	p.Next()
	if got := p.Enum(1, "Ll", "Lu"); got != "" || p.Err() == nil {
		t.Errorf("Enum: got %q, %v; want error", got, p.Err())
	}
}

func TestBool(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want bool
	}{
		{"Y", true},
		{"Yes", true},
		{"T", true},
		{"True", true},
		{"N", false},
		{"No", false},
		{"F", false},
		{"False", false},
		{"M", false},
		{"", false},
	} {
		p := New(strings.NewReader("0041; " + tt.in + "\n"))
		if !p.Next() {
			t.Fatalf("%q: no entry", tt.in)
		}
		if got := p.Bool(1); got != tt.want {
			t.Errorf("Bool(%q): got %v; want %v", tt.in, got, tt.want)
		}
	}
}
