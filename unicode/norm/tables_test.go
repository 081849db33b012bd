// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/utf8kit/text/internal/gen"
	"github.com/utf8kit/text/internal/testtext"
	"github.com/utf8kit/text/internal/ucd"
)

func TestCombiningClassTable(t *testing.T) {
	testtext.SkipIfNotLong(t)

	want := map[rune]uint8{}
	canon := map[rune]bool{}
	err := ucd.Parse(gen.OpenUCDFile("UnicodeData.txt"), func(p *ucd.Parser) {
		r := p.Rune(ucd.CodePoint)
		want[r] = uint8(p.Uint(ucd.CanonicalCombiningClass))
		if d := p.String(ucd.DecompMapping); d != "" && d[0] != '<' {
			canon[r] = true
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	for r := rune(0); r <= utf8.MaxRune; r++ {
		if got := CombiningClass(r); got != want[r] {
			t.Errorf("CombiningClass(%U): was %d; want %d", r, got, want[r])
		}
		if got := HasDecomposition(r, false); got != (canon[r] || isHangul(r)) {
			t.Errorf("HasDecomposition(%U, false): was %v; want %v", r, got, !got)
		}
	}
}

// TestQuickCheckTable checks that a scalar whose quick check value is No for
// a form is changed by that form.
func TestQuickCheckTable(t *testing.T) {
	testtext.SkipIfNotLong(t)

	props := map[string]Form{"NFC_QC": NFC, "NFD_QC": NFD, "NFKC_QC": NFKC, "NFKD_QC": NFKD}
	n := 0
	err := ucd.Parse(gen.OpenUCDFile("DerivedNormalizationProps.txt"), func(p *ucd.Parser) {
		f, ok := props[p.String(1)]
		if !ok || p.Bool(2) || p.String(2) == "M" {
			return
		}
		n++
		r := p.Rune(0)
		s := string(r)
		if f.IsNormalString(s) {
			t.Errorf("%s: %U has quick check No but IsNormal", f.Name(), r)
		}
		if got := f.String(s); got == s {
			t.Errorf("%s(%U): unchanged; want a different result", f.Name(), r)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if n == 0 {
		t.Fatal("no quick check entries found")
	}
}

type conformanceTest struct {
	part string
	line int
	cols [5]string
}

// TestConformance checks the invariants listed in NormalizationTest.txt:
//
//	NFC:  c2 == NFC(c1) == NFC(c2) == NFC(c3);  c4 == NFC(c4) == NFC(c5)
//	NFD:  c3 == NFD(c1) == NFD(c2) == NFD(c3);  c5 == NFD(c4) == NFD(c5)
//	NFKC: c4 == NFKC(c1..c5)
//	NFKD: c5 == NFKD(c1..c5)
func TestConformance(t *testing.T) {
	testtext.SkipIfNotLong(t)

	var tests []conformanceTest
	part := ""
	inPart1 := map[rune]bool{}
	p := ucd.New(gen.OpenUCDFile("NormalizationTest.txt"), ucd.KeepRanges, ucd.Part(func(p *ucd.Parser) {
		part = p.String(0)
	}))
	for line := 1; p.Next(); line++ {
		tt := conformanceTest{part: part, line: line}
		for i := range tt.cols {
			tt.cols[i] = string(p.Runes(i))
		}
		if part == "Part1" {
			rs := p.Runes(0)
			inPart1[rs[0]] = true
		}
		tests = append(tests, tt)
	}
	if err := p.Err(); err != nil {
		t.Fatal(err)
	}
	if len(tests) == 0 {
		t.Fatal("no tests found")
	}

	check := func(tt conformanceTest, f Form, want int, in ...int) {
		t.Helper()
		for _, i := range in {
			if got := f.String(tt.cols[i]); got != tt.cols[want] {
				t.Errorf("%s:%d: %s(c%d): was %+q; want %+q", tt.part, tt.line, f.Name(), i+1, got, tt.cols[want])
			}
			if got := string(f.Runes([]rune(tt.cols[i]))); got != tt.cols[want] {
				t.Errorf("%s:%d: %s.Runes(c%d): was %+q; want %+q", tt.part, tt.line, f.Name(), i+1, got, tt.cols[want])
			}
		}
	}
	for _, tt := range tests {
		check(tt, NFC, 1, 0, 1, 2)
		check(tt, NFC, 3, 3, 4)
		check(tt, NFD, 2, 0, 1, 2)
		check(tt, NFD, 4, 3, 4)
		check(tt, NFKC, 3, 0, 1, 2, 3, 4)
		check(tt, NFKD, 4, 0, 1, 2, 3, 4)
	}

	// Scalars not listed in Part1 are invariant under all forms.
	var b strings.Builder
	for r := rune(0); r <= utf8.MaxRune; r++ {
		if inPart1[r] || !utf8.ValidRune(r) {
			continue
		}
		b.Reset()
		b.WriteRune(r)
		s := b.String()
		for _, f := range forms {
			if !f.IsNormalString(s) {
				t.Errorf("%U is not in %s", r, f.Name())
			}
		}
	}
}

func TestVersion(t *testing.T) {
	if Version != gen.UnicodeVersion() {
		t.Errorf("Version: got %s; want %s", Version, gen.UnicodeVersion())
	}
}
