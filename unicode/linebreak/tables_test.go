// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linebreak

import (
	"testing"
	"unicode/utf8"

	"github.com/utf8kit/text/internal/gen"
	"github.com/utf8kit/text/internal/testtext"
	"github.com/utf8kit/text/internal/ucd"
)

func TestTables(t *testing.T) {
	testtext.SkipIfNotLong(t)

	want := map[rune]Class{}
	err := ucd.Parse(gen.OpenUCDFile("LineBreak.txt"), func(p *ucd.Parser) {
		c, err := ParseClass(p.String(1))
		if err != nil {
			t.Fatalf("%U: %v", p.Rune(0), err)
		}
		want[p.Rune(0)] = c
	})
	if err != nil {
		t.Fatal(err)
	}
	for r := rune(0); r <= utf8.MaxRune; r++ {
		if got := Lookup(r); got != want[r] {
			t.Errorf("Lookup(%U): got %v; want %v", r, got, want[r])
		}
	}
}

func TestVersion(t *testing.T) {
	if Version != gen.UnicodeVersion() {
		t.Errorf("Version: got %s; want %s", Version, gen.UnicodeVersion())
	}
}
