// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"math/rand"
	"testing"
	"unicode/utf8"

	xnorm "golang.org/x/text/unicode/norm"
)

func xform(f Form) xnorm.Form {
	return [...]xnorm.Form{xnorm.NFC, xnorm.NFD, xnorm.NFKC, xnorm.NFKD}[f]
}

// agrees reports whether r has the same combining class and the same
// single-rune results in all forms here and in golang.org/x/text.
func agrees(r rune) bool {
	s := string(r)
	if CombiningClass(r) != xnorm.NFD.PropertiesString(s).CCC() {
		return false
	}
	for _, f := range forms {
		if f.String(s) != xform(f).String(s) {
			return false
		}
	}
	return true
}

// plain reports whether the tables hold no normalization data for r.
func plain(r rune) bool {
	return CombiningClass(r) == 0 && !HasDecomposition(r, true) && composeTable.Lookup(r) == 0
}

// TestCompareSingleRunes checks that the two implementations only disagree
// on scalars the tables know nothing about, which are the ones assigned in
// a later Unicode version.
func TestCompareSingleRunes(t *testing.T) {
	skew := 0
	for r := rune(0); r <= utf8.MaxRune; r++ {
		if !utf8.ValidRune(r) || agrees(r) {
			continue
		}
		skew++
		if !plain(r) {
			s := string(r)
			t.Errorf("%U: CombiningClass %d, NFKD %+q; want %d, %+q", r,
				CombiningClass(r), NFKD.String(s), xnorm.NFD.PropertiesString(s).CCC(), xnorm.NFKD.String(s))
		}
	}
	t.Logf("%d scalars differ between Unicode %s and %s", skew, Version, xnorm.Version)
}

func comparePool(t *testing.T, pool []rune, seed int64) {
	t.Helper()
	rnd := rand.New(rand.NewSource(seed))
	for i := 0; i < 20000; i++ {
		rs := make([]rune, 1+rnd.Intn(6))
		for j := range rs {
			rs[j] = pool[rnd.Intn(len(pool))]
		}
		s := string(rs)
		for _, f := range forms {
			want := xform(f).String(s)
			if got := f.String(s); got != want {
				t.Fatalf("%s(%+q): was %+q; want %+q", f.Name(), s, got, want)
			}
			if got := string(f.Runes(rs)); got != want {
				t.Fatalf("%s.Runes(%+q): was %+q; want %+q", f.Name(), s, got, want)
			}
			if got, want := f.IsNormalString(s), xform(f).IsNormalString(s); got != want {
				t.Fatalf("%s.IsNormalString(%+q): was %v; want %v", f.Name(), s, got, want)
			}
		}
	}
}

func TestCompareRandomSequences(t *testing.T) {
	var pool, compose []rune
	for _, r := range interesting {
		if !agrees(r) {
			continue
		}
		pool = append(pool, r)
		if composeTable.Lookup(r) != 0 {
			compose = append(compose, r)
		}
	}
	t.Run("all", func(t *testing.T) { comparePool(t, pool, 3) })
	// Runes with a composition role meet their partners far more often.
	t.Run("compose", func(t *testing.T) { comparePool(t, compose, 4) })
}

func TestCompareBackwardCombiningStarters(t *testing.T) {
	for _, s := range []string{
		"\u0bc6\u0bbe",
		"\u0bc6\u0b82\u0bbe",
		"\u0bc6\u0bcd\u0bbe",
		"\u0cc6\u0cd5",
		"\u0cbf\u0cd5",
		"\U00011131\U00011127",
		"\U00011132\U00011127",
		"\u0d46\u0d57",
		"\u1025\u102e",
		"\U000114b9\U000114ba",
		"\U000114b9\U000114b0",
	} {
		for _, f := range forms {
			if got, want := f.String(s), xform(f).String(s); got != want {
				t.Errorf("%s(%+q): was %+q; want %+q", f.Name(), s, got, want)
			}
		}
	}
}
