// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/utf8kit/text/internal/scalar"
)

var forms = []Form{NFC, NFD, NFKC, NFKD}

type runeTest struct {
	in                   []rune
	nfc, nfd, nfkc, nfkd []rune
}

func (tt runeTest) want(f Form) []rune {
	return [...][]rune{tt.nfc, tt.nfd, tt.nfkc, tt.nfkd}[f]
}

var runeTests = []runeTest{
	{
		in:  []rune{},
		nfc: []rune{}, nfd: []rune{}, nfkc: []rune{}, nfkd: []rune{},
	},
	{
		in:  []rune{'e', 0x301},
		nfc: []rune{0xE9}, nfd: []rune{'e', 0x301},
		nfkc: []rune{0xE9}, nfkd: []rune{'e', 0x301},
	},
	{
		in:  []rune{0xE9},
		nfc: []rune{0xE9}, nfd: []rune{'e', 0x301},
		nfkc: []rune{0xE9}, nfkd: []rune{'e', 0x301},
	},
	{
		in:  []rune{0xD55C},
		nfc: []rune{0xD55C}, nfd: []rune{0x1112, 0x1161, 0x11AB},
		nfkc: []rune{0xD55C}, nfkd: []rune{0x1112, 0x1161, 0x11AB},
	},
	{
		in:  []rune{0xFB01},
		nfc: []rune{0xFB01}, nfd: []rune{0xFB01},
		nfkc: []rune{'f', 'i'}, nfkd: []rune{'f', 'i'},
	},
	{
		// Marks are reordered by class before composition.
		in:  []rune{0x1E0B, 0x323},
		nfc: []rune{0x1E0D, 0x307}, nfd: []rune{'d', 0x323, 0x307},
		nfkc: []rune{0x1E0D, 0x307}, nfkd: []rune{'d', 0x323, 0x307},
	},
	{
		in:  []rune{'q', 0x307, 0x323},
		nfc: []rune{'q', 0x323, 0x307}, nfd: []rune{'q', 0x323, 0x307},
		nfkc: []rune{'q', 0x323, 0x307}, nfkd: []rune{'q', 0x323, 0x307},
	},
	{
		// Singletons.
		in:  []rune{0x212B, 0x2126},
		nfc: []rune{0xC5, 0x3A9}, nfd: []rune{'A', 0x30A, 0x3A9},
		nfkc: []rune{0xC5, 0x3A9}, nfkd: []rune{'A', 0x30A, 0x3A9},
	},
	{
		in:  []rune{0x1E9B, 0x323},
		nfc: []rune{0x1E9B, 0x323}, nfd: []rune{0x17F, 0x323, 0x307},
		nfkc: []rune{0x1E69}, nfkd: []rune{'s', 0x323, 0x307},
	},
	{
		// A mark between a syllable and a trailing consonant blocks composition.
		in:  []rune{0xAC00, 0x301, 0x11A8},
		nfc: []rune{0xAC00, 0x301, 0x11A8}, nfd: []rune{0x1100, 0x1161, 0x301, 0x11A8},
		nfkc: []rune{0xAC00, 0x301, 0x11A8}, nfkd: []rune{0x1100, 0x1161, 0x301, 0x11A8},
	},
	{
		in:  []rune{0x1100, 0x1161, 0x11A8},
		nfc: []rune{0xAC01}, nfd: []rune{0x1100, 0x1161, 0x11A8},
		nfkc: []rune{0xAC01}, nfkd: []rune{0x1100, 0x1161, 0x11A8},
	},
	{
		// Composition exclusion.
		in:  []rune{0x958},
		nfc: []rune{0x915, 0x93C}, nfd: []rune{0x915, 0x93C},
		nfkc: []rune{0x915, 0x93C}, nfkd: []rune{0x915, 0x93C},
	},
	{
		in:  []rune{0xC5, 0x301},
		nfc: []rune{0x1FA}, nfd: []rune{'A', 0x30A, 0x301},
		nfkc: []rune{0x1FA}, nfkd: []rune{'A', 0x30A, 0x301},
	},
	{
		// The second ogonek is blocked by the first one.
		in:  []rune{'a', 0x328, 0x301, 0x328},
		nfc: []rune{0x105, 0x328, 0x301}, nfd: []rune{'a', 0x328, 0x328, 0x301},
		nfkc: []rune{0x105, 0x328, 0x301}, nfkd: []rune{'a', 0x328, 0x328, 0x301},
	},
	{
		in:  []rune{0x320E},
		nfc: []rune{0x320E}, nfd: []rune{0x320E},
		nfkc: []rune{'(', 0xAC00, ')'}, nfkd: []rune{'(', 0x1100, 0x1161, ')'},
	},
	{
		// Non-starter decompositions are reordered as a whole.
		in:  []rune{0x344, 0xF73},
		nfc: []rune{0xF71, 0xF72, 0x308, 0x301}, nfd: []rune{0xF71, 0xF72, 0x308, 0x301},
		nfkc: []rune{0xF71, 0xF72, 0x308, 0x301}, nfkd: []rune{0xF71, 0xF72, 0x308, 0x301},
	},
	{
		in:  []rune{0x1C4},
		nfc: []rune{0x1C4}, nfd: []rune{0x1C4},
		nfkc: []rune{'D', 0x17D}, nfkd: []rune{'D', 'Z', 0x30C},
	},
	{
		in:  []rune{0x1FEE},
		nfc: []rune{0x385}, nfd: []rune{0xA8, 0x301},
		nfkc: []rune{' ', 0x308, 0x301}, nfkd: []rune{' ', 0x308, 0x301},
	},
	{
		// Leading non-starters are kept.
		in:  []rune{0x301, 'a'},
		nfc: []rune{0x301, 'a'}, nfd: []rune{0x301, 'a'},
		nfkc: []rune{0x301, 'a'}, nfkd: []rune{0x301, 'a'},
	},
	{
		// Values that are not scalar values pass through.
		in:  []rune{0xD800, -1, 0x110000},
		nfc: []rune{0xD800, -1, 0x110000}, nfd: []rune{0xD800, -1, 0x110000},
		nfkc: []rune{0xD800, -1, 0x110000}, nfkd: []rune{0xD800, -1, 0x110000},
	},
}

func TestRunes(t *testing.T) {
	for _, tt := range runeTests {
		for _, f := range forms {
			got := f.Runes(tt.in)
			if got == nil {
				t.Errorf("%s(%X): was nil; want non-nil", f.Name(), tt.in)
			}
			if diff := cmp.Diff(tt.want(f), got); diff != "" {
				t.Errorf("%s(%X): mismatch (-want +got):\n%s", f.Name(), tt.in, diff)
			}
		}
	}
}

func TestRunesDoesNotModifyInput(t *testing.T) {
	in := []rune{0x1E0B, 0x323, 0xD55C}
	orig := append([]rune(nil), in...)
	for _, f := range forms {
		f.Runes(in)
		if diff := cmp.Diff(orig, in); diff != "" {
			t.Fatalf("%s modified its input (-want +got):\n%s", f.Name(), diff)
		}
	}
}

func TestRunesLimit(t *testing.T) {
	in := []rune{'e', 0x301, 'a', 0x300}
	tests := []struct {
		f    Form
		n    int
		want []rune
	}{
		{NFC, -1, []rune{0xE9, 0xE0}},
		{NFC, 0, []rune{}},
		{NFC, 1, []rune{'e'}},
		{NFC, 2, []rune{0xE9}},
		{NFC, 3, []rune{0xE9, 'a'}},
		{NFC, 4, []rune{0xE9, 0xE0}},
		{NFC, 100, []rune{0xE9, 0xE0}},
		{NFD, 2, []rune{'e', 0x301}},
	}
	for _, tt := range tests {
		got := tt.f.RunesLimit(in, tt.n)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s.RunesLimit(%d): mismatch (-want +got):\n%s", tt.f.Name(), tt.n, diff)
		}
	}
}

func TestRunesSingleAllocation(t *testing.T) {
	in := []rune("\u01fangstro\u0308m \u1e0b\u0323 \ud55c\uad6d\uc5b4 \ufb01")
	for _, f := range forms {
		if n := testing.AllocsPerRun(10, func() { f.Runes(in) }); n > 1 {
			t.Errorf("%s: %v allocations; want at most 1", f.Name(), n)
		}
	}
}

// interesting holds runes that take part in decomposition or composition.
var interesting = func() []rune {
	var rs []rune
	for r := rune(0); r < 0x30000; r++ {
		if CombiningClass(r) != 0 || HasDecomposition(r, true) || composeTable.Lookup(r) != 0 {
			rs = append(rs, r)
		}
	}
	for r := rune(0x1100); r < 0x1200; r++ {
		rs = append(rs, r)
	}
	return append(rs, 'a', 'e', 'o', ' ', 0xAC00, 0xAC01, 0xD7A3)
}()

func randomRunes(rnd *rand.Rand) []rune {
	rs := make([]rune, 1+rnd.Intn(8))
	for i := range rs {
		rs[i] = interesting[rnd.Intn(len(interesting))]
	}
	return rs
}

func isCanonicallyOrdered(rs []rune) bool {
	for i := 1; i < len(rs); i++ {
		a, b := CombiningClass(rs[i-1]), CombiningClass(rs[i])
		if b != 0 && a > b {
			return false
		}
	}
	return true
}

func TestProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 20000; i++ {
		in := randomRunes(rnd)
		nfd := NFD.Runes(in)
		nfc := NFC.Runes(in)
		if !isCanonicallyOrdered(nfd) {
			t.Errorf("NFD(%X) = %X is not in canonical order", in, nfd)
		}
		if got := NFC.Runes(nfd); !cmp.Equal(got, nfc) {
			t.Errorf("NFC(NFD(%X)) = %X; want NFC = %X", in, got, nfc)
		}
		for _, f := range forms {
			once := f.Runes(in)
			if twice := f.Runes(once); !cmp.Equal(once, twice) {
				t.Errorf("%s is not idempotent for %X: %X then %X", f.Name(), in, once, twice)
			}
		}
	}
}

func TestSingleRuneIdempotence(t *testing.T) {
	for r := rune(0); r < 0x30000; r++ {
		in := []rune{r}
		for _, f := range forms {
			once := f.Runes(in)
			if twice := f.Runes(once); !cmp.Equal(once, twice) {
				t.Fatalf("%s(%U): %X then %X", f.Name(), r, once, twice)
			}
		}
	}
}

func TestStarterStability(t *testing.T) {
	for _, s := range []string{"", "abc", "Hello, World!", "0123456789", "\t\n\r ~"} {
		in := []rune(s)
		for _, f := range forms {
			if got := f.Runes(in); !cmp.Equal(got, in, cmpopts.EquateEmpty()) {
				t.Errorf("%s(%q) = %X; want unchanged", f.Name(), s, got)
			}
		}
	}
}

func TestFormName(t *testing.T) {
	for _, f := range forms {
		got, err := ParseForm(strings.ToLower(f.Name()))
		if err != nil || got != f {
			t.Errorf("ParseForm(%q) = %v, %v; want %v", strings.ToLower(f.Name()), got, err, f)
		}
	}
	if _, err := ParseForm("NFX"); !errors.Is(err, ErrUnknownForm) {
		t.Errorf("ParseForm(NFX): err was %v; want %v", err, ErrUnknownForm)
	}
	if got, want := Form(7).Name(), "Form(7)"; got != want {
		t.Errorf("Name was %q; want %q", got, want)
	}
}

type stringTest struct {
	f       Form
	in, out string
}

var stringTests = []stringTest{
	{NFC, "", ""},
	{NFC, "abc", "abc"},
	{NFC, "e\u0301", "\u00e9"},
	{NFD, "\u00e9", "e\u0301"},
	{NFC, "\u1100\u1161\u11a8", "\uac01"},
	{NFD, "\ud55c\uad6d\uc5b4", "\u1112\u1161\u11ab\u1100\u116e\u11a8\u110b\u1165"},
	{NFKC, "\ufb01ne", "fine"},
	{NFKD, "x\u00b2", "x2"},
	{NFC, "a\u0300b\u0301", "\u00e0b\u0301"},
	{NFD, "\u01fa", "A\u030a\u0301"},
	{NFKC, "\u2460\uff21\u3000", "1A "},
	{NFC, "\u0915\u093c", "\u0915\u093c"},
	{NFD, "\u1e0b\u0323", "d\u0323\u0307"},

	// Malformed bytes are copied and delimit segments.
	{NFD, "\xbd\xb2=\xbc ", "\xbd\xb2=\xbc "},
	{NFC, "e\xffe\u0301", "e\xff\u00e9"},
	{NFC, "e\xff\u0301", "e\xff\u0301"},
	{NFD, "\u00e9\xc3", "e\u0301\xc3"},
}

func TestString(t *testing.T) {
	for _, tt := range stringTests {
		if got := tt.f.String(tt.in); got != tt.out {
			t.Errorf("%s.String(%+q): was %+q; want %+q", tt.f.Name(), tt.in, got, tt.out)
		}
		if got := tt.f.Bytes([]byte(tt.in)); string(got) != tt.out {
			t.Errorf("%s.Bytes(%+q): was %+q; want %+q", tt.f.Name(), tt.in, got, tt.out)
		}
		if got, want := tt.f.IsNormalString(tt.in), tt.in == tt.out; got != want {
			t.Errorf("%s.IsNormalString(%+q): was %v; want %v", tt.f.Name(), tt.in, got, want)
		}
		if got, want := tt.f.IsNormal([]byte(tt.in)), tt.in == tt.out; got != want {
			t.Errorf("%s.IsNormal(%+q): was %v; want %v", tt.f.Name(), tt.in, got, want)
		}
	}
}

func TestBytesReturnsInputIfNormal(t *testing.T) {
	b := []byte("plain ascii text")
	if got := NFC.Bytes(b); &got[0] != &b[0] {
		t.Errorf("Bytes allocated for normalized input")
	}
}

func TestBytesLimit(t *testing.T) {
	in := []byte("e\u0301a\u0300")
	tests := []struct {
		n    int
		want string
	}{
		{-1, "\u00e9\u00e0"},
		{0, ""},
		{1, "e"},
		{2, "\u00e9"}, // the acute accent starts at byte 1 and is kept whole
		{3, "\u00e9"},
		{4, "\u00e9a"},
		{5, "\u00e9\u00e0"},
		{6, "\u00e9\u00e0"},
		{50, "\u00e9\u00e0"},
	}
	for _, tt := range tests {
		if got := NFC.BytesLimit(in, tt.n); string(got) != tt.want {
			t.Errorf("BytesLimit(%d): was %+q; want %+q", tt.n, got, tt.want)
		}
	}
}

func TestNormalizeBytes(t *testing.T) {
	got, err := NFC.NormalizeBytes([]byte("Cafe\u0301"))
	if err != nil || string(got) != "Caf\u00e9" {
		t.Errorf("NormalizeBytes: was %+q, %v; want %+q, nil", got, err, "Caf\u00e9")
	}
	_, err = NFC.NormalizeBytes([]byte("ab\xffc"))
	var ie *scalar.InvalidError
	if !errors.As(err, &ie) || ie.Offset != 2 {
		t.Errorf("NormalizeBytes: err was %v; want invalid UTF-8 at offset 2", err)
	}
	if !errors.Is(err, scalar.ErrInvalidUTF8) {
		t.Errorf("NormalizeBytes: err %v does not wrap %v", err, scalar.ErrInvalidUTF8)
	}
}

type appendTest struct {
	left, right, out string
}

var appendTests = []appendTest{
	{"", "", ""},
	{"a", "", "a"},
	{"", "a", "a"},
	{"a", "\u0301", "\u00e1"},
	{"\u00e1", "\u0328", "\u0105\u0301"},
	{"\u1100", "\u1161", "\uac00"},
	{"\uac00", "\u11a8", "\uac01"},
	{"aba", "\u0300def", "ab\u00e0def"},
	{"e\xff", "\u0301", "e\xff\u0301"},
	{"\u00e0", "bc", "\u00e0bc"},
	{strings.Repeat("a", 100), "\u0300", strings.Repeat("a", 99) + "\u00e0"},
}

func TestAppend(t *testing.T) {
	for _, tt := range appendTests {
		left := NFC.String(tt.left)
		if got := NFC.Append([]byte(left), []byte(tt.right)...); string(got) != tt.out {
			t.Errorf("Append(%+q, %+q): was %+q; want %+q", left, tt.right, got, tt.out)
		}
		if got := NFC.AppendString([]byte(left), tt.right); string(got) != tt.out {
			t.Errorf("AppendString(%+q, %+q): was %+q; want %+q", left, tt.right, got, tt.out)
		}
	}
}

func TestAppendRandomSplits(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 2000; i++ {
		s := string(randomRunes(rnd)) + string(randomRunes(rnd))
		for _, f := range forms {
			want := f.String(s)
			for k := range s {
				got := f.AppendString(f.Bytes([]byte(s[:k])), s[k:])
				if string(got) != want {
					t.Fatalf("%s: split %+q at %d: was %+q; want %+q", f.Name(), s, k, got, want)
				}
			}
		}
	}
}

func BenchmarkString(b *testing.B) {
	inputs := map[string]string{
		"ascii":  strings.Repeat("The quick brown fox. ", 50),
		"latin":  strings.Repeat("C\u0327a a e\u0301te\u0301 de\u0301ja\u0300 vu. ", 50),
		"hangul": strings.Repeat("\ud55c\uad6d\uc5b4 \ud14d\uc2a4\ud2b8 ", 50),
	}
	for name, s := range inputs {
		for _, f := range forms {
			b.Run(fmt.Sprintf("%s/%s", name, f.Name()), func(b *testing.B) {
				b.SetBytes(int64(len(s)))
				for i := 0; i < b.N; i++ {
					f.String(s)
				}
			})
		}
	}
}
