// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"strings"
	"testing"

	"golang.org/x/text/transform"
)

func TestTransform(t *testing.T) {
	tests := []struct {
		f       Form
		in, out string
		eof     bool
		dstSize int
		err     error
	}{
		{NFC, "ab", "ab", true, 2, nil},
		{NFC, "qx", "qx", true, 2, nil},
		{NFD, "qx", "qx", true, 2, nil},
		{NFC, "", "", true, 1, nil},
		{NFD, "", "", true, 1, nil},
		{NFC, "", "", false, 1, nil},
		{NFD, "", "", false, 1, nil},

		// Normalized segment does not fit in destination.
		{NFD, "\u00f6", "", true, 1, transform.ErrShortDst},
		{NFD, "\u00f6", "", true, 2, transform.ErrShortDst},

		// Inert text is copied up to the space available.
		{NFC, "ab", "a", true, 1, transform.ErrShortDst},
		{NFC, "a\u0300abc", "\u00e0ab", true, 4, transform.ErrShortDst},
		{NFC, "e\u0301e\u0301", "\u00e9", true, 3, transform.ErrShortDst},

		// We cannot write a segment if successive runes could still change the result.
		{NFD, "\u00f6", "", false, 3, transform.ErrShortSrc},
		{NFC, "a\u0300", "", false, 4, transform.ErrShortSrc},
		{NFD, "a\u0300", "", false, 4, transform.ErrShortSrc},
		{NFC, "\u00f6", "", false, 3, transform.ErrShortSrc},
		{NFC, "ab", "a", false, 4, transform.ErrShortSrc},
		{NFC, "a\xcc", "", false, 4, transform.ErrShortSrc},

		{NFC, "a\u0300", "", true, 1, transform.ErrShortDst},
		{NFC, "a\u0300", "\u00e0", true, 2, nil},
		{NFC, "a\u0300", "\u00e0", true, 4, nil},

		{NFD, "\u00f6a\u0300", "o\u0308", false, 8, transform.ErrShortSrc},
		{NFD, "\u00f6a\u0300\u00f6", "o\u0308a\u0300", true, 8, transform.ErrShortDst},
		{NFD, "\u00f6a\u0300\u00f6", "o\u0308a\u0300", false, 12, transform.ErrShortSrc},

		// Illegal input is copied verbatim.
		{NFD, "\xbd\xb2=\xbc ", "\xbd\xb2=\xbc ", true, 8, nil},
	}
	b := make([]byte, 100)
	for i, tt := range tests {
		nDst, _, err := tt.f.Transform(b[:tt.dstSize], []byte(tt.in), tt.eof)
		out := string(b[:nDst])
		if out != tt.out || err != tt.err {
			t.Errorf("%d: was %+q (%v); want %+q (%v)", i, out, err, tt.out, tt.err)
		}
		if want := tt.f.String(tt.in)[:nDst]; want != out {
			t.Errorf("%d: incorrect normalization: was %+q; want %+q", i, out, want)
		}
	}
}

func TestTransformLongSegment(t *testing.T) {
	// A source without boundaries is processed whole once it reaches
	// MaxTransformChunkSize.
	src := []byte("a" + strings.Repeat("\u0301", MaxTransformChunkSize))
	dst := make([]byte, 4*len(src))
	nDst, nSrc, err := NFD.Transform(dst, src, false)
	if err != nil || nSrc != len(src) {
		t.Fatalf("was %d, %v; want %d, nil", nSrc, err, len(src))
	}
	if got := string(dst[:nDst]); got != string(src) {
		t.Errorf("was %+q; want %+q", got, src)
	}

	short := src[:MaxTransformChunkSize/2]
	if _, nSrc, err = NFD.Transform(dst, short, false); err != transform.ErrShortSrc || nSrc != 0 {
		t.Errorf("short source: was %d, %v; want 0, %v", nSrc, err, transform.ErrShortSrc)
	}
}

var transBufSizes = []int{
	MaxTransformChunkSize,
	3 * MaxTransformChunkSize / 2,
	2 * MaxTransformChunkSize,
	3 * MaxTransformChunkSize,
	100 * MaxTransformChunkSize,
}

func doTransNorm(f Form, buf []byte, s string) []byte {
	acc := []byte{}
	b := []byte(s)
	for p := 0; p < len(b); {
		nd, ns, _ := f.Transform(buf[:], b[p:], true)
		p += ns
		acc = append(acc, buf[:nd]...)
	}
	return acc
}

var transformTests = []string{
	"",
	"abc",
	"a\u0300\u0316bc",
	"\u1100\u1161\u11a8\uac00",
	"\u00e9\u00e0\u00fc" + strings.Repeat("a\u0308", 200),
	strings.Repeat("\ufdfa", 100),
	strings.Repeat("x\u0301\u0301\u0301", 300),
	strings.Repeat("\u3300\u320e\ufb01", 100),
	"a\xffb\u0301\xc3",
}

func TestTransformBufferSizes(t *testing.T) {
	for _, f := range forms {
		for i, in := range transformTests {
			gold := f.String(in)
			for _, sz := range transBufSizes {
				buf := make([]byte, sz)
				out := string(doTransNorm(f, buf, in))
				if len(out) != len(gold) {
					const msg = "%s:%d:%d: length is %d; want %d"
					t.Errorf(msg, f.Name(), i, sz, len(out), len(gold))
				}
				if out != gold {
					t.Errorf("%s:%d:%d: \nwas  %+q; \nwant %+q", f.Name(), i, sz, out, gold)
				}
			}
		}
	}
}

func TestTransformString(t *testing.T) {
	for _, f := range forms {
		for i, in := range transformTests {
			out, n, err := transform.String(f, in)
			if err != nil || n != len(in) {
				t.Errorf("%s:%d: was %d, %v; want %d, nil", f.Name(), i, n, err, len(in))
			}
			if want := f.String(in); out != want {
				t.Errorf("%s:%d: was %+q; want %+q", f.Name(), i, out, want)
			}
		}
	}
}
