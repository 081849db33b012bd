// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate go run maketables.go -out tables.go

// Package norm contains types and functions for normalizing Unicode strings.
package norm

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/utf8kit/text/internal/scalar"
)

// A Form denotes a canonical representation of Unicode code points.
// The Unicode-defined normalization and equivalence forms are:
//
//	NFC   Unicode Normalization Form C
//	NFD   Unicode Normalization Form D
//	NFKC  Unicode Normalization Form KC
//	NFKD  Unicode Normalization Form KD
//
// For a Form f, this documentation uses the notation f(x) to mean
// the bytes or string x converted to the given form.
// A position n in x is called a boundary if conversion to the form can
// proceed independently on both sides:
//
//	f(x) == append(f(x[0:n]), f(x[n:])...)
//
// References: https://unicode.org/reports/tr15/ and
// https://unicode.org/notes/tn5/.
type Form int

const (
	NFC Form = iota
	NFD
	NFKC
	NFKD
)

// ErrUnknownForm is returned by ParseForm for names that do not denote a Form.
var ErrUnknownForm = errors.New("norm: unknown normalization form")

var formNames = [...]string{"NFC", "NFD", "NFKC", "NFKD"}

// Name returns the name of f, such as "NFKC".
func (f Form) Name() string {
	if 0 <= f && int(f) < len(formNames) {
		return formNames[f]
	}
	return "Form(" + strconv.Itoa(int(f)) + ")"
}

// ParseForm returns the Form with the given name. The match is
// case-insensitive.
func ParseForm(name string) (Form, error) {
	for i, s := range formNames {
		if strings.EqualFold(s, name) {
			return Form(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownForm, name)
}

func (f Form) compat() bool {
	return f == NFKC || f == NFKD
}

func (f Form) composing() bool {
	return f == NFC || f == NFKC
}

// Runes returns f(rs) in a newly allocated slice. Values in rs that are not
// scalar values are passed through unchanged.
func (f Form) Runes(rs []rune) []rune {
	return f.RunesLimit(rs, -1)
}

// RunesLimit returns f(rs[:n]). If n is negative or larger than len(rs), all
// of rs is used.
func (f Form) RunesLimit(rs []rune, n int) []rune {
	if n >= 0 && n < len(rs) {
		rs = rs[:n]
	}
	compat := f.compat()
	size := 0
	for _, r := range rs {
		size += decomposedLen(r, compat)
	}
	return f.appendRunes(make([]rune, 0, size), rs)
}

// appendRunes appends f(rs) to buf.
func (f Form) appendRunes(buf, rs []rune) []rune {
	start := len(buf)
	compat := f.compat()
	seg := start
	for _, r := range rs {
		p := len(buf)
		buf = appendDecomposed(buf, r, compat)
		if CombiningClass(buf[p]) == 0 {
			canonicalOrder(buf[seg:p])
			seg = p
		}
	}
	canonicalOrder(buf[seg:])
	if f.composing() {
		buf = buf[:start+len(compose(buf[start:]))]
	}
	return buf
}

// inert reports whether r is in form f and cannot interact with any scalar
// around it.
func (f Form) inert(r rune) bool {
	if CombiningClass(r) != 0 || HasDecomposition(r, f.compat()) {
		return false
	}
	return !f.composing() || !combinesBackward(r)
}

// boundaryBefore reports whether normalization can always proceed
// independently on both sides of r.
func (f Form) boundaryBefore(r rune) bool {
	if CombiningClass(r) != 0 {
		return false
	}
	first := r
	if d := decompose(r, f.compat()); d != nil {
		first = d[0]
	}
	if CombiningClass(first) != 0 {
		return false
	}
	return !f.composing() || !combinesBackward(first)
}

// quickSpan returns the length of the longest prefix of s that is in form f
// and ends at a boundary.
func quickSpan[T scalar.Text](f Form, s T) int {
	last := 0
	for i := 0; i < len(s); {
		if c := s[i]; c < utf8.RuneSelf {
			last = i
			i++
			continue
		}
		r, size := scalar.DecodeRune(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		if !f.inert(r) {
			return last
		}
		last = i
		i += size
	}
	return len(s)
}

// lastBoundary returns the position of the last boundary in b that is
// followed by at least one scalar, or 0 if there is none.
func lastBoundary(f Form, b []byte) int {
	for i := len(b); i > 0; {
		r, size := utf8.DecodeLastRune(b[:i])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i -= size
		if f.boundaryBefore(r) {
			return i
		}
	}
	return 0
}

// nextBoundary returns the position of the first boundary in b after i.
// Malformed bytes form segments of their own.
func nextBoundary(f Form, b []byte, i int) int {
	r, size := utf8.DecodeRune(b[i:])
	if i += size; r == utf8.RuneError && size == 1 {
		return i
	}
	for i < len(b) {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 || f.boundaryBefore(r) {
			return i
		}
		i += size
	}
	return len(b)
}

// appendText appends f(src) to out. Malformed bytes are copied verbatim and
// delimit segments.
func appendText[T scalar.Text](f Form, out []byte, src T) []byte {
	var rs, buf []rune
	for len(src) > 0 {
		var n int
		rs, n = scalar.AppendValid(rs[:0], src)
		buf = f.appendRunes(buf[:0], rs)
		out = scalar.Append(out, buf)
		src = src[n:]

		n = scalar.InvalidLen(src)
		out = append(out, src[:n]...)
		src = src[n:]
	}
	return out
}

// Bytes returns f(b). May return b if f(b) = b.
func (f Form) Bytes(b []byte) []byte {
	n := quickSpan(f, b)
	if n == len(b) {
		return b
	}
	out := make([]byte, n, len(b))
	copy(out, b[:n])
	return appendText(f, out, b[n:])
}

// String returns f(s).
func (f Form) String(s string) string {
	n := quickSpan(f, s)
	if n == len(s) {
		return s
	}
	out := make([]byte, n, len(s))
	copy(out, s[:n])
	return string(appendText(f, out, s[n:]))
}

// BytesLimit returns f(b[:m]), where m is the end of the last scalar that
// starts before byte n. A negative n or one beyond the end of b selects
// all of b.
func (f Form) BytesLimit(b []byte, n int) []byte {
	return f.Bytes(b[:scalar.Limit(b, n)])
}

// NormalizeBytes returns f(b) as a new slice. Unlike Bytes, it fails on
// malformed UTF-8.
func (f Form) NormalizeBytes(b []byte) ([]byte, error) {
	rs, err := scalar.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("norm: %w", err)
	}
	return scalar.Encode(f.Runes(rs)), nil
}

// IsNormal returns true if b == f(b).
func (f Form) IsNormal(b []byte) bool {
	n := quickSpan(f, b)
	if n == len(b) {
		return true
	}
	return bytes.Equal(appendText(f, nil, b[n:]), b[n:])
}

// IsNormalString returns true if s == f(s).
func (f Form) IsNormalString(s string) bool {
	n := quickSpan(f, s)
	if n == len(s) {
		return true
	}
	return string(appendText(f, nil, s[n:])) == s[n:]
}

// Append returns f(append(out, b...)).
// The buffer out must be nil, empty, or equal to f(out).
func (f Form) Append(out []byte, src ...byte) []byte {
	return doAppend(f, out, src)
}

// AppendString returns f(append(out, []byte(s))).
// The buffer out must be nil, empty, or equal to f(out).
func (f Form) AppendString(out []byte, src string) []byte {
	return doAppend(f, out, src)
}

func doAppend[T scalar.Text](f Form, out []byte, src T) []byte {
	if len(src) == 0 {
		return out
	}
	if len(out) == 0 {
		n := quickSpan(f, src)
		out = append(out, src[:n]...)
		return appendText(f, out, src[n:])
	}
	// The tail of out may interact with src; renormalize it.
	k := lastBoundary(f, out)
	tail := make([]byte, 0, len(out)-k+len(src))
	tail = append(tail, out[k:]...)
	tail = append(tail, src...)
	return appendText(f, out[:k], tail)
}
