// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalar converts between UTF-8 text and sequences of Unicode scalar
// values.
package scalar

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidUTF8 is wrapped by every decoding error.
var ErrInvalidUTF8 = errors.New("scalar: invalid UTF-8")

// An InvalidError reports the position of the first malformed byte.
type InvalidError struct {
	Offset int
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("scalar: invalid UTF-8 at byte offset %d", e.Offset)
}

func (e *InvalidError) Unwrap() error { return ErrInvalidUTF8 }

// Text is the set of types holding UTF-8 encoded text.
type Text interface {
	~string | ~[]byte
}

// Valid reports whether r is a Unicode scalar value.
func Valid(r rune) bool {
	return utf8.ValidRune(r)
}

// DecodeRune decodes the first UTF-8 sequence in s. It returns
// (utf8.RuneError, 1) for a malformed byte and (utf8.RuneError, 0) if s is
// empty.
func DecodeRune[T Text](s T) (rune, int) {
	if len(s) > 0 && s[0] < utf8.RuneSelf {
		return rune(s[0]), 1
	}
	switch v := any(s).(type) {
	case string:
		return utf8.DecodeRuneInString(v)
	case []byte:
		return utf8.DecodeRune(v)
	}
	return utf8.DecodeRuneInString(string(s))
}

// AppendValid decodes the longest well-formed prefix of s, appends its
// scalars to dst and returns the extended slice and the prefix length.
func AppendValid[T Text](dst []rune, s T) ([]rune, int) {
	i := 0
	for i < len(s) {
		if c := s[i]; c < utf8.RuneSelf {
			dst = append(dst, rune(c))
			i++
			continue
		}
		r, size := DecodeRune(s[i:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		dst = append(dst, r)
		i += size
	}
	return dst, i
}

// InvalidLen returns the number of leading bytes of s that are not part of a
// well-formed UTF-8 sequence.
func InvalidLen[T Text](s T) int {
	i := 0
	for i < len(s) {
		if r, size := DecodeRune(s[i:]); r != utf8.RuneError || size != 1 {
			break
		}
		i++
	}
	return i
}

// Decode returns the scalars encoded in b. It returns an *InvalidError if b
// is not well-formed UTF-8.
func Decode(b []byte) ([]rune, error) {
	return decode(b)
}

// DecodeString is like Decode but for strings.
func DecodeString(s string) ([]rune, error) {
	return decode(s)
}

func decode[T Text](s T) ([]rune, error) {
	rs, n := AppendValid(make([]rune, 0, len(s)), s)
	if n < len(s) {
		return nil, &InvalidError{Offset: n}
	}
	return rs, nil
}

// Limit returns the length of the prefix of s made up of all encoded
// scalars that start before byte n. A scalar straddling n is included
// whole. Malformed bytes count as one-byte units. If n is negative or
// beyond the end of s, Limit returns len(s).
func Limit[T Text](s T, n int) int {
	if n < 0 || n >= len(s) {
		return len(s)
	}
	i := 0
	for i < n {
		_, size := DecodeRune(s[i:])
		i += size
	}
	return i
}

// EncodedLen returns the number of bytes needed to encode rs. Values that
// are not scalar values count as U+FFFD.
func EncodedLen(rs []rune) int {
	n := 0
	for _, r := range rs {
		if l := utf8.RuneLen(r); l > 0 {
			n += l
		} else {
			n += 3
		}
	}
	return n
}

// Append appends the UTF-8 encoding of rs to dst.
func Append(dst []byte, rs []rune) []byte {
	for _, r := range rs {
		dst = utf8.AppendRune(dst, r)
	}
	return dst
}

// Encode returns the UTF-8 encoding of rs.
func Encode(rs []rune) []byte {
	return Append(make([]byte, 0, EncodedLen(rs)), rs)
}
