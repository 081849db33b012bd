// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	rs, err := Decode([]byte("a\u00e9\u20ac\U0001F600"))
	require.NoError(t, err)
	assert.Equal(t, []rune{'a', 0xE9, 0x20AC, 0x1F600}, rs)

	rs, err = DecodeString("")
	require.NoError(t, err)
	assert.Empty(t, rs)
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		in     string
		offset int
	}{
		{"ab\xffc", 2},
		{"\xed\xa0\x80", 0}, // surrogate
		{"abc\xe2\x82", 3},  // truncated
		{"\xc0\xaf", 0},     // overlong
	}
	for _, tt := range tests {
		_, err := DecodeString(tt.in)
		require.Error(t, err, "%+q", tt.in)
		assert.True(t, errors.Is(err, ErrInvalidUTF8), "%+q", tt.in)

		var ie *InvalidError
		require.True(t, errors.As(err, &ie), "%+q", tt.in)
		assert.Equal(t, tt.offset, ie.Offset, "%+q", tt.in)
	}
}

func TestDecodeRune(t *testing.T) {
	r, size := DecodeRune("\u00e9x")
	assert.Equal(t, rune(0xE9), r)
	assert.Equal(t, 2, size)

	r, size = DecodeRune([]byte("\xff"))
	assert.Equal(t, utf8.RuneError, r)
	assert.Equal(t, 1, size)

	r, size = DecodeRune("")
	assert.Equal(t, utf8.RuneError, r)
	assert.Equal(t, 0, size)
}

func TestAppendValid(t *testing.T) {
	rs, n := AppendValid([]rune{'x'}, "ab\xffc")
	assert.Equal(t, []rune{'x', 'a', 'b'}, rs)
	assert.Equal(t, 2, n)

	assert.Equal(t, 2, InvalidLen("\xff\xfec"))
	assert.Equal(t, 2, InvalidLen([]byte("\xe2\x82")))
	assert.Equal(t, 0, InvalidLen("abc"))
}

func TestLimit(t *testing.T) {
	const s = "a\u00e9b" // 'a' [0], U+00E9 [1, 3), 'b' [3]
	tests := []struct {
		n, want int
	}{
		{-1, 4},
		{0, 0},
		{1, 1},
		{2, 3},
		{3, 3},
		{4, 4},
		{10, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Limit(s, tt.n), "Limit(%+q, %d)", s, tt.n)
		assert.Equal(t, tt.want, Limit([]byte(s), tt.n), "Limit(%+q, %d)", s, tt.n)
	}
	assert.Equal(t, 1, Limit("\xff\xffa", 1))
}

func TestEncode(t *testing.T) {
	rs := []rune{'a', 0xE9, 0x20AC, 0x1F600, -1, 0xD800}
	assert.Equal(t, 16, EncodedLen(rs))
	assert.Equal(t, "a\u00e9\u20ac\U0001F600\ufffd\ufffd", string(Encode(rs)))
	assert.Equal(t, "xyz", string(Append([]byte("x"), []rune("yz"))))
	assert.True(t, Valid('a'))
	assert.False(t, Valid(0xDFFF))
	assert.False(t, Valid(utf8.MaxRune+1))
}
