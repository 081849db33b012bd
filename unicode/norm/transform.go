// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// MaxTransformChunkSize is the size of a source buffer without a boundary
// at which Transform stops waiting for more input and normalizes the buffer
// as a whole.
const MaxTransformChunkSize = 256

// Reset implements the Reset method of the transform.Transformer interface.
// A Form keeps no state between calls.
func (Form) Reset() {}

// Transform implements the Transform method of the transform.Transformer
// interface. It writes complete segments only. Users should either catch
// ErrShortDst and allow dst to grow or have dst be large enough to hold the
// normalized form of a segment.
func (f Form) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	end := len(src)
	if !atEOF {
		end = trimIncomplete(src)
		// The last segment may still be extended by more input.
		if b := lastBoundary(f, src[:end]); b > 0 || len(src) < MaxTransformChunkSize {
			end = b
		}
	}
	for nSrc < end {
		// Copy runs of inert text directly.
		if n := quickSpan(f, src[nSrc:end]); n > 0 {
			if room := len(dst) - nDst; n > room {
				for n = room; n > 0 && !utf8.RuneStart(src[nSrc+n]); n-- {
				}
				if n == 0 {
					return nDst, nSrc, transform.ErrShortDst
				}
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+n])
			nSrc += n
			continue
		}
		next := nextBoundary(f, src[:end], nSrc)
		seg := appendText(f, nil, src[nSrc:next])
		if len(seg) > len(dst)-nDst {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], seg)
		nSrc = next
	}
	if nSrc < len(src) {
		return nDst, nSrc, transform.ErrShortSrc
	}
	return nDst, nSrc, nil
}

// trimIncomplete returns the length of b without a trailing UTF-8 sequence
// that more input could complete.
func trimIncomplete(b []byte) int {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if !utf8.FullRune(b[i:]) {
				return i
			}
			break
		}
	}
	return len(b)
}
