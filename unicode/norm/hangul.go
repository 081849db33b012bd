// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

// Hangul syllable parameters from chapter 3.12 of the Unicode Standard.
const (
	hangulBase = 0xAC00
	hangulEnd  = hangulBase + jamoLVTCount

	jamoLBase = 0x1100
	jamoVBase = 0x1161
	jamoTBase = 0x11A7

	jamoLCount   = 19
	jamoVCount   = 21
	jamoTCount   = 28
	jamoNCount   = jamoVCount * jamoTCount // 588
	jamoLVTCount = jamoLCount * jamoNCount // 11172
)

func isHangul(r rune) bool {
	return hangulBase <= r && r < hangulEnd
}

// isJamoVT reports whether r is a medial vowel or trailing consonant jamo,
// which combine with a preceding L or LV.
func isJamoVT(r rune) bool {
	return jamoVBase <= r && r < jamoVBase+jamoVCount ||
		jamoTBase < r && r < jamoTBase+jamoTCount
}

// decomposeHangul writes the jamo of the syllable s to buf and returns their
// number. A value that is not a precomposed syllable is written as is. buf
// may be nil, in which case only the count is returned.
func decomposeHangul(s rune, buf []rune) int {
	if !isHangul(s) {
		if buf != nil {
			buf[0] = s
		}
		return 1
	}
	s -= hangulBase
	x := s % jamoTCount
	if buf != nil {
		buf[0] = jamoLBase + s/jamoNCount
		buf[1] = jamoVBase + (s%jamoNCount)/jamoTCount
	}
	if x == 0 {
		return 2
	}
	if buf != nil {
		buf[2] = jamoTBase + x
	}
	return 3
}

// composeHangul composes L+V into an LV syllable or LV+T into an LVT syllable.
func composeHangul(a, b rune) (rune, bool) {
	if l, v := a-jamoLBase, b-jamoVBase; 0 <= l && l < jamoLCount && 0 <= v && v < jamoVCount {
		return hangulBase + (l*jamoVCount+v)*jamoTCount, true
	}
	if s, t := a-hangulBase, b-jamoTBase; 0 <= s && s < jamoLVTCount && s%jamoTCount == 0 && 0 < t && t < jamoTCount {
		return a + t, true
	}
	return 0, false
}
