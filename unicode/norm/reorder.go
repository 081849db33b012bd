// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

// canonicalOrder sorts runs of non-starters in buf by combining class.
// Starters never move and marks of equal class keep their relative order.
func canonicalOrder(buf []rune) {
	for changed := true; changed; {
		changed = false
		for i := 0; i+1 < len(buf); i++ {
			cc := CombiningClass(buf[i+1])
			if cc == 0 || CombiningClass(buf[i]) <= cc {
				continue
			}
			// Shift the mark left past all marks of a greater class.
			r, j := buf[i+1], i+1
			for ; j > 0 && CombiningClass(buf[j-1]) > cc; j-- {
				buf[j] = buf[j-1]
			}
			buf[j] = r
			changed = true
		}
	}
}
