// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCanonicalOrder(t *testing.T) {
	tests := []struct {
		in, want []rune
	}{
		{[]rune{}, []rune{}},
		{[]rune{'a'}, []rune{'a'}},
		{[]rune{'a', 0x301, 0x316}, []rune{'a', 0x316, 0x301}},
		{[]rune{'a', 0x301, 0x300}, []rune{'a', 0x301, 0x300}}, // equal classes keep their order
		{[]rune{0x345, 0x315, 0x301, 0x334}, []rune{0x334, 0x301, 0x315, 0x345}},
		{[]rune{'a', 0x301, 'b', 0x316}, []rune{'a', 0x301, 'b', 0x316}},
		{[]rune{0x301, 'b', 0x316, 0x5B0}, []rune{0x301, 'b', 0x5B0, 0x316}},
		{[]rune{'a', 0x301, 0x316, 'b', 0x301, 0x316}, []rune{'a', 0x316, 0x301, 'b', 0x316, 0x301}},
		{[]rune{0x3099, 0x93C, 0x334}, []rune{0x334, 0x93C, 0x3099}},
	}
	for _, tt := range tests {
		got := append([]rune{}, tt.in...)
		canonicalOrder(got)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%X: mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

// TestCanonicalOrderStable compares against a stable sort of each run of
// non-starters.
func TestCanonicalOrderStable(t *testing.T) {
	var marks []rune
	for r := rune(0); r < 0x2000 && len(marks) < 64; r++ {
		if CombiningClass(r) != 0 {
			marks = append(marks, r)
		}
	}
	pool := append(marks, 'a', 'b', 0x1100)
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 5000; i++ {
		in := make([]rune, rnd.Intn(12))
		for j := range in {
			in[j] = pool[rnd.Intn(len(pool))]
		}
		got := append([]rune{}, in...)
		canonicalOrder(got)

		want := append([]rune{}, in...)
		for k := 0; k < len(want); {
			e := k
			for e < len(want) && CombiningClass(want[e]) != 0 {
				e++
			}
			run := want[k:e]
			sort.SliceStable(run, func(a, b int) bool {
				return CombiningClass(run[a]) < CombiningClass(run[b])
			})
			if e == k {
				e++
			}
			k = e
		}
		if !cmp.Equal(want, got) {
			t.Fatalf("%X: was %X; want %X", in, got, want)
		}
		again := append([]rune{}, got...)
		if canonicalOrder(again); !cmp.Equal(again, got) {
			t.Fatalf("%X: reordering is not a fixpoint", got)
		}
	}
}
