// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pagetab

import (
	"errors"
	"fmt"
)

// ErrOverflow is returned by Compact if a table cannot be encoded.
var ErrOverflow = errors.New("pagetab: value or block count exceeds index range")

// Compact builds a Table holding f(r) for all runes in the first MaxPages
// pages. Pages for which f returns a single value are encoded in the index,
// identical blocks are stored once, and the index is truncated after the last
// page that is not uniformly zero.
//
// Compact is intended for table generators and is not optimized.
func Compact[V Value](f func(r rune) V) (*Table[V], error) {
	t := &Table[V]{}
	seen := map[[256]V]uint16{}
	for p := 0; p < MaxPages; p++ {
		var b [256]V
		uniform := true
		for i := range b {
			b[i] = f(rune(p<<8 | i))
			uniform = uniform && b[i] == b[0]
		}
		if uniform {
			if uint32(b[0]) >= Uniform {
				return nil, fmt.Errorf("page %#x: value %d: %w", p, b[0], ErrOverflow)
			}
			t.Index = append(t.Index, Uniform+uint16(b[0]))
			continue
		}
		x, ok := seen[b]
		if !ok {
			if len(t.Blocks) >= Uniform {
				return nil, fmt.Errorf("page %#x: %w", p, ErrOverflow)
			}
			x = uint16(len(t.Blocks))
			seen[b] = x
			t.Blocks = append(t.Blocks, b)
		}
		t.Index = append(t.Index, x)
	}
	n := len(t.Index)
	for n > 0 && t.Index[n-1] == Uniform {
		n--
	}
	t.Index = t.Index[:n]
	return t, nil
}

// Size reports the number of bytes occupied by the index and blocks of t.
func (t *Table[V]) Size() int {
	return 2*len(t.Index) + 256*len(t.Blocks)*sizeOf[V]()
}

func sizeOf[V Value]() int {
	if uint64(^V(0)) > 0xff {
		return 2
	}
	return 1
}
