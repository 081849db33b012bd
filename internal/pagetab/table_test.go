// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pagetab

import (
	"errors"
	"testing"
	"unicode"
)

func sample(r rune) uint8 {
	switch {
	case 0x300 <= r && r < 0x370:
		return uint8(r&0x7) + 1
	case 0x1000 <= r && r < 0x1100:
		return 9
	case 0x20000 <= r && r < 0x20100:
		return uint8(r & 0x3)
	}
	return 0
}

func TestCompactLookup(t *testing.T) {
	tab, err := Compact(sample)
	if err != nil {
		t.Fatal(err)
	}
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if got, want := tab.Lookup(r), sample(r); got != want {
			t.Fatalf("%U: was %d; want %d", r, got, want)
		}
	}
	if n, want := len(tab.Index), 0x201; n != want {
		t.Errorf("index length was %#x; want %#x", n, want)
	}
	if n := len(tab.Blocks); n != 2 {
		t.Errorf("number of blocks was %d; want 2", n)
	}
	if !tab.IsUniform(0x1000) || tab.IsUniform(0x300) {
		t.Errorf("IsUniform: page classification is wrong")
	}
}

func TestSharedBlocks(t *testing.T) {
	tab, err := Compact(func(r rune) uint8 {
		if r < 0x800 {
			return uint8(r & 1)
		}
		return 0
	})
	if err != nil {
		t.Fatal(err)
	}
	if n := len(tab.Blocks); n != 1 {
		t.Fatalf("number of blocks was %d; want 1", n)
	}
	for p := 0; p < 8; p++ {
		if x := tab.Index[p]; x != 0 {
			t.Errorf("index[%d] was %#x; want 0", p, x)
		}
	}
}

func TestOutOfRange(t *testing.T) {
	tab, err := Compact(func(r rune) uint16 { return 7 })
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range []rune{-1, -0x10000, unicode.MaxRune + 1, 0x7fffffff} {
		if v := tab.Lookup(r); v != 0 {
			t.Errorf("%#x: was %d; want 0", r, v)
		}
	}
	if v := tab.Lookup(unicode.MaxRune); v != 7 {
		t.Errorf("%U: was %d; want 7", unicode.MaxRune, v)
	}
	var empty Table[uint8]
	if v := empty.Lookup('a'); v != 0 {
		t.Errorf("empty table: was %d; want 0", v)
	}
}

func TestOverflow(t *testing.T) {
	_, err := Compact(func(r rune) uint16 { return Uniform })
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("err was %v; want %v", err, ErrOverflow)
	}
}

func TestSize(t *testing.T) {
	tab := &Table[uint16]{Index: make([]uint16, 10), Blocks: make([][256]uint16, 2)}
	if got, want := tab.Size(), 20+1024; got != want {
		t.Errorf("uint16 table: was %d; want %d", got, want)
	}
	tab8 := &Table[uint8]{Index: make([]uint16, 10), Blocks: make([][256]uint8, 2)}
	if got, want := tab8.Size(), 20+512; got != want {
		t.Errorf("uint8 table: was %d; want %d", got, want)
	}
}
