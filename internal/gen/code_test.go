// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"reflect"
	"strings"
	"testing"
)

type entry struct {
	r rune
	v uint16
}

func TestCodeWriter(t *testing.T) {
	w := NewCodeWriter()
	w.WriteComment("Version is the Unicode version.")
	w.WriteConst("Version", "14.0.0")
	w.WriteConstBlock([]string{"aa", "bb"}, []int{1, 2})
	small := make([]uint8, 18)
	for i := range small {
		small[i] = uint8(i + 1)
	}
	w.WriteArray("small", small)
	w.WriteArray("wide", []uint16{1, 0xABCD})
	w.WriteArray("pairs", [][2]rune{{1, 2}})
	w.WriteArray("nested", [][5]uint8{{1, 2, 3, 4, 5}})
	w.WriteArray("entries", []entry{{'A', 2}})

	b, err := w.Bytes("p")
	if err != nil {
		t.Fatal(err)
	}
	got := string(b)
	for _, want := range []string{
		Header + "\n\npackage p\n",
		"// Version is the Unicode version.\nconst Version = \"14.0.0\"\n",
		"const (\n\taa = 1\n\tbb = 2\n)\n",
		"// small: 18 entries, 18 bytes\nvar small = [18]uint8{\n" +
			"\t1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,\n" +
			"\t17, 18,\n}\n",
		"// wide: 2 entries, 4 bytes\nvar wide = [2]uint16{\n\t0x0001, 0xABCD,\n}\n",
		"// pairs: 1 entries, 8 bytes\nvar pairs = [1][2]rune{\n\t{0x0001, 0x0002},\n}\n",
		"var nested = [1][5]uint8{\n\t{\n\t\t1, 2, 3, 4, 5,\n\t},\n}\n",
		"// entries: 1 entries, 8 bytes\n",
		"\t{0x0041, 0x0002},\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q:\n%s", want, got)
		}
	}
	if want := 18 + 4 + 8 + 5 + 8; w.Size != want {
		t.Errorf("Size: got %d; want %d", w.Size, want)
	}
}

func TestWriteArrayPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WriteArray of a map did not panic")
		}
	}()
	NewCodeWriter().WriteArray("m", map[int]int{})
}

func TestTypeName(t *testing.T) {
	if got := typeName(reflect.TypeOf([2]int32{})); got != "[2]rune" {
		t.Errorf("typeName: got %q; want %q", got, "[2]rune")
	}
}
