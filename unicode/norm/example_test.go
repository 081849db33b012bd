// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm_test

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/utf8kit/text/unicode/norm"
)

func ExampleForm_String() {
	fmt.Printf("%+q\n", norm.NFC.String("e\u0301"))
	fmt.Printf("%+q\n", norm.NFD.String("\u00e9"))
	fmt.Printf("%+q\n", norm.NFKC.String("\ufb01"))
	fmt.Printf("%+q\n", norm.NFKD.String("\u1e9b\u0323"))
	fmt.Printf("%+q\n", norm.NFC.String("\u1100\u1161\u11a8"))
	// Output:
	// "\u00e9"
	// "e\u0301"
	// "fi"
	// "s\u0323\u0307"
	// "\uac01"
}

func ExampleForm_Runes() {
	fmt.Printf("%U\n", norm.NFD.Runes([]rune{0x1E0B, 0x0323}))
	// Output: [U+0064 U+0323 U+0307]
}

func ExampleForm_BytesLimit() {
	// The combining acute starts before byte 2 and is kept whole.
	fmt.Printf("%+q\n", norm.NFC.BytesLimit([]byte("a\u0301bc"), 2))
	// Output: "\u00e1"
}

func ExampleCombiningClass() {
	fmt.Println(norm.CombiningClass('a'))
	fmt.Println(norm.CombiningClass('\u0301'))
	fmt.Println(norm.CombiningClass('\u0323'))
	// Output:
	// 0
	// 230
	// 220
}

func ExampleForm_Reader() {
	r := norm.NFKC.Reader(strings.NewReader("\ufb01ne \u2460\n"))
	io.Copy(os.Stdout, r)
	// Output: fine 1
}

func ExampleParseForm() {
	f, err := norm.ParseForm("nfkd")
	fmt.Println(f.Name(), err)
	_, err = norm.ParseForm("NFX")
	fmt.Println(err)
	// Output:
	// NFKD <nil>
	// norm: unknown normalization form: "NFX"
}
