// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

// This program generates the page tables for the Line_Break property.
package main

import (
	"log"

	"github.com/utf8kit/text/internal/gen"
	"github.com/utf8kit/text/internal/pagetab"
	"github.com/utf8kit/text/internal/ucd"
)

// Class mirrors linebreak.Class.
type Class uint8

// classNames lists the property values in the order of the Class constants.
var classNames = []string{
	"XX", "BK", "CR", "LF", "CM", "NL", "SG", "WJ", "ZW", "GL", "SP", "ZWJ",
	"B2", "BA", "BB", "HY", "CB",
	"CL", "CP", "EX", "IN", "NS", "OP", "QU",
	"IS", "NU", "PO", "PR", "SY",
	"AI", "AL", "CJ", "EB", "EM", "H2", "H3", "HL", "ID", "JL", "JV", "JT", "RI", "SA",
}

func main() {
	gen.Init()

	class := map[string]Class{}
	for i, s := range classNames {
		class[s] = Class(i)
	}
	// Only explicit entries are recorded; @missing defaults resolve to XX.
	values := map[rune]Class{}
	err := ucd.Parse(gen.OpenUCDFile("LineBreak.txt"), func(p *ucd.Parser) {
		c, ok := class[p.String(1)]
		if !ok {
			log.Fatalf("%U: unknown line break class %q", p.Rune(0), p.String(1))
		}
		values[p.Rune(0)] = c
	})
	if err != nil {
		log.Fatal(err)
	}

	t, err := pagetab.Compact(func(r rune) Class { return values[r] })
	if err != nil {
		log.Fatal(err)
	}
	w := gen.NewCodeWriter()
	w.WriteComment("Version is the Unicode edition from which the tables are derived.")
	w.WriteConst("Version", gen.UnicodeVersion())
	w.WriteArray("breakIndex", t.Index)
	w.WriteArray("breakBlocks", t.Blocks)
	if err := w.WriteGoFile(gen.OutFile(), "linebreak"); err != nil {
		log.Fatal(err)
	}
}
