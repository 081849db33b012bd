// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

// Normalization table generator.
// Data read from the web.

package main

import (
	"log"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/utf8kit/text/internal/gen"
	"github.com/utf8kit/text/internal/pagetab"
	"github.com/utf8kit/text/internal/ucd"
)

func main() {
	gen.Init()
	loadUnicodeData()
	loadCompositionExclusions()
	completeCharFields()
	w := gen.NewCodeWriter()
	w.WriteComment("Version is the Unicode edition from which the tables are derived.")
	w.WriteConst("Version", gen.UnicodeVersion())
	makeCCCTable(w)
	makeDecompTables(w)
	makeComposeTables(w)
	if err := w.WriteGoFile(gen.OutFile(), "norm"); err != nil {
		log.Fatal(err)
	}
}

const (
	notPresent = 0xFFFF

	hangulBase   = 0xAC00
	jamoLBase    = 0x1100
	jamoVBase    = 0x1161
	jamoTBase    = 0x11A7
	jamoTCount   = 28
	jamoNCount   = 21 * jamoTCount
	jamoLVTCount = 19 * jamoNCount
)

// decompEntry must match the type of the same name in package norm.
type decompEntry struct {
	r      rune
	canon  uint16
	compat uint16
}

type char struct {
	ccc        uint8
	decomp     []rune // raw mapping from UnicodeData.txt
	compat     bool   // mapping has a formatting tag
	excluded   bool   // listed in CompositionExclusions.txt
	nfd, nfkd  []rune // full decompositions, nil if r maps to itself
	combinesTo []pair // primary composites with r as first element
}

// A pair holds the other element of a composition and its result.
type pair struct {
	other, result rune
}

var chars = make([]char, utf8.MaxRune+1)

func loadUnicodeData() {
	err := ucd.Parse(gen.OpenUCDFile("UnicodeData.txt"), func(p *ucd.Parser) {
		r := p.Rune(ucd.CodePoint)
		c := &chars[r]
		c.ccc = uint8(p.Uint(ucd.CanonicalCombiningClass))
		d := p.String(ucd.DecompMapping)
		if d == "" {
			return
		}
		if d[0] == '<' {
			c.compat = true
			for i := 0; i < len(d); i++ {
				if d[i] == '>' {
					d = d[i+1:]
					break
				}
			}
		}
		for _, f := range strings.Fields(d) {
			x, err := strconv.ParseUint(f, 16, 32)
			if err != nil {
				log.Fatalf("%U: bad decomposition %q: %v", r, d, err)
			}
			c.decomp = append(c.decomp, rune(x))
		}
	})
	if err != nil {
		log.Fatal(err)
	}
}

func loadCompositionExclusions() {
	err := ucd.Parse(gen.OpenUCDFile("CompositionExclusions.txt"), func(p *ucd.Parser) {
		chars[p.Rune(0)].excluded = true
	})
	if err != nil {
		log.Fatal(err)
	}
}

// appendDecomposed appends the full decomposition of r to buf.
func appendDecomposed(buf []rune, r rune, compat bool) []rune {
	if s := r - hangulBase; 0 <= s && s < jamoLVTCount {
		buf = append(buf, jamoLBase+s/jamoNCount, jamoVBase+(s%jamoNCount)/jamoTCount)
		if t := s % jamoTCount; t != 0 {
			buf = append(buf, jamoTBase+t)
		}
		return buf
	}
	c := &chars[r]
	if c.decomp == nil || c.compat && !compat {
		return append(buf, r)
	}
	for _, x := range c.decomp {
		buf = appendDecomposed(buf, x, compat)
	}
	return buf
}

// canonicalOrder stably sorts each run of non-starters by combining class.
func canonicalOrder(rs []rune) {
	for i := 0; i < len(rs); {
		if chars[rs[i]].ccc == 0 {
			i++
			continue
		}
		j := i
		for j < len(rs) && chars[rs[j]].ccc != 0 {
			j++
		}
		run := rs[i:j]
		sort.SliceStable(run, func(a, b int) bool {
			return chars[run[a]].ccc < chars[run[b]].ccc
		})
		i = j
	}
}

func equal(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func completeCharFields() {
	for r := range chars {
		c := &chars[r]
		if c.decomp == nil {
			continue
		}
		if !c.compat {
			c.nfd = appendDecomposed(nil, rune(r), false)
			canonicalOrder(c.nfd)
		}
		c.nfkd = appendDecomposed(nil, rune(r), true)
		canonicalOrder(c.nfkd)
	}
	for r := range chars {
		c := &chars[r]
		if c.compat || len(c.decomp) != 2 || c.excluded {
			continue
		}
		first := c.decomp[0]
		if c.ccc != 0 || chars[first].ccc != 0 {
			continue
		}
		chars[first].combinesTo = append(chars[first].combinesTo, pair{c.decomp[1], rune(r)})
	}
}

func makeCCCTable(w *gen.CodeWriter) {
	t, err := pagetab.Compact(func(r rune) uint8 { return chars[r].ccc })
	if err != nil {
		log.Fatalf("ccc table: %v", err)
	}
	w.WriteArray("cccIndex", t.Index)
	w.WriteArray("cccBlocks", t.Blocks)
}

func makeDecompTables(w *gen.CodeWriter) {
	var pool []rune
	offset := map[string]uint16{}
	intern := func(rs []rune) uint16 {
		key := string(rs)
		if off, ok := offset[key]; ok {
			return off
		}
		off := len(pool)
		if off >= notPresent {
			log.Fatalf("decomposition pool exceeds %d entries", notPresent)
		}
		pool = append(pool, rune(len(rs)))
		pool = append(pool, rs...)
		offset[key] = uint16(off)
		return uint16(off)
	}
	var entries []decompEntry
	for r, c := range chars {
		if c.decomp == nil {
			continue
		}
		e := decompEntry{r: rune(r), canon: notPresent, compat: notPresent}
		if c.compat {
			e.compat = intern(c.nfkd)
		} else {
			e.canon = intern(c.nfd)
			if !equal(c.nfd, c.nfkd) {
				e.compat = intern(c.nfkd)
			}
		}
		entries = append(entries, e)
	}
	w.WriteArray("decompTable", entries)
	w.WriteArray("decompPool", pool)
}

func makeComposeTables(w *gen.CodeWriter) {
	// Collect all seconds and split first elements by whether they combine
	// with exactly one second.
	var rows, firstSingles []rune
	seconds := map[rune][]pair{} // excludes first singletons
	isSecond := map[rune]bool{}
	for r, c := range chars {
		switch n := len(c.combinesTo); {
		case n == 1:
			firstSingles = append(firstSingles, rune(r))
		case n > 1:
			for _, p := range c.combinesTo {
				seconds[p.other] = append(seconds[p.other], pair{rune(r), p.result})
			}
		}
		for _, p := range c.combinesTo {
			isSecond[p.other] = true
		}
	}
	var secondSingles, cols []rune
	for r := range isSecond {
		if chars[r].combinesTo != nil {
			log.Fatalf("%U is both a first and a second element", r)
		}
		if len(seconds[r]) == 1 {
			secondSingles = append(secondSingles, r)
		} else {
			cols = append(cols, r)
		}
	}
	single := map[rune]bool{}
	for _, r := range secondSingles {
		single[r] = true
	}
	for r, c := range chars {
		if len(c.combinesTo) < 2 {
			continue
		}
		for _, p := range c.combinesTo {
			if !single[p.other] {
				rows = append(rows, rune(r))
				break
			}
		}
	}
	sortRunes(secondSingles)
	sortRunes(cols)

	firstStart := 1
	firstSingleStart := firstStart + len(rows)
	secondStart := firstSingleStart + len(firstSingles)
	secondSingleStart := secondStart + len(cols)
	if secondSingleStart+len(secondSingles) >= pagetab.Uniform {
		log.Fatalf("too many composition entries")
	}
	index := map[rune]uint16{}
	for i, r := range rows {
		index[r] = uint16(firstStart + i)
	}
	for i, r := range firstSingles {
		index[r] = uint16(firstSingleStart + i)
	}
	col := map[rune]int{}
	for i, r := range cols {
		index[r] = uint16(secondStart + i)
		col[r] = i
	}
	for i, r := range secondSingles {
		index[r] = uint16(secondSingleStart + i)
	}
	w.WriteConstBlock(
		[]string{"composeFirstStart", "composeFirstSingleStart", "composeSecondStart", "composeSecondSingleStart"},
		[]int{firstStart, firstSingleStart, secondStart, secondSingleStart})

	t, err := pagetab.Compact(func(r rune) uint16 { return index[r] })
	if err != nil {
		log.Fatalf("compose table: %v", err)
	}
	w.WriteArray("composeIndex", t.Index)
	w.WriteArray("composeBlocks", t.Blocks)

	fs := make([][2]rune, len(firstSingles))
	for i, r := range firstSingles {
		p := chars[r].combinesTo[0]
		fs[i] = [2]rune{p.other, p.result}
	}
	w.WriteArray("composeFirstSingle", fs)

	ss := make([][2]rune, len(secondSingles))
	for i, r := range secondSingles {
		p := seconds[r][0]
		ss[i] = [2]rune{p.other, p.result}
	}
	w.WriteArray("composeSecondSingle", ss)

	// composeArray rows are fixed-size arrays of len(cols) runes.
	matrix := make([][]rune, len(rows))
	for i, r := range rows {
		matrix[i] = make([]rune, len(cols))
		for _, p := range chars[r].combinesTo {
			if j, ok := col[p.other]; ok {
				matrix[i][j] = p.result
			}
		}
	}
	w.WriteArray("composeArray", toArrays(matrix, len(cols)))
}

func toArrays(rows [][]rune, n int) interface{} {
	t := reflect.ArrayOf(n, reflect.TypeOf(rune(0)))
	v := reflect.MakeSlice(reflect.SliceOf(t), len(rows), len(rows))
	for i, row := range rows {
		reflect.Copy(v.Index(i), reflect.ValueOf(row))
	}
	return v.Interface()
}

func sortRunes(rs []rune) {
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
}
