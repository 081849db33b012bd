// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate go tool stringer -type=Class
//go:generate go run gen.go -out tables.go

// Package linebreak provides the Line_Break property of runes.
//
// The property drives the line breaking algorithm; this package only reports
// it. For more information, see https://unicode.org/reports/tr44/ and
// https://unicode.org/reports/tr14/.
package linebreak

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/utf8kit/text/internal/pagetab"
)

// Class is a Line_Break property value as defined in Unicode TR #14.
type Class uint8

// The order of the constants is the one used by the tables.
const (
	XX Class = iota // Unknown

	// Mandatory breaks.
	BK // Mandatory Break
	CR // Carriage Return
	LF // Line Feed
	CM // Combining Mark
	NL // Next Line
	SG // Surrogate
	WJ // Word Joiner
	ZW // Zero Width Space
	GL // Non-breaking ("Glue")
	SP // Space
	ZWJ

	// Breaking opportunities.
	B2 // Break Opportunity Before and After
	BA // Break After
	BB // Break Before
	HY // Hyphen
	CB // Contingent Break Opportunity

	// Characters prohibiting certain breaks.
	CL // Close Punctuation
	CP // Close Parenthesis
	EX // Exclamation/Interrogation
	IN // Inseparable
	NS // Nonstarter
	OP // Open Punctuation
	QU // Quotation

	// Numeric context.
	IS // Infix Numeric Separator
	NU // Numeric
	PO // Postfix Numeric
	PR // Prefix Numeric
	SY // Symbols Allowing Break After

	// Other characters.
	AI // Ambiguous (Alphabetic or Ideographic)
	AL // Alphabetic
	CJ // Conditional Japanese Starter
	EB // Emoji Base
	EM // Emoji Modifier
	H2 // Hangul LV Syllable
	H3 // Hangul LVT Syllable
	HL // Hebrew Letter
	ID // Ideographic
	JL // Hangul L Jamo
	JV // Hangul V Jamo
	JT // Hangul T Jamo
	RI // Regional Indicator
	SA // Complex Context Dependent (South East Asian)

	numClasses = iota
)

// ErrUnknownClass is returned by ParseClass for unknown abbreviations.
var ErrUnknownClass = errors.New("linebreak: unknown class")

var table = pagetab.Table[Class]{Index: breakIndex[:], Blocks: breakBlocks[:]}

// Lookup returns the line break class of r. It returns XX for runes without
// an assigned class and for values that are not scalar values.
func Lookup(r rune) Class {
	return table.Lookup(r)
}

// LookupBytes reports the class of the first rune in b and the number of
// bytes of its UTF-8 encoding. Invalid UTF-8 is reported as XX of size 1.
func LookupBytes(b []byte) (c Class, size int) {
	r, sz := utf8.DecodeRune(b)
	if r == utf8.RuneError && sz <= 1 {
		return XX, sz
	}
	return Lookup(r), sz
}

// LookupString reports the class of the first rune in s and the number of
// bytes of its UTF-8 encoding.
func LookupString(s string) (c Class, size int) {
	r, sz := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && sz <= 1 {
		return XX, sz
	}
	return Lookup(r), sz
}

// ParseClass returns the Class with the given abbreviation, such as "AL".
func ParseClass(s string) (Class, error) {
	for c := Class(0); c < numClasses; c++ {
		if c.String() == s {
			return c, nil
		}
	}
	return XX, fmt.Errorf("%w: %q", ErrUnknownClass, s)
}
