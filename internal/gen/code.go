// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

// This file contains utilities for generating code.

// CodeWriter is a utility for writing structured code. It computes the size
// of written tables. It ensures there are newlines between written code
// blocks.
type CodeWriter struct {
	buf  bytes.Buffer
	Size int
	// For comments we skip the usual one-line separator if they are followed by
	// a code block.
	skipSep bool
}

func (w *CodeWriter) Write(p []byte) (n int, err error) {
	return w.buf.Write(p)
}

// NewCodeWriter returns a new CodeWriter.
func NewCodeWriter() *CodeWriter {
	return &CodeWriter{}
}

// WriteGoFile appends the buffer with the total size of all created structures
// and writes it as a Go file to the given file with the given package name.
func (w *CodeWriter) WriteGoFile(filename, pkg string) error {
	sz := w.Size
	w.WriteComment("Total table size %d bytes (%dKiB)", sz, sz/1024)
	err := WriteGoFile(filename, pkg, w.buf.Bytes())
	w.buf.Reset()
	return err
}

// Bytes returns the formatted source of the buffer, prefixed with the
// generated-code header and a package clause.
func (w *CodeWriter) Bytes(pkg string) ([]byte, error) {
	return formatSource(pkg, w.buf.Bytes())
}

func (w *CodeWriter) printf(f string, x ...interface{}) {
	fmt.Fprintf(w, f, x...)
}

func (w *CodeWriter) insertSep() {
	if w.skipSep {
		w.skipSep = false
		return
	}
	// Use at least two newlines to ensure a blank space between the previous
	// block. WriteGoFile will remove extraneous newlines.
	w.printf("\n\n")
}

// WriteComment writes a comment block. All line starts are prefixed with "//".
// Initial empty lines are gobbled. The indentation for the first line is
// stripped from consecutive lines.
func (w *CodeWriter) WriteComment(comment string, args ...interface{}) {
	s := fmt.Sprintf(comment, args...)
	s = strings.Trim(s, "\n")

	// Use at least two newlines to ensure a blank space between the previous
	// block. WriteGoFile will remove extraneous newlines.
	w.printf("\n\n// ")
	w.skipSep = true

	// strip first indent level.
	sep := "\n"
	for ; len(s) > 0 && (s[0] == '\t' || s[0] == ' '); s = s[1:] {
		sep += s[:1]
	}

	strings.NewReplacer(sep, "\n// ", "\n", "\n// ").WriteString(w, s)

	w.printf("\n")
}

func (w *CodeWriter) writeSizeInfo(name string, n, size int) {
	w.printf("// %s: %d entries, %d bytes\n", name, n, size)
	w.Size += size
}

// WriteConst writes a constant of the given name and value.
func (w *CodeWriter) WriteConst(name string, x interface{}) {
	w.insertSep()
	if s, ok := x.(string); ok {
		w.printf("const %s = %q\n", name, s)
	} else {
		w.printf("const %s = %#v\n", name, x)
	}
}

// WriteConstBlock writes a block of untyped integer constants in the given
// order.
func (w *CodeWriter) WriteConstBlock(names []string, values []int) {
	w.insertSep()
	w.printf("const (\n")
	for i, name := range names {
		w.printf("\t%s = %d\n", name, values[i])
	}
	w.printf(")\n")
}

// WriteArray writes an array variable of the given name and value, which
// must be an array or slice. Slices are written as arrays. Elements may be
// integers, small arrays of integers, structs of integers and nested arrays
// thereof. Types declared in package main are written without qualifier.
func (w *CodeWriter) WriteArray(name string, x interface{}) {
	v := reflect.ValueOf(x)
	if k := v.Kind(); k != reflect.Array && k != reflect.Slice {
		panic(fmt.Sprintf("gen: WriteArray of %s: unsupported kind %v", name, k))
	}
	n := v.Len()
	et := v.Type().Elem()
	w.insertSep()
	w.writeSizeInfo(name, n, n*int(et.Size()))
	w.printf("var %s = [%d]%s{\n", name, n, typeName(et))
	w.writeElems(v, "\t")
	w.printf("}\n")
}

func typeName(t reflect.Type) string {
	s := strings.ReplaceAll(t.String(), "main.", "")
	return strings.ReplaceAll(s, "int32", "rune")
}

// inline reports whether values of type t are written on a single line.
func inline(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Array:
		return t.Len() <= 4 && isInt(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !isInt(t.Field(i).Type) {
				return false
			}
		}
		return true
	}
	return false
}

func isInt(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		return true
	}
	return false
}

// perLine returns the number of integers of type t written per line.
func perLine(t reflect.Type) int {
	if t.Size() == 1 {
		return 16
	}
	return 8
}

func formatInt(v reflect.Value) string {
	if v.Type().Size() == 1 {
		if v.CanInt() {
			return strconv.FormatInt(v.Int(), 10)
		}
		return strconv.FormatUint(v.Uint(), 10)
	}
	if v.CanInt() {
		return fmt.Sprintf("0x%04X", v.Int())
	}
	return fmt.Sprintf("0x%04X", v.Uint())
}

func formatInline(v reflect.Value) string {
	parts := make([]string, 0, 4)
	if v.Kind() == reflect.Struct {
		for i := 0; i < v.NumField(); i++ {
			parts = append(parts, formatInt(v.Field(i)))
		}
	} else {
		for i := 0; i < v.Len(); i++ {
			parts = append(parts, formatInt(v.Index(i)))
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (w *CodeWriter) writeElems(v reflect.Value, indent string) {
	et := v.Type().Elem()
	switch {
	case isInt(et):
		per := perLine(et)
		for i := 0; i < v.Len(); i += per {
			parts := make([]string, 0, per)
			for j := i; j < i+per && j < v.Len(); j++ {
				parts = append(parts, formatInt(v.Index(j)))
			}
			w.printf("%s%s,\n", indent, strings.Join(parts, ", "))
		}
	case inline(et):
		for i := 0; i < v.Len(); i++ {
			w.printf("%s%s,\n", indent, formatInline(v.Index(i)))
		}
	case et.Kind() == reflect.Array:
		for i := 0; i < v.Len(); i++ {
			w.printf("%s{\n", indent)
			w.writeElems(v.Index(i), indent+"\t")
			w.printf("%s},\n", indent)
		}
	default:
		panic(fmt.Sprintf("gen: unsupported element type %v", et))
	}
}

// WriteVar writes a variable of the given name and value.
func (w *CodeWriter) WriteVar(name string, x interface{}) {
	w.insertSep()
	w.printf("var %s = %#v\n", name, x)
}

var _ io.Writer = (*CodeWriter)(nil)
