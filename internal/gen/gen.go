// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gen contains common code for the various code generation tools in
// the text repository. Its usage ensures consistency between tools.
//
// This package defines command line flags that are common to most generation
// tools. The flags allow for specifying specific Unicode versions and
// locations for the data files.
//
// A local copy of the Unicode database is used if -local names a directory.
// Files are then looked up as <local>/<version>/ucd/<file>.
package gen

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
)

var (
	url = flag.String("url",
		"https://www.unicode.org/Public",
		"URL of Unicode database directory")
	localDir = flag.String("local",
		"",
		"directory containing local data files; for debugging only.")
	unicodeVersion = flag.String("unicode",
		"14.0.0",
		"unicode version to generate tables for")
	outFile = flag.String("out",
		"tables.go",
		"file to write the generated tables to")
)

// Header is written at the top of every generated file.
const Header = `// Code generated by running "go generate" in github.com/utf8kit/text. DO NOT EDIT.`

// Init performs common initialization for a gen command. It parses the flags
// and sets up the standard logging parameters.
func Init() {
	log.SetPrefix("")
	log.SetFlags(log.Lshortfile)
	flag.Parse()
}

// IsLocal reports whether data files are read from a local directory.
func IsLocal() bool {
	return *localDir != ""
}

// UnicodeVersion reports the requested Unicode version.
func UnicodeVersion() string {
	return *unicodeVersion
}

// OutFile reports the name of the file to which tables are written.
func OutFile() string {
	return *outFile
}

// OpenUCDFile opens the requested UCD file. The file is specified relative to
// the public Unicode root directory. It will call log.Fatal if there are any
// errors.
func OpenUCDFile(file string) io.ReadCloser {
	return open(path.Join(UnicodeVersion(), "ucd", file))
}

func open(file string) io.ReadCloser {
	if IsLocal() {
		f, err := os.Open(filepath.Join(*localDir, filepath.FromSlash(file)))
		if err != nil {
			log.Fatalf("Could not open local file: %v", err)
		}
		return f
	}
	u := *url + "/" + file
	resp, err := http.Get(u)
	if err != nil {
		log.Fatalf("HTTP GET: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("Bad GET status for %q: %q", u, resp.Status)
	}
	return resp.Body
}

func formatSource(pkg string, b []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "%s\n\npackage %s\n\n", Header, pkg)
	buf.Write(b)
	return format.Source(buf.Bytes())
}

// WriteGoFile prepends a standard file comment and package statement to the
// given bytes, applies gofmt, and writes them to a file with the given name.
func WriteGoFile(filename, pkg string, b []byte) error {
	src, err := formatSource(pkg, b)
	if err != nil {
		return fmt.Errorf("gen: formatting %s: %w", filename, err)
	}
	return os.WriteFile(filename, src, 0666)
}
