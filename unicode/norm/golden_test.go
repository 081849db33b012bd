// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// TestGolden normalizes the input file of each archive in testdata and
// compares the result against the file named after the form.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no golden files")
	}
	for _, file := range files {
		a, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatal(err)
		}
		want := map[string][]byte{}
		for _, f := range a.Files {
			want[f.Name] = f.Data
		}
		in, ok := want["input"]
		if !ok {
			t.Fatalf("%s: no input file", file)
		}
		for _, f := range forms {
			name := strings.ToLower(f.Name())
			gold, ok := want[name]
			if !ok {
				continue
			}
			t.Run(filepath.Base(file)+"/"+name, func(t *testing.T) {
				if got := f.Bytes(in); !bytes.Equal(got, gold) {
					t.Errorf("Bytes:\nwas  %+q\nwant %+q", got, gold)
				}
				var buf bytes.Buffer
				w := f.Writer(&buf)
				if _, err := w.Write(in); err != nil {
					t.Fatal(err)
				}
				if err := w.Close(); err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(buf.Bytes(), gold) {
					t.Errorf("Writer:\nwas  %+q\nwant %+q", buf.Bytes(), gold)
				}
				if !f.IsNormal(gold) {
					t.Errorf("IsNormal(%+q) = false", gold)
				}
			})
		}
	}
}
