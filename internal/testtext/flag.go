// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testtext contains test helpers shared by the packages of this
// repository.
package testtext

import (
	"flag"
	"testing"

	"github.com/utf8kit/text/internal/gen"
)

var long = flag.Bool("long", false,
	"run time-consuming tests, such as tests that fetch data online")

// SkipIfNotLong marks the test as skipped unless the -long flag is set or
// data files are read from a local directory.
func SkipIfNotLong(t testing.TB) {
	t.Helper()
	if testing.Short() || !gen.IsLocal() && !*long {
		t.Skip("skipping test to prevent downloading; to run use -long or use -local to specify a local source")
	}
}
