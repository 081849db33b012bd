// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// normtext normalizes and inspects Unicode text.
//
// Usage:
//
//	normtext <command> [flags] [arguments]
//
// The commands are:
//
//	normalize   write files in a normalization form
//	check       report files that are not in a normalization form
//	inspect     show the properties of the scalars of a text
//	version     print the Unicode version of the tables
//
// Flags can also be set in a configuration file given by --config or in
// environment variables prefixed with NORMTEXT_, such as NORMTEXT_FORM=NFD.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "normtext: %v\n", err)
		os.Exit(1)
	}
}
