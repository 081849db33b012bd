// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utf8kit/text/unicode/linebreak"
	"github.com/utf8kit/text/unicode/norm"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the Unicode version of the tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "normalization: Unicode %s\n", norm.Version)
			fmt.Fprintf(out, "line break:    Unicode %s\n", linebreak.Version)
			return nil
		},
	}
}
