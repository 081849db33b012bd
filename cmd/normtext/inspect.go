// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/utf8kit/text/unicode/linebreak"
	"github.com/utf8kit/text/unicode/norm"
)

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <text>...",
		Short: "show the properties of the scalars of a text",
		Long: "inspect prints a table with the code point, combining class, line break class\n" +
			"and decompositions of each scalar of the given texts, followed by the text in\n" +
			"the selected normalization form. Arguments are unquoted as Go strings if\n" +
			"possible, so escapes such as \\u0301 may be used.",
		Args: cobra.MinimumNArgs(1),
		RunE: a.runInspect,
	}
}

func (a *app) runInspect(cmd *cobra.Command, args []string) error {
	f, err := a.form()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, arg := range args {
		s := unquote(arg)
		table := tablewriter.NewWriter(out)
		table.Header("Scalar", "Char", "CCC", "Line break", "Canonical", "Compatibility")
		for _, r := range s {
			if err := table.Append(scalarRow(r)); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %+q\n", f.Name(), f.String(s))
		a.logger.Debug("inspected", "text", s, "scalars", len([]rune(s)))
	}
	return nil
}

// unquote interprets s as the contents of a Go string literal if it
// contains escapes and returns s unchanged otherwise.
func unquote(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	if u, err := strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`); err == nil {
		return u
	}
	return s
}

func scalarRow(r rune) []string {
	char := string(r)
	if norm.CombiningClass(r) != 0 {
		// Show marks on a dotted circle.
		char = "\u25cc" + char
	}
	if !strconv.IsPrint(r) {
		char = ""
	}
	return []string{
		fmt.Sprintf("%U", r),
		char,
		strconv.Itoa(int(norm.CombiningClass(r))),
		linebreak.Lookup(r).String(),
		formatDecomposition(r, norm.CanonicalDecomposition(r)),
		formatDecomposition(r, norm.CompatibilityDecomposition(r)),
	}
}

func formatDecomposition(r rune, d []rune) string {
	if slices.Equal(d, []rune{r}) {
		return "-"
	}
	parts := make([]string, len(d))
	for i, x := range d {
		parts[i] = fmt.Sprintf("%U", x)
	}
	return strings.Join(parts, " ")
}
