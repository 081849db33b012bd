// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/spf13/cobra"
	xnorm "golang.org/x/text/unicode/norm"

	"github.com/utf8kit/text/internal/scalar"
	"github.com/utf8kit/text/unicode/norm"
)

var (
	errNotNormal = errors.New("not normalized")
	errMismatch  = errors.New("disagrees with golang.org/x/text")
)

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file]...",
		Short: "report files that are not in a normalization form",
		Long: "check reports each file that is not in the selected normalization form,\n" +
			"together with the byte offset of the first difference. It fails if any\n" +
			"file is not normalized. With --reference, every file is also normalized\n" +
			"with golang.org/x/text/unicode/norm and differences are reported.\n" +
			"The reference may use a newer Unicode version: files holding scalars\n" +
			"that the two disagree on in isolation are not cross-checked.",
		RunE: a.runCheck,
	}
	cmd.Flags().Bool("reference", false, "cross-check results with golang.org/x/text/unicode/norm (Unicode "+xnorm.Version+", tables here are "+norm.Version+")")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	f, err := a.form()
	if err != nil {
		return err
	}
	reference, _ := cmd.Flags().GetBool("reference")
	out := cmd.OutOrStdout()
	var files, bad, mismatches int
	err = forEachInput(cmd, args, func(name string, r io.Reader) error {
		b, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		files++
		got := f.Bytes(b)
		if i := firstDiff(got, b); i >= 0 {
			bad++
			fmt.Fprintf(out, "%s: not %s at byte %d\n", name, f.Name(), i)
		}
		if reference {
			ref := referenceForm(f)
			if r, ok := versionSkew(f, ref, b); ok {
				a.logger.Warn("reference check skipped", "file", name, "rune", fmt.Sprintf("%U", r),
					"version", norm.Version, "reference", xnorm.Version)
				return nil
			}
			want := ref.Bytes(b)
			if i := firstDiff(got, want); i >= 0 {
				mismatches++
				a.logger.Warn("reference mismatch", "file", name, "form", f.Name(), "offset", i)
				fmt.Fprintf(out, "%s: %s at byte %d\n", name, errMismatch, i)
			}
		}
		a.logger.Debug("checked", "file", name, "form", f.Name(), "bytes", len(b))
		return nil
	})
	if err != nil {
		return err
	}
	a.logger.Info("check done", "files", files, "unnormalized", bad, "mismatches", mismatches)
	switch {
	case bad > 0:
		return fmt.Errorf("%d of %d files %w to %s", bad, files, errNotNormal, f.Name())
	case mismatches > 0:
		return fmt.Errorf("%d of %d files: %w", mismatches, files, errMismatch)
	}
	return nil
}

// firstDiff returns the offset of the first byte at which a and b differ,
// or -1 if they are equal.
func firstDiff(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}

// versionSkew returns the first scalar in b that f and ref treat differently
// on its own. Such scalars are typically assigned in a Unicode version newer
// than norm.Version.
func versionSkew(f norm.Form, ref xnorm.Form, b []byte) (rune, bool) {
	for len(b) > 0 {
		r, sz := scalar.DecodeRune(b)
		if !(r == utf8.RuneError && sz == 1) {
			s := b[:sz]
			if norm.CombiningClass(r) != ref.Properties(s).CCC() || !bytes.Equal(f.Bytes(s), ref.Bytes(s)) {
				return r, true
			}
		}
		b = b[sz:]
	}
	return 0, false
}

func referenceForm(f norm.Form) xnorm.Form {
	switch f {
	case norm.NFD:
		return xnorm.NFD
	case norm.NFKC:
		return xnorm.NFKC
	case norm.NFKD:
		return xnorm.NFKD
	}
	return xnorm.NFC
}
