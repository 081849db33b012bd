// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func (a *app) normalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize [file]...",
		Short: "write files in a normalization form",
		Long: "normalize writes the concatenation of the given files, each normalized\n" +
			"separately, to standard output or the file given by --output.\n" +
			"With no file, or when file is -, it reads standard input.",
		RunE: a.runNormalize,
	}
	cmd.Flags().StringP("output", "o", "", "write to `file` instead of standard output")
	return cmd
}

func (a *app) runNormalize(cmd *cobra.Command, args []string) (err error) {
	f, err := a.form()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if name, _ := cmd.Flags().GetString("output"); name != "" {
		file, err := os.Create(name)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := file.Close(); err == nil {
				err = cerr
			}
		}()
		out = file
	}
	return forEachInput(cmd, args, func(name string, r io.Reader) error {
		w := f.Writer(out)
		n, err := io.Copy(w, r)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := w.Close(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		a.logger.Debug("normalized", "file", name, "form", f.Name(), "bytes", n)
		return nil
	})
}

// forEachInput calls fn for each named file, or for standard input if there
// are none. The name - denotes standard input.
func forEachInput(cmd *cobra.Command, args []string, fn func(name string, r io.Reader) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, name := range args {
		if name == "-" {
			if err := fn("<stdin>", cmd.InOrStdin()); err != nil {
				return err
			}
			continue
		}
		file, err := os.Open(name)
		if err != nil {
			return err
		}
		err = fn(name, file)
		file.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
