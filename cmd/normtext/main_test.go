// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xnorm "golang.org/x/text/unicode/norm"
	"golang.org/x/tools/txtar"

	"github.com/utf8kit/text/unicode/norm"
)

// run executes normtext with the given arguments and standard input.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestGolden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txtar"), func(t *testing.T) {
			a, err := txtar.ParseFile(file)
			require.NoError(t, err)
			sections := map[string]string{}
			for _, f := range a.Files {
				sections[f.Name] = string(f.Data)
			}
			args := strings.Fields(sections["args"])
			require.NotEmpty(t, args, "no args section")

			stdout, _, err := run(t, sections["stdin"], args...)
			if want, ok := sections["error"]; ok {
				require.Error(t, err)
				assert.Contains(t, err.Error(), strings.TrimSpace(want))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, sections["stdout"], stdout)
		})
	}
}

func TestNormalizeFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(a, []byte("e\u0301"), 0o644))
	// Files are normalized separately, so the mark at the start of b does
	// not combine with a.
	require.NoError(t, os.WriteFile(b, []byte("\u0301x"), 0o644))

	stdout, _, err := run(t, "", "normalize", "-o", out, a, b)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "\u00e9\u0301x", string(got))
}

func TestNormalizeMissingFile(t *testing.T) {
	_, _, err := run(t, "", "normalize", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigFile(t *testing.T) {
	config := filepath.Join(t.TempDir(), "normtext.yaml")
	require.NoError(t, os.WriteFile(config, []byte("form: NFD\nlog-level: error\n"), 0o644))

	stdout, _, err := run(t, "\u00e9", "normalize", "--config", config)
	require.NoError(t, err)
	assert.Equal(t, "e\u0301", stdout)

	// Flags take precedence over the configuration file.
	stdout, _, err = run(t, "\u00e9", "normalize", "--config", config, "--form", "NFC")
	require.NoError(t, err)
	assert.Equal(t, "\u00e9", stdout)

	_, _, err = run(t, "", "version", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config")
}

func TestEnvironment(t *testing.T) {
	t.Setenv("NORMTEXT_FORM", "NFKC")

	stdout, _, err := run(t, "\ufb01", "normalize")
	require.NoError(t, err)
	assert.Equal(t, "fi", stdout)

	stdout, _, err = run(t, "\ufb01", "normalize", "--form", "NFC")
	require.NoError(t, err)
	assert.Equal(t, "\ufb01", stdout)
}

func TestCheckReference(t *testing.T) {
	stdout, _, err := run(t, "\u00e9t\u00e9 \ud55c\uad6d\uc5b4\n", "check", "--reference")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	_, _, err = run(t, "e\u0301", "check", "--reference")
	assert.ErrorIs(t, err, errNotNormal)

	// U+1E030 gained a compatibility mapping after the tables' Unicode version.
	stdout, stderr, err := run(t, "\u0430\U0001e030\n", "check", "--form", "NFKC", "--reference", "--log-level", "warn", "--log-format", "text")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "reference check skipped")
	assert.Contains(t, stderr, "U+1E030")
}

func TestVersionSkew(t *testing.T) {
	tests := []struct {
		in   string
		want rune
		ok   bool
	}{
		{"", 0, false},
		{"\u00e9t\u00e9 \ud55c\uad6d\uc5b4", 0, false},
		{"\ufb01\u0301\xff", 0, false},
		{"a\U0001e030", 0x1E030, true},
	}
	for _, tt := range tests {
		r, ok := versionSkew(norm.NFKC, xnorm.NFKC, []byte(tt.in))
		assert.Equal(t, tt.ok, ok, "%+q", tt.in)
		assert.Equal(t, tt.want, r, "%+q", tt.in)
	}
}

func TestInspect(t *testing.T) {
	stdout, _, err := run(t, "", "inspect", `e\u0301`)
	require.NoError(t, err)
	for _, want := range []string{
		"U+0065", "U+0301", "230", "CM", "AL",
		`NFC: "\u00e9"`,
	} {
		assert.Contains(t, stdout, want)
	}

	stdout, _, err = run(t, "", "inspect", "--form", "NFKD", "\u00bd")
	require.NoError(t, err)
	assert.Contains(t, stdout, "U+2044")
	assert.Contains(t, stdout, `NFKD: "1\u20442"`)

	_, _, err = run(t, "", "inspect")
	assert.Error(t, err)
}

func TestLogging(t *testing.T) {
	_, stderr, err := run(t, "abc", "check", "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)

	var found bool
	for _, line := range strings.Split(strings.TrimSpace(stderr), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec), line)
		if rec["msg"] == "checked" {
			found = true
			assert.Equal(t, "check", rec["cmd"])
			assert.Equal(t, "NFC", rec["form"])
		}
	}
	assert.True(t, found, "no checked record in %q", stderr)

	_, _, err = run(t, "", "version", "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid log-level")
	_, _, err = run(t, "", "version", "--log-format", "xml")
	assert.ErrorContains(t, err, "invalid log-format")
}

func TestLogHandler(t *testing.T) {
	for _, format := range []string{"console", "text", "logfmt", "json", " JSON "} {
		var buf bytes.Buffer
		h, err := logHandler(&buf, format, slog.LevelInfo)
		require.NoError(t, err, format)
		slog.New(h).Info("hello", "k", "v")
		assert.Contains(t, buf.String(), "hello", format)
		// A buffer is not a terminal, so no escape sequences are written.
		assert.NotContains(t, buf.String(), "\x1b[", format)
	}
}

func TestFirstDiff(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", -1},
		{"abc", "abc", -1},
		{"abc", "abd", 2},
		{"ab", "abc", 2},
		{"abc", "", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, firstDiff([]byte(tt.a), []byte(tt.b)), "%q %q", tt.a, tt.b)
	}
}

func TestFlagRegistration(t *testing.T) {
	root := newRootCmd()
	for name, def := range map[string]string{
		"config":     "",
		"form":       "NFC",
		"log-level":  "warn",
		"log-format": "console",
	} {
		f := root.PersistentFlags().Lookup(name)
		require.NotNil(t, f, "%s flag should be registered", name)
		assert.Equal(t, def, f.DefValue, name)
	}

	cmd, _, err := root.Find([]string{"normalize"})
	require.NoError(t, err)
	f := cmd.Flags().ShorthandLookup("o")
	require.NotNil(t, f)
	assert.Equal(t, "output", f.Name)
}
