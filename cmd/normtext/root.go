// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/utf8kit/text/unicode/norm"
)

// envPrefix is the prefix of environment variables overriding flags.
const envPrefix = "NORMTEXT"

// An app holds the state shared by all commands of one invocation.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:   "normtext",
		Short: "normtext normalizes and inspects Unicode text.",
		Long: "normtext converts text to one of the Unicode normalization forms NFC, NFD, NFKC and NFKD,\n" +
			"checks whether files are normalized and shows the normalization properties of scalars.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		Version:           norm.Version,
	}
	registerFlags(root.PersistentFlags())
	root.AddCommand(
		a.normalizeCmd(),
		a.checkCmd(),
		a.inspectCmd(),
		versionCmd(),
	)
	return root
}

// registerFlags adds the flags shared by all commands. Each flag can also be
// set as a configuration key of the same name.
func registerFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "configuration `file` (YAML, TOML or JSON)")
	fs.String("form", "NFC", "normalization form: NFC, NFD, NFKC or NFKD")
	fs.String("log-level", "warn", "log level: debug, info, warn or error")
	fs.String("log-format", "console", "log format: console, text or json")
}

// setup merges flags, environment and the configuration file and sets up
// logging.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	v := a.v
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	level, err := logLevel(v.GetString("log-level"))
	if err != nil {
		return err
	}
	h, err := logHandler(cmd.ErrOrStderr(), v.GetString("log-format"), level)
	if err != nil {
		return err
	}
	a.logger = slog.New(h).With("cmd", cmd.Name())
	if file := v.ConfigFileUsed(); file != "" {
		a.logger.Debug("loaded config", "file", file)
	}
	return nil
}

func (a *app) form() (norm.Form, error) {
	return norm.ParseForm(a.v.GetString("form"))
}
