// Copyright 2025 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bracefmt/bracefmt/internal/collections"
	"github.com/bracefmt/bracefmt/internal/lang"
	"github.com/bracefmt/bracefmt/internal/options"
)

// supportedLanguages renders lang.All() as the comma-separated list used in
// flag help text and error messages.
func supportedLanguages() string {
	return strings.Join(collections.MapSlice(lang.All(), lang.Language.String), ", ")
}

// sharedFlags holds the option flags common to every subcommand that
// reads a source file and runs the cleanup pass over it.
type sharedFlags struct {
	language   string
	configPath string
	noVBraces  bool
	verbose    bool
}

func (f *sharedFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.language, "lang", "cpp", "source dialect: "+supportedLanguages())
	fs.StringVar(&f.configPath, "config", "", "path to a YAML options file overriding --lang's defaults")
	fs.BoolVar(&f.noVBraces, "no-virtual-braces", false, "do not synthesize virtual braces around unbraced bodies")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log recoverable diagnostics as they're found")
}

// resolve turns the parsed flags into an options.Options, loading configPath
// over the --lang defaults when one was given.
func (f *sharedFlags) resolve() (options.Options, error) {
	l, err := lang.Parse(f.language)
	if err != nil {
		return options.Options{}, err
	}

	opts := options.Default(l)
	if f.configPath != "" {
		opts, err = options.Load(f.configPath, l)
		if err != nil {
			return options.Options{}, fmt.Errorf("loading %s: %w", f.configPath, err)
		}
	}
	if f.noVBraces {
		opts.AddVirtualBraces = false
	}
	return opts, nil
}

func (f *sharedFlags) logger() hclog.Logger {
	level := hclog.Error
	if f.verbose {
		level = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:  "bracefmt",
		Level: level,
	})
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bracefmt",
		Short:         "Annotate C-family source with brace-cleanup bracket and level metadata",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newDumpCmd())
	cmd.AddCommand(newCheckCmd())
	return cmd
}
