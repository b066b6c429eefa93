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
	"io"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var flags sharedFlags
	var strict bool
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "report whether a source file's braces are structurally sound",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), args[0], &flags, strict)
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&strict, "strict", false, "treat recoverable warnings as failures too")
	return cmd
}

// strictWarnings wraps a non-nil Warnings error so main reports a non-zero
// exit without claiming the abort exit code, which is reserved for
// AbortError.
type strictWarnings struct{ inner error }

func (e *strictWarnings) Error() string { return e.inner.Error() }
func (e *strictWarnings) ExitCode() int { return 1 }

func runCheck(w io.Writer, path string, flags *sharedFlags, strict bool) error {
	opts, err := flags.resolve()
	if err != nil {
		return err
	}

	res, err := runFile(path, opts, flags.logger())
	if err != nil {
		return err
	}

	if res.Warnings != nil {
		fmt.Fprintln(w, res.Warnings)
		if strict {
			return &strictWarnings{inner: res.Warnings}
		}
	}

	fmt.Fprintf(w, "%s: braces balanced\n", path)
	return nil
}
