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

	"github.com/bracefmt/bracefmt/internal/token"
)

func newDumpCmd() *cobra.Command {
	var flags sharedFlags
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "print the annotated token stream for a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd.OutOrStdout(), args[0], &flags)
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func runDump(w io.Writer, path string, flags *sharedFlags) error {
	opts, err := flags.resolve()
	if err != nil {
		return err
	}

	res, err := runFile(path, opts, flags.logger())
	if err != nil {
		return err
	}

	for ch := range res.List.All() {
		if ch.IsFormatting() {
			continue
		}
		parent := ""
		if ch.ParentType != token.Unassigned {
			parent = " parent=" + ch.ParentType.String()
		}
		fmt.Fprintf(w, "%-4d %-4d %-16s %-10q level=%d brace=%d pp=%d%s\n",
			ch.Pos.Line, ch.Pos.Column, ch.Type, ch.Text, ch.Level, ch.BraceLevel, ch.PPLevel, parent)
	}
	return nil
}
