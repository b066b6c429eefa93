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

package bracefmt

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/bracefmt/bracefmt/internal/cleanup"
	"github.com/bracefmt/bracefmt/internal/lang"
	"github.com/bracefmt/bracefmt/internal/lexer"
	"github.com/bracefmt/bracefmt/internal/options"
	"github.com/bracefmt/bracefmt/internal/token"
)

// Options controls one cleanup run. It is a thin re-export of the internal
// options type, so callers outside this module configure a run without
// reaching into internal packages.
type Options = options.Options

// Default returns the Options a bare run with only a language choice
// would use.
func Default(l Language) Options {
	return options.Default(l)
}

// Language identifies a supported C-family dialect.
type Language = lang.Language

// ParseLanguage validates s against the set of supported dialect names.
func ParseLanguage(s string) (Language, error) {
	return lang.Parse(s)
}

// AbortError is returned when source is too structurally broken (an
// unmatched bracket, preprocessor nesting past Options.MaxPreprocDepth) to
// finish cleanup. Its ExitCode method returns the process exit code a CLI
// should surface.
type AbortError struct {
	inner *cleanup.AbortError
}

func (e *AbortError) Error() string { return e.inner.Error() }

// ExitCode returns the conventional process exit code for an aborted run.
func (e *AbortError) ExitCode() int { return cleanup.ExitCodeAbort }

// Result is the outcome of a successful Run.
type Result struct {
	// List is the annotated token stream: every chunk's Level, BraceLevel,
	// Type (reclassified where needed), and MatchingBracket are final.
	List *token.List
	// Warnings collects recoverable diagnostics found along the way, or
	// nil if there were none.
	Warnings error
}

// Run lexes source as Options.Language and performs the brace-cleanup
// sweep over it. log receives recoverable diagnostics as they're found;
// passing nil uses hclog's default logger.
func Run(source []byte, opts Options, log hclog.Logger) (*Result, error) {
	list := lexer.Lex(source, opts.Language)
	res, abortErr := cleanup.Run(list, opts, log)
	if abortErr != nil {
		return nil, &AbortError{inner: abortErr}
	}
	return &Result{List: res.List, Warnings: res.Warnings}, nil
}

// RunFile reads path and calls Run on its contents.
func RunFile(path string, opts Options, log hclog.Logger) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bracefmt: reading %s: %w", path, err)
	}
	return Run(data, opts, log)
}
