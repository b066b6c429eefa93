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

// Package options loads the small set of knobs the cleanup driver consults
// while it runs: which language to assume, and the few behaviors left
// configurable rather than fixed (namespace indenting, whether an unbraced
// single-statement body should get a virtual brace at all).
package options

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bracefmt/bracefmt/internal/lang"
)

// Options controls one run of the cleanup driver.
type Options struct {
	// Language is the dialect to lex and classify as. Load takes it from
	// its fallbackLang argument unless the file sets it, and rejects an
	// empty or unrecognized value.
	Language lang.Language `yaml:"language"`

	// IndentNamespaceBody controls whether chunks inside a namespace body
	// are flagged IN_NAMESPACE.
	IndentNamespaceBody bool `yaml:"indent_namespace_body"`

	// AddVirtualBraces controls whether unbraced single-statement bodies
	// of if/for/while/do get a VBRACE_OPEN/VBRACE_CLOSE pair synthesized
	// around them. Disabling this is a diagnostic aid: with it off, the
	// driver still validates bracket balance but stops short of the
	// brace-insertion step.
	AddVirtualBraces bool `yaml:"add_virtual_braces"`

	// MaxPreprocDepth bounds #if/#ifdef/#ifndef nesting, guarding against
	// pathological or malicious input spinning the frame list out
	// indefinitely.
	MaxPreprocDepth int `yaml:"max_preproc_depth"`
}

// Default returns the Options a bare invocation with only --lang set would
// use.
func Default(l lang.Language) Options {
	return Options{
		Language:            l,
		IndentNamespaceBody: true,
		AddVirtualBraces:    true,
		MaxPreprocDepth:     64,
	}
}

// Clone returns an independent copy of o.
func (o Options) Clone() Options {
	return o
}

// Load reads and strictly decodes a YAML options file at path, starting
// from Default(fallbackLang) so a partial file only overrides the fields it
// mentions. Unknown keys are a load error, not a silently ignored typo.
func Load(path string, fallbackLang lang.Language) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("options: reading %s: %w", path, err)
	}

	opts := Default(fallbackLang)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		return Options{}, fmt.Errorf("options: parsing %s: %w", path, err)
	}

	if opts.Language == "" {
		return Options{}, fmt.Errorf("options: %s: language is required", path)
	}
	if _, err := lang.Parse(string(opts.Language)); err != nil {
		return Options{}, fmt.Errorf("options: %s: %w", path, err)
	}
	return opts, nil
}
