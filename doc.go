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

// Package bracefmt lexes and structurally annotates C-family source code
// in a single left-to-right pass: it classifies every brace, paren, and
// bracket, reclassifies statement-condition parens away from plain
// grouping and call parens, synthesizes virtual braces around unbraced
// single-statement bodies, and keeps a sane parse state across
// preprocessor conditionals.
//
// It does not reformat or re-emit source text; it produces an annotated
// token stream a formatter, linter, or indenter can consume.
package bracefmt
