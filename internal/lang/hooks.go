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

package lang

// Hooks collects the dialect-specific decisions the cleanup driver needs
// but does not want to special-case inline with a chain of l == D checks.
// Each language gets exactly one Hooks implementation.
type Hooks interface {
	// Language reports the dialect these hooks were built for.
	Language() Language

	// PawnNeedsVSemicolon reports whether, for Pawn's semicolon-optional
	// grammar, a statement ending at this dialect's newline boundary needs
	// a virtual semicolon synthesized.
	PawnNeedsVSemicolon() bool
}

type defaultHooks struct {
	language Language
}

// NewHooks returns the Hooks implementation for l.
func NewHooks(l Language) Hooks {
	return defaultHooks{language: l}
}

func (h defaultHooks) Language() Language { return h.language }

func (h defaultHooks) PawnNeedsVSemicolon() bool {
	return h.language.IsPawn()
}
