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

// Package lang identifies which C-family dialect a source file is written
// in and exposes the small set of per-language behaviors the cleanup driver
// consults (which keywords exist, and the handful of dialect-specific
// grammar quirks collected in Hooks).
package lang

import "fmt"

// Language is a supported C-family dialect.
type Language string

const (
	C          Language = "c"
	Cpp        Language = "cpp"
	ObjC       Language = "objc"
	CSharp     Language = "cs"
	Java       Language = "java"
	D          Language = "d"
	Pawn       Language = "pawn"
	Vala       Language = "vala"
)

// All lists every recognized Language, in the order options documentation
// presents them.
func All() []Language {
	return []Language{C, Cpp, ObjC, CSharp, Java, D, Pawn, Vala}
}

// Parse validates s against the set of known languages. Unlike a lookup
// that silently defaults to C, an unrecognized name is always an error: a
// misspelled --lang flag should fail loudly, not format the file as the
// wrong dialect.
func Parse(s string) (Language, error) {
	for _, l := range All() {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("lang: unrecognized language %q", s)
}

func (l Language) String() string { return string(l) }

// HasSparenlessFor reports whether the dialect permits for-each style loops
// whose header is not a C-style three-clause for(;;) but is still wrapped
// in the same SPAREN/FPAREN handling (e.g. Java/C#'s for (T x : xs)).
func (l Language) HasSparenlessFor() bool {
	switch l {
	case Java, CSharp:
		return true
	default:
		return false
	}
}

// HasUsingStatement reports whether `using (...)` is a complex statement
// (C#) rather than a plain declaration (C++'s `using` alias).
func (l Language) HasUsingStatement() bool {
	return l == CSharp
}

// IsD reports whether l is the D language, which has several constructs
// (version/scope/unittest/body blocks) no other dialect shares.
func (l Language) IsD() bool {
	return l == D
}

// IsPawn reports whether l is Pawn, whose grammar omits semicolons at the
// end of some statements that every other dialect requires them on.
func (l Language) IsPawn() bool {
	return l == Pawn
}
