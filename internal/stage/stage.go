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

// Package stage defines the complex-statement state machine the cleanup
// driver runs per top-level construct (if/for/while/do/try/...), tracking
// how far into "keyword ( expr ) { body }" (or one of its many variants)
// the driver has gotten.
package stage

import "github.com/bracefmt/bracefmt/internal/token"

// Stage is a point in the complex-statement state machine.
type Stage int

const (
	// None means no complex statement is in progress.
	None Stage = iota
	// Paren1 expects the statement's opening paren, e.g. "if" was just seen.
	Paren1
	// OpParen1 expects an optional opening paren, as for an OPBraced
	// construct (D's "version (x) { }" vs. bare "version { }").
	OpParen1
	// Brace2 expects the statement's opening brace (or the start of an
	// unbraced single-statement body that a virtual brace will wrap).
	Brace2
	// BraceDo expects the body of a "do" statement specifically, which is
	// always followed by a "while (cond);" trailer.
	BraceDo
	// Else expects either "if" (forming "else if") or the else body.
	Else
	// ElseIf expects the paren of an "else if".
	ElseIf
	// While expects the "while" keyword that closes a "do" body.
	While
	// Catch expects the paren (or "when" clause) of a catch block.
	Catch
	// CatchWhen expects the paren of a C#-style "catch (...) when (...)".
	CatchWhen
	// WODParen expects the paren of a "while" that closes a do-block
	// ("while of do"), distinct from a plain while-loop's Paren1.
	WODParen
	// WODSemi expects the trailing semicolon after a while-of-do's paren.
	WODSemi
)

func (s Stage) String() string {
	switch s {
	case None:
		return "NONE"
	case Paren1:
		return "PAREN1"
	case OpParen1:
		return "OP_PAREN1"
	case Brace2:
		return "BRACE2"
	case BraceDo:
		return "BRACE_DO"
	case Else:
		return "ELSE"
	case ElseIf:
		return "ELSEIF"
	case While:
		return "WHILE"
	case Catch:
		return "CATCH"
	case CatchWhen:
		return "CATCH_WHEN"
	case WODParen:
		return "WOD_PAREN"
	case WODSemi:
		return "WOD_SEMI"
	default:
		return "UNKNOWN"
	}
}

// PatternClass is the shape of bodies a complex-statement keyword expects:
// whether it takes a condition in parens, a brace body, both, or neither.
type PatternClass int

const (
	// Braced constructs take only a brace body, no parens (e.g. "try",
	// "finally", "do").
	Braced PatternClass = iota
	// PBraced constructs take a paren clause followed by a brace body
	// (e.g. "if (cond) { }", "while (cond) { }", "catch (e) { }").
	PBraced
	// OPBraced constructs take an optional paren clause (e.g. D's
	// "version (x) { }" vs. bare "version { }").
	OPBraced
	// ElseLike constructs may be immediately followed by another keyword
	// forming a compound construct ("else if").
	ElseLike
)

// ClassOf returns the PatternClass governing keyword kw's statement shape.
// The second return value is false if kw does not start a complex
// statement at all.
func ClassOf(kw token.TokenType) (PatternClass, bool) {
	switch kw {
	case token.Else:
		return ElseLike, true
	case token.Do, token.Try, token.Finally, token.Body, token.Unittest, token.Unsafe,
		token.Volatile, token.Getset, token.Namespace:
		return Braced, true
	case token.If, token.For, token.While, token.Switch, token.Catch, token.Synchronized,
		token.Lock, token.UsingStmt, token.DVersionIf, token.DScopeIf:
		return PBraced, true
	case token.Version, token.Scope:
		return OPBraced, true
	default:
		return 0, false
	}
}

// InitialStage returns the stage a complex statement starting with kw
// should enter immediately after the keyword chunk is consumed.
func InitialStage(kw token.TokenType) Stage {
	class, ok := ClassOf(kw)
	if !ok {
		return None
	}
	switch class {
	case ElseLike:
		return Else
	case Braced:
		if kw == token.Do {
			return BraceDo
		}
		return Brace2
	case PBraced, OPBraced:
		if kw == token.Catch {
			return Catch
		}
		return Paren1
	default:
		return None
	}
}
