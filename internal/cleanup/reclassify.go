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

package cleanup

import (
	"github.com/bracefmt/bracefmt/internal/lang"
	"github.com/bracefmt/bracefmt/internal/lexer"
	"github.com/bracefmt/bracefmt/internal/stage"
	"github.com/bracefmt/bracefmt/internal/token"
)

// reclassifyParenOpen narrows a generic ParenOpen into SparenOpen (a
// statement condition), FparenOpen (a function call/declaration, or a
// declspec), or leaves it a plain ParenOpen (a grouping expression),
// consulting the previous significant chunk exactly as the paren's
// matching closer will be reclassified once the pair is known, via
// closeParen.
func (c *context) reclassifyParenOpen(open *token.Chunk) {
	var prevType token.TokenType
	if prev := open.PrevReal(); prev != nil {
		prevType = prev.Type
	}
	switch {
	case lexer.IsSparenKeyword(prevType):
		open.Type = token.SparenOpen
		open.ParentType = prevType
		c.current.SparenCount++
		if prevType == token.For {
			open.Flags = open.Flags.Set(token.InFor)
		}
		c.advanceParenAwaitedStage()
	case prevType == token.Function:
		open.Type = token.FparenOpen
		open.ParentType = token.Function
	case prevType == token.Enum && c.opts.Language == lang.ObjC:
		open.Type = token.FparenOpen
		open.ParentType = token.Enum
	case prevType == token.Declspec:
		open.Type = token.FparenOpen
		open.ParentType = token.Declspec
	default:
		open.Type = token.ParenOpen
	}
}

// advanceParenAwaitedStage moves the innermost in-flight complex statement
// past the paren it was waiting for. reclassifyParenOpen calls it when it
// turns the paren after a statement keyword into SparenOpen, and closeParen
// calls it again when such a paren closes; a call does nothing once the
// innermost construct is past its paren-awaiting stage.
func (c *context) advanceParenAwaitedStage() {
	top, ok := c.topCS()
	if !ok {
		return
	}
	switch top.Stage {
	case stage.Paren1, stage.ElseIf, stage.Catch, stage.CatchWhen:
		top.Stage = stage.Brace2
		c.setTopCS(top)
	case stage.WODParen:
		top.Stage = stage.WODSemi
		c.setTopCS(top)
	}
}

// reclassifyBraceOpen stamps a brace's ParentType when it isn't consuming
// an awaited complex-statement body: the previous significant chunk tells
// an initializer-list brace (after ASSIGN), a function body (after
// FPAREN_CLOSE, or an Objective-C NS_ENUM-style body), and a C++
// return-expression brace (after RETURN) apart from a bare block
// statement, which gets no ParentType at all.
func (c *context) reclassifyBraceOpen(ch *token.Chunk) {
	prev := ch.PrevReal()
	if prev == nil {
		return
	}
	switch {
	case prev.Type == token.Assign:
		ch.ParentType = token.Assign
	case prev.Type == token.Return && c.opts.Language == lang.Cpp:
		ch.ParentType = token.Return
	case prev.Type == token.FparenClose:
		if c.opts.Language == lang.ObjC && prev.ParentType == token.Enum {
			ch.ParentType = token.Enum
		} else {
			ch.ParentType = token.Function
		}
	}
}

// closeParen reclassifies a paren closer to match its opener's final type,
// since the lexer only ever produces the generic ParenClose.
func closeParen(opener, closer *token.Chunk) {
	switch opener.Type {
	case token.SparenOpen:
		closer.Type = token.SparenClose
	case token.FparenOpen:
		closer.Type = token.FparenClose
	default:
		closer.Type = token.ParenClose
	}
	closer.ParentType = opener.ParentType
	opener.MatchingBracket = closer
	closer.MatchingBracket = opener
}

// reclassifyWhileOfDo retypes a "while" keyword to WhileOfDo when it
// closes a "do { } while (...)" construct, distinguishing it from a
// plain while-loop so a formatter doesn't try to wrap its own body.
func reclassifyWhileOfDo(whileChunk *token.Chunk) {
	whileChunk.Type = token.WhileOfDo
}
