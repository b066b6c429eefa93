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

// Package cleanup implements the single left-to-right sweep that gives a
// lexed token.List its final structural shape: bracket levels, paren
// reclassification, preprocessor-aware frame snapshotting, and virtual
// braces/semicolons for unbraced single-statement bodies.
package cleanup

import (
	"github.com/hashicorp/go-hclog"

	"github.com/bracefmt/bracefmt/internal/frame"
	"github.com/bracefmt/bracefmt/internal/options"
	"github.com/bracefmt/bracefmt/internal/stage"
	"github.com/bracefmt/bracefmt/internal/token"
)

// Result is the outcome of a successful Run: the annotated list (mutated
// in place, also returned for convenience) and any recoverable warnings
// collected along the way.
type Result struct {
	List     *token.List
	Warnings error
}

// Run performs the brace-cleanup sweep over list according to opts,
// logging recoverable diagnostics through log (nil uses hclog's default).
// It returns an *AbortError if the input is too structurally broken to
// finish; any other problems are collected as warnings in Result.
func Run(list *token.List, opts options.Options, log hclog.Logger) (*Result, *AbortError) {
	c := newContext(list, opts, log)
	for ch := list.Head(); ch != nil; ch = ch.Next() {
		if err := c.step(ch); err != nil {
			return nil, err
		}
	}
	if top, ok := c.topCS(); ok {
		c.diags.Warnf(top.Anchor.Pos, "unterminated %s construct at end of file", top.Keyword)
	}
	if c.current.Depth() > 0 {
		top := c.current.Top()
		return nil, abortf(top.Open.Pos, "unmatched %s at end of file", top.OpenType)
	}
	return &Result{List: list, Warnings: c.diags.Warnings()}, nil
}

func isDirective(t token.TokenType) bool {
	switch t {
	case token.PPIf, token.PPIfdef, token.PPIfndef, token.PPElif, token.PPElifdef, token.PPElifndef,
		token.PPElse, token.PPEndif, token.PPDefine, token.PPUndef, token.PPInclude,
		token.PPIncludeNext, token.PPPragma, token.PPOther:
		return true
	}
	return false
}

func (c *context) step(ch *token.Chunk) *AbortError {
	if ch.Type == token.Newline {
		if c.inPreprocLine {
			if c.inDefine {
				c.endDefine(ch.Pos)
			}
			c.inPreprocLine = false
		}
		return nil
	}
	if isDirective(ch.Type) {
		c.inPreprocLine = true
		return c.handleDirective(ch)
	}
	if ch.IsFormatting() {
		return nil
	}

	if c.inPreprocLine {
		ch.Flags = ch.Flags.Set(token.InPreproc)
	}
	c.stampNamespaceFlag(ch)
	if c.sparenDepth > 0 {
		ch.Flags = ch.Flags.Set(token.InSparen)
	}
	if c.forParenDepth > 0 {
		ch.Flags = ch.Flags.Set(token.InFor)
		if ch.Type == token.Semicolon {
			ch.ParentType = token.For
		}
	}
	ch.Level = c.current.Level
	ch.BraceLevel = c.current.BraceLevel
	ch.PPLevel = c.ppLevel

	// A do-while trailer's "while" must be recognized before the generic
	// complex-keyword dispatch below, since While is ordinarily its own
	// complex statement.
	if ch.Type == token.While {
		if top, ok := c.topCS(); ok && top.Keyword == token.Do && top.Stage == stage.While {
			reclassifyWhileOfDo(ch)
			top.Keyword = token.WhileOfDo
			top.Stage = stage.WODParen
			c.setTopCS(top)
			return nil
		}
	}
	// A do-block that never got its while(...) trailer: don't wait forever.
	if top, ok := c.topCS(); ok && top.Stage == stage.While && ch.Type != token.While {
		c.diags.Warnf(ch.Pos, "do block has no matching while (...) trailer")
		c.popCS()
	}
	// A C# catch clause's "when (cond)" filter sits between the catch
	// paren and the catch body, so it must be recognized before Brace2
	// (which otherwise expects a brace or the start of an unbraced body)
	// sees it.
	if ch.Type == token.When {
		if top, ok := c.topCS(); ok && top.Keyword == token.Catch && top.Stage == stage.Brace2 {
			top.Stage = stage.CatchWhen
			c.setTopCS(top)
			return nil
		}
	}
	// "else" merges into a preceding "else" entry to form "else if"; the
	// else itself never gets its own brace pair in that case.
	if ch.Type == token.If {
		if top, ok := c.topCS(); ok && top.Keyword == token.Else && top.Stage == stage.Else {
			c.popCS()
		}
	}
	// A plain "else" (no "if" following) now expects its own body.
	if top, ok := c.topCS(); ok && top.Keyword == token.Else && top.Stage == stage.Else && ch.Type != token.If {
		top.Stage = stage.Brace2
		c.setTopCS(top)
	}

	c.maybeOpenVirtualBody(ch)

	switch ch.Type {
	case token.ParenOpen:
		return c.openParen(ch)
	case token.ParenClose:
		return c.closeParen(ch)
	case token.BraceOpen:
		return c.openBrace(ch)
	case token.BraceClose:
		return c.closeBrace(ch)
	case token.SquareOpen:
		c.current.Push(frame.StackEntry{Open: ch, OpenType: token.SquareOpen})
		c.current.Level++
		return nil
	case token.SquareClose:
		return c.closeSimple(ch, token.SquareOpen, token.SquareClose)
	case token.MacroOpen:
		c.current.Push(frame.StackEntry{Open: ch, OpenType: token.MacroOpen})
		c.current.Level++
		return nil
	case token.MacroClose:
		return c.closeSimple(ch, token.MacroOpen, token.MacroClose)
	case token.Semicolon:
		return c.endStatement(ch)
	case token.Case, token.Default, token.Break:
		c.stampSwitchParent(ch)
		return nil
	default:
		if _, ok := stage.ClassOf(ch.Type); ok {
			return c.startComplexStatement(ch)
		}
	}
	return nil
}

// Namespace bodies have no parens, so InitialStage already lands on Brace2
// for them; the body's IN_NAMESPACE tagging begins once its real brace
// opens, in openBrace (maybeOpenVirtualBody never opens a virtual body for
// a namespace).
func (c *context) startComplexStatement(ch *token.Chunk) *AbortError {
	class, _ := stage.ClassOf(ch.Type)
	st := stage.InitialStage(ch.Type)
	c.pushCS(csEntry{Stage: st, Class: class, Keyword: ch.Type, Anchor: ch})
	return nil
}

func (c *context) openParen(ch *token.Chunk) *AbortError {
	c.reclassifyParenOpen(ch)
	if ch.Type == token.SparenOpen {
		c.sparenDepth++
		if ch.ParentType == token.For {
			c.forParenDepth++
		}
	}
	c.current.Push(frame.StackEntry{
		Open: ch, OpenType: ch.Type, ParentType: ch.ParentType,
		Level: c.current.Level, BraceLevel: c.current.BraceLevel,
	})
	c.current.Level++
	return nil
}

func (c *context) closeParen(ch *token.Chunk) *AbortError {
	if c.current.Depth() == 0 {
		return abortf(ch.Pos, "unmatched )")
	}
	popped := c.current.Pop()
	if !popped.OpenType.IsAnyParenOpen() && !c.inPreprocLine {
		c.diags.Warnf(ch.Pos, "unexpected ) matching %s", popped.OpenType)
	}
	closeParen(popped.Open, ch)
	c.current.Level--
	if popped.OpenType == token.SparenOpen {
		c.sparenDepth--
		c.current.SparenCount--
		if popped.ParentType == token.For {
			c.forParenDepth--
		}
		c.advanceParenAwaitedStage()
	}
	return nil
}

func (c *context) openBrace(ch *token.Chunk) *AbortError {
	// Only tag ch as the construct's own body brace the first time a
	// Brace2/BraceDo-stage construct sees one; a nested, unrelated brace
	// inside an already-open body must stay untagged.
	top, awaited := c.topCS()
	consumesBody := awaited && (top.Stage == stage.Brace2 || top.Stage == stage.BraceDo) && top.RealBodyOpen == nil
	if consumesBody {
		ch.ParentType = top.Keyword
		switch ch.ParentType {
		case token.Namespace:
			c.enterNamespace()
		case token.Switch:
			c.enterSwitch(top.Anchor)
		}
	} else {
		c.reclassifyBraceOpen(ch)
	}
	c.current.Push(frame.StackEntry{
		Open: ch, OpenType: token.BraceOpen, ParentType: ch.ParentType,
		Level: c.current.Level, BraceLevel: c.current.BraceLevel,
	})
	c.current.Level++
	c.current.BraceLevel++
	if consumesBody {
		top.RealBodyOpen = ch
		c.setTopCS(top)
	}
	return nil
}

func (c *context) closeBrace(ch *token.Chunk) *AbortError {
	if c.current.Depth() == 0 {
		return abortf(ch.Pos, "unmatched }")
	}
	popped := c.current.Pop()
	if popped.OpenType != token.BraceOpen && !c.inPreprocLine {
		c.diags.Warnf(ch.Pos, "unexpected } matching %s", popped.OpenType)
	}
	pairBrackets(popped.Open, ch)
	if popped.Open.Pos.Line != ch.Pos.Line {
		popped.Open.Flags = popped.Open.Flags.Set(token.LongBlock)
		ch.Flags = ch.Flags.Set(token.LongBlock)
	}
	c.current.Level--
	c.current.BraceLevel--
	switch popped.ParentType {
	case token.Namespace:
		c.leaveNamespace()
	case token.Switch:
		c.leaveSwitch()
	}

	top, ok := c.topCS()
	if !ok || top.RealBodyOpen != popped.Open {
		return nil
	}
	switch top.Keyword {
	case token.Do:
		top.Stage = stage.While
		c.setTopCS(top)
	default:
		c.popCS()
	}
	return nil
}

func (c *context) closeSimple(ch *token.Chunk, wantOpen, closeType token.TokenType) *AbortError {
	if c.current.Depth() == 0 {
		return abortf(ch.Pos, "unmatched %s", closeType)
	}
	popped := c.current.Pop()
	if popped.OpenType != wantOpen && !c.inPreprocLine {
		c.diags.Warnf(ch.Pos, "unexpected %s matching %s", closeType, popped.OpenType)
	}
	ch.Type = closeType
	pairBrackets(popped.Open, ch)
	c.current.Level--
	return nil
}

// maybeOpenVirtualBody synthesizes a VBRACE_OPEN before ch when ch is the
// first real chunk of a complex statement's body and that body isn't
// introduced by a real brace.
func (c *context) maybeOpenVirtualBody(ch *token.Chunk) {
	if !c.opts.AddVirtualBraces {
		return
	}
	top, ok := c.topCS()
	if !ok || top.Stage != stage.Brace2 || top.VOpen != nil || top.RealBodyOpen != nil || ch.Type == token.BraceOpen {
		return
	}
	if top.Keyword == token.Namespace {
		// A namespace body is never a bare unbraced statement; the
		// intervening name token (if any) before the brace isn't a body.
		return
	}
	open := c.insertVBraceOpen(ch)
	c.current.Push(frame.StackEntry{
		Open: open, OpenType: token.VBraceOpen, ParentType: top.Keyword,
		Level: c.current.Level, BraceLevel: c.current.BraceLevel,
	})
	c.current.Level++
	c.current.BraceLevel++
	top.VOpen = open
	top.VDepth = c.current.Level
	c.setTopCS(top)
}

// endStatement closes any virtual body whose single statement just ended
// at ch, cascading outward through directly-nested unbraced complex
// statements (e.g. "if (a) if (b) foo();" closes both on one semicolon).
func (c *context) endStatement(ch *token.Chunk) *AbortError {
	for {
		top, ok := c.topCS()
		if !ok || top.VOpen == nil || top.VDepth != c.current.Level {
			break
		}
		vclose := c.insertVBraceClose(ch)
		popped := c.current.Pop()
		pairBrackets(popped.Open, vclose)
		c.current.Level--
		c.current.BraceLevel--
		if top.Keyword == token.Namespace {
			c.leaveNamespace()
		}
		c.popCS()
	}
	if top, ok := c.topCS(); ok && top.Stage == stage.WODSemi {
		c.popCS()
	}
	return nil
}

func (c *context) handleDirective(d *token.Chunk) *AbortError {
	switch d.Type {
	case token.PPIf, token.PPIfdef, token.PPIfndef:
		c.ppLevel++
		if c.ppLevel > c.opts.MaxPreprocDepth {
			return abortf(d.Pos, "preprocessor nesting exceeds max depth %d", c.opts.MaxPreprocDepth)
		}
		c.frames.Push(c.current.Clone())
	case token.PPElse, token.PPElif, token.PPElifdef, token.PPElifndef:
		top := c.frames.Top()
		if top == nil {
			c.diags.Warnf(d.Pos, "%s without matching #if", d.Type)
			return nil
		}
		c.frames.PushUnder(c.current.Clone())
		c.current = top.Clone()
	case token.PPEndif:
		c.ppLevel--
		if popped := c.frames.Pop(); popped == nil {
			c.diags.Warnf(d.Pos, "#endif without matching #if")
		}
		// current is left intact: the sweep continues from wherever the
		// branch that was active at #endif left off.
	case token.PPDefine:
		c.frames.Push(c.current)
		defineFrame := frame.New()
		defineFrame.Level = 1
		defineFrame.BraceLevel = 1
		defineFrame.Push(frame.StackEntry{OpenType: token.PPDefineSentinel})
		c.current = defineFrame
		c.inDefine = true
	}
	return nil
}

func (c *context) endDefine(newlinePos token.Cursor) {
	if !c.inDefine {
		return
	}
	if c.current.BraceLevel != 1 {
		c.diags.Warnf(newlinePos, "unbalanced braces in macro body")
	}
	if restored := c.frames.Pop(); restored != nil {
		c.current = restored
	}
	c.inDefine = false
}

