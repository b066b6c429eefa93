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

import "github.com/bracefmt/bracefmt/internal/token"

// insertVBraceOpen synthesizes a VBRACE_OPEN immediately before anchor, the
// first real chunk of an unbraced single-statement body. Its Pos and
// copyable Flags are taken from anchor so it reads, to anything walking
// the list, like it was always there.
func (c *context) insertVBraceOpen(anchor *token.Chunk) *token.Chunk {
	open := &token.Chunk{
		Type:  token.VBraceOpen,
		Text:  "",
		Pos:   anchor.Pos,
		Flags: anchor.Flags.Copyable(),
	}
	c.list.InsertBefore(open, anchor)
	return open
}

// insertVBraceClose synthesizes a VBRACE_CLOSE immediately after the last
// real chunk of an unbraced body. Trailing whitespace and comments on the
// same line are walked past first so the virtual closer lands after them;
// the walk stops before the next newline.
func (c *context) insertVBraceClose(lastBodyChunk *token.Chunk) *token.Chunk {
	insertAfter := lastBodyChunk
	for n := insertAfter.Next(); n != nil && n.IsFormatting() && n.Type != token.Newline; n = insertAfter.Next() {
		insertAfter = n
	}
	close := &token.Chunk{
		Type:  token.VBraceClose,
		Text:  "",
		Pos:   lastBodyChunk.Pos,
		Flags: lastBodyChunk.Flags.Copyable(),
	}
	c.list.InsertAfter(close, insertAfter)
	return close
}

// insertVSemicolon synthesizes a SEMICOLON after the last chunk of a
// statement that a semicolon-optional dialect (Pawn) allowed to omit one,
// using the same rewind-past-trailing-formatting rule as insertVBraceClose
// so the semicolon attaches to the statement, not to whatever comment
// follows it on the same line.
func (c *context) insertVSemicolon(lastStmtChunk *token.Chunk) *token.Chunk {
	insertAfter := lastStmtChunk
	for n := insertAfter.Next(); n != nil && n.IsFormatting() && n.Type != token.Newline; n = insertAfter.Next() {
		insertAfter = n
	}
	semi := &token.Chunk{
		Type:  token.Semicolon,
		Text:  "",
		Pos:   lastStmtChunk.Pos,
		Flags: lastStmtChunk.Flags.Copyable(),
	}
	c.list.InsertAfter(semi, insertAfter)
	return semi
}

// pairBrackets records the matching-bracket backlink between an opener and
// its closer (real or virtual alike) and propagates the opener's
// ParentType onto the closer.
func pairBrackets(opener, closer *token.Chunk) {
	opener.MatchingBracket = closer
	closer.MatchingBracket = opener
	closer.ParentType = opener.ParentType
}
