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

// Package lexer turns C-family source bytes into an annotated token.List:
// a byte-dispatch scanner classifies the raw lexemes, and a second pass
// reclassifies bare identifiers into the keywords the cleanup driver's
// state machine actually branches on.
package lexer

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/bracefmt/bracefmt/internal/lang"
	"github.com/bracefmt/bracefmt/internal/token"
)

var (
	reContinueLine   = regexp.MustCompile(`^\\[\t\v\f\r ]*\n`)
	reLiteralInteger = regexp.MustCompile(`^(?i:0x[0-9a-f]+|0b[01]+|0[0-7]*|[1-9][0-9]*)`)
	reLiteralString  = regexp.MustCompile(`^"(?:[^"\\\n]|\\.)*"`)
	reIdentifier     = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)
	reTokenBeginning = regexp.MustCompile(`[\s\\"/#{}[\],();\w]`)

	preprocessorDirectives = []struct {
		keyword string
		typ     token.TokenType
	}{
		// longer keywords first, so "include_next" isn't shadowed by "include".
		{"include_next", token.PPIncludeNext},
		{"elifndef", token.PPElifndef},
		{"elifdef", token.PPElifdef},
		{"include", token.PPInclude},
		{"define", token.PPDefine},
		{"ifndef", token.PPIfndef},
		{"endif", token.PPEndif},
		{"ifdef", token.PPIfdef},
		{"undef", token.PPUndef},
		{"pragma", token.PPPragma},
		{"elif", token.PPElif},
		{"else", token.PPElse},
		{"if", token.PPIf},
	}
)

// Lexer is a single-pass byte scanner over one file's contents.
type Lexer struct {
	data   []byte
	cursor token.Cursor
}

// New returns a Lexer over source.
func New(source []byte) *Lexer {
	return &Lexer{data: source, cursor: token.CursorInit}
}

func findNonWhitespace(data []byte) int {
	for i, b := range data {
		if !strings.ContainsAny(string(b), " \t\v\f\r") {
			return i
		}
	}
	return len(data)
}

type lexeme struct {
	typ    token.TokenType
	length int
}

func (lx *Lexer) consume(lxm lexeme) *token.Chunk {
	text := string(lx.data[:lxm.length])
	c := &token.Chunk{Type: lxm.typ, Text: text, Pos: lx.cursor}
	lx.data = lx.data[lxm.length:]
	lx.cursor = lx.cursor.AdvancedBy(text)
	return c
}

// Next returns the next raw chunk, or nil at end of input. Bracket types
// are all generic at this point (ParenOpen, not yet SparenOpen/FparenOpen);
// reclassification happens later, once the cleanup driver knows context.
func (lx *Lexer) Next() *token.Chunk {
	if len(lx.data) == 0 {
		return nil
	}

	lxm := lexeme{typ: token.Unassigned, length: len(lx.data)}

	switch lx.data[0] {
	case '\n':
		lxm = lexeme{token.Newline, 1}
	case '\t', '\v', '\f', '\r', ' ':
		lxm = lexeme{token.Whitespace, findNonWhitespace(lx.data)}
	case '\\':
		if m := reContinueLine.Find(lx.data); m != nil {
			lxm = lexeme{token.ContinueLine, len(m)}
		}
	case '"':
		if m := reLiteralString.Find(lx.data); m != nil {
			lxm = lexeme{token.LiteralString, len(m)}
		}
	case '/':
		if bytes.HasPrefix(lx.data, []byte("//")) {
			end := bytes.IndexByte(lx.data, '\n')
			if end == -1 {
				end = len(lx.data)
			}
			lxm = lexeme{token.CommentSingleLine, end}
		} else if bytes.HasPrefix(lx.data, []byte("/*")) {
			if end := bytes.Index(lx.data, []byte("*/")); end >= 0 {
				lxm = lexeme{token.CommentMultiLine, end + 2}
			}
		}
	case '#':
		begin := findNonWhitespace(lx.data[1:]) + 1
		for _, d := range preprocessorDirectives {
			if bytes.HasPrefix(lx.data[begin:], []byte(d.keyword)) {
				lxm = lexeme{d.typ, begin + len(d.keyword)}
				break
			}
		}
		if lxm.typ == token.Unassigned {
			// Unrecognized directive, e.g. a vendor pragma spelled oddly;
			// treat the '#' line as an opaque directive.
			end := bytes.IndexByte(lx.data, '\n')
			if end == -1 {
				end = len(lx.data)
			}
			lxm = lexeme{token.PPOther, end}
		}
	case '{':
		lxm = lexeme{token.BraceOpen, 1}
	case '}':
		lxm = lexeme{token.BraceClose, 1}
	case '(':
		lxm = lexeme{token.ParenOpen, 1}
	case ')':
		lxm = lexeme{token.ParenClose, 1}
	case '[':
		lxm = lexeme{token.SquareOpen, 1}
	case ']':
		lxm = lexeme{token.SquareClose, 1}
	case ';':
		lxm = lexeme{token.Semicolon, 1}
	case ',':
		lxm = lexeme{token.Comma, 1}
	case '=':
		lxm = lexeme{token.Assign, 1}
	default:
		if m := reIdentifier.Find(lx.data); m != nil {
			lxm = lexeme{token.Word, len(m)}
		} else if m := reLiteralInteger.Find(lx.data); m != nil {
			lxm = lexeme{token.LiteralInteger, len(m)}
		}
	}

	if lxm.typ == token.Unassigned {
		if begin := reTokenBeginning.FindIndex(lx.data[1:]); begin != nil {
			lxm.length = 1 + begin[0]
		}
		lxm.typ = token.Word
	}

	return lx.consume(lxm)
}

// Lex scans source fully, classifies keywords for l, and returns the
// resulting token.List. This is the primary entry point downstream
// packages use instead of driving Lexer directly.
func Lex(source []byte, l lang.Language) *token.List {
	lx := New(source)
	list := &token.List{}
	for c := lx.Next(); c != nil; c = lx.Next() {
		if c.Type == token.Word {
			c.Type = lookupKeyword(l, c.Text)
		}
		list.PushBack(c)
	}
	classifyFunctionIdentifiers(list)
	return list
}

// classifyFunctionIdentifiers retypes a bare Word immediately followed by
// '(' into Function: the cleanup driver's paren reclassification keys off
// the previous significant chunk's type to tell a function call or
// declaration's parens apart from a grouping expression's, and it can only
// do that if the identifier introducing them has already been told apart
// from an ordinary Word.
func classifyFunctionIdentifiers(list *token.List) {
	for c := list.Head(); c != nil; c = c.Next() {
		if c.Type != token.Word {
			continue
		}
		if n := c.NextReal(); n != nil && n.Type == token.ParenOpen {
			c.Type = token.Function
		}
	}
}
