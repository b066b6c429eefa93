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

package token

import "fmt"

// Chunk is one token in the annotated stream: the text the lexer saw, the
// type classification has settled on, and the structural bookkeeping the
// cleanup driver needs (nesting level, the enclosing brace level, and a
// matching-bracket backlink once a pair closes).
//
// A Chunk is always a member of exactly one List and is never copied by
// value once inserted; all navigation goes through pointers so that
// MatchingBracket backlinks stay valid.
type Chunk struct {
	Type TokenType
	Text string
	Pos  Cursor
	Flags

	// Level is the brace+paren nesting depth, incremented by every opener
	// (real or virtual, paren or brace) and decremented by every closer.
	Level int
	// BraceLevel is the brace-only nesting depth: incremented/decremented
	// only by brace and vbrace pairs, not parens.
	BraceLevel int
	// PPLevel is the #if/#ifdef/#ifndef nesting depth at this chunk,
	// independent of Level and BraceLevel.
	PPLevel int

	// ParentType records the complex-statement keyword a brace or paren
	// pair belongs to, e.g. a BraceOpen whose ParentType is If.
	ParentType TokenType

	// Parent is a back-pointer to another chunk this one is logically
	// attached to, independent of bracket nesting: a Case, Default, or
	// Break stamps Parent to the Switch keyword chunk of its nearest
	// enclosing switch body.
	Parent *Chunk

	// MatchingBracket links an opener to its closer and back, set once the
	// pair is popped off the bracket stack. Nil until then.
	MatchingBracket *Chunk

	next, prev *Chunk
	list       *List
}

func (c *Chunk) String() string {
	if c == nil {
		return "<nil-chunk>"
	}
	return fmt.Sprintf("%s(%q)@%s", c.Type, c.Text, c.Pos)
}

// Next returns the chunk following c, or nil at the end of the list. Nil-safe:
// calling Next on a nil Chunk returns nil.
func (c *Chunk) Next() *Chunk {
	if c == nil {
		return nil
	}
	return c.next
}

// Prev returns the chunk preceding c, or nil at the start of the list.
// Nil-safe.
func (c *Chunk) Prev() *Chunk {
	if c == nil {
		return nil
	}
	return c.prev
}

// IsFormatting reports whether c is whitespace, a newline, a comment, or a
// line continuation: the chunk kinds the main sweep skips over because they
// carry no structural meaning, only presentation.
func (c *Chunk) IsFormatting() bool {
	if c == nil {
		return false
	}
	switch c.Type {
	case Whitespace, Newline, CommentSingleLine, CommentMultiLine, ContinueLine:
		return true
	}
	return false
}

// NextReal returns the first non-formatting chunk after c, or nil.
func (c *Chunk) NextReal() *Chunk {
	for n := c.Next(); n != nil; n = n.Next() {
		if !n.IsFormatting() {
			return n
		}
	}
	return nil
}

// PrevReal returns the first non-formatting chunk before c, or nil.
func (c *Chunk) PrevReal() *Chunk {
	for p := c.Prev(); p != nil; p = p.Prev() {
		if !p.IsFormatting() {
			return p
		}
	}
	return nil
}

// NextNC returns the first following chunk that isn't a comment (but may be
// whitespace or a newline), or nil.
func (c *Chunk) NextNC() *Chunk {
	for n := c.Next(); n != nil; n = n.Next() {
		if n.Type != CommentSingleLine && n.Type != CommentMultiLine {
			return n
		}
	}
	return nil
}

// PrevNC returns the first preceding chunk that isn't a comment, or nil.
func (c *Chunk) PrevNC() *Chunk {
	for p := c.Prev(); p != nil; p = p.Prev() {
		if p.Type != CommentSingleLine && p.Type != CommentMultiLine {
			return p
		}
	}
	return nil
}

// IsNil reports whether c is nil or the zero-value EOF sentinel, letting
// callers treat "off the end of the list" and "explicit EOF chunk"
// uniformly.
func (c *Chunk) IsNil() bool {
	return c == nil || c.Type == EOF
}

// List is a doubly-linked list of Chunks with O(1) append, insert, and
// unlink. The zero value is an empty, usable list.
type List struct {
	head, tail *Chunk
	size       int
}

// Head returns the first chunk in l, or nil if l is empty.
func (l *List) Head() *Chunk { return l.head }

// Tail returns the last chunk in l, or nil if l is empty.
func (l *List) Tail() *Chunk { return l.tail }

// Len returns the number of chunks in l.
func (l *List) Len() int { return l.size }

// PushBack appends c to the end of l. c must not already belong to a list.
func (l *List) PushBack(c *Chunk) {
	if c.list != nil {
		panic("token: chunk already belongs to a list")
	}
	c.list = l
	c.prev = l.tail
	c.next = nil
	if l.tail != nil {
		l.tail.next = c
	} else {
		l.head = c
	}
	l.tail = c
	l.size++
}

// InsertAfter inserts newChunk immediately after at. If at is nil, newChunk
// is pushed to the front of l.
func (l *List) InsertAfter(newChunk, at *Chunk) {
	if newChunk.list != nil {
		panic("token: chunk already belongs to a list")
	}
	newChunk.list = l
	if at == nil {
		newChunk.prev = nil
		newChunk.next = l.head
		if l.head != nil {
			l.head.prev = newChunk
		} else {
			l.tail = newChunk
		}
		l.head = newChunk
		l.size++
		return
	}
	newChunk.prev = at
	newChunk.next = at.next
	if at.next != nil {
		at.next.prev = newChunk
	} else {
		l.tail = newChunk
	}
	at.next = newChunk
	l.size++
}

// InsertBefore inserts newChunk immediately before at. If at is nil,
// newChunk is appended to the end of l.
func (l *List) InsertBefore(newChunk, at *Chunk) {
	if at == nil {
		l.PushBack(newChunk)
		return
	}
	l.InsertAfter(newChunk, at.prev)
}

// Remove unlinks c from l. c must belong to l.
func (l *List) Remove(c *Chunk) {
	if c.list != l {
		panic("token: chunk does not belong to this list")
	}
	if c.prev != nil {
		c.prev.next = c.next
	} else {
		l.head = c.next
	}
	if c.next != nil {
		c.next.prev = c.prev
	} else {
		l.tail = c.prev
	}
	c.next, c.prev, c.list = nil, nil, nil
	l.size--
}

// All returns an iterator over every chunk in l from head to tail. Safe to
// use with range-over-func (Go 1.23+).
func (l *List) All() func(yield func(*Chunk) bool) {
	return func(yield func(*Chunk) bool) {
		for c := l.head; c != nil; c = c.next {
			if !yield(c) {
				return
			}
		}
	}
}
