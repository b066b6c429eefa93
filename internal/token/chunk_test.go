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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushBackAndNavigation(t *testing.T) {
	l := &List{}
	a := &Chunk{Type: Word, Text: "a"}
	b := &Chunk{Type: Whitespace, Text: " "}
	c := &Chunk{Type: Word, Text: "c"}
	l.PushBack(a)
	l.PushBack(b)
	l.PushBack(c)

	assert.Equal(t, 3, l.Len())
	assert.Same(t, a, l.Head())
	assert.Same(t, c, l.Tail())
	assert.Same(t, b, a.Next())
	assert.Same(t, a, b.Prev())
	assert.Nil(t, c.Next())
	assert.Nil(t, a.Prev())
}

func TestNextRealSkipsFormattingChunks(t *testing.T) {
	l := &List{}
	a := &Chunk{Type: Word, Text: "a"}
	ws := &Chunk{Type: Whitespace, Text: " "}
	nl := &Chunk{Type: Newline, Text: "\n"}
	b := &Chunk{Type: Word, Text: "b"}
	l.PushBack(a)
	l.PushBack(ws)
	l.PushBack(nl)
	l.PushBack(b)

	assert.Same(t, b, a.NextReal())
	assert.Same(t, a, b.PrevReal())
}

func TestNextNCSkipsCommentsOnly(t *testing.T) {
	l := &List{}
	a := &Chunk{Type: Word, Text: "a"}
	comment := &Chunk{Type: CommentSingleLine, Text: "// x"}
	ws := &Chunk{Type: Whitespace, Text: " "}
	l.PushBack(a)
	l.PushBack(comment)
	l.PushBack(ws)

	assert.Same(t, ws, a.NextNC())
}

func TestInsertAfterAndBefore(t *testing.T) {
	l := &List{}
	a := &Chunk{Type: Word, Text: "a"}
	c := &Chunk{Type: Word, Text: "c"}
	l.PushBack(a)
	l.PushBack(c)

	b := &Chunk{Type: Word, Text: "b"}
	l.InsertAfter(b, a)
	assert.Equal(t, []string{"a", "b", "c"}, collectText(l))

	front := &Chunk{Type: Word, Text: "front"}
	l.InsertBefore(front, a)
	assert.Equal(t, []string{"front", "a", "b", "c"}, collectText(l))
}

func TestRemoveUnlinksChunk(t *testing.T) {
	l := &List{}
	a := &Chunk{Type: Word, Text: "a"}
	b := &Chunk{Type: Word, Text: "b"}
	c := &Chunk{Type: Word, Text: "c"}
	l.PushBack(a)
	l.PushBack(b)
	l.PushBack(c)

	l.Remove(b)
	assert.Equal(t, []string{"a", "c"}, collectText(l))
	assert.Equal(t, 2, l.Len())
	assert.Nil(t, b.Next())
	assert.Nil(t, b.Prev())
}

func TestPushBackOfChunkAlreadyInAListPanics(t *testing.T) {
	l := &List{}
	a := &Chunk{Type: Word, Text: "a"}
	l.PushBack(a)

	other := &List{}
	assert.Panics(t, func() { other.PushBack(a) })
}

func TestAllIteratesInOrder(t *testing.T) {
	l := &List{}
	l.PushBack(&Chunk{Type: Word, Text: "a"})
	l.PushBack(&Chunk{Type: Word, Text: "b"})

	var texts []string
	for c := range l.All() {
		texts = append(texts, c.Text)
	}
	assert.Equal(t, []string{"a", "b"}, texts)
}

func TestAllStopsOnFalseYield(t *testing.T) {
	l := &List{}
	l.PushBack(&Chunk{Type: Word, Text: "a"})
	l.PushBack(&Chunk{Type: Word, Text: "b"})
	l.PushBack(&Chunk{Type: Word, Text: "c"})

	var seen []string
	for c := range l.All() {
		seen = append(seen, c.Text)
		if c.Text == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestIsNilTreatsEOFAsNil(t *testing.T) {
	var nilChunk *Chunk
	assert.True(t, nilChunk.IsNil())
	assert.True(t, (&Chunk{Type: EOF}).IsNil())
	assert.False(t, (&Chunk{Type: Word}).IsNil())
}

func TestChunkStringOnNilIsSafe(t *testing.T) {
	var c *Chunk
	require.NotPanics(t, func() { _ = c.String() })
	assert.Equal(t, "<nil-chunk>", c.String())
}

func collectText(l *List) []string {
	var out []string
	for c := range l.All() {
		out = append(out, c.Text)
	}
	return out
}
