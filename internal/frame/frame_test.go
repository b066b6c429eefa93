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

package frame

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/bracefmt/bracefmt/internal/stage"
	"github.com/bracefmt/bracefmt/internal/token"
)

func TestNewFrameHasEOFSentinel(t *testing.T) {
	f := New()
	assert.Equal(t, token.EOF, f.Top().OpenType)
	assert.Equal(t, 0, f.Depth())
}

func TestPushPopRoundTrips(t *testing.T) {
	f := New()
	f.Push(StackEntry{OpenType: token.BraceOpen, Level: 1})
	assert.Equal(t, 1, f.Depth())
	assert.Equal(t, token.BraceOpen, f.Top().OpenType)

	popped := f.Pop()
	assert.Equal(t, token.BraceOpen, popped.OpenType)
	assert.Equal(t, 0, f.Depth())
}

func TestPopOfSentinelPanics(t *testing.T) {
	f := New()
	assert.Panics(t, func() { f.Pop() })
}

func TestPrevReturnsEnclosingEntry(t *testing.T) {
	f := New()
	f.Push(StackEntry{OpenType: token.SparenOpen})
	f.Push(StackEntry{OpenType: token.BraceOpen})
	assert.Equal(t, token.SparenOpen, f.Prev().OpenType)
}

func TestCloneIsIndependent(t *testing.T) {
	f := New()
	f.Push(StackEntry{OpenType: token.BraceOpen})
	clone := f.Clone()
	clone.Push(StackEntry{OpenType: token.ParenOpen})

	assert.Equal(t, 1, f.Depth())
	assert.Equal(t, 2, clone.Depth())
}

func stackOf(f *Frame) []StackEntry {
	entries := make([]StackEntry, f.Depth()+1)
	for i := range entries {
		entries[i] = f.At(i)
	}
	return entries
}

func TestCloneMatchesOriginalBeforeDivergingMutation(t *testing.T) {
	f := New()
	f.Push(StackEntry{OpenType: token.SparenOpen, ParentType: token.If, Level: 1})
	f.Push(StackEntry{OpenType: token.BraceOpen, ParentType: token.If, Level: 2, BraceLevel: 1})
	clone := f.Clone()

	if diff := cmp.Diff(stackOf(f), stackOf(clone), cmpopts.IgnoreFields(StackEntry{}, "Open")); diff != "" {
		t.Fatalf("clone diverged from original before any mutation (-want +got):\n%s", diff)
	}

	clone.Pop()
	if diff := cmp.Diff(stackOf(f), stackOf(clone), cmpopts.IgnoreFields(StackEntry{}, "Open")); diff == "" {
		t.Fatal("expected clone's stack to diverge from original after popping the clone, got no diff")
	}
}

func TestCloneCarriesComplexStatementStackIndependently(t *testing.T) {
	f := New()
	f.PushCS(CSEntry{Stage: stage.Paren1, Keyword: token.If})
	clone := f.Clone()

	top, ok := clone.TopCS()
	assert.True(t, ok)
	assert.Equal(t, token.If, top.Keyword)

	clone.PopCS()
	_, ok = clone.TopCS()
	assert.False(t, ok)

	_, ok = f.TopCS()
	assert.True(t, ok, "popping the clone's CS stack must not affect the original")
}
