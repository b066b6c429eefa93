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

// Package framelist implements the snapshot/restore stack that lets the
// cleanup driver keep parsing sanely across preprocessor conditionals.
// Each #if/#ifdef/#ifndef/#else/#elif/#endif/#define pushes or pops a
// snapshot of the current frame.Frame so that a bracket opened in one
// branch doesn't have to be balanced by the same branch.
package framelist

import "github.com/bracefmt/bracefmt/internal/frame"

// List is a stack of saved frames, independent from the single "current"
// frame the driver is actively mutating.
type List struct {
	frames []*frame.Frame
}

// Push appends f to the top of the list.
func (l *List) Push(f *frame.Frame) {
	l.frames = append(l.frames, f)
}

// Pop removes and returns the top of the list. Pop of an empty list
// returns nil, which callers treat as the unbalanced-preprocessor warning
// case, not a panic: an empty #endif without matching #if is
// typo-controlled input, not a contract violation.
func (l *List) Pop() *frame.Frame {
	if len(l.frames) == 0 {
		return nil
	}
	top := l.frames[len(l.frames)-1]
	l.frames = l.frames[:len(l.frames)-1]
	return top
}

// Top returns the frame at the top of the list without removing it, or nil
// if the list is empty.
func (l *List) Top() *frame.Frame {
	if len(l.frames) == 0 {
		return nil
	}
	return l.frames[len(l.frames)-1]
}

// PushUnder inserts f immediately below the current top, leaving the
// existing top in place above it. This is the operation #else/#elif use:
// the pre-#if snapshot stays on top (so it can be copied back out as the
// branch's starting state), while the branch that just ended is tucked
// underneath it.
//
// Even a single #else leaves the ended branch's frame buried under the
// restored pre-#if snapshot once #endif pops that snapshot back off: the
// branch frame is never popped by anything. A chain of three or more
// #elif branches compounds this, burying one more frame per branch; the
// single #endif pop only removes the top entry. That is the snapshot
// table's literal behavior, not a bug this package works around.
func (l *List) PushUnder(f *frame.Frame) {
	if len(l.frames) == 0 {
		l.Push(f)
		return
	}
	n := len(l.frames)
	l.frames = append(l.frames, nil)
	l.frames[n] = l.frames[n-1]
	l.frames[n-1] = f
}

// Len returns the number of frames currently saved.
func (l *List) Len() int {
	return len(l.frames)
}
