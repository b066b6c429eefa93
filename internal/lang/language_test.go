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

package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValid(t *testing.T) {
	for _, l := range All() {
		parsed, err := Parse(string(l))
		assert.NoError(t, err)
		assert.Equal(t, l, parsed)
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	_, err := Parse("brainfuck")
	assert.Error(t, err)
}

func TestHasSparenlessFor(t *testing.T) {
	assert.True(t, Java.HasSparenlessFor())
	assert.True(t, CSharp.HasSparenlessFor())
	assert.False(t, C.HasSparenlessFor())
}

func TestHasUsingStatement(t *testing.T) {
	assert.True(t, CSharp.HasUsingStatement())
	assert.False(t, Cpp.HasUsingStatement())
}

func TestDialectPredicates(t *testing.T) {
	assert.True(t, D.IsD())
	assert.True(t, Pawn.IsPawn())
	assert.False(t, C.IsD())
}
