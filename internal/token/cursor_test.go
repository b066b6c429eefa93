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
)

func TestAdvancedByWithinOneLine(t *testing.T) {
	got := CursorInit.AdvancedBy("abc")
	assert.Equal(t, Cursor{Line: 1, Column: 4}, got)
}

func TestAdvancedByAcrossNewlines(t *testing.T) {
	got := CursorInit.AdvancedBy("ab\ncd\nef")
	assert.Equal(t, Cursor{Line: 3, Column: 3}, got)
}

func TestAdvancedByTrailingNewline(t *testing.T) {
	got := CursorInit.AdvancedBy("abc\n")
	assert.Equal(t, Cursor{Line: 2, Column: 1}, got)
}

func TestCursorStringFormatsLineColumn(t *testing.T) {
	assert.Equal(t, "1:1", CursorInit.String())
	assert.Equal(t, "EOF", CursorEOF.String())
}
