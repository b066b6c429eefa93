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
	"fmt"
	"strings"
	"unicode/utf8"
)

// Cursor is a position in the original source, 1-based for both Line and
// Column since that is what error messages and editors expect.
type Cursor struct {
	Line, Column int
}

var (
	// CursorInit is the position of the first character of a file.
	CursorInit = Cursor{Line: 1, Column: 1}
	// CursorEOF is the sentinel cursor value of a synthesized or unknown position.
	CursorEOF = Cursor{}
)

func (c Cursor) String() string {
	if c == CursorEOF {
		return "EOF"
	}
	return fmt.Sprintf("%d:%d", c.Line, c.Column)
}

// AdvancedBy returns a new Cursor advanced past lookAhead, which is assumed to
// start at c. Newlines increment Line and reset Column; anything else only
// advances Column.
func (c Cursor) AdvancedBy(lookAhead string) Cursor {
	newlines := strings.Count(lookAhead, "\n")
	tailBegin := 1 + strings.LastIndex(lookAhead, "\n")
	tailLength := utf8.RuneCountInString(lookAhead[tailBegin:])

	if newlines == 0 {
		c.Column += tailLength
	} else {
		c.Line += newlines
		c.Column = 1 + tailLength
	}
	return c
}
