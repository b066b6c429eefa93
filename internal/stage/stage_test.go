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

package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bracefmt/bracefmt/internal/token"
)

func TestClassOfKnownKeywords(t *testing.T) {
	cases := []struct {
		kw    token.TokenType
		class PatternClass
	}{
		{token.If, PBraced},
		{token.For, PBraced},
		{token.Do, Braced},
		{token.Volatile, Braced},
		{token.Getset, Braced},
		{token.Else, ElseLike},
		{token.Version, OPBraced},
	}
	for _, c := range cases {
		class, ok := ClassOf(c.kw)
		assert.True(t, ok)
		assert.Equal(t, c.class, class)
	}
}

func TestClassOfUnknownKeyword(t *testing.T) {
	_, ok := ClassOf(token.Return)
	assert.False(t, ok)
}

func TestInitialStage(t *testing.T) {
	assert.Equal(t, Paren1, InitialStage(token.If))
	assert.Equal(t, BraceDo, InitialStage(token.Do))
	assert.Equal(t, Brace2, InitialStage(token.Try))
	assert.Equal(t, Else, InitialStage(token.Else))
	assert.Equal(t, Catch, InitialStage(token.Catch))
	assert.Equal(t, None, InitialStage(token.Return))
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "PAREN1", Paren1.String())
	assert.Equal(t, "UNKNOWN", Stage(999).String())
}
