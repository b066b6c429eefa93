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

func TestOpenerCloserPairsRoundTrip(t *testing.T) {
	pairs := []struct {
		opener, closer TokenType
	}{
		{BraceOpen, BraceClose},
		{VBraceOpen, VBraceClose},
		{ParenOpen, ParenClose},
		{SparenOpen, SparenClose},
		{FparenOpen, FparenClose},
		{SquareOpen, SquareClose},
		{MacroOpen, MacroClose},
	}
	for _, p := range pairs {
		t.Run(p.opener.String(), func(t *testing.T) {
			closer, ok := p.opener.Closer()
			assert.True(t, ok)
			assert.Equal(t, p.closer, closer)

			opener, ok := p.closer.Opener()
			assert.True(t, ok)
			assert.Equal(t, p.opener, opener)

			assert.True(t, p.opener.IsOpener())
			assert.True(t, p.closer.IsCloser())
			assert.True(t, p.opener.Matches(p.closer))
		})
	}
}

func TestMatchesRejectsMismatchedPair(t *testing.T) {
	assert.False(t, BraceOpen.Matches(ParenClose))
	assert.False(t, ParenOpen.Matches(BraceClose))
}

func TestNonBracketTypesAreNeitherOpenerNorCloser(t *testing.T) {
	assert.False(t, Word.IsOpener())
	assert.False(t, Word.IsCloser())
	assert.False(t, If.IsOpener())
}

func TestIsAnyParenOpenCoversAllThreeParenKinds(t *testing.T) {
	for _, ty := range []TokenType{ParenOpen, SparenOpen, FparenOpen} {
		assert.True(t, ty.IsAnyParenOpen(), ty.String())
	}
	assert.False(t, BraceOpen.IsAnyParenOpen())
}

func TestStringFallsBackToUnknown(t *testing.T) {
	assert.Equal(t, "UNKNOWN", TokenType(-1).String())
	assert.Equal(t, "WORD", Word.String())
}
