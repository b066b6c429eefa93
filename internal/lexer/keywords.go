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

package lexer

import (
	"github.com/bracefmt/bracefmt/internal/collections"
	"github.com/bracefmt/bracefmt/internal/lang"
	"github.com/bracefmt/bracefmt/internal/token"
)

// commonKeywords is the set recognized in every dialect.
var commonKeywords = map[string]token.TokenType{
	"if":       token.If,
	"else":     token.Else,
	"for":      token.For,
	"while":    token.While,
	"do":       token.Do,
	"switch":   token.Switch,
	"case":     token.Case,
	"default":  token.Default,
	"break":    token.Break,
	"return":   token.Return,
	"enum":     token.Enum,
	"namespace": token.Namespace,
}

var cppOnlyKeywords = map[string]token.TokenType{
	"try":          token.Try,
	"catch":        token.Catch,
	"constexpr":    token.Constexpr,
	"__declspec":   token.Declspec,
	"__attribute__": token.Attribute,
}

var csharpOnlyKeywords = map[string]token.TokenType{
	"try":     token.Try,
	"catch":   token.Catch,
	"finally": token.Finally,
	"using":   token.UsingStmt,
	"lock":    token.Lock,
	"get":     token.Getset,
	"set":     token.Getset,
	"when":    token.When,
}

var javaOnlyKeywords = map[string]token.TokenType{
	"try":          token.Try,
	"catch":        token.Catch,
	"finally":      token.Finally,
	"synchronized": token.Synchronized,
}

var dOnlyKeywords = map[string]token.TokenType{
	"try":      token.Try,
	"catch":    token.Catch,
	"finally":  token.Finally,
	"version":  token.Version,
	"scope":    token.Scope,
	"body":     token.Body,
	"unittest": token.Unittest,
	"unsafe":   token.Unsafe,
	"volatile": token.Volatile,
}

// keywordSets is a per-language keyword table assembled once at package
// init from shared and per-dialect fragments rather than one giant switch.
var keywordSets map[lang.Language]map[string]token.TokenType

func init() {
	keywordSets = make(map[lang.Language]map[string]token.TokenType, len(lang.All()))
	extra := map[lang.Language]map[string]token.TokenType{
		lang.C:      nil,
		lang.Cpp:    cppOnlyKeywords,
		lang.ObjC:   cppOnlyKeywords,
		lang.CSharp: csharpOnlyKeywords,
		lang.Java:   javaOnlyKeywords,
		lang.D:      dOnlyKeywords,
		lang.Pawn:   nil,
		lang.Vala:   cppOnlyKeywords,
	}
	for _, l := range lang.All() {
		set := make(map[string]token.TokenType, len(commonKeywords))
		for k, v := range commonKeywords {
			set[k] = v
		}
		for k, v := range extra[l] {
			set[k] = v
		}
		keywordSets[l] = set
	}
}

// sparenKeywords is the set of keywords whose following '(' must be
// reclassified to SPAREN_OPEN rather than the default plain ParenOpen: a
// paren whose immediately preceding significant chunk is one of these is a
// statement's condition, not a grouping expression or function call.
var sparenKeywords = collections.SetOf(
	token.If, token.ElseIf, token.For, token.While, token.WhileOfDo, token.Do,
	token.Switch, token.Catch, token.Synchronized, token.Lock, token.UsingStmt,
	token.Constexpr, token.DVersionIf, token.DScopeIf, token.When,
)

// IsSparenKeyword reports whether t introduces a statement-parens construct.
func IsSparenKeyword(t token.TokenType) bool {
	return sparenKeywords.Contains(t)
}

// lookupKeyword classifies word against l's keyword table, returning
// token.Word if word is not a recognized keyword in that dialect.
func lookupKeyword(l lang.Language, word string) token.TokenType {
	if set, ok := keywordSets[l]; ok {
		if t, ok := set[word]; ok {
			return t
		}
	}
	return token.Word
}
