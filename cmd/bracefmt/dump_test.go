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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRunDumpAnnotatesUnbracedIf(t *testing.T) {
	path := writeTemp(t, "f.cc", "if (x) foo();")
	var buf bytes.Buffer

	flags := sharedFlags{language: "cpp"}
	require.NoError(t, runDump(&buf, path, &flags))
	assert.Contains(t, buf.String(), "VBRACE_OPEN")
	assert.Contains(t, buf.String(), "VBRACE_CLOSE")
}

func TestRunDumpRejectsUnknownLanguage(t *testing.T) {
	path := writeTemp(t, "f.cc", "int x;")
	var buf bytes.Buffer

	flags := sharedFlags{language: "brainfuck"}
	err := runDump(&buf, path, &flags)
	assert.Error(t, err)
}

func TestRunCheckReportsUnmatchedBrace(t *testing.T) {
	path := writeTemp(t, "f.cc", "void f() {")
	var buf bytes.Buffer

	flags := sharedFlags{language: "cpp"}
	err := runCheck(&buf, path, &flags, false)
	require.Error(t, err)
	assert.Equal(t, 70, exitCodeFor(err))
}

func TestRunCheckStrictFailsOnWarnings(t *testing.T) {
	path := writeTemp(t, "f.cc", "#endif\nint x;\n")
	var buf bytes.Buffer

	flags := sharedFlags{language: "cpp"}
	err := runCheck(&buf, path, &flags, true)
	require.Error(t, err)
	assert.Equal(t, 1, exitCodeFor(err))
}
