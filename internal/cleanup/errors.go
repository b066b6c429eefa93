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

package cleanup

import (
	"fmt"

	"github.com/bracefmt/bracefmt/internal/token"
)

// ExitCodeAbort is the process exit code a caller should surface when Run
// returns an *AbortError: a common convention for software errors
// (EX_SOFTWARE), kept here so cmd/bracefmt doesn't have to invent its own
// number.
const ExitCodeAbort = 70

// AbortError is returned when the sweep hits a structural problem it
// cannot recover from by warning and continuing: an unmatched bracket at
// end of file, or preprocessor nesting deeper than Options.MaxPreprocDepth.
// It is distinct from a recoverable Warning, which is collected and
// returned alongside a successful result.
type AbortError struct {
	Pos token.Cursor
	Msg string
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func abortf(pos token.Cursor, format string, args ...any) *AbortError {
	return &AbortError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Warning is a recoverable diagnostic: something looked off (an unbalanced
// #else, a closer that didn't match the expected opener type) but the
// sweep could make a reasonable choice and continue.
type Warning struct {
	Pos token.Cursor
	Msg string
}

func (w Warning) Error() string {
	return fmt.Sprintf("%s: %s", w.Pos, w.Msg)
}

func warnf(pos token.Cursor, format string, args ...any) Warning {
	return Warning{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
