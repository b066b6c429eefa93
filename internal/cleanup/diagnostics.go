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
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/bracefmt/bracefmt/internal/token"
)

// Diagnostics accumulates the warnings a sweep produces and logs each one
// as it happens, so a caller tailing logs sees problems as they're found
// rather than only at the end of the run.
type Diagnostics struct {
	log      hclog.Logger
	warnings *multierror.Error
}

// NewDiagnostics returns a Diagnostics that logs through log. A nil log
// uses hclog's default logger.
func NewDiagnostics(log hclog.Logger) *Diagnostics {
	if log == nil {
		log = hclog.Default()
	}
	return &Diagnostics{log: log.Named("cleanup")}
}

// Warn records w and logs it at WARN level.
func (d *Diagnostics) Warn(w Warning) {
	d.log.Warn(w.Msg, "pos", w.Pos.String())
	d.warnings = multierror.Append(d.warnings, w)
}

// Warnf is a convenience wrapper around Warn(warnf(pos, format, args...)).
func (d *Diagnostics) Warnf(pos token.Cursor, format string, args ...any) {
	d.Warn(warnf(pos, format, args...))
}

// Warnings returns the accumulated warnings as an error, or nil if there
// were none. The concrete type is *multierror.Error, so callers that want
// the individual Warning values can type-assert into its Errors field.
func (d *Diagnostics) Warnings() error {
	if d.warnings == nil || len(d.warnings.Errors) == 0 {
		return nil
	}
	return d.warnings
}

// Len reports how many warnings have been recorded.
func (d *Diagnostics) Len() int {
	if d.warnings == nil {
		return 0
	}
	return len(d.warnings.Errors)
}
