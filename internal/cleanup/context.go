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

	"github.com/bracefmt/bracefmt/internal/frame"
	"github.com/bracefmt/bracefmt/internal/framelist"
	"github.com/bracefmt/bracefmt/internal/lang"
	"github.com/bracefmt/bracefmt/internal/options"
	"github.com/bracefmt/bracefmt/internal/token"
)

// csEntry is one level of the complex-statement stack: the state machine
// tracking how far into "keyword ( cond ) { body }" the sweep has gotten,
// kept as a stack because complex statements nest ("if (a) if (b) { }").
// It is an alias for frame.CSEntry: the stack itself lives on c.current
// (and is snapshotted/restored by #if/#else/#elif/#endif in lockstep with
// the bracket stack), so an in-flight construct straddling a preprocessor
// branch swap doesn't get stranded against a frame it no longer belongs to.
type csEntry = frame.CSEntry

// context carries all per-run mutable state the sweep's helper functions
// need: the current bracket frame (which also carries the complex-statement
// stack), the saved preprocessor frames, and accumulated diagnostics. It is
// deliberately unexported; external callers only see the Result driver.Run
// returns.
type context struct {
	list  *token.List
	opts  options.Options
	hooks lang.Hooks
	diags *Diagnostics

	current *frame.Frame
	frames  *framelist.List

	ppLevel        int
	inDefine       bool
	inPreprocLine  bool
	namespaceDepth int
	sparenDepth    int
	forParenDepth  int
	switchStack    []*token.Chunk
}

func newContext(list *token.List, opts options.Options, log hclog.Logger) *context {
	return &context{
		list:    list,
		opts:    opts,
		hooks:   lang.NewHooks(opts.Language),
		diags:   NewDiagnostics(log),
		current: frame.New(),
		frames:  &framelist.List{},
	}
}

func (c *context) pushCS(e csEntry) {
	c.current.PushCS(e)
}

func (c *context) topCS() (csEntry, bool) {
	return c.current.TopCS()
}

func (c *context) popCS() csEntry {
	return c.current.PopCS()
}

func (c *context) setTopCS(e csEntry) {
	c.current.SetTopCS(e)
}
