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
	"github.com/hashicorp/go-hclog"

	"github.com/bracefmt/bracefmt"
)

// runFile is the one place every subcommand calls into the library, so
// bracefmt.AbortError surfaces to main's exitCodeFor unchanged.
func runFile(path string, opts bracefmt.Options, log hclog.Logger) (*bracefmt.Result, error) {
	return bracefmt.RunFile(path, opts, log)
}
