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

import "github.com/bracefmt/bracefmt/internal/token"

// enterNamespace and leaveNamespace track how many namespace bodies a
// chunk is nested inside, so IN_NAMESPACE can be stamped on every chunk in
// between without re-walking the complex-statement stack to find out.
func (c *context) enterNamespace() {
	c.namespaceDepth++
}

func (c *context) leaveNamespace() {
	if c.namespaceDepth > 0 {
		c.namespaceDepth--
	}
}

// stampNamespaceFlag marks ch as IN_NAMESPACE when Options.IndentNamespaceBody
// is enabled and ch falls inside at least one open namespace body.
func (c *context) stampNamespaceFlag(ch *token.Chunk) {
	if c.opts.IndentNamespaceBody && c.namespaceDepth > 0 {
		ch.Flags = ch.Flags.Set(token.InNamespace)
	}
}
