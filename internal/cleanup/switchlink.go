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

// enterSwitch and leaveSwitch track the chunks of currently-open switch
// bodies, nearest last, so a case/default/break can be linked to its
// immediately enclosing switch without re-walking the complex-statement
// stack to find it.
func (c *context) enterSwitch(keyword *token.Chunk) {
	c.switchStack = append(c.switchStack, keyword)
}

func (c *context) leaveSwitch() {
	if len(c.switchStack) > 0 {
		c.switchStack = c.switchStack[:len(c.switchStack)-1]
	}
}

// stampSwitchParent links ch to its nearest enclosing switch: Parent always
// points at the switch keyword chunk, and Case/Default additionally carry
// ParentType Switch. Break only gets the Parent back-pointer, since a break
// may also belong to an enclosing loop rather than a switch — Parent alone
// records "which switch (if any) was innermost", without claiming that
// switch owns the break the way it owns a case label.
func (c *context) stampSwitchParent(ch *token.Chunk) {
	if len(c.switchStack) == 0 {
		return
	}
	ch.Parent = c.switchStack[len(c.switchStack)-1]
	if ch.Type == token.Case || ch.Type == token.Default {
		ch.ParentType = token.Switch
	}
}
