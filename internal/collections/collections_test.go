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

package collections

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapSliceAppliesFnInOrder(t *testing.T) {
	got := MapSlice([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, got)
}

func TestMapSliceOfEmptySliceIsEmpty(t *testing.T) {
	got := MapSlice([]int{}, strconv.Itoa)
	assert.Empty(t, got)
}
