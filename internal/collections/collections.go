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

// Package collections holds the small set of slice and set helpers the
// rest of bracefmt needs: rendering a list of values (e.g. supported
// dialects) as another type, and testing keyword membership during paren
// reclassification.
package collections

// MapSlice applies fn to each element of s and returns the resulting
// slice, e.g. rendering a slice of lang.Language into its string names for
// a flag's help text.
func MapSlice[TSlice ~[]T, T, V any](s TSlice, fn func(T) V) []V {
	out := make([]V, len(s))
	for i, t := range s {
		out[i] = fn(t)
	}
	return out
}
