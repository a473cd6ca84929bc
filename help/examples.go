// Copyright 2026 The Authors (see AUTHORS file)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package help

import "github.com/abcxyz/cmdtree/tree"

// ResolveExamples returns the examples to show on the page of the given node.
//
// A node's own examples always win. Otherwise the visible descendants are
// searched level by level, and the examples of every node at the first level
// that has any are returned in declaration order. Hidden nodes, and anything
// below them, never contribute.
func ResolveExamples(t *tree.Tree, id tree.NodeID) []tree.Example {
	if n := t.Node(id); n.HasExamples() {
		return n.Examples()
	}

	level := t.VisibleChildren(id)
	for len(level) > 0 {
		var found []tree.Example
		var next []tree.NodeID
		for _, c := range level {
			found = append(found, t.Node(c).Examples()...)
			next = append(next, t.VisibleChildren(c)...)
		}
		if len(found) > 0 {
			return found
		}
		level = next
	}
	return nil
}
