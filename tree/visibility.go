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

package tree

// VisibleChildren returns the children of a branch that may be listed, in
// declaration order. Hidden children are still reachable through [Tree.Child].
func (t *Tree) VisibleChildren(id NodeID) []NodeID {
	typ, ok := t.nodes[id].body.(branchBody)
	if !ok {
		return nil
	}

	out := make([]NodeID, 0, len(typ.children))
	for _, c := range typ.children {
		if !t.nodes[c].hidden {
			out = append(out, c)
		}
	}
	return out
}

// VisibleParameters returns the node's parameters that may be listed. The
// relative declaration order is preserved; for arguments it mirrors the
// positional binding order.
func (t *Tree) VisibleParameters(id NodeID) []Parameter {
	params := t.nodes[id].parameters

	out := make([]Parameter, 0, len(params))
	for _, p := range params {
		if !p.Hidden {
			out = append(out, p)
		}
	}
	return out
}

// VisibleArguments is [Tree.VisibleParameters] restricted to arguments.
func (t *Tree) VisibleArguments(id NodeID) []Parameter {
	return filterKind(t.VisibleParameters(id), KindArgument)
}

// VisibleOptions is [Tree.VisibleParameters] restricted to options.
func (t *Tree) VisibleOptions(id NodeID) []Parameter {
	return filterKind(t.VisibleParameters(id), KindOption)
}

func filterKind(params []Parameter, kind ParameterKind) []Parameter {
	out := make([]Parameter, 0, len(params))
	for _, p := range params {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}
