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

// Package tree defines the static command hierarchy of a CLI. A [Tree] is
// built once from declarations with [Build] and is read-only afterwards, which
// means it can be shared by any number of goroutines without locking.
//
// Commands come in two shapes: branches, which group other commands and are
// not executable themselves, and leaves, which carry a [Runner]. Both shapes
// share the same metadata (name, description, parameters, examples, hidden and
// default markers).
//
// Nodes live in a single arena and refer to each other by [NodeID]. Parent
// references are plain indices, so there are no ownership cycles:
//
//	t, err := tree.Build(tree.Root{
//	  Name: "my-tool",
//	  Commands: []tree.Declaration{
//	    &tree.Command{Name: "eat", Description: "Eat some food"},
//	    &tree.Branch{
//	      Name: "transport",
//	      Commands: []tree.Declaration{
//	        &tree.Command{Name: "bus"},
//	        &tree.Command{Name: "car"},
//	      },
//	    },
//	  },
//	})
package tree

import (
	"context"
	"slices"
)

// NodeID identifies a node within a [Tree]. IDs are only meaningful for the
// tree that produced them.
type NodeID int

// noParent is the parent of the root node.
const noParent NodeID = -1

// Runner is the action handle of a leaf command.
type Runner interface {
	Run(ctx context.Context, args []string) error
}

// RunFunc adapts an ordinary function to a [Runner].
type RunFunc func(ctx context.Context, args []string) error

// Run calls f(ctx, args).
func (f RunFunc) Run(ctx context.Context, args []string) error {
	return f(ctx, args)
}

// Example is a single example invocation, excluding the application name. It
// is never empty.
type Example []string

// ParameterKind distinguishes positional arguments from options.
type ParameterKind int

const (
	KindArgument ParameterKind = iota
	KindOption
)

// String implements [fmt.Stringer].
func (k ParameterKind) String() string {
	switch k {
	case KindArgument:
		return "argument"
	case KindOption:
		return "option"
	default:
		return "unknown"
	}
}

// Parameter describes a positional argument or an option of a command.
type Parameter struct {
	Kind ParameterKind

	// Name is the value name of an argument (e.g. "TEETH") or the long name of
	// an option without dashes (e.g. "name").
	Name string

	// Short is an optional single-letter alias for options.
	Short string

	// ValueName is the placeholder for an option's value (e.g. "VALUE"). Options
	// without a value name are switches.
	ValueName string

	Description string
	Required    bool
	Hidden      bool

	// HasDefault reports whether DefaultValue is meaningful. An empty string can
	// be a legitimate default.
	HasDefault   bool
	DefaultValue string
}

// IsArgument reports whether the parameter is positional.
func (p Parameter) IsArgument() bool {
	return p.Kind == KindArgument
}

// IsOption reports whether the parameter is an option.
func (p Parameter) IsOption() bool {
	return p.Kind == KindOption
}

// IsSwitch reports whether the parameter is an option that takes no value.
func (p Parameter) IsSwitch() bool {
	return p.Kind == KindOption && p.ValueName == ""
}

// Node is a single command in the hierarchy. All fields are unexported; a
// node cannot be changed after [Build] returns.
type Node struct {
	id     NodeID
	parent NodeID

	name        string
	description string
	hidden      bool
	isDefault   bool
	parameters  []Parameter
	examples    []Example

	body body
}

// body is the closed set of node variants.
type body interface {
	isBody()
}

type branchBody struct {
	children     []NodeID
	defaultChild NodeID
}

type leafBody struct {
	action Runner
}

func (branchBody) isBody() {}
func (leafBody) isBody()   {}

// ID returns the node's identifier.
func (n *Node) ID() NodeID { return n.id }

// Name returns the node's name. For the root, this is the application name.
func (n *Node) Name() string { return n.name }

// Description returns the raw, unformatted description.
func (n *Node) Description() string { return n.description }

// IsHidden reports whether the node is excluded from listings.
func (n *Node) IsHidden() bool { return n.hidden }

// IsDefault reports whether the node is the default command of its parent.
func (n *Node) IsDefault() bool { return n.isDefault }

// IsRoot reports whether the node is the root of its tree.
func (n *Node) IsRoot() bool { return n.parent == noParent }

// IsBranch reports whether the node groups other commands.
func (n *Node) IsBranch() bool {
	_, ok := n.body.(branchBody)
	return ok
}

// IsLeaf reports whether the node is executable.
func (n *Node) IsLeaf() bool {
	_, ok := n.body.(leafBody)
	return ok
}

// Action returns the leaf's action. It returns nil for branches and for
// leaves declared without an action.
func (n *Node) Action() Runner {
	if typ, ok := n.body.(leafBody); ok {
		return typ.action
	}
	return nil
}

// Parameters returns a copy of all parameters, hidden ones included, in
// declaration order.
func (n *Node) Parameters() []Parameter {
	return slices.Clone(n.parameters)
}

// Examples returns a copy of the node's own examples.
func (n *Node) Examples() []Example {
	out := make([]Example, 0, len(n.examples))
	for _, ex := range n.examples {
		out = append(out, slices.Clone(ex))
	}
	return out
}

// HasExamples reports whether the node declares any examples of its own.
func (n *Node) HasExamples() bool {
	return len(n.examples) > 0
}

// RequiredParameters returns the number of required parameters, hidden ones
// included.
func (n *Node) RequiredParameters() int {
	var count int
	for _, p := range n.parameters {
		if p.Required {
			count++
		}
	}
	return count
}

// Tree is an immutable command hierarchy.
type Tree struct {
	nodes []Node
}

// Root returns the ID of the root node.
func (t *Tree) Root() NodeID {
	return 0
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node with the given ID. It panics if the ID does not belong
// to the tree.
func (t *Tree) Node(id NodeID) *Node {
	return &t.nodes[id]
}

// Parent returns the parent of the node. The second return value is false for
// the root.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	p := t.nodes[id].parent
	return p, p != noParent
}

// Children returns all children of a branch, hidden ones included, in
// declaration order. Leaves have no children.
func (t *Tree) Children(id NodeID) []NodeID {
	if typ, ok := t.nodes[id].body.(branchBody); ok {
		return slices.Clone(typ.children)
	}
	return nil
}

// Child looks up a direct child by exact name. Hidden children are found too,
// since hiding only affects listings.
func (t *Tree) Child(id NodeID, name string) (NodeID, bool) {
	typ, ok := t.nodes[id].body.(branchBody)
	if !ok {
		return 0, false
	}
	for _, c := range typ.children {
		if t.nodes[c].name == name {
			return c, true
		}
	}
	return 0, false
}

// DefaultChild returns the default command of a branch, if one is declared.
func (t *Tree) DefaultChild(id NodeID) (NodeID, bool) {
	typ, ok := t.nodes[id].body.(branchBody)
	if !ok || typ.defaultChild == noParent {
		return 0, false
	}
	return typ.defaultChild, true
}

// Ancestors returns the IDs from the root down to, but excluding, the given
// node.
func (t *Tree) Ancestors(id NodeID) []NodeID {
	var out []NodeID
	for p, ok := t.Parent(id); ok; p, ok = t.Parent(p) {
		out = append(out, p)
	}
	slices.Reverse(out)
	return out
}

// Path returns the names from the root to the node, inclusive. The first
// element is the application name.
func (t *Tree) Path(id NodeID) []string {
	ancestors := t.Ancestors(id)
	out := make([]string, 0, len(ancestors)+1)
	for _, a := range ancestors {
		out = append(out, t.nodes[a].name)
	}
	return append(out, t.nodes[id].name)
}

// Walk visits every node depth-first in declaration order, starting at the
// root. Returning false from fn skips the node's descendants.
func (t *Tree) Walk(fn func(n *Node) bool) {
	t.walk(t.Root(), fn)
}

func (t *Tree) walk(id NodeID, fn func(n *Node) bool) {
	if !fn(&t.nodes[id]) {
		return
	}
	for _, c := range t.Children(id) {
		t.walk(c, fn)
	}
}
