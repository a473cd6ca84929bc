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

import (
	"errors"
	"fmt"
	"slices"
)

// Declaration is a command declaration accepted by [Build]. It is implemented
// by [*Command] and [*Branch].
type Declaration interface {
	flatten() flatDecl
}

// Root declares the application itself.
type Root struct {
	// Name is the application name, used as the first word of usage lines.
	Name string

	// Description is the application-level description.
	Description string

	// Parameters are options available to every command in the tree.
	Parameters []Parameter

	// Examples are application-level examples. When set, they take priority over
	// examples declared on any command.
	Examples []Example

	// Commands are the top-level commands.
	Commands []Declaration
}

// Command declares a leaf.
type Command struct {
	Name        string
	Description string
	Hidden      bool
	Default     bool
	Parameters  []Parameter
	Examples    []Example
	Action      Runner
}

// Branch declares a group of commands.
type Branch struct {
	Name        string
	Description string
	Hidden      bool
	Default     bool

	// Parameters declared on a branch apply to the branch and, for options,
	// are inherited by every descendant.
	Parameters []Parameter
	Examples   []Example
	Commands   []Declaration
}

// flatDecl is the flattened form of a declaration.
type flatDecl struct {
	name        string
	description string
	hidden      bool
	isDefault   bool
	parameters  []Parameter
	examples    []Example

	branch   bool
	commands []Declaration
	action   Runner
}

func (c *Command) flatten() flatDecl {
	return flatDecl{
		name:        c.Name,
		description: c.Description,
		hidden:      c.Hidden,
		isDefault:   c.Default,
		parameters:  c.Parameters,
		examples:    c.Examples,
		action:      c.Action,
	}
}

func (b *Branch) flatten() flatDecl {
	return flatDecl{
		name:        b.Name,
		description: b.Description,
		hidden:      b.Hidden,
		isDefault:   b.Default,
		parameters:  b.Parameters,
		examples:    b.Examples,
		branch:      true,
		commands:    b.Commands,
	}
}

// Build validates the declarations and produces an immutable [Tree]. Every
// problem found is reported as a [*ConfigurationError]; multiple problems are
// combined with [errors.Join].
//
// Nil declarations are skipped.
func Build(root Root) (*Tree, error) {
	b := &builder{}
	b.add(noParent, flatDecl{
		name:        root.Name,
		description: root.Description,
		parameters:  root.Parameters,
		examples:    root.Examples,
		branch:      true,
		commands:    root.Commands,
	})

	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	return &Tree{nodes: b.nodes}, nil
}

type builder struct {
	nodes []Node
	errs  []error
}

// add appends the node described by s and, recursively, its children. It
// returns the new node's ID. Nodes are only referenced by index while
// building because appends may move the arena.
func (b *builder) add(parent NodeID, s flatDecl) NodeID {
	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, Node{
		id:          id,
		parent:      parent,
		name:        s.name,
		description: s.description,
		hidden:      s.hidden,
		isDefault:   s.isDefault,
		parameters:  slices.Clone(s.parameters),
		examples:    cloneExamples(s.examples),
	})

	if s.name == "" {
		b.fail(id, fmt.Errorf("command: %w", ErrMissingName))
	}

	for i, ex := range s.examples {
		if len(ex) == 0 {
			b.fail(id, fmt.Errorf("example %d: %w", i, ErrEmptyExample))
		}
	}

	b.checkParameters(id, s.parameters)

	if !s.branch {
		b.nodes[id].body = leafBody{action: s.action}
		return id
	}

	children := make([]NodeID, 0, len(s.commands))
	defaultChild := noParent
	seen := make(map[string]struct{}, len(s.commands))
	for _, decl := range s.commands {
		if decl == nil {
			continue
		}

		cs := decl.flatten()
		childID := b.add(id, cs)
		children = append(children, childID)

		if cs.name != "" {
			if _, ok := seen[cs.name]; ok {
				b.fail(childID, ErrDuplicateName)
			}
			seen[cs.name] = struct{}{}
		}

		if cs.isDefault {
			if defaultChild != noParent {
				b.fail(id, fmt.Errorf("%w: %q and %q", ErrMultipleDefaults,
					b.nodes[defaultChild].name, cs.name))
			} else {
				defaultChild = childID
			}
		}
	}

	if len(children) == 0 {
		b.fail(id, ErrEmptyBranch)
	}

	b.nodes[id].body = branchBody{
		children:     children,
		defaultChild: defaultChild,
	}
	return id
}

// checkParameters validates the parameters of a single node.
func (b *builder) checkParameters(id NodeID, params []Parameter) {
	arguments := make(map[string]struct{})
	options := make(map[string]struct{})
	sawOptional := false

	for _, p := range params {
		if p.Name == "" {
			b.fail(id, fmt.Errorf("%s: %w", p.Kind, ErrMissingName))
			continue
		}

		switch p.Kind {
		case KindArgument:
			if _, ok := arguments[p.Name]; ok {
				b.fail(id, fmt.Errorf("%w: argument %q", ErrDuplicateParameter, p.Name))
			}
			arguments[p.Name] = struct{}{}

			if p.Required && sawOptional {
				b.fail(id, fmt.Errorf("%w: %q", ErrRequiredAfterOptional, p.Name))
			}
			if !p.Required {
				sawOptional = true
			}
		case KindOption:
			for _, name := range []string{p.Name, p.Short} {
				if name == "" {
					continue
				}
				if _, ok := options[name]; ok {
					b.fail(id, fmt.Errorf("%w: option %q", ErrDuplicateParameter, name))
				}
				options[name] = struct{}{}
			}
		}
	}
}

// fail records a configuration error at the given node.
func (b *builder) fail(id NodeID, err error) {
	b.errs = append(b.errs, &ConfigurationError{
		Path: b.path(id),
		Err:  err,
	})
}

func (b *builder) path(id NodeID) []string {
	var out []string
	for cur := id; cur != noParent; cur = b.nodes[cur].parent {
		out = append(out, b.nodes[cur].name)
	}
	slices.Reverse(out)
	return out
}

func cloneExamples(in []Example) []Example {
	if len(in) == 0 {
		return nil
	}
	out := make([]Example, 0, len(in))
	for _, ex := range in {
		out = append(out, slices.Clone(ex))
	}
	return out
}
