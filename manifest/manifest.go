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

// Package manifest loads command trees declared in YAML or HCL files. Actions
// are referenced by name and bound from a caller-provided map, so the same
// manifest can be rendered without any behavior attached.
//
// A YAML manifest looks like:
//
//	name: myapp
//	description: Manages animals
//	commands:
//	  - name: cat
//	    arguments:
//	      - name: LEGS
//	    commands:
//	      - name: lion
//	        default: true
//	        action: lion
//
// The same tree in HCL:
//
//	name        = "myapp"
//	description = "Manages animals"
//
//	command "cat" {
//	  argument "LEGS" {}
//
//	  command "lion" {
//	    default = true
//	    action  = "lion"
//	  }
//	}
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abcxyz/cmdtree/tree"
)

var (
	ErrUnknownFormat = errors.New("unknown manifest format")
	ErrUnknownAction = errors.New("unknown action")
	ErrInvalidShort  = errors.New("short name must be a single character")
	ErrBranchAction  = errors.New("branch cannot have an action")
)

// Format is the encoding of a manifest.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// FormatFromPath returns the format implied by the file extension.
func FormatFromPath(pth string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(pth)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
	}
}

// file is the decoded form shared by both encodings.
type file struct {
	Name        string       `yaml:"name" hcl:"name"`
	Description string       `yaml:"description" hcl:"description,optional"`
	Examples    [][]string   `yaml:"examples" hcl:"examples,optional"`
	Options     []*parameter `yaml:"options" hcl:"option,block"`
	Commands    []*command   `yaml:"commands" hcl:"command,block"`
}

type command struct {
	Name        string       `yaml:"name" hcl:"name,label"`
	Description string       `yaml:"description" hcl:"description,optional"`
	Hidden      bool         `yaml:"hidden" hcl:"hidden,optional"`
	Default     bool         `yaml:"default" hcl:"default,optional"`
	Action      string       `yaml:"action" hcl:"action,optional"`
	Arguments   []*parameter `yaml:"arguments" hcl:"argument,block"`
	Options     []*parameter `yaml:"options" hcl:"option,block"`
	Examples    [][]string   `yaml:"examples" hcl:"examples,optional"`
	Commands    []*command   `yaml:"commands" hcl:"command,block"`
}

type parameter struct {
	Name        string  `yaml:"name" hcl:"name,label"`
	Short       string  `yaml:"short" hcl:"short,optional"`
	Value       string  `yaml:"value" hcl:"value,optional"`
	Description string  `yaml:"description" hcl:"description,optional"`
	Required    bool    `yaml:"required" hcl:"required,optional"`
	Hidden      bool    `yaml:"hidden" hcl:"hidden,optional"`
	Default     *string `yaml:"default" hcl:"default,optional"`
}

// Load reads the manifest at pth and builds its tree. The format is derived
// from the file extension. Actions are bound as in [Parse].
func Load(pth string, actions map[string]tree.Runner) (*tree.Tree, error) {
	format, err := FormatFromPath(pth)
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(pth)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return parse(b, filepath.Base(pth), format, actions)
}

// Parse decodes a manifest in the given format and builds its tree. Actions
// named in the manifest are looked up in actions; a leaf without an action is
// built with a nil runner. A nil actions map leaves every action unbound, which
// is enough to compose and render help. Structural problems are reported by
// [tree.Build].
func Parse(b []byte, format Format, actions map[string]tree.Runner) (*tree.Tree, error) {
	return parse(b, "manifest."+string(format), format, actions)
}

func parse(b []byte, filename string, format Format, actions map[string]tree.Runner) (*tree.Tree, error) {
	var f *file
	var err error
	switch format {
	case FormatYAML:
		f, err = decodeYAML(b)
	case FormatHCL:
		f, err = decodeHCL(b, filename)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}

	root, err := f.root(actions)
	if err != nil {
		return nil, err
	}

	t, err := tree.Build(root)
	if err != nil {
		return nil, fmt.Errorf("failed to build command tree: %w", err)
	}
	return t, nil
}

// root converts the decoded file into declarations. All binding problems are
// reported together.
func (f *file) root(actions map[string]tree.Runner) (tree.Root, error) {
	var merr error

	params, err := parameters(nil, f.Options, []string{f.Name})
	merr = errors.Join(merr, err)

	root := tree.Root{
		Name:        f.Name,
		Description: f.Description,
		Parameters:  params,
		Examples:    examples(f.Examples),
	}
	for _, c := range f.Commands {
		d, err := c.declaration(actions, []string{f.Name})
		merr = errors.Join(merr, err)
		root.Commands = append(root.Commands, d)
	}
	return root, merr
}

func (c *command) declaration(actions map[string]tree.Runner, parent []string) (tree.Declaration, error) {
	if c == nil {
		return nil, nil
	}

	pth := append(append(make([]string, 0, len(parent)+1), parent...), c.Name)

	var merr error
	params, err := parameters(c.Arguments, c.Options, pth)
	merr = errors.Join(merr, err)

	// An explicit empty list still declares a branch, which fails to build.
	if c.Commands != nil {
		if c.Action != "" {
			merr = errors.Join(merr, fmt.Errorf("%w: %q", ErrBranchAction, strings.Join(pth, " ")))
		}

		b := &tree.Branch{
			Name:        c.Name,
			Description: c.Description,
			Hidden:      c.Hidden,
			Default:     c.Default,
			Parameters:  params,
			Examples:    examples(c.Examples),
		}
		for _, child := range c.Commands {
			d, err := child.declaration(actions, pth)
			merr = errors.Join(merr, err)
			b.Commands = append(b.Commands, d)
		}
		return b, merr
	}

	var action tree.Runner
	if c.Action != "" && actions != nil {
		r, ok := actions[c.Action]
		if !ok {
			merr = errors.Join(merr, fmt.Errorf("%w %q for command %q",
				ErrUnknownAction, c.Action, strings.Join(pth, " ")))
		}
		action = r
	}

	return &tree.Command{
		Name:        c.Name,
		Description: c.Description,
		Hidden:      c.Hidden,
		Default:     c.Default,
		Parameters:  params,
		Examples:    examples(c.Examples),
		Action:      action,
	}, merr
}

// parameters converts arguments followed by options, keeping declaration order
// within each kind.
func parameters(args, opts []*parameter, pth []string) ([]tree.Parameter, error) {
	out := make([]tree.Parameter, 0, len(args)+len(opts))
	for _, p := range args {
		if p != nil {
			out = append(out, p.parameter(tree.KindArgument))
		}
	}

	var merr error
	for _, p := range opts {
		if p == nil {
			continue
		}
		if len([]rune(p.Short)) > 1 {
			merr = errors.Join(merr, fmt.Errorf("%w: option %q of %q has short name %q",
				ErrInvalidShort, p.Name, strings.Join(pth, " "), p.Short))
		}
		out = append(out, p.parameter(tree.KindOption))
	}
	return out, merr
}

func (p *parameter) parameter(kind tree.ParameterKind) tree.Parameter {
	out := tree.Parameter{
		Kind:        kind,
		Name:        p.Name,
		Description: p.Description,
		Required:    p.Required,
		Hidden:      p.Hidden,
	}
	if kind == tree.KindOption {
		out.Short = p.Short
		out.ValueName = p.Value
	}
	if p.Default != nil {
		out.HasDefault = true
		out.DefaultValue = *p.Default
	}
	return out
}

func examples(in [][]string) []tree.Example {
	if len(in) == 0 {
		return nil
	}
	out := make([]tree.Example, 0, len(in))
	for _, e := range in {
		out = append(out, tree.Example(e))
	}
	return out
}
