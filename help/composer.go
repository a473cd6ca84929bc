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

// Package help decides what goes on a help page. Given a [tree.Tree] and a
// node, a [Composer] produces a [Document]: an ordered list of typed sections
// (description, usage, examples, arguments, options, commands) with hidden
// entities filtered out, examples resolved across tree depth and
// descriptions formatted. Turning a Document into text is left to a renderer.
//
//	c := help.NewComposer(t,
//	  help.WithVersion("1.2.3"),
//	  help.HideOptionDefaultValues(),
//	)
//	doc := c.Compose(t.Root())
//
// The tree is immutable, so a Composer may be shared across goroutines.
package help

import (
	"strings"

	"github.com/abcxyz/cmdtree/tree"
)

const (
	helpDescription    = "Prints help information"
	versionDescription = "Prints version information"
)

// Composer builds help documents for the nodes of a single tree.
type Composer struct {
	tree *tree.Tree

	appName      string
	version      string
	trimPeriods  bool
	hideDefaults bool
}

// Option is an option to [NewComposer].
type Option func(c *Composer) *Composer

// WithApplicationName overrides the name used as the first word of usage
// lines and examples. It defaults to the name of the root node.
func WithApplicationName(name string) Option {
	return func(c *Composer) *Composer {
		c.appName = name
		return c
	}
}

// WithVersion sets the application version. When set, the root page lists a
// version option.
func WithVersion(v string) Option {
	return func(c *Composer) *Composer {
		c.version = v
		return c
	}
}

// TrimTrailingPeriods controls whether a single trailing period is removed
// from descriptions. It is enabled by default.
func TrimTrailingPeriods(v bool) Option {
	return func(c *Composer) *Composer {
		c.trimPeriods = v
		return c
	}
}

// HideOptionDefaultValues omits the default-value column of the options
// table.
func HideOptionDefaultValues() Option {
	return func(c *Composer) *Composer {
		c.hideDefaults = true
		return c
	}
}

// NewComposer creates a composer for t.
func NewComposer(t *tree.Tree, opts ...Option) *Composer {
	c := &Composer{
		tree:        t,
		trimPeriods: true,
	}

	for _, opt := range opts {
		if opt != nil {
			c = opt(c)
		}
	}

	if c.appName == "" {
		c.appName = t.Node(t.Root()).Name()
	}
	return c
}

// Tree returns the tree the composer reads from.
func (c *Composer) Tree() *tree.Tree {
	return c.tree
}

// ApplicationName returns the name used in usage lines.
func (c *Composer) ApplicationName() string {
	return c.appName
}

// Version returns the configured application version, if any.
func (c *Composer) Version() string {
	return c.version
}

// Compose builds the help page for the node. It never fails: anything without
// content is left out.
//
// A branch with a default command presents that command on its own page: the
// usage, arguments and options of the default are shown, and the default is
// not repeated in the commands table.
func (c *Composer) Compose(id tree.NodeID) *Document {
	p := c.page(id)

	doc := &Document{
		Node: id,
		Path: c.path(id),
	}

	if s := c.description(p); s != nil {
		doc.Sections = append(doc.Sections, s)
	}
	doc.Sections = append(doc.Sections, c.usage(p))
	if s := c.examples(p); s != nil {
		doc.Sections = append(doc.Sections, s)
	}
	if s := c.arguments(p); s != nil {
		doc.Sections = append(doc.Sections, s)
	}
	doc.Sections = append(doc.Sections, c.options(p))
	if s := c.commands(p); s != nil {
		doc.Sections = append(doc.Sections, s)
	}
	return doc
}

// page is the set of nodes a help page is about.
type page struct {
	id tree.NodeID

	// def is the default command presented on a branch page.
	def    tree.NodeID
	hasDef bool
}

func (c *Composer) page(id tree.NodeID) page {
	def, ok := c.tree.DefaultChild(id)
	return page{id: id, def: def, hasDef: ok}
}

// path returns the command path with the configured application name.
func (c *Composer) path(id tree.NodeID) []string {
	out := c.tree.Path(id)
	out[0] = c.appName
	return out
}

func (c *Composer) description(p page) Section {
	text := c.format(c.tree.Node(p.id).Description())
	if text == "" && p.hasDef {
		text = c.format(c.tree.Node(p.def).Description())
	}
	if text == "" {
		return nil
	}
	return &Description{Text: text}
}

// prefix returns the usage words leading up to and including the node: each
// command name followed by its visible argument placeholders.
func (c *Composer) prefix(id tree.NodeID) []string {
	var out []string
	for _, n := range append(c.tree.Ancestors(id), id) {
		name := c.tree.Node(n).Name()
		if n == c.tree.Root() {
			name = c.appName
		}
		out = append(out, name)
		out = append(out, c.placeholders(n)...)
	}
	return out
}

func (c *Composer) placeholders(id tree.NodeID) []string {
	args := c.tree.VisibleArguments(id)
	out := make([]string, 0, len(args))
	for _, a := range args {
		out = append(out, placeholder(a.Name, a.Required))
	}
	return out
}

func (c *Composer) usage(p page) Section {
	prefix := c.prefix(p.id)
	node := c.tree.Node(p.id)

	if node.IsLeaf() {
		return &Usage{Lines: []string{joinWords(prefix, "[OPTIONS]")}}
	}

	var lines []string
	if p.hasDef {
		words := append(prefix, c.placeholders(p.def)...)
		lines = append(lines, joinWords(words, "[OPTIONS]"))
		if len(c.listed(p)) == 0 {
			return &Usage{Lines: lines}
		}
	}
	lines = append(lines, joinWords(prefix, "[OPTIONS]", "<COMMAND>"))
	return &Usage{Lines: lines}
}

func (c *Composer) examples(p page) Section {
	found := ResolveExamples(c.tree, p.id)
	if len(found) == 0 {
		return nil
	}

	lines := make([]string, 0, len(found))
	for _, ex := range found {
		lines = append(lines, joinWords([]string{c.appName}, ex...))
	}
	return &Examples{Lines: lines}
}

func (c *Composer) arguments(p page) Section {
	params := c.tree.VisibleArguments(p.id)
	if p.hasDef {
		params = append(params, c.tree.VisibleArguments(p.def)...)
	}
	if len(params) == 0 {
		return nil
	}

	rows := make([]ArgumentRow, 0, len(params))
	for _, a := range params {
		rows = append(rows, ArgumentRow{
			Name:        a.Name,
			Required:    a.Required,
			Description: c.format(a.Description),
		})
	}
	return &Arguments{Rows: rows}
}

func (c *Composer) options(p page) Section {
	rows := []OptionRow{{Short: "h", Long: "help", Description: helpDescription}}
	if p.id == c.tree.Root() && c.version != "" {
		rows = append(rows, OptionRow{Short: "v", Long: "version", Description: versionDescription})
	}

	sources := append(c.tree.Ancestors(p.id), p.id)
	if p.hasDef {
		sources = append(sources, p.def)
	}
	for _, id := range sources {
		for _, o := range c.tree.VisibleOptions(id) {
			row := OptionRow{
				Short:       o.Short,
				Long:        o.Name,
				ValueName:   o.ValueName,
				Required:    o.Required,
				Description: c.format(o.Description),
			}
			if o.HasDefault {
				row.Default = o.DefaultValue
			}
			rows = append(rows, row)
		}
	}

	return &Options{
		ShowDefaults: !c.hideDefaults,
		Rows:         rows,
	}
}

// listed returns the children shown in the commands table of the page.
func (c *Composer) listed(p page) []tree.NodeID {
	children := c.tree.VisibleChildren(p.id)
	if !p.hasDef {
		return children
	}

	out := children[:0]
	for _, id := range children {
		if id != p.def {
			out = append(out, id)
		}
	}
	return out
}

func (c *Composer) commands(p page) Section {
	children := c.listed(p)
	if len(children) == 0 {
		return nil
	}

	s := &Commands{Rows: make([]CommandRow, 0, len(children))}
	for _, id := range children {
		n := c.tree.Node(id)
		row := CommandRow{
			Name:        n.Name(),
			Arguments:   strings.Join(c.placeholders(id), " "),
			Description: c.format(n.Description()),
			Branch:      n.IsBranch(),
		}
		if row.Description != "" {
			s.ShowDescriptions = true
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

func (c *Composer) format(text string) string {
	return FormatDescription(text, c.trimPeriods)
}

func joinWords(words []string, more ...string) string {
	all := make([]string, 0, len(words)+len(more))
	all = append(all, words...)
	all = append(all, more...)
	return strings.Join(all, " ")
}
