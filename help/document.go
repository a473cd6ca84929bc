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

import (
	"strings"

	"github.com/abcxyz/cmdtree/tree"
)

// SectionKind names a section of a help page.
type SectionKind string

const (
	KindDescription SectionKind = "description"
	KindUsage       SectionKind = "usage"
	KindExamples    SectionKind = "examples"
	KindArguments   SectionKind = "arguments"
	KindOptions     SectionKind = "options"
	KindCommands    SectionKind = "commands"
)

// Section is one block of a help page. The set of implementations is closed;
// a renderer can switch over the concrete types exhaustively.
type Section interface {
	Kind() SectionKind
	isSection()
}

// Document is a composed help page. It holds data only and carries no
// presentation markup.
type Document struct {
	// Node is the node the page was requested for.
	Node tree.NodeID

	// Path is the command path, starting with the application name.
	Path []string

	// Sections are ordered as they should be presented. Sections without
	// content are absent rather than empty.
	Sections []Section
}

// Section returns the first section of the given kind.
func (d *Document) Section(kind SectionKind) (Section, bool) {
	for _, s := range d.Sections {
		if s.Kind() == kind {
			return s, true
		}
	}
	return nil, false
}

// Kinds returns the kinds of the document's sections in order.
func (d *Document) Kinds() []SectionKind {
	out := make([]SectionKind, 0, len(d.Sections))
	for _, s := range d.Sections {
		out = append(out, s.Kind())
	}
	return out
}

// Description is the formatted description of the page's command.
type Description struct {
	Text string `json:"text"`
}

// Usage lists one or more invocation patterns.
type Usage struct {
	Lines []string `json:"lines"`
}

// Examples lists complete example invocations, application name included.
type Examples struct {
	Lines []string `json:"lines"`
}

// ArgumentRow is a positional argument.
type ArgumentRow struct {
	Name        string `json:"name"`
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
}

// Placeholder returns the argument as it appears in usage lines.
func (r ArgumentRow) Placeholder() string {
	return placeholder(r.Name, r.Required)
}

// Arguments lists positional arguments in declaration order.
type Arguments struct {
	Rows []ArgumentRow `json:"rows"`
}

// OptionRow is a single option.
type OptionRow struct {
	Short       string `json:"short,omitempty"`
	Long        string `json:"long,omitempty"`
	ValueName   string `json:"value_name,omitempty"`
	Required    bool   `json:"required"`
	Default     string `json:"default,omitempty"`
	Description string `json:"description,omitempty"`
}

// Flag returns the option's invocation column, for example
// "-n, --name <VALUE>".
func (r OptionRow) Flag() string {
	var b strings.Builder
	if r.Short != "" {
		b.WriteString("-")
		b.WriteString(r.Short)
		if r.Long != "" {
			b.WriteString(", ")
		}
	} else {
		b.WriteString("    ")
	}
	if r.Long != "" {
		b.WriteString("--")
		b.WriteString(r.Long)
	}
	if r.ValueName != "" {
		b.WriteString(" ")
		b.WriteString(placeholder(r.ValueName, true))
	}
	return b.String()
}

// Options lists the options accepted on the page's command.
type Options struct {
	// ShowDefaults reports whether the default-value column is rendered. When
	// false the column is omitted for every row.
	ShowDefaults bool `json:"show_defaults"`

	Rows []OptionRow `json:"rows"`
}

// CommandRow is a sub-command listed on a branch page.
type CommandRow struct {
	Name string `json:"name"`

	// Arguments are the command's argument placeholders, for example
	// "<LENGTH>".
	Arguments string `json:"arguments,omitempty"`

	Description string `json:"description,omitempty"`
	Branch      bool   `json:"branch"`
}

// Label returns the name with argument placeholders appended.
func (r CommandRow) Label() string {
	if r.Arguments == "" {
		return r.Name
	}
	return r.Name + " " + r.Arguments
}

// Commands lists the visible sub-commands of a branch.
type Commands struct {
	// ShowDescriptions is false when no row has a description, in which case
	// the description column is omitted entirely.
	ShowDescriptions bool `json:"show_descriptions"`

	Rows []CommandRow `json:"rows"`
}

func (*Description) Kind() SectionKind { return KindDescription }
func (*Usage) Kind() SectionKind       { return KindUsage }
func (*Examples) Kind() SectionKind    { return KindExamples }
func (*Arguments) Kind() SectionKind   { return KindArguments }
func (*Options) Kind() SectionKind     { return KindOptions }
func (*Commands) Kind() SectionKind    { return KindCommands }

func (*Description) isSection() {}
func (*Usage) isSection()       {}
func (*Examples) isSection()    {}
func (*Arguments) isSection()   {}
func (*Options) isSection()     {}
func (*Commands) isSection()    {}

func placeholder(name string, required bool) string {
	if required {
		return "<" + name + ">"
	}
	return "[" + name + "]"
}
