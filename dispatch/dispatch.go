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

// Package dispatch maps the tokens of an invocation to a decision: either run
// a leaf with its remaining arguments, or show the help page of a node.
//
// Commands are matched by exact name, one token per level. Hidden commands
// match like any other. When the tokens stop at a branch, the branch's
// default command is used if it can run without arguments; otherwise the
// branch's help is shown.
package dispatch

import (
	"strings"

	"github.com/abcxyz/cmdtree/tree"
)

const (
	helpCommand    = "help"
	helpFlagLong   = "--help"
	helpFlagShort  = "-h"
	endOfOptions   = "--"
	maxSuggestions = 3
)

// Decision is the outcome of [Resolve]. It is either a [*RunNode] or a
// [*ShowHelp].
type Decision interface {
	isDecision()
}

// RunNode runs the leaf Node with Args. Args are the tokens left after the
// command path, including options given at branch level, in order.
type RunNode struct {
	Node tree.NodeID
	Args []string

	// Consumed counts the positional values in Args taken by each ancestor
	// branch. Those values precede the leaf's own positional values. Branches
	// that took none are absent.
	Consumed map[tree.NodeID]int
}

// ShowHelp shows the help page of Node.
type ShowHelp struct {
	Node tree.NodeID
}

func (*RunNode) isDecision()  {}
func (*ShowHelp) isDecision() {}

// Resolve decides what an invocation means. The tokens exclude the program
// name.
//
// A token that matches no command under a branch without a default is an
// [*UnknownCommandError]. That error takes precedence over a help flag, so a
// mistyped command is reported rather than silently showing a parent page.
func Resolve(t *tree.Tree, tokens []string) (Decision, error) {
	if len(tokens) > 0 && tokens[0] == helpCommand {
		if _, ok := t.Child(t.Root(), helpCommand); !ok {
			return resolveHelp(t, tokens[1:])
		}
	}

	reached, decision, err := walk(t, tokens)
	if err != nil {
		return nil, err
	}
	if wantsHelp(tokens) {
		return &ShowHelp{Node: reached}, nil
	}
	return decision, nil
}

// resolveHelp handles "help [COMMAND...]".
func resolveHelp(t *tree.Tree, path []string) (Decision, error) {
	cur := t.Root()
	for _, name := range path {
		next, ok := t.Child(cur, name)
		if !ok {
			return nil, newUnknownCommandError(t, cur, name)
		}
		cur = next
	}
	return &ShowHelp{Node: cur}, nil
}

// walk follows the tokens down the tree. It returns the deepest node that was
// named explicitly, and the decision the tokens imply.
func walk(t *tree.Tree, tokens []string) (tree.NodeID, Decision, error) {
	cur := t.Root()
	var carried []string
	var consumed map[tree.NodeID]int

	for i := 0; i < len(tokens); i++ {
		if t.Node(cur).IsLeaf() {
			return cur, &RunNode{Node: cur, Args: append(carried, tokens[i:]...), Consumed: consumed}, nil
		}

		tok := tokens[i]
		if tok == endOfOptions {
			if def, ok := t.DefaultChild(cur); ok {
				return cur, &RunNode{Node: def, Args: append(carried, tokens[i:]...), Consumed: consumed}, nil
			}
			return cur, &ShowHelp{Node: cur}, nil
		}

		if child, ok := t.Child(cur, tok); ok {
			cur = child
			continue
		}

		if isOption(tok) {
			carried = append(carried, tok)
			if takesValue(t, cur, tok) && i+1 < len(tokens) {
				i++
				carried = append(carried, tokens[i])
			}
			continue
		}

		// Positional values of the branch itself, e.g. "cat 4 lion".
		if consumed[cur] < countArguments(t, cur) {
			if consumed == nil {
				consumed = make(map[tree.NodeID]int)
			}
			consumed[cur]++
			carried = append(carried, tok)
			continue
		}

		if def, ok := t.DefaultChild(cur); ok {
			return cur, &RunNode{Node: def, Args: append(carried, tokens[i:]...), Consumed: consumed}, nil
		}
		return cur, nil, newUnknownCommandError(t, cur, tok)
	}

	if t.Node(cur).IsLeaf() {
		return cur, &RunNode{Node: cur, Args: carried, Consumed: consumed}, nil
	}
	return cur, atScope(t, cur, carried, consumed), nil
}

// atScope applies the default command rule at a branch with no further
// command token.
func atScope(t *tree.Tree, id tree.NodeID, args []string, consumed map[tree.NodeID]int) Decision {
	def, ok := t.DefaultChild(id)
	if !ok || t.Node(def).RequiredParameters() > 0 {
		return &ShowHelp{Node: id}
	}
	return &RunNode{Node: def, Args: args, Consumed: consumed}
}

// wantsHelp reports whether a help flag appears before the end of options.
func wantsHelp(tokens []string) bool {
	for _, tok := range tokens {
		switch tok {
		case endOfOptions:
			return false
		case helpFlagLong, helpFlagShort:
			return true
		}
	}
	return false
}

func isOption(tok string) bool {
	return len(tok) > 1 && strings.HasPrefix(tok, "-")
}

// takesValue reports whether the option token names a declared option that
// expects a separate value token. Options declared on the node and all of its
// ancestors are considered.
func takesValue(t *tree.Tree, id tree.NodeID, tok string) bool {
	if strings.Contains(tok, "=") {
		return false
	}

	long, isLong := strings.CutPrefix(tok, "--")
	short := strings.TrimPrefix(tok, "-")

	for _, n := range append(t.Ancestors(id), id) {
		for _, p := range t.Node(n).Parameters() {
			if !p.IsOption() {
				continue
			}
			if (isLong && p.Name == long) || (!isLong && p.Short != "" && p.Short == short) {
				return !p.IsSwitch()
			}
		}
	}
	return false
}

func countArguments(t *tree.Tree, id tree.NodeID) int {
	var count int
	for _, p := range t.Node(id).Parameters() {
		if p.IsArgument() {
			count++
		}
	}
	return count
}
