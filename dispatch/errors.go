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

package dispatch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/abcxyz/cmdtree/tree"
)

// maxDistance is the largest edit distance for which a command is suggested.
const maxDistance = 3

// UnknownCommandError is returned when a token under a branch matches no
// command and the branch has no default.
type UnknownCommandError struct {
	// Path is the path of the branch, starting with the application name.
	Path []string

	// Token is the unmatched token.
	Token string

	// Suggestions are visible sibling commands with a similar name, closest
	// first.
	Suggestions []string
}

func (e *UnknownCommandError) Error() string {
	msg := fmt.Sprintf("unknown command %q for %q", e.Token, strings.Join(e.Path, " "))
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(", did you mean %s?", quoteAll(e.Suggestions))
	}
	return msg
}

func newUnknownCommandError(t *tree.Tree, branch tree.NodeID, token string) *UnknownCommandError {
	return &UnknownCommandError{
		Path:        t.Path(branch),
		Token:       token,
		Suggestions: Suggest(t, branch, token),
	}
}

// Suggest returns up to three visible children of the branch whose names are
// close to token, ordered by edit distance and then by name. Hidden commands
// are never suggested.
func Suggest(t *tree.Tree, branch tree.NodeID, token string) []string {
	type candidate struct {
		name     string
		distance int
	}

	needle := strings.ToLower(token)

	var candidates []candidate
	for _, id := range t.VisibleChildren(branch) {
		name := t.Node(id).Name()
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(name))
		if dist > 0 && dist <= maxDistance {
			candidates = append(candidates, candidate{name: name, distance: dist})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].name < candidates[j].name
	})

	if len(candidates) == 0 {
		return nil
	}
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}

	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.name)
	}
	return out
}

func quoteAll(in []string) string {
	quoted := make([]string, 0, len(in))
	for _, s := range in {
		quoted = append(quoted, fmt.Sprintf("%q", s))
	}
	if len(quoted) == 1 {
		return quoted[0]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}
