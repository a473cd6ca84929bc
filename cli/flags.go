// Copyright 2023 The Authors (see AUTHORS file)
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

package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/abcxyz/cmdtree/dispatch"
	"github.com/abcxyz/cmdtree/tree"
)

// Values are the options and positional arguments bound for one invocation of
// a leaf command.
type Values struct {
	flags *pflag.FlagSet

	// inherited is the number of leading positional values that belong to
	// ancestor branches.
	inherited int
}

// Parse binds the arguments of run to the options declared on its node and
// the node's ancestors. Options may appear anywhere before "--". When an
// ancestor declares an option with the same name as a closer command, the
// closer declaration wins.
//
// Positional values are split by scope using run.Consumed: each ancestor
// branch owns the values it took during dispatch, the leaf owns the rest.
// Parse fails when a token names an undeclared option, when a required option
// is missing, or when any scope has fewer positional values than required
// arguments.
func Parse(t *tree.Tree, run *dispatch.RunNode) (*Values, error) {
	id := run.Node
	path := strings.Join(t.Path(id), " ")

	f := pflag.NewFlagSet(path, pflag.ContinueOnError)
	f.SetOutput(io.Discard)
	f.SetInterspersed(true)

	// Closest declaration first.
	scopes := append(t.Ancestors(id), id)
	var required []string
	for i := len(scopes) - 1; i >= 0; i-- {
		for _, p := range t.Node(scopes[i]).Parameters() {
			if !p.IsOption() || f.Lookup(p.Name) != nil {
				continue
			}

			short := p.Short
			if len(short) != 1 || f.ShorthandLookup(short) != nil {
				short = ""
			}

			if p.IsSwitch() {
				def := p.HasDefault && p.DefaultValue == "true"
				f.BoolP(p.Name, short, def, p.Description)
			} else {
				f.StringP(p.Name, short, p.DefaultValue, p.Description)
			}
			if p.Required {
				required = append(required, p.Name)
			}
		}
	}

	if err := f.Parse(run.Args); err != nil {
		return nil, fmt.Errorf("failed to parse options for %q: %w", path, err)
	}

	for _, name := range required {
		if !f.Changed(name) {
			return nil, fmt.Errorf("missing required option --%s for %q", name, path)
		}
	}

	remaining := f.NArg()
	for _, scope := range scopes[:len(scopes)-1] {
		n := min(run.Consumed[scope], remaining)
		if err := requireArguments(t, scope, n); err != nil {
			return nil, err
		}
		remaining -= n
	}
	if err := requireArguments(t, id, remaining); err != nil {
		return nil, err
	}

	return &Values{
		flags:     f,
		inherited: f.NArg() - remaining,
	}, nil
}

// requireArguments fails when given positional values do not cover the
// required arguments of id.
func requireArguments(t *tree.Tree, id tree.NodeID, given int) error {
	var want int
	for _, p := range t.Node(id).Parameters() {
		if p.IsArgument() && p.Required {
			want++
			if given < want {
				return fmt.Errorf("missing required argument <%s> for %q",
					p.Name, strings.Join(t.Path(id), " "))
			}
		}
	}
	return nil
}

// String returns the value of a value option, or its default when it was not
// given. It returns the empty string for undeclared options and switches.
func (v *Values) String(name string) string {
	s, err := v.flags.GetString(name)
	if err != nil {
		return ""
	}
	return s
}

// Bool returns whether a switch was given. It returns false for undeclared
// options and value options.
func (v *Values) Bool(name string) bool {
	b, err := v.flags.GetBool(name)
	if err != nil {
		return false
	}
	return b
}

// Changed reports whether the option was given explicitly.
func (v *Values) Changed(name string) bool {
	return v.flags.Changed(name)
}

// Args returns the positional values in order, including those given to
// ancestor branches.
func (v *Values) Args() []string {
	return v.flags.Args()
}

// Local returns the positional values that belong to the leaf command itself.
func (v *Values) Local() []string {
	return v.flags.Args()[v.inherited:]
}

// Arg returns the i'th positional value, or the empty string if there is no
// such value.
func (v *Values) Arg(i int) string {
	return v.flags.Arg(i)
}

// valuesKey points to the value in the context where the values are stored.
type valuesKey struct{}

// WithValues returns a context carrying the bound values.
func WithValues(ctx context.Context, v *Values) context.Context {
	return context.WithValue(ctx, valuesKey{}, v)
}

// ValuesFromContext returns the values bound by [App.Run], or nil when the
// context has none.
func ValuesFromContext(ctx context.Context) *Values {
	v, _ := ctx.Value(valuesKey{}).(*Values)
	return v
}
