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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/abcxyz/cmdtree/testutil"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		root    Root
		wantErr error
		errMsg  string
	}{
		{
			name: "single_leaf",
			root: Root{
				Name:     "myapp",
				Commands: []Declaration{&Command{Name: "dog"}},
			},
		},
		{
			name: "nested_branch",
			root: Root{
				Name: "myapp",
				Commands: []Declaration{
					&Branch{
						Name: "animal",
						Commands: []Declaration{
							&Command{Name: "dog"},
							&Command{Name: "horse"},
						},
					},
				},
			},
		},
		{
			name: "same_name_in_different_scopes",
			root: Root{
				Name: "myapp",
				Commands: []Declaration{
					&Command{Name: "dog"},
					&Branch{
						Name:     "animal",
						Commands: []Declaration{&Command{Name: "dog"}},
					},
				},
			},
		},
		{
			name: "nil_declaration_skipped",
			root: Root{
				Name:     "myapp",
				Commands: []Declaration{nil, &Command{Name: "dog"}},
			},
		},
		{
			name:    "no_commands",
			root:    Root{Name: "myapp"},
			wantErr: ErrEmptyBranch,
			errMsg:  `at "myapp"`,
		},
		{
			name: "empty_nested_branch",
			root: Root{
				Name:     "myapp",
				Commands: []Declaration{&Branch{Name: "animal"}},
			},
			wantErr: ErrEmptyBranch,
			errMsg:  `at "myapp animal"`,
		},
		{
			name: "duplicate_sibling",
			root: Root{
				Name: "myapp",
				Commands: []Declaration{
					&Command{Name: "dog"},
					&Command{Name: "dog", Hidden: true},
				},
			},
			wantErr: ErrDuplicateName,
			errMsg:  `at "myapp dog"`,
		},
		{
			name: "duplicate_branch_and_leaf",
			root: Root{
				Name: "myapp",
				Commands: []Declaration{
					&Command{Name: "dog"},
					&Branch{Name: "dog", Commands: []Declaration{&Command{Name: "x"}}},
				},
			},
			wantErr: ErrDuplicateName,
		},
		{
			name: "multiple_defaults",
			root: Root{
				Name: "myapp",
				Commands: []Declaration{
					&Command{Name: "dog", Default: true},
					&Command{Name: "horse", Default: true},
				},
			},
			wantErr: ErrMultipleDefaults,
			errMsg:  `"dog" and "horse"`,
		},
		{
			name: "defaults_in_different_scopes",
			root: Root{
				Name: "myapp",
				Commands: []Declaration{
					&Command{Name: "dog", Default: true},
					&Branch{
						Name:     "cat",
						Commands: []Declaration{&Command{Name: "lion", Default: true}},
					},
				},
			},
		},
		{
			name: "missing_name",
			root: Root{
				Name:     "myapp",
				Commands: []Declaration{&Command{}},
			},
			wantErr: ErrMissingName,
		},
		{
			name: "empty_example",
			root: Root{
				Name:     "myapp",
				Examples: []Example{{}},
				Commands: []Declaration{&Command{Name: "dog"}},
			},
			wantErr: ErrEmptyExample,
		},
		{
			name: "duplicate_option",
			root: Root{
				Name: "myapp",
				Commands: []Declaration{
					&Command{
						Name: "dog",
						Parameters: []Parameter{
							{Kind: KindOption, Name: "name", Short: "n"},
							{Kind: KindOption, Name: "nick", Short: "n"},
						},
					},
				},
			},
			wantErr: ErrDuplicateParameter,
			errMsg:  `option "n"`,
		},
		{
			name: "required_after_optional",
			root: Root{
				Name: "myapp",
				Commands: []Declaration{
					&Command{
						Name: "lion",
						Parameters: []Parameter{
							{Kind: KindArgument, Name: "LEGS"},
							{Kind: KindArgument, Name: "TEETH", Required: true},
						},
					},
				},
			},
			wantErr: ErrRequiredAfterOptional,
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tr, err := Build(tc.root)
			if diff := testutil.DiffErrIs(err, tc.wantErr); diff != "" {
				t.Fatal(diff)
			}
			if diff := testutil.DiffErrString(err, tc.errMsg); tc.errMsg != "" && diff != "" {
				t.Error(diff)
			}
			if err != nil {
				var cfgErr *ConfigurationError
				if !errors.As(err, &cfgErr) {
					t.Errorf("expected %T, got %T", cfgErr, err)
				}
				if tr != nil {
					t.Errorf("expected nil tree on error")
				}
			}
		})
	}
}

func TestBuild_ReportsAllProblems(t *testing.T) {
	t.Parallel()

	_, err := Build(Root{
		Name: "myapp",
		Commands: []Declaration{
			&Command{Name: "dog", Default: true},
			&Command{Name: "dog", Default: true},
			&Branch{Name: "empty"},
		},
	})

	for _, want := range []error{ErrDuplicateName, ErrMultipleDefaults, ErrEmptyBranch} {
		if !errors.Is(err, want) {
			t.Errorf("expected %v to include %v", err, want)
		}
	}
}

func TestBuild_CopiesDeclarations(t *testing.T) {
	t.Parallel()

	examples := []Example{{"dog", "--name", "Rufus"}}
	params := []Parameter{{Kind: KindOption, Name: "name"}}

	tr, err := Build(Root{
		Name: "myapp",
		Commands: []Declaration{
			&Command{Name: "dog", Examples: examples, Parameters: params},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	examples[0][2] = "Brutus"
	params[0].Name = "changed"

	dog, _ := tr.Child(tr.Root(), "dog")
	if got, want := tr.Node(dog).Examples(), []Example{{"dog", "--name", "Rufus"}}; !cmp.Equal(got, want) {
		t.Errorf("examples changed after build: %s", cmp.Diff(want, got))
	}
	if got, want := tr.Node(dog).Parameters()[0].Name, "name"; got != want {
		t.Errorf("expected %q to be %q", got, want)
	}
}
