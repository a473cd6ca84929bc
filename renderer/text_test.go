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

package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/abcxyz/cmdtree/help"
)

func TestRenderText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		width int
		doc   *help.Document
		exp   string
	}{
		{
			name:  "leaf",
			width: 100,
			doc: &help.Document{
				Path: []string{"myapp", "cat", "lion"},
				Sections: []help.Section{
					&help.Description{Text: "The lion command"},
					&help.Usage{Lines: []string{"myapp cat [LEGS] lion <TEETH> [OPTIONS]"}},
					&help.Arguments{Rows: []help.ArgumentRow{
						{Name: "TEETH", Required: true, Description: "The number of teeth the lion has"},
					}},
					&help.Options{ShowDefaults: true, Rows: []help.OptionRow{
						{Short: "h", Long: "help", Description: "Prints help information"},
						{Short: "a", Long: "alive", Description: "Indicates whether or not the animal is alive"},
						{Short: "c", Long: "agility", ValueName: "VALUE", Default: "10", Description: "The agility between 0 and 100"},
					}},
				},
			},
			exp: "DESCRIPTION:\n" +
				"The lion command\n" +
				"\n" +
				"USAGE:\n" +
				"    myapp cat [LEGS] lion <TEETH> [OPTIONS]\n" +
				"\n" +
				"ARGUMENTS:\n" +
				"    <TEETH>    The number of teeth the lion has\n" +
				"\n" +
				"OPTIONS:\n" +
				"                             DEFAULT\n" +
				"    -h, --help                          Prints help information\n" +
				"    -a, --alive                         Indicates whether or not the animal is alive\n" +
				"    -c, --agility <VALUE>    10         The agility between 0 and 100\n",
		},
		{
			name: "hidden_default_column",
			doc: &help.Document{
				Path: []string{"myapp"},
				Sections: []help.Section{
					&help.Options{ShowDefaults: false, Rows: []help.OptionRow{
						{Short: "h", Long: "help", Description: "Prints help information"},
						{Long: "baz", Description: "Dummy option BAZ"},
					}},
				},
			},
			exp: "OPTIONS:\n" +
				"    -h, --help    Prints help information\n" +
				"        --baz     Dummy option BAZ\n",
		},
		{
			name: "commands_and_examples",
			doc: &help.Document{
				Path: []string{"myapp"},
				Sections: []help.Section{
					&help.Usage{Lines: []string{
						"myapp <TEETH> [LEGS] [OPTIONS]",
						"myapp [OPTIONS] <COMMAND>",
					}},
					&help.Examples{Lines: []string{"myapp 12 -c 3"}},
					&help.Commands{ShowDescriptions: true, Rows: []help.CommandRow{
						{Name: "giraffe", Arguments: "<LENGTH>", Description: "The giraffe command"},
						{Name: "dog"},
					}},
				},
			},
			exp: "USAGE:\n" +
				"    myapp <TEETH> [LEGS] [OPTIONS]\n" +
				"    myapp [OPTIONS] <COMMAND>\n" +
				"\n" +
				"EXAMPLES:\n" +
				"    myapp 12 -c 3\n" +
				"\n" +
				"COMMANDS:\n" +
				"    giraffe <LENGTH>    The giraffe command\n" +
				"    dog\n",
		},
		{
			name: "commands_without_descriptions",
			doc: &help.Document{
				Path: []string{"myapp"},
				Sections: []help.Section{
					&help.Commands{Rows: []help.CommandRow{{Name: "bar"}}},
				},
			},
			exp: "COMMANDS:\n" +
				"    bar\n",
		},
		{
			name:  "wraps_last_column",
			width: 20,
			doc: &help.Document{
				Path: []string{"myapp"},
				Sections: []help.Section{
					&help.Arguments{Rows: []help.ArgumentRow{
						{Name: "X", Required: true, Description: "aaaa bbbb cccc dddd eeee"},
					}},
				},
			},
			exp: "ARGUMENTS:\n" +
				"    <X>    aaaa bbbb cccc dddd\n" +
				"           eeee\n",
		},
		{
			name:  "wraps_description",
			width: 10,
			doc: &help.Document{
				Path: []string{"myapp"},
				Sections: []help.Section{
					&help.Description{Text: "aaaa bbbb cccc"},
				},
			},
			exp: "DESCRIPTION:\n" +
				"aaaa bbbb\n" +
				"cccc\n",
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var b bytes.Buffer
			r := New(WithWidth(tc.width))
			if err := r.RenderText(&b, tc.doc); err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(tc.exp, b.String()); diff != "" {
				t.Errorf("text (-want,+got):\n%s", diff)
			}
		})
	}
}

func TestRenderText_Color(t *testing.T) {
	t.Parallel()

	doc := &help.Document{
		Path: []string{"myapp"},
		Sections: []help.Section{
			&help.Usage{Lines: []string{"myapp [OPTIONS] <COMMAND>"}},
		},
	}

	var plain, styled bytes.Buffer
	if err := New(WithColor(false)).RenderText(&plain, doc); err != nil {
		t.Fatal(err)
	}
	if err := New(WithColor(true)).RenderText(&styled, doc); err != nil {
		t.Fatal(err)
	}

	if strings.Contains(plain.String(), "\x1b[") {
		t.Errorf("expected no escape sequences in %q", plain.String())
	}
	if !strings.Contains(styled.String(), "\x1b[") {
		t.Errorf("expected escape sequences in %q", styled.String())
	}
	if !strings.Contains(styled.String(), "myapp [OPTIONS] <COMMAND>") {
		t.Errorf("expected usage in %q", styled.String())
	}
}
