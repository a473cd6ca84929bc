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

package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/abcxyz/cmdtree/cli"
	"github.com/abcxyz/cmdtree/dispatch"
	"github.com/abcxyz/cmdtree/help"
	"github.com/abcxyz/cmdtree/internal/version"
	"github.com/abcxyz/cmdtree/logging"
	"github.com/abcxyz/cmdtree/manifest"
	"github.com/abcxyz/cmdtree/tree"
)

// newApp builds the cmdtree application. The commands are declared as a tree
// like any other application.
func newApp(cfg *cli.Config) (*cli.App, error) {
	var app *cli.App
	bind := func(fn func(ctx context.Context, app *cli.App, v *cli.Values) error) tree.Runner {
		return tree.RunFunc(func(ctx context.Context, args []string) error {
			return fn(ctx, app, cli.ValuesFromContext(ctx))
		})
	}

	t, err := tree.Build(tree.Root{
		Name:        version.Name,
		Description: "Renders help pages for command trees declared in YAML or HCL manifests.",
		Examples: []tree.Example{
			{"render", "zoo.yaml", "--", "cat", "--help"},
			{"lint", "zoo.yaml", "zoo.hcl"},
		},
		Commands: []tree.Declaration{
			&tree.Command{
				Name:        "render",
				Description: "Renders the help page an invocation of a manifest implies.",
				Parameters: []tree.Parameter{
					{Kind: tree.KindArgument, Name: "MANIFEST", Required: true, Description: "Path to a .yaml, .yml or .hcl manifest."},
					{Kind: tree.KindArgument, Name: "TOKENS", Description: "Invocation to resolve, given after --."},
					{Kind: tree.KindOption, Name: "format", Short: "f", ValueName: "FORMAT", Description: "Output format, text or json."},
					{Kind: tree.KindOption, Name: "color", ValueName: "MODE", Description: "When to color output: auto, always or never."},
					{Kind: tree.KindOption, Name: "width", Short: "w", ValueName: "COLUMNS", Description: "Column at which text is wrapped."},
				},
				Action: bind(runRender),
			},
			&tree.Command{
				Name:        "lint",
				Description: "Checks that manifests build and that every help page composes.",
				Parameters: []tree.Parameter{
					{Kind: tree.KindArgument, Name: "MANIFEST", Required: true, Description: "Paths to manifests."},
				},
				Action: bind(runLint),
			},
			&tree.Command{
				Name:        "version",
				Description: "Prints version information.",
				Action:      bind(runVersion),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build commands: %w", err)
	}

	app = cli.NewApp(t, cfg)
	return app, nil
}

// renderConfig derives the presentation of manifest pages from the application
// config and the render options. Name and version belong to cmdtree itself
// and are not carried over.
func renderConfig(base *cli.Config, v *cli.Values) (*cli.Config, error) {
	cfg := &cli.Config{
		TrimTrailingPeriods:     base.TrimTrailingPeriods,
		HideOptionDefaultValues: base.HideOptionDefaultValues,
		Format:                  base.Format,
		Color:                   base.Color,
		Width:                   base.Width,
	}
	if v.Changed("format") {
		cfg.Format = v.String("format")
	}
	if v.Changed("color") {
		cfg.Color = v.String("color")
	}
	if v.Changed("width") {
		w, err := strconv.Atoi(v.String("width"))
		if err != nil {
			return nil, fmt.Errorf("invalid width %q: %w", v.String("width"), err)
		}
		cfg.Width = w
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid render options: %w", err)
	}
	return cfg, nil
}

func runRender(ctx context.Context, app *cli.App, v *cli.Values) error {
	logger := logging.FromContext(ctx)

	cfg, err := renderConfig(app.Config(), v)
	if err != nil {
		return err
	}

	pth := v.Arg(0)
	// Actions stay unbound; only the shape of the tree is needed.
	t, err := manifest.Load(pth, nil)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", pth, err)
	}

	tokens := v.Args()[1:]
	decision, err := dispatch.Resolve(t, tokens)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", strings.Join(tokens, " "), err)
	}

	composer := help.NewComposer(t, cfg.ComposerOptions()...)
	switch typ := decision.(type) {
	case *dispatch.ShowHelp:
		logger.DebugContext(ctx, "rendering help",
			"manifest", pth,
			"command", t.Path(typ.Node))
		if err := cfg.Render(app.Stdout(), composer.Compose(typ.Node)); err != nil {
			return fmt.Errorf("failed to render help: %w", err)
		}
	case *dispatch.RunNode:
		fmt.Fprintf(app.Stdout(), "runs %q with arguments %q\n",
			strings.Join(t.Path(typ.Node), " "), typ.Args)
	}
	return nil
}

func runLint(ctx context.Context, app *cli.App, v *cli.Values) error {
	var merr error
	for _, pth := range v.Args() {
		n, err := lint(ctx, pth)
		if err != nil {
			merr = errors.Join(merr, fmt.Errorf("%s: %w", pth, err))
			continue
		}
		fmt.Fprintf(app.Stdout(), "%s: %d pages\n", pth, n)
	}

	if merr != nil {
		return fmt.Errorf("lint failed:\n%w", merr)
	}
	return nil
}

// lint builds the manifest and composes every page. It returns the number of
// pages.
func lint(ctx context.Context, pth string) (int, error) {
	t, err := manifest.Load(pth, nil)
	if err != nil {
		return 0, err //nolint:wrapcheck // Caller adds the path
	}

	docs, err := help.ComposeAll(ctx, help.NewComposer(t))
	if err != nil {
		return 0, err //nolint:wrapcheck // Already wrapped
	}
	return len(docs), nil
}

func runVersion(ctx context.Context, app *cli.App, v *cli.Values) error {
	fmt.Fprintln(app.Stdout(), version.HumanVersion)
	return nil
}
