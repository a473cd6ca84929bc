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

// Package cli runs applications declared as a command tree. An [App] resolves
// the arguments of an invocation, shows help pages when they were asked for
// or implied, and otherwise runs the selected leaf:
//
//	t, err := tree.Build(tree.Root{
//	  Name: "my-tool",
//	  Commands: []tree.Declaration{
//	    &tree.Command{Name: "eat", Action: tree.RunFunc(eat)},
//	    &tree.Command{Name: "sleep", Action: tree.RunFunc(sleep)},
//	  },
//	})
//	if err != nil {
//	  return err
//	}
//
//	app := cli.NewApp(t, cfg)
//	return app.Run(ctx, os.Args[1:])
//
// This CLI could be invoked via:
//
//	$ my-tool eat
//	$ my-tool sleep
//	$ my-tool help eat
//
// Options declared on the selected leaf and its ancestors are bound before
// the action runs and are available through [ValuesFromContext].
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abcxyz/cmdtree/dispatch"
	"github.com/abcxyz/cmdtree/help"
	"github.com/abcxyz/cmdtree/logging"
	"github.com/abcxyz/cmdtree/tree"
)

// ErrNoAction is returned when the selected leaf has no action.
var ErrNoAction = errors.New("command has no action")

// App is an application backed by a command tree.
type App struct {
	Streams

	tree     *tree.Tree
	config   *Config
	composer *help.Composer
}

// NewApp creates an application for t. A nil config means [DefaultConfig].
func NewApp(t *tree.Tree, cfg *Config) *App {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &App{
		tree:     t,
		config:   cfg,
		composer: help.NewComposer(t, cfg.ComposerOptions()...),
	}
}

// Tree returns the command tree of the application.
func (a *App) Tree() *tree.Tree {
	return a.tree
}

// Config returns the configuration of the application.
func (a *App) Config() *Config {
	return a.config
}

// Composer returns the help composer of the application.
func (a *App) Composer() *help.Composer {
	return a.composer
}

// Run executes the invocation described by args, which exclude the program
// name. Help pages and the version are written to stderr.
func (a *App) Run(ctx context.Context, args []string) error {
	logger := logging.FromContext(ctx)

	// Short-circuit version.
	if v := a.config.Version; v != "" && len(args) > 0 && (args[0] == "-v" || args[0] == "--version") {
		fmt.Fprintln(a.Stderr(), v)
		return nil
	}

	decision, err := dispatch.Resolve(a.tree, args)
	if err != nil {
		var uerr *dispatch.UnknownCommandError
		if errors.As(err, &uerr) {
			logger.DebugContext(ctx, "unknown command",
				"token", uerr.Token,
				"suggestions", uerr.Suggestions)
			return fmt.Errorf("%w\n\nrun %q for more information", err, a.helpHint(uerr.Path[1:]))
		}
		return fmt.Errorf("failed to resolve command: %w", err)
	}

	switch typ := decision.(type) {
	case *dispatch.ShowHelp:
		logger.DebugContext(ctx, "showing help",
			"command", a.pathString(typ.Node))
		return a.showHelp(typ.Node)
	case *dispatch.RunNode:
		return a.runNode(ctx, typ)
	default:
		return fmt.Errorf("unhandled decision %T", decision)
	}
}

func (a *App) showHelp(id tree.NodeID) error {
	doc := a.composer.Compose(id)
	if err := a.config.Render(a.Stderr(), doc); err != nil {
		return fmt.Errorf("failed to render help: %w", err)
	}
	return nil
}

func (a *App) runNode(ctx context.Context, d *dispatch.RunNode) error {
	logger := logging.FromContext(ctx)

	path := a.pathString(d.Node)
	logger.DebugContext(ctx, "running command",
		"command", path,
		"args", d.Args)

	action := a.tree.Node(d.Node).Action()
	if action == nil {
		return fmt.Errorf("%w: %q", ErrNoAction, path)
	}

	values, err := Parse(a.tree, d)
	if err != nil {
		return fmt.Errorf("%w\n\nrun %q for more information", err, a.helpHint(a.tree.Path(d.Node)[1:]))
	}

	if err := action.Run(WithValues(ctx, values), d.Args); err != nil {
		//nolint:wrapcheck // We want to bubble this error exactly as-is.
		return err
	}
	return nil
}

// pathString is the command path of id under the application name.
func (a *App) pathString(id tree.NodeID) string {
	path := append([]string{a.composer.ApplicationName()}, a.tree.Path(id)[1:]...)
	return strings.Join(path, " ")
}

// helpHint returns the invocation that shows help for the command path below
// the root.
func (a *App) helpHint(path []string) string {
	parts := append([]string{a.composer.ApplicationName()}, path...)
	return strings.Join(append(parts, "--help"), " ")
}
