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

package cli

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/abcxyz/cmdtree/tree"
)

// Completer builds a shell completion tree for the application. Hidden
// commands and options are left out. Every command completes the options of
// its ancestors too.
func (a *App) Completer() *complete.Command {
	return a.completer(a.tree.Root())
}

func (a *App) completer(id tree.NodeID) *complete.Command {
	cmd := &complete.Command{
		Flags: make(map[string]complete.Predictor),
	}

	for _, scope := range append(a.tree.Ancestors(id), id) {
		for _, o := range a.tree.VisibleOptions(scope) {
			predictor := complete.Predictor(predict.Something)
			if o.IsSwitch() {
				predictor = predict.Nothing
			}

			cmd.Flags[o.Name] = predictor
			if o.Short != "" {
				cmd.Flags[o.Short] = predictor
			}
		}
	}

	if a.tree.Node(id).IsLeaf() {
		cmd.Args = predict.Nothing
		if len(a.tree.VisibleArguments(id)) > 0 {
			cmd.Args = predict.Something
		}
		return cmd
	}

	cmd.Sub = make(map[string]*complete.Command)
	for _, child := range a.tree.VisibleChildren(id) {
		cmd.Sub[a.tree.Node(child).Name()] = a.completer(child)
	}
	return cmd
}

// Complete runs shell completion when the process was invoked by the shell
// for completion, and exits. Otherwise it returns immediately.
func (a *App) Complete() {
	a.Completer().Complete(a.composer.ApplicationName())
}
