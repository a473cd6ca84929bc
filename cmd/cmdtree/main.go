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

// Command cmdtree renders help pages for command trees declared in YAML or HCL
// manifests, and checks that manifests are valid.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/abcxyz/cmdtree/cli"
	"github.com/abcxyz/cmdtree/internal/version"
	"github.com/abcxyz/cmdtree/logging"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer done()

	logger := logging.NewFromEnv(cli.DefaultEnvPrefix)
	ctx = logging.WithLogger(ctx, logger)

	if err := realMain(ctx); err != nil {
		done()
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func realMain(ctx context.Context) error {
	cfg, err := cli.LoadConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.Version = version.HumanVersion

	app, err := newApp(cfg)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	// Exits when invoked by the shell for completion.
	app.Complete()

	return app.Run(ctx, os.Args[1:]) //nolint:wrapcheck // Want passthrough
}
