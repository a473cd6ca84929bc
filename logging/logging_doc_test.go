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


package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/abcxyz/cmdtree/cli"
	"github.com/abcxyz/cmdtree/logging"
	"github.com/abcxyz/cmdtree/tree"
)

func ExampleNewFromEnv() {
	// The prefixed variable wins over the bare one.
	env := map[string]string{
		"CMDTREE_LOG_LEVEL": "debug",
		"LOG_LEVEL":         "error",
		"LOG_TARGET":        "stdout",
	}
	logger := logging.NewFromEnv("CMDTREE_", logging.WithGetenv(func(k string) string {
		return env[k]
	}))

	fmt.Println(logger.Enabled(context.Background(), logging.LevelDebug))

	// Output:
	// true
}

func ExampleSetLevel() {
	ctx := context.Background()
	logger := logging.New(io.Discard, logging.LevelWarning, logging.FormatText, false)
	fmt.Println(logger.Enabled(ctx, logging.LevelInfo))

	logging.SetLevel(logger, logging.LevelInfo)
	fmt.Println(logger.Enabled(ctx, logging.LevelInfo))

	// Output:
	// false
	// true
}

func ExampleNewLevelHandler() {
	h := logging.NewLevelHandler(logging.LevelError, slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: logging.LevelDebug,
	}))

	// Derived loggers follow the level of the handler they came from.
	logger := slog.New(h).With("component", "dispatch")
	h.SetLevel(logging.LevelDebug)

	fmt.Println(logger.Enabled(context.Background(), logging.LevelDebug))

	// Output:
	// true
}

func ExampleFromContext() {
	t, err := tree.Build(tree.Root{
		Name: "myapp",
		Commands: []tree.Declaration{
			&tree.Command{
				Name: "eat",
				Action: tree.RunFunc(func(ctx context.Context, args []string) error {
					logging.FromContext(ctx).InfoContext(ctx, "eating")
					return nil
				}),
			},
		},
	})
	if err != nil {
		panic(err)
	}

	// The application and its actions log through the logger in the context.
	var b bytes.Buffer
	logger := logging.New(&b, logging.LevelDebug, logging.FormatJSON, false)
	ctx := logging.WithLogger(context.Background(), logger)

	app := cli.NewApp(t, nil)
	app.Pipe()
	if err := app.Run(ctx, []string{"eat"}); err != nil {
		panic(err)
	}

	dec := json.NewDecoder(&b)
	for dec.More() {
		var rec struct {
			Level   string `json:"level"`
			Msg     string `json:"msg"`
			Command string `json:"command"`
		}
		if err := dec.Decode(&rec); err != nil {
			panic(err)
		}
		fmt.Println(rec.Level, rec.Msg, rec.Command)
	}

	// Output:
	// debug running command myapp eat
	// info eating
}
