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

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/abcxyz/cmdtree/testutil"
)

func TestContext(t *testing.T) {
	t.Parallel()

	logger1 := New(&bytes.Buffer{}, LevelInfo, FormatText, false)
	logger2 := New(&bytes.Buffer{}, LevelInfo, FormatJSON, false)

	checkFromContext(context.Background(), t, DefaultLogger())

	ctx := WithLogger(context.Background(), logger1)
	checkFromContext(ctx, t, logger1)

	ctx = WithLogger(ctx, logger2)
	checkFromContext(ctx, t, logger2)
}

func checkFromContext(ctx context.Context, tb testing.TB, want *slog.Logger) {
	tb.Helper()

	if got := FromContext(ctx); want != got {
		tb.Errorf("unexpected logger in context. got: %v, want: %v", got, want)
	}
}

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var b bytes.Buffer
	logger := New(&b, LevelInfo, FormatJSON, false)
	logger.Debug("hidden")
	logger.Info("resolved command", "path", "myapp cat")

	var got map[string]any
	if err := json.Unmarshal(b.Bytes(), &got); err != nil {
		t.Fatalf("expected a single json line, got %q: %s", b.String(), err)
	}
	delete(got, slog.TimeKey)

	want := map[string]any{
		"level": "info",
		"msg":   "resolved command",
		"path":  "myapp cat",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("record (-want,+got):\n%s", diff)
	}
}

func TestNew_Debug(t *testing.T) {
	t.Parallel()

	var b bytes.Buffer
	logger := New(&b, LevelError, FormatText, true)
	logger.Debug("walking tree")

	out := b.String()
	if !strings.Contains(out, "level=debug") {
		t.Errorf("expected debug record in %q", out)
	}
	if !strings.Contains(out, "source=") {
		t.Errorf("expected source location in %q", out)
	}
}

func TestSetLevel(t *testing.T) {
	t.Parallel()

	var b bytes.Buffer
	logger := New(&b, LevelWarning, FormatText, false)
	child := logger.With("component", "dispatch")

	child.Info("before")
	if b.Len() != 0 {
		t.Fatalf("expected nothing to be logged, got %q", b.String())
	}

	SetLevel(logger, LevelInfo)
	child.Info("after")
	if got := b.String(); !strings.Contains(got, "msg=after") || !strings.Contains(got, "component=dispatch") {
		t.Errorf("expected derived logger to follow the new level, got %q", got)
	}
}

func TestSetLevel_Panics(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic")
		}
	}()
	SetLevel(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), LevelDebug)
}

func TestNewFromEnv(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		env       map[string]string
		opts      []Option
		log       func(l *slog.Logger)
		want      []string
		wantEmpty bool
		wantPanic string
	}{
		{
			name: "defaults_to_warning",
			log: func(l *slog.Logger) {
				l.Info("quiet")
			},
			wantEmpty: true,
		},
		{
			name: "level_from_env",
			env:  map[string]string{"LOG_LEVEL": "debug"},
			log: func(l *slog.Logger) {
				l.Debug("loud")
			},
			want: []string{"level=debug", "msg=loud"},
		},
		{
			name: "prefix_takes_precedence",
			env: map[string]string{
				"LOG_LEVEL":         "error",
				"CMDTREE_LOG_LEVEL": "info",
			},
			log: func(l *slog.Logger) {
				l.Info("hello")
			},
			want: []string{"level=info", "msg=hello"},
		},
		{
			name: "json_format",
			env:  map[string]string{"CMDTREE_LOG_FORMAT": "JSON"},
			log: func(l *slog.Logger) {
				l.Warn("careful")
			},
			want: []string{`"level":"warning"`, `"msg":"careful"`},
		},
		{
			name: "debug_from_env",
			env:  map[string]string{"LOG_DEBUG": "true"},
			log: func(l *slog.Logger) {
				l.Debug("trace")
			},
			want: []string{"level=debug", "source="},
		},
		{
			name: "default_level_option",
			opts: []Option{WithDefaultLevel(LevelInfo), nil},
			log: func(l *slog.Logger) {
				l.Info("shown")
			},
			want: []string{"msg=shown"},
		},
		{
			name:      "invalid_level",
			env:       map[string]string{"LOG_LEVEL": "chatty"},
			wantPanic: `no such log level "chatty"`,
		},
		{
			name:      "invalid_format",
			env:       map[string]string{"LOG_FORMAT": "xml"},
			wantPanic: `no such format "xml"`,
		},
		{
			name:      "invalid_debug",
			env:       map[string]string{"LOG_DEBUG": "maybe"},
			wantPanic: `invalid value for LOG_DEBUG "maybe"`,
		},
		{
			name:      "invalid_target",
			env:       map[string]string{"LOG_TARGET": "syslog"},
			wantPanic: `no such target "syslog"`,
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if tc.wantPanic != "" {
				defer func() {
					r := recover()
					err, ok := r.(error)
					if !ok {
						t.Fatalf("expected error panic, got %#v", r)
					}
					if diff := testutil.DiffErrString(err, tc.wantPanic); diff != "" {
						t.Error(diff)
					}
				}()
			}

			var b bytes.Buffer
			opts := append([]Option{
				WithGetenv(func(k string) string { return tc.env[k] }),
				WithDefaultTarget(&b),
			}, tc.opts...)
			logger := NewFromEnv("CMDTREE_", opts...)
			if tc.wantPanic != "" {
				t.Fatalf("expected panic %q", tc.wantPanic)
			}

			tc.log(logger)

			out := b.String()
			if tc.wantEmpty && out != "" {
				t.Errorf("expected no output, got %q", out)
			}
			for _, w := range tc.want {
				if !strings.Contains(out, w) {
					t.Errorf("expected %q to contain %q", out, w)
				}
			}
		})
	}
}

func TestLookupTarget(t *testing.T) {
	t.Parallel()

	if _, err := LookupTarget(" STDERR "); err != nil {
		t.Errorf("expected stderr to resolve: %s", err)
	}
	if _, err := LookupTarget("stdout"); err != nil {
		t.Errorf("expected stdout to resolve: %s", err)
	}

	_, err := LookupTarget("file")
	if diff := testutil.DiffErrString(err, `no such target "file"`); diff != "" {
		t.Error(diff)
	}
}
