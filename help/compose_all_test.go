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

package help

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/abcxyz/cmdtree/tree"
)

func TestComposeAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tr := mustBuild(t, tree.Root{
		Name: "myapp",
		Commands: []tree.Declaration{
			catBranch(),
			dogCommand(),
			horseCommand(),
			giraffeCommand(),
		},
	})
	c := NewComposer(tr, WithVersion("1.0.0"))

	docs, err := ComposeAll(ctx, c)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := len(docs), tr.Len(); got != want {
		t.Fatalf("expected %d documents, got %d", want, got)
	}
	for i, doc := range docs {
		if diff := cmp.Diff(c.Compose(tree.NodeID(i)), doc); diff != "" {
			t.Errorf("document %d (-want,+got):\n%s", i, diff)
		}
	}
}

func TestComposeAll_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := mustBuild(t, tree.Root{
		Name:     "myapp",
		Commands: []tree.Declaration{dogCommand()},
	})

	docs, err := ComposeAll(ctx, NewComposer(tr))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected %v to be %v", err, context.Canceled)
	}
	if docs != nil {
		t.Errorf("expected no documents, got %d", len(docs))
	}
}
