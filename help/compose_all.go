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
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/abcxyz/cmdtree/tree"
)

// ComposeAll composes the page of every node in the tree concurrently. The
// result is indexed by [tree.NodeID]. It stops early and returns the context
// error if ctx is cancelled.
func ComposeAll(ctx context.Context, c *Composer) ([]*Document, error) {
	n := c.tree.Len()
	docs := make([]*Document, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i < n; i++ {
		id := tree.NodeID(i)

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("failed to compose %q: %w", strings.Join(c.path(id), " "), err)
			}
			docs[id] = c.Compose(id)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err //nolint:wrapcheck // Already wrapped
	}
	return docs, nil
}
