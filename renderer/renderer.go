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

// Package renderer turns a [help.Document] into output. Text output is meant
// for terminals, JSON output for tooling:
//
//	r := renderer.New(renderer.WithColor(renderer.ColorEnabled(os.Stderr)))
//	if err := r.RenderText(os.Stderr, doc); err != nil {
//	  return err
//	}
//
// Both renderers write into a pooled buffer first and only flush to the
// writer once the whole page has been rendered, so a failure never leaves a
// partial page behind.
package renderer

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

const defaultWidth = 80

// Renderer is responsible for rendering help documents. It is safe for
// concurrent use.
type Renderer struct {
	// rendererPool is a pool of *bytes.Buffer, used as a rendering buffer to
	// prevent partial output.
	rendererPool *sync.Pool

	// color enables ANSI styling in text output.
	color bool

	// width is the column at which text is wrapped.
	width int

	// onError is a function that is called when irrecoverable errors are
	// encountered. This is guaranteed to be non-nil when calling [New].
	onError func(err error)
}

// Option is an interface for options to creating a renderer.
type Option func(*Renderer) *Renderer

// WithColor enables or disables ANSI styling of text output.
func WithColor(v bool) Option {
	return func(r *Renderer) *Renderer {
		r.color = v
		return r
	}
}

// WithWidth sets the column at which text output is wrapped. Values below one
// are ignored.
func WithWidth(v int) Option {
	return func(r *Renderer) *Renderer {
		if v > 0 {
			r.width = v
		}
		return r
	}
}

// WithOnError overwrites the onError handler with the given function. This
// handler is invoked when an irrecoverable error occurs while rendering, for
// example when flushing the buffer to the writer fails.
func WithOnError(fn func(err error)) Option {
	return func(r *Renderer) *Renderer {
		r.onError = fn
		return r
	}
}

// New creates a new renderer with the given details.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		rendererPool: &sync.Pool{
			New: func() interface{} {
				return bytes.NewBuffer(make([]byte, 0, 1024))
			},
		},
		width: defaultWidth,
	}

	for _, opt := range opts {
		if opt != nil {
			r = opt(r)
		}
	}

	// Ensure there's an error handler so we don't have to nil-check each time.
	if r.onError == nil {
		r.onError = func(err error) {}
	}

	// Wrap the error function to recover from panics.
	origOnError := r.onError
	r.onError = func(err error) {
		defer func() {
			if r := recover(); r != nil {
				// do nothing
				_ = r
			}
		}()
		origOnError(err)
	}

	return r
}

// ColorEnabled reports whether styled output should be written to f: f must be
// a terminal and the NO_COLOR environment variable must be unset or empty.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// acquire fetches a reset buffer from the pool. Callers must return it with
// release.
func (r *Renderer) acquire() *bytes.Buffer {
	b, ok := r.rendererPool.Get().(*bytes.Buffer)
	if !ok {
		panic("rendererPool is not a *bytes.Buffer")
	}
	b.Reset()
	return b
}

func (r *Renderer) release(b *bytes.Buffer) {
	r.rendererPool.Put(b)
}

// flush writes the rendered buffer to w.
func (r *Renderer) flush(w io.Writer, b *bytes.Buffer, kind string) error {
	if _, err := b.WriteTo(w); err != nil {
		err = fmt.Errorf("failed to write %s output: %w", kind, err)
		r.onError(err)
		return err
	}
	return nil
}
