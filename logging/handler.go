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

package logging

import (
	"context"
	"log/slog"
)

// LevelableHandler is a handler whose level can be changed after creation.
type LevelableHandler interface {
	slog.Handler

	// SetLevel changes the minimum level of the handler. It must be safe for
	// concurrent use.
	SetLevel(level slog.Level)
}

var _ LevelableHandler = (*LevelHandler)(nil)

// LevelHandler wraps a handler and filters records below a level that can be
// changed at runtime. Handlers derived through WithAttrs and WithGroup share
// the level with their parent.
type LevelHandler struct {
	level   *slog.LevelVar
	handler slog.Handler
}

// NewLevelHandler wraps h so that only records at or above level are handled.
func NewLevelHandler(level slog.Level, h slog.Handler) *LevelHandler {
	// Avoid stacking level handlers.
	if lh, ok := h.(*LevelHandler); ok {
		h = lh.handler
	}

	var v slog.LevelVar
	v.Set(level)
	return &LevelHandler{
		level:   &v,
		handler: h,
	}
}

// SetLevel implements [LevelableHandler].
func (h *LevelHandler) SetLevel(level slog.Level) {
	h.level.Set(level)
}

// Level returns the current level.
func (h *LevelHandler) Level() slog.Level {
	return h.level.Level()
}

// Enabled implements [slog.Handler].
func (h *LevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level.Level() && h.handler.Enabled(ctx, level)
}

// Handle implements [slog.Handler].
func (h *LevelHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.handler.Handle(ctx, r) //nolint:wrapcheck // Want passthrough
}

// WithAttrs implements [slog.Handler].
func (h *LevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LevelHandler{level: h.level, handler: h.handler.WithAttrs(attrs)}
}

// WithGroup implements [slog.Handler].
func (h *LevelHandler) WithGroup(name string) slog.Handler {
	return &LevelHandler{level: h.level, handler: h.handler.WithGroup(name)}
}
