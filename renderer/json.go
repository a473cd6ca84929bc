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

package renderer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/abcxyz/cmdtree/help"
)

// jsonDocument is the wire form of a [help.Document].
type jsonDocument struct {
	Path     []string `json:"path"`
	Sections []any    `json:"sections"`
}

// RenderJSON renders the document as a single JSON object with the command
// path and a list of sections. Each section carries a "kind" field naming its
// type. The document is encoded into a buffer first and then flushed to w.
//
// The buffers are fetched via a sync.Pool to reduce allocations and improve
// performance.
func (r *Renderer) RenderJSON(w io.Writer, doc *help.Document) error {
	out := &jsonDocument{
		Path:     doc.Path,
		Sections: make([]any, 0, len(doc.Sections)),
	}
	for _, s := range doc.Sections {
		out.Sections = append(out.Sections, jsonSection(s))
	}

	// Acquire a renderer.
	b := r.acquire()
	defer r.release(b)

	// Render into the renderer.
	enc := json.NewEncoder(b)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		err = fmt.Errorf("failed to marshal json: %w", err)
		r.onError(err)
		return err
	}

	// Rendering worked, flush to the writer.
	return r.flush(w, b, "json")
}

// jsonSection flattens a section and tags it with its kind.
func jsonSection(s help.Section) any {
	switch typ := s.(type) {
	case *help.Description:
		return struct {
			Kind help.SectionKind `json:"kind"`
			*help.Description
		}{typ.Kind(), typ}
	case *help.Usage:
		return struct {
			Kind help.SectionKind `json:"kind"`
			*help.Usage
		}{typ.Kind(), typ}
	case *help.Examples:
		return struct {
			Kind help.SectionKind `json:"kind"`
			*help.Examples
		}{typ.Kind(), typ}
	case *help.Arguments:
		return struct {
			Kind help.SectionKind `json:"kind"`
			*help.Arguments
		}{typ.Kind(), typ}
	case *help.Options:
		return struct {
			Kind help.SectionKind `json:"kind"`
			*help.Options
		}{typ.Kind(), typ}
	case *help.Commands:
		return struct {
			Kind help.SectionKind `json:"kind"`
			*help.Commands
		}{typ.Kind(), typ}
	default:
		return struct {
			Kind help.SectionKind `json:"kind"`
		}{s.Kind()}
	}
}
