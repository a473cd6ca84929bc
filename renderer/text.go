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

package renderer

import (
	"bytes"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kr/text"
	"github.com/muesli/termenv"

	"github.com/abcxyz/cmdtree/help"
)

const (
	indent    = "    "
	columnGap = "    "

	// minWrap is the narrowest a wrapped column is allowed to get.
	minWrap = 20
)

// styles are the lipgloss styles for one rendering pass.
type styles struct {
	heading lipgloss.Style
	name    lipgloss.Style
}

func (r *Renderer) styles(w io.Writer) styles {
	lg := lipgloss.NewRenderer(w)
	if r.color {
		lg.SetColorProfile(termenv.ANSI256)
	} else {
		lg.SetColorProfile(termenv.Ascii)
	}

	return styles{
		heading: lg.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		name:    lg.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// RenderText renders the document for a terminal. Sections are separated by a
// blank line and introduced by an upper-case heading. Descriptions are
// wrapped at the configured width.
func (r *Renderer) RenderText(w io.Writer, doc *help.Document) error {
	b := r.acquire()
	defer r.release(b)

	st := r.styles(b)
	for i, s := range doc.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		r.writeSection(b, st, s)
	}

	return r.flush(w, b, "text")
}

func (r *Renderer) writeSection(b *bytes.Buffer, st styles, s help.Section) {
	b.WriteString(st.heading.Render(strings.ToUpper(string(s.Kind())) + ":"))
	b.WriteString("\n")

	switch typ := s.(type) {
	case *help.Description:
		b.WriteString(text.Wrap(typ.Text, r.width))
		b.WriteString("\n")

	case *help.Usage:
		for _, line := range typ.Lines {
			b.WriteString(indent)
			b.WriteString(st.name.Render(line))
			b.WriteString("\n")
		}

	case *help.Examples:
		for _, line := range typ.Lines {
			b.WriteString(indent)
			b.WriteString(line)
			b.WriteString("\n")
		}

	case *help.Arguments:
		rows := make([][]string, 0, len(typ.Rows))
		for _, row := range typ.Rows {
			rows = append(rows, []string{row.Placeholder(), row.Description})
		}
		r.writeTable(b, st, rows, false)

	case *help.Options:
		rows := make([][]string, 0, len(typ.Rows)+1)
		if typ.ShowDefaults {
			rows = append(rows, []string{"", "DEFAULT", ""})
		}
		for _, row := range typ.Rows {
			if typ.ShowDefaults {
				rows = append(rows, []string{row.Flag(), row.Default, row.Description})
			} else {
				rows = append(rows, []string{row.Flag(), row.Description})
			}
		}
		r.writeTable(b, st, rows, typ.ShowDefaults)

	case *help.Commands:
		rows := make([][]string, 0, len(typ.Rows))
		for _, row := range typ.Rows {
			if typ.ShowDescriptions {
				rows = append(rows, []string{row.Label(), row.Description})
			} else {
				rows = append(rows, []string{row.Label()})
			}
		}
		r.writeTable(b, st, rows, false)
	}
}

// writeTable writes aligned rows. The first column is styled as a name and
// the last column is wrapped to the available width. When header is true,
// the first row is a column header and is not styled.
func (r *Renderer) writeTable(b *bytes.Buffer, st styles, rows [][]string, header bool) {
	if len(rows) == 0 {
		return
	}

	cols := len(rows[0])
	widths := make([]int, cols)
	for _, row := range rows {
		for i := 0; i < cols-1; i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	// Offset of the last column.
	offset := lipgloss.Width(indent)
	for i := 0; i < cols-1; i++ {
		offset += widths[i] + lipgloss.Width(columnGap)
	}
	avail := r.width - offset
	if avail < minWrap {
		avail = minWrap
	}

	for n, row := range rows {
		var line strings.Builder
		line.WriteString(indent)

		for i := 0; i < cols-1; i++ {
			cell := row[i]
			pad := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			if i == 0 && !(header && n == 0) && cell != "" {
				cell = st.name.Render(cell)
			}
			line.WriteString(cell)
			line.WriteString(pad)
			line.WriteString(columnGap)
		}

		last := row[cols-1]
		if cols == 1 {
			last = st.name.Render(last)
		}
		wrapped := strings.Split(text.Wrap(last, avail), "\n")
		line.WriteString(wrapped[0])
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")

		for _, cont := range wrapped[1:] {
			b.WriteString(strings.Repeat(" ", offset))
			b.WriteString(cont)
			b.WriteString("\n")
		}
	}
}
