// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package docgen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/petar-djukic/docdoc/pkg/types"
)

// Document is the finished result of a walk. Its entries never change, so
// it can be serialized any number of times with identical output.
type Document struct {
	Path    string // Path the module entry is named after
	entries []types.Entry
}

// Entries returns a copy of the entries in document order.
func (d *Document) Entries() []types.Entry {
	out := make([]types.Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Markdown renders every entry as a block:
//
//	@decorator          (classes only, one line each)
//	## name (signature)
//	docstring
//	<blank line>
//
// The module heading at level 1 carries no signature. An absent docstring
// leaves an empty line.
func (d *Document) Markdown() string {
	var b strings.Builder
	for _, e := range d.entries {
		writeEntry(&b, e)
	}
	return b.String()
}

func writeEntry(b *strings.Builder, e types.Entry) {
	for _, a := range e.Annotations {
		b.WriteString(a)
		b.WriteByte('\n')
	}

	b.WriteString(strings.Repeat("#", e.Level))
	b.WriteByte(' ')
	b.WriteString(e.Name)
	if e.Level > types.LevelModule {
		b.WriteByte(' ')
		b.WriteString(e.Signature)
	}
	b.WriteByte('\n')

	b.WriteString(e.Body)
	b.WriteString("\n\n")
}

// HTML converts the Markdown rendering to HTML with goldmark.
func (d *Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(d.Markdown()), &buf); err != nil {
		return "", fmt.Errorf("rendering HTML: %w", err)
	}
	return buf.String(), nil
}
