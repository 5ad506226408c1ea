// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// StaleError reports that a document on disk differs from what the source
// generates now.
type StaleError struct {
	Path string // Checked file
	Diff string // Line diff from the file on disk to the fresh document
}

func (e *StaleError) Error() string {
	return fmt.Sprintf("%s is out of date", e.Path)
}

// Check compares want with the contents of path. A missing file counts as
// stale.
func Check(path string, want []byte) error {
	got, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err == nil && bytes.Equal(got, want) {
		return nil
	}
	return &StaleError{Path: path, Diff: LineDiff(string(got), string(want))}
}

// LineDiff lists the lines removed from old ("-") and added in new ("+"),
// in order. Unchanged lines are omitted.
func LineDiff(old, new string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(old, new)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var buf strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix + line + "\n")
		}
	}
	return buf.String()
}

// splitLines splits text into lines without their terminators.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}
