// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "fmt"

// FileAccessError reports that the source file could not be read: it does
// not exist, is not readable, or is a directory. Nothing was parsed.
type FileAccessError struct {
	Path string // Path as given by the caller
	Err  error  // Underlying OS or repository error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// SyntaxParseError reports that the source is not valid Python. Line and
// Column are 1-based and point at the first offending node; both are zero
// when no position applies (for example, invalid UTF-8).
type SyntaxParseError struct {
	Path   string
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Path, e.Msg)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Msg)
}
