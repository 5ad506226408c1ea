// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package docdoc generates Markdown documentation for a Python source file
// from its docstrings and class and function definitions.
//
//	md, err := docdoc.Docdoc("mymodule.py")
package docdoc

import (
	"context"
	"errors"

	"github.com/petar-djukic/docdoc/internal/docgen"
	"github.com/petar-djukic/docdoc/pkg/types"
)

// ErrInvalidConfig is returned by Generate for unusable configurations.
var ErrInvalidConfig = errors.New("invalid config")

// Error types returned by Docdoc and Generate.
type (
	FileAccessError  = types.FileAccessError
	SyntaxParseError = types.SyntaxParseError
)

// Format selects the output format.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
)

// Docdoc parses the Python file at path and returns its documentation in
// Markdown. Errors are *FileAccessError or *SyntaxParseError.
func Docdoc(path string) (string, error) {
	return docgen.NewExtractor().Run(context.Background(), path)
}
