// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package docgen extracts docstrings and signatures from one Python source
// file and renders them as a nested Markdown document.
package docgen

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/petar-djukic/docdoc/internal/pyast"
	"github.com/petar-djukic/docdoc/pkg/types"
)

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used for debug output. The default discards
// everything.
func WithLogger(log logrus.FieldLogger) Option {
	return func(x *Extractor) {
		if log != nil {
			x.log = log
		}
	}
}

// WithSource replaces the file system as the place source files are read
// from.
func WithSource(src Source) Option {
	return func(x *Extractor) {
		if src != nil {
			x.source = src
		}
	}
}

// Extractor turns Python source files into Documents. It keeps no state
// between runs and is safe for concurrent use.
type Extractor struct {
	source Source
	log    logrus.FieldLogger
}

// NewExtractor creates an Extractor reading from the file system.
func NewExtractor(opts ...Option) *Extractor {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	x := &Extractor{source: FileSource{}, log: quiet}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Run reads, parses and walks the file at path and returns its Markdown
// documentation. Errors are *types.FileAccessError or
// *types.SyntaxParseError; no partial document is ever returned.
func (x *Extractor) Run(ctx context.Context, path string) (string, error) {
	doc, err := x.Document(ctx, path)
	if err != nil {
		return "", err
	}
	return doc.Markdown(), nil
}

// Document reads the file at path and extracts its Document.
func (x *Extractor) Document(ctx context.Context, path string) (*Document, error) {
	content, err := x.source.ReadFile(path)
	if err != nil {
		return nil, &types.FileAccessError{Path: path, Err: err}
	}
	return x.Extract(ctx, path, content)
}

// Extract parses content and walks it. The module entry is named after
// path and comes first; every class and function found in the module and
// in class bodies follows in source order.
func (x *Extractor) Extract(ctx context.Context, path string, content []byte) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tree, err := pyast.Parse(ctx, path, content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	w := &walker{path: path, src: tree.Source, log: x.log.WithField("file", path)}

	body, err := w.docstring(tree.Root)
	if err != nil {
		return nil, err
	}
	entries := []types.Entry{{
		Name:  path,
		Body:  body,
		Level: types.LevelModule,
	}}

	if err := w.walk(tree.Root, types.LevelTop, &entries); err != nil {
		return nil, err
	}

	w.log.WithField("entries", len(entries)).Debug("extracted documentation")
	return &Document{Path: path, entries: entries}, nil
}

// walker holds the per-run read-only context of a tree walk.
type walker struct {
	path string
	src  []byte
	log  logrus.FieldLogger
}

// walk visits the statements of a module or block, appending one entry
// per function and class at the given level.
func (w *walker) walk(body *sitter.Node, level int, out *[]types.Entry) error {
	for _, stmt := range pyast.Statements(body) {
		if err := w.visit(stmt, level, nil, out); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) visit(n *sitter.Node, level int, decorators []string, out *[]types.Entry) error {
	switch pyast.KindOf(n) {
	case pyast.KindFunction:
		entry, err := w.function(n, level)
		if err != nil {
			return err
		}
		*out = append(*out, entry)
		return w.nested(n.ChildByFieldName("body"), level, out)

	case pyast.KindClass:
		entry, err := w.class(n, level, decorators)
		if err != nil {
			return err
		}
		*out = append(*out, entry)
		return w.walk(n.ChildByFieldName("body"), nestedLevel(level), out)

	case pyast.KindDecorated:
		def, decs := pyast.Unwrap(n, w.src)
		return w.visit(def, level, decs, out)

	case pyast.KindOther:
		return w.nested(n, level, out)
	}
	return nil
}

// nested finds classes defined inside compound statements and function
// bodies and visits them at level. Functions found on the way get no entry
// of their own, but their bodies are searched too.
func (w *walker) nested(n *sitter.Node, level int, out *[]types.Entry) error {
	if n == nil {
		return nil
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		def, decorators := n.NamedChild(i), []string(nil)
		if pyast.KindOf(def) == pyast.KindDecorated {
			def, decorators = pyast.Unwrap(def, w.src)
		}

		var err error
		switch pyast.KindOf(def) {
		case pyast.KindClass:
			err = w.visit(def, level, decorators, out)
		case pyast.KindFunction:
			err = w.nested(def.ChildByFieldName("body"), level, out)
		default:
			err = w.nested(def, level, out)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// function builds the entry for a def. Function decorators are not
// recorded.
func (w *walker) function(n *sitter.Node, level int) (types.Entry, error) {
	params, err := w.parameters(n.ChildByFieldName("parameters"))
	if err != nil {
		return types.Entry{}, err
	}
	body, err := w.docstring(n.ChildByFieldName("body"))
	if err != nil {
		return types.Entry{}, err
	}
	return types.Entry{
		Name:      pyast.Text(n.ChildByFieldName("name"), w.src),
		Signature: params.String(),
		Body:      body,
		Level:     level,
	}, nil
}

func (w *walker) class(n *sitter.Node, level int, decorators []string) (types.Entry, error) {
	body, err := w.docstring(n.ChildByFieldName("body"))
	if err != nil {
		return types.Entry{}, err
	}
	return types.Entry{
		Name:        pyast.Text(n.ChildByFieldName("name"), w.src),
		Signature:   w.bases(n.ChildByFieldName("superclasses")),
		Body:        body,
		Level:       level,
		Annotations: decorators,
	}, nil
}

// docstring wraps pyast.Docstring, reporting malformed literals as syntax
// errors at the body's position.
func (w *walker) docstring(body *sitter.Node) (string, error) {
	if body == nil {
		return "", nil
	}
	doc, err := pyast.Docstring(body, w.src)
	if err != nil {
		return "", w.syntaxError(body, err.Error())
	}
	return doc, nil
}

func (w *walker) syntaxError(n *sitter.Node, msg string) *types.SyntaxParseError {
	pos := n.StartPoint()
	return &types.SyntaxParseError{
		Path:   w.path,
		Line:   int(pos.Row) + 1,
		Column: int(pos.Column) + 1,
		Msg:    msg,
	}
}

// nestedLevel caps heading depth at the member level.
func nestedLevel(level int) int {
	if level+1 > types.LevelMember {
		return types.LevelMember
	}
	return level + 1
}
