// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pyast parses Python source with tree-sitter and provides the
// node classification, docstring and string-literal helpers the
// documentation extractor walks with.
package pyast

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/petar-djukic/docdoc/pkg/types"
)

// Tree is a parsed Python module. Nodes reachable from Root are valid until
// Close is called.
type Tree struct {
	Source []byte       // Normalized source the tree was built from
	Root   *sitter.Node // The "module" node
	tree   *sitter.Tree
}

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	if t.tree != nil {
		t.tree.Close()
		t.tree = nil
	}
}

// Parse builds a syntax tree from Python source. Line endings are
// normalized to "\n" first, the way Python reads source in text mode.
// Any error or missing node in the tree is reported as a
// *types.SyntaxParseError; there is no partial result.
func Parse(ctx context.Context, path string, content []byte) (*Tree, error) {
	if !utf8.Valid(content) {
		return nil, &types.SyntaxParseError{Path: path, Msg: "source is not valid UTF-8"}
	}
	src := normalizeNewlines(content)

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}

	root := tree.RootNode()
	if root == nil {
		tree.Close()
		return nil, &types.SyntaxParseError{Path: path, Msg: "empty syntax tree"}
	}
	if root.HasError() {
		perr := syntaxError(path, root)
		tree.Close()
		return nil, perr
	}
	if perr := legacySyntax(path, root, src); perr != nil {
		tree.Close()
		return nil, perr
	}

	return &Tree{Source: src, Root: root, tree: tree}, nil
}

// syntaxError locates the first ERROR or MISSING node in document order.
func syntaxError(path string, root *sitter.Node) *types.SyntaxParseError {
	bad := firstErrorNode(root)
	if bad == nil {
		return &types.SyntaxParseError{Path: path, Msg: "invalid syntax"}
	}
	msg := "invalid syntax"
	if bad.IsMissing() {
		msg = fmt.Sprintf("missing %q", bad.Type())
	}
	pos := bad.StartPoint()
	return &types.SyntaxParseError{
		Path:   path,
		Line:   int(pos.Row) + 1,
		Column: int(pos.Column) + 1,
		Msg:    msg,
	}
}

func firstErrorNode(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := firstErrorNode(n.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}

// legacySyntax reports the first Python 2 construct the grammar still
// accepts: print and exec statements, the <> operator, long integer
// suffixes and leading-zero decimal integers.
func legacySyntax(path string, n *sitter.Node, src []byte) *types.SyntaxParseError {
	var msg string
	switch n.Type() {
	case "print_statement":
		msg = "Missing parentheses in call to 'print'"
	case "exec_statement":
		msg = "Missing parentheses in call to 'exec'"
	case "<>":
		msg = "invalid syntax"
	case "integer":
		msg = LegacyInteger(Text(n, src))
	}
	if msg != "" {
		pos := n.StartPoint()
		return &types.SyntaxParseError{
			Path:   path,
			Line:   int(pos.Row) + 1,
			Column: int(pos.Column) + 1,
			Msg:    msg,
		}
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		if perr := legacySyntax(path, n.Child(i), src); perr != nil {
			return perr
		}
	}
	return nil
}

// LegacyInteger returns why an integer literal is valid only in Python 2,
// or "" when Python 3 accepts it.
func LegacyInteger(text string) string {
	switch {
	case strings.HasSuffix(text, "l"), strings.HasSuffix(text, "L"):
		return "long integer suffix is not permitted"
	case strings.HasSuffix(text, "j"), strings.HasSuffix(text, "J"):
		return ""
	case len(text) > 1 && text[0] == '0' && strings.ContainsRune("0123456789_", rune(text[1])) &&
		strings.Trim(text, "0_") != "":
		return "leading zeros in decimal integer literals are not permitted"
	}
	return ""
}

// normalizeNewlines converts "\r\n" and lone "\r" to "\n".
func normalizeNewlines(content []byte) []byte {
	if !bytes.ContainsRune(content, '\r') {
		return content
	}
	out := bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(out, []byte("\r"), []byte("\n"))
}

// Text returns the source text spanned by n.
func Text(n *sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}
	return n.Content(src)
}
