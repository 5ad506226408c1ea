// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pyast

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Kind classifies the statement nodes the extractor dispatches on.
type Kind int

const (
	KindOther     Kind = iota // Any statement without documentation of its own
	KindFunction              // def / async def
	KindClass                 // class
	KindDecorated             // One or more decorators wrapping a function or class
	KindComment               // # comment (tree-sitter extra)
)

var kindByType = map[string]Kind{
	"function_definition":  KindFunction,
	"class_definition":     KindClass,
	"decorated_definition": KindDecorated,
	"comment":              KindComment,
}

// KindOf returns the Kind of a statement node.
func KindOf(n *sitter.Node) Kind {
	if n == nil {
		return KindOther
	}
	return kindByType[n.Type()]
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "Function"
	case KindClass:
		return "Class"
	case KindDecorated:
		return "Decorated"
	case KindComment:
		return "Comment"
	default:
		return "Other"
	}
}

// Unwrap splits a decorated definition into the wrapped definition and its
// decorators' source text (each including the leading "@") in declaration
// order.
func Unwrap(n *sitter.Node, src []byte) (*sitter.Node, []string) {
	var decorators []string
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "decorator" {
			decorators = append(decorators, strings.TrimSpace(Text(child, src)))
		}
	}
	return n.ChildByFieldName("definition"), decorators
}

// Statements returns the named, non-comment children of a module or block
// in source order.
func Statements(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	var stmts []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if KindOf(child) == KindComment {
			continue
		}
		stmts = append(stmts, child)
	}
	return stmts
}
