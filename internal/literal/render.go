// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package literal renders Python expressions used as default argument
// values and class bases into short display strings.
package literal

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/petar-djukic/docdoc/internal/pyast"
)

// Result is the display form of an expression.
type Result struct {
	Text     string // Display string
	Fallback bool   // Text is raw source because the expression is not a literal
}

// Render produces a best-effort display string for an expression node.
// Names render as themselves and attribute chains as dotted paths of any
// depth. Anything else is evaluated as a Python literal and shown in its
// str() form ("hi" renders as hi, [1, 'a'] as [1, 'a']). Expressions that
// are not literals (calls, arithmetic, lambdas) render as their source
// text; Render never fails.
func Render(n *sitter.Node, src []byte) Result {
	if n == nil {
		return Result{Fallback: true}
	}

	switch n.Type() {
	case "identifier":
		return Result{Text: pyast.Text(n, src)}
	case "attribute":
		obj := Render(n.ChildByFieldName("object"), src)
		attr := pyast.Text(n.ChildByFieldName("attribute"), src)
		return Result{Text: obj.Text + "." + attr, Fallback: obj.Fallback}
	}

	v, err := evaluator{src: src}.eval(n)
	if err != nil {
		return Result{Text: pyast.Text(n, src), Fallback: true}
	}
	return Result{Text: str(v)}
}
