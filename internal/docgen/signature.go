// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package docgen

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/petar-djukic/docdoc/internal/literal"
	"github.com/petar-djukic/docdoc/internal/pyast"
)

// paramList is a function's parameter list split the way Python declares
// it. defaults belong to the trailing len(defaults) positional names.
type paramList struct {
	positional  []string
	defaults    []string
	vararg      string   // "*args", or "*" for a bare keyword-only marker
	keywordOnly []string // "name" or "name=default"
	kwarg       string   // "**kwargs"
}

// String renders "(a, b=1, *args, c=2, **kwargs)".
func (p paramList) String() string {
	parts := make([]string, 0, len(p.positional)+len(p.keywordOnly)+2)
	parts = append(parts, p.positional...)
	offset := len(p.positional) - len(p.defaults)
	for i, d := range p.defaults {
		parts[offset+i] += "=" + d
	}
	if p.vararg != "" {
		parts = append(parts, p.vararg)
	}
	parts = append(parts, p.keywordOnly...)
	if p.kwarg != "" {
		parts = append(parts, p.kwarg)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// parameters collects the parameter list of a def. Type annotations are
// dropped. A positional parameter without a default after one with a
// default is rejected, as the Python compiler does.
func (w *walker) parameters(n *sitter.Node) (paramList, error) {
	var p paramList
	star := false

	add := func(node *sitter.Node, name string, def *sitter.Node) error {
		switch {
		case star && def != nil:
			p.keywordOnly = append(p.keywordOnly, name+"="+w.render(def))
		case star:
			p.keywordOnly = append(p.keywordOnly, name)
		case def != nil:
			p.positional = append(p.positional, name)
			p.defaults = append(p.defaults, w.render(def))
		case len(p.defaults) > 0:
			return w.syntaxError(node, "non-default argument follows default argument")
		default:
			p.positional = append(p.positional, name)
		}
		return nil
	}

	for _, param := range pyast.Statements(n) {
		target := param
		if param.Type() == "typed_parameter" && param.NamedChildCount() > 0 {
			target = param.NamedChild(0)
		}

		var err error
		switch target.Type() {
		case "identifier":
			err = add(param, pyast.Text(target, w.src), nil)
		case "default_parameter", "typed_default_parameter":
			err = add(param, pyast.Text(target.ChildByFieldName("name"), w.src), target.ChildByFieldName("value"))
		case "list_splat_pattern":
			p.vararg = "*" + splatName(target, w.src)
			star = true
		case "dictionary_splat_pattern":
			p.kwarg = "**" + splatName(target, w.src)
		case "keyword_separator":
			p.vararg = "*"
			star = true
		case "positional_separator":
		default:
			err = add(param, pyast.Text(target, w.src), nil)
		}
		if err != nil {
			return paramList{}, err
		}
	}
	return p, nil
}

// bases renders a class's base classes and keyword arguments, or "" when
// it has none.
func (w *walker) bases(n *sitter.Node) string {
	args := pyast.Statements(n)
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		if arg.Type() == "keyword_argument" {
			name := pyast.Text(arg.ChildByFieldName("name"), w.src)
			parts = append(parts, name+"="+w.render(arg.ChildByFieldName("value")))
			continue
		}
		parts = append(parts, w.render(arg))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// render runs the literal renderer, noting fallbacks at debug level.
func (w *walker) render(n *sitter.Node) string {
	r := literal.Render(n, w.src)
	if r.Fallback {
		w.log.WithField("expr", r.Text).Debug("not a literal, rendering source text")
	}
	return r.Text
}

// splatName returns the identifier of *args or **kwargs.
func splatName(n *sitter.Node, src []byte) string {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == "identifier" {
			return pyast.Text(child, src)
		}
	}
	return strings.TrimLeft(pyast.Text(n, src), "* ")
}
