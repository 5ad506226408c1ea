// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pyast

import (
	"errors"
	"strings"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"
)

// Docstring returns the cleaned docstring of a module or block node: the
// first statement, when it is a bare text string literal. It returns ""
// when there is none. An error means the literal itself is malformed.
func Docstring(body *sitter.Node, src []byte) (string, error) {
	stmts := Statements(body)
	if len(stmts) == 0 {
		return "", nil
	}
	first := stmts[0]
	if first.Type() != "expression_statement" || first.ChildCount() != 1 {
		return "", nil
	}
	expr := first.Child(0)
	if t := expr.Type(); t != "string" && t != "concatenated_string" {
		return "", nil
	}

	lit, err := StringValue(expr, src)
	if errors.Is(err, ErrNotConstant) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if lit.Bytes {
		return "", nil
	}
	return CleanDoc(lit.Value), nil
}

// CleanDoc removes the uniform indentation of a docstring: tabs are
// expanded, the first line loses its leading whitespace, the common margin
// of the following non-blank lines is removed, and leading and trailing
// blank lines are dropped.
func CleanDoc(doc string) string {
	lines := strings.Split(expandTabs(doc, 8), "\n")

	margin := -1
	for _, line := range lines[1:] {
		r := []rune(line)
		content := len([]rune(strings.TrimLeftFunc(line, unicode.IsSpace)))
		if content == 0 {
			continue
		}
		if indent := len(r) - content; margin < 0 || indent < margin {
			margin = indent
		}
	}

	lines[0] = strings.TrimLeftFunc(lines[0], unicode.IsSpace)
	if margin >= 0 {
		for i := 1; i < len(lines); i++ {
			r := []rune(lines[i])
			if len(r) <= margin {
				lines[i] = ""
			} else {
				lines[i] = string(r[margin:])
			}
		}
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	return strings.Join(lines, "\n")
}

// expandTabs replaces each tab with spaces up to the next multiple of
// size, counting columns from the start of each line.
func expandTabs(s string, size int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := size - col%size
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n', '\r':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}
