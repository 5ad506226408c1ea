// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pyast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocstring_Module(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"triple quoted", "\"\"\"Module summary.\"\"\"\n", "Module summary."},
		{"single quoted", "'short'\n", "short"},
		{"after shebang comment", "#!/usr/bin/env python\n'''Doc.'''\nimport os\n", "Doc."},
		{"concatenated", "'part one ' \"part two\"\n", "part one part two"},
		{"raw", "r'''C:\\path\\n'''\n", `C:\path\n`},
		{"escapes decoded", "'tab\\there'\n", "tab\there"},
		{"none when first statement is code", "import os\n'''Not a docstring.'''\n", ""},
		{"none for f-string", "f'value {x}'\n", ""},
		{"none for bytes", "b'raw bytes'\n", ""},
		{"none for tuple of strings", "'a', 'b'\n", ""},
		{"none for empty file", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parseSource(t, tt.src)
			doc, err := Docstring(tree.Root, tree.Source)
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc)
		})
	}
}

func TestDocstring_ClassAndFunctionBodies(t *testing.T) {
	tree := parseSource(t, `class C:
    """Class doc.

    More detail.
    """

    def m(self):
        # comment before docstring
        """Method doc."""
        return 1
`)

	class := Statements(tree.Root)[0]
	body := class.ChildByFieldName("body")
	doc, err := Docstring(body, tree.Source)
	require.NoError(t, err)
	assert.Equal(t, "Class doc.\n\nMore detail.", doc)

	method := Statements(body)[1]
	require.Equal(t, KindFunction, KindOf(method))
	doc, err = Docstring(method.ChildByFieldName("body"), tree.Source)
	require.NoError(t, err)
	assert.Equal(t, "Method doc.", doc)
}

func TestDocstring_MalformedEscape(t *testing.T) {
	tree := parseSource(t, "'''bad \\x4 escape'''\n")
	_, err := Docstring(tree.Root, tree.Source)
	assert.Error(t, err)
}

func TestCleanDoc(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single line", "  Summary.  ", "Summary.  "},
		{
			"common margin removed",
			"Summary.\n\n    Details here.\n      Indented.\n    ",
			"Summary.\n\nDetails here.\n  Indented.",
		},
		{
			"first line indentation ignored for margin",
			"\n        First.\n        Second.\n",
			"First.\nSecond.",
		},
		{"tabs expanded", "Summary.\n\tTabbed.\n\t  More.", "Summary.\nTabbed.\n  More."},
		{"blank lines trimmed", "\n\n  Text.\n\n\n", "Text."},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanDoc(tt.in))
		})
	}
}
