// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package literal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/docdoc/internal/pyast"
)

// renderExpr parses "x = <expr>" and renders the right-hand side.
func renderExpr(t *testing.T, expr string) Result {
	t.Helper()
	tree, err := pyast.Parse(context.Background(), "expr.py", []byte("x = "+expr+"\n"))
	require.NoError(t, err)
	defer tree.Close()

	stmt := tree.Root.NamedChild(0)
	require.Equal(t, "expression_statement", stmt.Type())
	assign := stmt.NamedChild(0)
	require.Equal(t, "assignment", assign.Type())
	return Render(assign.ChildByFieldName("right"), tree.Source)
}

func TestRender_Names(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"name", "name"},
		{"os.sep", "os.sep"},
		{"os.path.sep", "os.path.sep"},
		{"a.b.c.d.e", "a.b.c.d.e"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got := renderExpr(t, tt.expr)
			assert.Equal(t, tt.want, got.Text)
			assert.False(t, got.Fallback)
		})
	}
}

func TestRender_Literals(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"text string", `"hi"`, "hi"},
		{"empty string", `''`, ""},
		{"concatenated string", `'it' "s"`, "its"},
		{"escaped string", `"a\tb"`, "a\tb"},
		{"non-ASCII text", `'café'`, "café"},
		{"raw string", `r"\d+"`, `\d+`},
		{"bytes", `b"x"`, "b'x'"},
		{"bytes with quote", `b"it's"`, `b"it's"`},
		{"bytes with control", `b"\x00\n"`, `b'\x00\n'`},
		{"decimal int", "42", "42"},
		{"hex int", "0x1F", "31"},
		{"octal int", "0o17", "15"},
		{"binary int", "0b101", "5"},
		{"zero padded zero", "00", "0"},
		{"leading zero imaginary", "017j", "17j"},
		{"underscored int", "1_000_000", "1000000"},
		{"big int", "123456789012345678901234567890", "123456789012345678901234567890"},
		{"float", "3.14", "3.14"},
		{"integral float", "1.0", "1.0"},
		{"trailing dot float", "2.", "2.0"},
		{"small float", "0.0001", "0.0001"},
		{"tiny float", "1e-5", "1e-05"},
		{"large float", "1e16", "1e+16"},
		{"below large threshold", "1e15", "1000000000000000.0"},
		{"overflowing float", "1e400", "inf"},
		{"negative int", "-1", "-1"},
		{"negative float", "-2.5", "-2.5"},
		{"unary plus", "+3", "3"},
		{"negated parenthesized", "-(1)", "-1"},
		{"imaginary", "1j", "1j"},
		{"float imaginary", "2.5j", "2.5j"},
		{"negative imaginary", "-1j", "(-0-1j)"},
		{"complex sum", "1+2j", "(1+2j)"},
		{"complex difference", "1.5-2j", "(1.5-2j)"},
		{"negative real complex", "-1+2j", "(-1+2j)"},
		{"true", "True", "True"},
		{"false", "False", "False"},
		{"none", "None", "None"},
		{"ellipsis", "...", "Ellipsis"},
		{"parenthesized", "(1)", "1"},
		{"empty tuple", "()", "()"},
		{"single tuple", "(1,)", "(1,)"},
		{"tuple", "(1, 'a')", "(1, 'a')"},
		{"list", "[1, 'a', None]", "[1, 'a', None]"},
		{"empty list", "[]", "[]"},
		{"list of quoted", `["it's"]`, `["it's"]`},
		{"list of escaped", `['\n']`, `['\n']`},
		{"list of unicode", `['café']`, "['café']"},
		{"nested", "[(1, [2]), {'k': (3,)}]", "[(1, [2]), {'k': (3,)}]"},
		{"dict", "{'a': 1, 'b': [2]}", "{'a': 1, 'b': [2]}"},
		{"empty dict", "{}", "{}"},
		{"dict duplicate key", "{'a': 1, 'b': 2, 'a': 3}", "{'a': 3, 'b': 2}"},
		{"set", "{1, 2, 1}", "{1, 2}"},
		{"set numeric equality", "{1, True, 1.0}", "{1}"},
		{"empty set", "set()", "set()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderExpr(t, tt.expr)
			assert.Equal(t, tt.want, got.Text)
			assert.False(t, got.Fallback)
		})
	}
}

func TestRender_Fallback(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"call", "compute(1, 2)"},
		{"method call", "obj.method()"},
		{"set with arguments", "set([1])"},
		{"arithmetic", "1 + 2"},
		{"power", "10**3"},
		{"negated name", "-x"},
		{"lambda", "lambda v: v"},
		{"comprehension", "[v for v in range(3)]"},
		{"dict splat", "{**base}"},
		{"unhashable key", "{[1]: 2}"},
		{"unhashable set element", "{(1, [2])}"},
		{"f-string", `f"value {x}"`},
		{"subscript", "items[0]"},
		{"conditional", "a if b else c"},
		{"list with call", "[1, f()]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderExpr(t, tt.expr)
			assert.Equal(t, tt.expr, got.Text)
			assert.True(t, got.Fallback)
		})
	}
}

func TestParseInteger_RejectsPython2Forms(t *testing.T) {
	for _, text := range []string{"017", "0_7", "10L"} {
		t.Run(text, func(t *testing.T) {
			_, err := parseInteger(text)
			assert.Error(t, err)
		})
	}

	v, err := parseInteger("0_0")
	require.NoError(t, err)
	assert.Equal(t, "0", v.repr())
}

func TestRender_AttributeOfCall(t *testing.T) {
	got := renderExpr(t, "factory().attr")
	assert.Equal(t, "factory().attr", got.Text)
	assert.True(t, got.Fallback)
}

func TestRender_Nil(t *testing.T) {
	got := Render(nil, nil)
	assert.Empty(t, got.Text)
	assert.True(t, got.Fallback)
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{0.5, "0.5"},
		{-0.25, "-0.25"},
		{100, "100.0"},
		{1e-4, "0.0001"},
		{1.5e-7, "1.5e-07"},
		{1.2345e20, "1.2345e+20"},
		{9999999999999998, "9999999999999998.0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFloat(tt.in, true))
		})
	}
}

func TestQuoteStr(t *testing.T) {
	assert.Equal(t, `'plain'`, quoteStr("plain"))
	assert.Equal(t, `"it's"`, quoteStr("it's"))
	assert.Equal(t, `'both \' and "'`, quoteStr(`both ' and "`))
	assert.Equal(t, `'back\\slash'`, quoteStr(`back\slash`))
	assert.Equal(t, `'\x00\x7f'`, quoteStr("\x00\x7f"))
	assert.Equal(t, `'\xa0'`, quoteStr("\u00a0"))
}
