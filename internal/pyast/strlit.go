// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pyast

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
)

// ErrNotConstant is returned for string nodes whose value is computed at
// run time (f-strings and template strings).
var ErrNotConstant = errors.New("string is not a constant")

// StringLiteral is the decoded value of a Python string or bytes literal.
type StringLiteral struct {
	Value string // Decoded text; for bytes, one Go byte per Python byte
	Bytes bool   // b"..." literal
}

// StringValue decodes a "string" or "concatenated_string" node. Adjacent
// literals are joined the way the Python compiler joins them; mixing bytes
// and text is an error.
func StringValue(n *sitter.Node, src []byte) (StringLiteral, error) {
	switch n.Type() {
	case "string":
		return DecodeString(Text(n, src))
	case "concatenated_string":
		var b strings.Builder
		var lit StringLiteral
		parts := 0
		for i := 0; i < int(n.NamedChildCount()); i++ {
			part := n.NamedChild(i)
			if part.Type() != "string" {
				continue
			}
			s, err := DecodeString(Text(part, src))
			if err != nil {
				return StringLiteral{}, err
			}
			parts++
			if parts > 1 && s.Bytes != lit.Bytes {
				return StringLiteral{}, errors.New("cannot mix bytes and nonbytes literals")
			}
			lit.Bytes = s.Bytes
			b.WriteString(s.Value)
		}
		lit.Value = b.String()
		return lit, nil
	default:
		return StringLiteral{}, fmt.Errorf("%s is not a string literal", n.Type())
	}
}

// DecodeString decodes the source text of a single Python string literal,
// prefix and quotes included.
func DecodeString(text string) (StringLiteral, error) {
	var raw, isBytes, formatted bool
	i := 0
prefix:
	for ; i < len(text); i++ {
		switch text[i] {
		case 'r', 'R':
			raw = true
		case 'b', 'B':
			isBytes = true
		case 'f', 'F', 't', 'T':
			formatted = true
		case 'u', 'U':
		default:
			break prefix
		}
	}
	if formatted {
		return StringLiteral{}, ErrNotConstant
	}

	rest := text[i:]
	var quote string
	switch {
	case strings.HasPrefix(rest, `"""`), strings.HasPrefix(rest, `'''`):
		quote = rest[:3]
	case strings.HasPrefix(rest, `"`), strings.HasPrefix(rest, `'`):
		quote = rest[:1]
	default:
		return StringLiteral{}, fmt.Errorf("malformed string literal %q", text)
	}
	if len(rest) < 2*len(quote) || !strings.HasSuffix(rest, quote) {
		return StringLiteral{}, fmt.Errorf("unterminated string literal %q", text)
	}
	body := rest[len(quote) : len(rest)-len(quote)]

	if raw {
		return StringLiteral{Value: body, Bytes: isBytes}, nil
	}
	value, err := unescape(body, isBytes)
	if err != nil {
		return StringLiteral{}, err
	}
	return StringLiteral{Value: value, Bytes: isBytes}, nil
}

// unescape processes backslash escapes. Unknown escapes keep their
// backslash. Named escapes (\N{...}) are kept verbatim since resolving them
// needs the Unicode name table.
func unescape(s string, isBytes bool) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	emit := func(v rune) {
		if isBytes {
			b.WriteByte(byte(v))
		} else {
			b.WriteRune(v)
		}
	}

	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			i++
			continue
		}
		n := s[i+1]
		switch n {
		case '\n':
			i += 2
		case '\\', '\'', '"':
			b.WriteByte(n)
			i += 2
		case 'a':
			b.WriteByte('\a')
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'v':
			b.WriteByte('\v')
			i += 2
		case '0', '1', '2', '3', '4', '5', '6', '7':
			j := i + 1
			for j < len(s) && j < i+4 && s[j] >= '0' && s[j] <= '7' {
				j++
			}
			v, _ := strconv.ParseUint(s[i+1:j], 8, 32)
			emit(rune(v))
			i = j
		case 'x':
			v, err := hexEscape(s, i+2, 2)
			if err != nil {
				return "", err
			}
			emit(v)
			i += 4
		case 'u', 'U':
			if isBytes {
				b.WriteByte('\\')
				i++
				continue
			}
			width := 4
			if n == 'U' {
				width = 8
			}
			v, err := hexEscape(s, i+2, width)
			if err != nil {
				return "", err
			}
			if !utf8.ValidRune(v) {
				return "", fmt.Errorf("illegal Unicode character in \\%c escape", n)
			}
			b.WriteRune(v)
			i += 2 + width
		default:
			b.WriteByte('\\')
			i++
		}
	}
	return b.String(), nil
}

func hexEscape(s string, start, width int) (rune, error) {
	if start+width > len(s) {
		return 0, fmt.Errorf("truncated \\x escape")
	}
	v, err := strconv.ParseUint(s[start:start+width], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid escape %q: %w", s[start-2:start+width], err)
	}
	return rune(v), nil
}
