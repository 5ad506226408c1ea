// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package literal

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// value is an evaluated Python literal. repr renders it the way Python's
// repr() does; str() differs from repr() only for text strings.
type value interface {
	repr() string
}

type (
	intValue      struct{ v *big.Int }
	floatValue    float64
	complexValue  complex128
	strValue      string
	bytesValue    string
	boolValue     bool
	noneValue     struct{}
	ellipsisValue struct{}
	tupleValue    []value
	listValue     []value
	setValue      []value
	dictValue     struct{ keys, vals []value }
)

// str renders v the way Python's str() does.
func str(v value) string {
	if s, ok := v.(strValue); ok {
		return string(s)
	}
	return v.repr()
}

func (v intValue) repr() string     { return v.v.String() }
func (v floatValue) repr() string   { return formatFloat(float64(v), true) }
func (v complexValue) repr() string { return formatComplex(complex128(v)) }
func (v strValue) repr() string     { return quoteStr(string(v)) }
func (v bytesValue) repr() string   { return "b" + quoteBytes(string(v)) }
func (noneValue) repr() string      { return "None" }
func (ellipsisValue) repr() string  { return "Ellipsis" }

func (v boolValue) repr() string {
	if v {
		return "True"
	}
	return "False"
}

func (v tupleValue) repr() string {
	if len(v) == 1 {
		return "(" + v[0].repr() + ",)"
	}
	return "(" + joinRepr(v) + ")"
}

func (v listValue) repr() string {
	return "[" + joinRepr(v) + "]"
}

func (v setValue) repr() string {
	if len(v) == 0 {
		return "set()"
	}
	return "{" + joinRepr(v) + "}"
}

func (v dictValue) repr() string {
	parts := make([]string, len(v.keys))
	for i := range v.keys {
		parts[i] = v.keys[i].repr() + ": " + v.vals[i].repr()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func joinRepr(vs []value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.repr()
	}
	return strings.Join(parts, ", ")
}

// formatFloat follows Python's shortest round-trip float repr: scientific
// notation below 1e-4 and from 1e16 up, fixed otherwise. forceDot appends
// ".0" to integral values (complex parts omit it).
func formatFloat(f float64, forceDot bool) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return sci
	}
	fixed := strconv.FormatFloat(f, 'f', -1, 64)
	if forceDot && !strings.Contains(fixed, ".") {
		fixed += ".0"
	}
	return fixed
}

func formatComplex(c complex128) string {
	re, im := real(c), imag(c)
	if re == 0 && !math.Signbit(re) {
		return formatFloat(im, false) + "j"
	}
	sign := "+"
	ims := formatFloat(im, false)
	if strings.HasPrefix(ims, "-") {
		sign, ims = "-", ims[1:]
	}
	return "(" + formatFloat(re, false) + sign + ims + "j)"
}

// pickQuote prefers single quotes unless the text contains one and no
// double quote.
func pickQuote(s string) byte {
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		return '"'
	}
	return '\''
}

func quoteStr(s string) string {
	q := pickQuote(s)
	var b strings.Builder
	b.WriteByte(q)
	for _, r := range s {
		switch {
		case r == rune(q) || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r < ' ' || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x7f || unicode.IsPrint(r):
			b.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteByte(q)
	return b.String()
}

func quoteBytes(s string) string {
	q := pickQuote(s)
	var b strings.Builder
	b.WriteByte(q)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == q || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c < ' ' || c >= 0x7f:
			fmt.Fprintf(&b, `\x%02x`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(q)
	return b.String()
}

// hashKey returns an identity for set and dict membership: numerically
// equal numbers (True, 1, 1.0, 1+0j) share a key. Mutable containers are
// unhashable.
func hashKey(v value) (string, bool) {
	switch t := v.(type) {
	case intValue:
		return "n:" + t.v.String(), true
	case boolValue:
		if t {
			return "n:1", true
		}
		return "n:0", true
	case floatValue:
		return floatKey(float64(t)), true
	case complexValue:
		if imag(complex128(t)) == 0 {
			return floatKey(real(complex128(t))), true
		}
		return "c:" + t.repr(), true
	case strValue:
		return "s:" + string(t), true
	case bytesValue:
		return "b:" + string(t), true
	case noneValue:
		return "none", true
	case ellipsisValue:
		return "ellipsis", true
	case tupleValue:
		parts := make([]string, len(t))
		for i, e := range t {
			k, ok := hashKey(e)
			if !ok {
				return "", false
			}
			parts[i] = k
		}
		return "t:(" + strings.Join(parts, ",") + ")", true
	default:
		return "", false
	}
}

func floatKey(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		bf := new(big.Float).SetFloat64(f)
		i, _ := bf.Int(nil)
		return "n:" + i.String()
	}
	return "f:" + strconv.FormatFloat(f, 'g', -1, 64)
}
