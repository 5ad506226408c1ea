// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package literal

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/petar-djukic/docdoc/internal/pyast"
)

// errNotLiteral marks expressions outside the literal subset.
var errNotLiteral = errors.New("not a literal")

// evaluator evaluates the safe literal subset of Python expressions:
// numbers, strings, bytes, booleans, None, Ellipsis, and tuples, lists,
// sets and dicts of those, plus set(), unary signs on numbers and
// real+imaginary complex sums.
type evaluator struct {
	src []byte
}

func (e evaluator) eval(n *sitter.Node) (value, error) {
	if n == nil {
		return nil, errNotLiteral
	}

	switch n.Type() {
	case "integer":
		return parseInteger(pyast.Text(n, e.src))
	case "float":
		return parseFloat(pyast.Text(n, e.src))
	case "string", "concatenated_string":
		lit, err := pyast.StringValue(n, e.src)
		if err != nil {
			return nil, err
		}
		if lit.Bytes {
			return bytesValue(lit.Value), nil
		}
		return strValue(lit.Value), nil
	case "true":
		return boolValue(true), nil
	case "false":
		return boolValue(false), nil
	case "none":
		return noneValue{}, nil
	case "ellipsis":
		return ellipsisValue{}, nil
	case "parenthesized_expression":
		return e.eval(single(n))
	case "tuple":
		elems, err := e.elements(n)
		return tupleValue(elems), err
	case "list":
		elems, err := e.elements(n)
		return listValue(elems), err
	case "set":
		elems, err := e.elements(n)
		if err != nil {
			return nil, err
		}
		return newSet(elems)
	case "dictionary":
		return e.dict(n)
	case "unary_operator":
		return e.unary(n)
	case "binary_operator":
		return e.binary(n)
	case "call":
		return e.call(n)
	}
	return nil, fmt.Errorf("%w: %s", errNotLiteral, n.Type())
}

func (e evaluator) elements(n *sitter.Node) ([]value, error) {
	stmts := pyast.Statements(n)
	elems := make([]value, 0, len(stmts))
	for _, child := range stmts {
		v, err := e.eval(child)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return elems, nil
}

func (e evaluator) dict(n *sitter.Node) (value, error) {
	var d dictValue
	index := make(map[string]int)
	for _, pair := range pyast.Statements(n) {
		if pair.Type() != "pair" {
			return nil, fmt.Errorf("%w: %s in dict", errNotLiteral, pair.Type())
		}
		k, err := e.eval(pair.ChildByFieldName("key"))
		if err != nil {
			return nil, err
		}
		v, err := e.eval(pair.ChildByFieldName("value"))
		if err != nil {
			return nil, err
		}
		key, ok := hashKey(k)
		if !ok {
			return nil, fmt.Errorf("unhashable dict key %s", k.repr())
		}
		if i, seen := index[key]; seen {
			d.vals[i] = v
			continue
		}
		index[key] = len(d.keys)
		d.keys = append(d.keys, k)
		d.vals = append(d.vals, v)
	}
	return d, nil
}

// newSet drops duplicates, keeping first occurrences in source order.
func newSet(elems []value) (value, error) {
	seen := make(map[string]bool)
	set := make(setValue, 0, len(elems))
	for _, v := range elems {
		key, ok := hashKey(v)
		if !ok {
			return nil, fmt.Errorf("unhashable set element %s", v.repr())
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		set = append(set, v)
	}
	return set, nil
}

// unary applies + or - to a numeric constant.
func (e evaluator) unary(n *sitter.Node) (value, error) {
	op := pyast.Text(n.ChildByFieldName("operator"), e.src)
	v, err := e.number(n.ChildByFieldName("argument"))
	if err != nil {
		return nil, err
	}
	switch op {
	case "+":
		return v, nil
	case "-":
		return negate(v), nil
	}
	return nil, fmt.Errorf("%w: unary %s", errNotLiteral, op)
}

// binary accepts only a real number plus or minus an imaginary one.
func (e evaluator) binary(n *sitter.Node) (value, error) {
	op := pyast.Text(n.ChildByFieldName("operator"), e.src)
	if op != "+" && op != "-" {
		return nil, fmt.Errorf("%w: binary %s", errNotLiteral, op)
	}

	left := unwrap(n.ChildByFieldName("left"))
	var lv value
	var err error
	if left != nil && left.Type() == "unary_operator" {
		lv, err = e.unary(left)
	} else {
		lv, err = e.number(left)
	}
	if err != nil {
		return nil, err
	}
	rv, err := e.number(n.ChildByFieldName("right"))
	if err != nil {
		return nil, err
	}

	im, ok := rv.(complexValue)
	if !ok {
		return nil, fmt.Errorf("%w: right operand is not complex", errNotLiteral)
	}
	var re float64
	switch l := lv.(type) {
	case intValue:
		re, _ = new(big.Float).SetInt(l.v).Float64()
	case floatValue:
		re = float64(l)
	default:
		return nil, fmt.Errorf("%w: left operand is not real", errNotLiteral)
	}

	if op == "-" {
		return complexValue(complex(re, 0) - complex128(im)), nil
	}
	return complexValue(complex(re, 0) + complex128(im)), nil
}

// call accepts only the empty set constructor.
func (e evaluator) call(n *sitter.Node) (value, error) {
	fn := n.ChildByFieldName("function")
	args := n.ChildByFieldName("arguments")
	if fn == nil || fn.Type() != "identifier" || pyast.Text(fn, e.src) != "set" {
		return nil, fmt.Errorf("%w: call", errNotLiteral)
	}
	if args == nil || args.Type() != "argument_list" || len(pyast.Statements(args)) != 0 {
		return nil, fmt.Errorf("%w: call with arguments", errNotLiteral)
	}
	return setValue{}, nil
}

// number evaluates an integer or float constant, parentheses allowed.
func (e evaluator) number(n *sitter.Node) (value, error) {
	n = unwrap(n)
	if n == nil || (n.Type() != "integer" && n.Type() != "float") {
		return nil, fmt.Errorf("%w: operand is not a number", errNotLiteral)
	}
	return e.eval(n)
}

func negate(v value) value {
	switch t := v.(type) {
	case intValue:
		return intValue{v: new(big.Int).Neg(t.v)}
	case floatValue:
		return -t
	case complexValue:
		return -t
	}
	return v
}

// single returns the only non-comment named child of n.
func single(n *sitter.Node) *sitter.Node {
	stmts := pyast.Statements(n)
	if len(stmts) != 1 {
		return nil
	}
	return stmts[0]
}

// unwrap strips redundant parentheses.
func unwrap(n *sitter.Node) *sitter.Node {
	for n != nil && n.Type() == "parenthesized_expression" {
		n = single(n)
	}
	return n
}

func parseInteger(text string) (value, error) {
	if strings.HasSuffix(text, "j") || strings.HasSuffix(text, "J") {
		return parseImaginary(text)
	}
	if msg := pyast.LegacyInteger(text); msg != "" {
		return nil, fmt.Errorf("%s: %q", msg, text)
	}
	i, ok := new(big.Int).SetString(text, 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer literal %q", text)
	}
	return intValue{v: i}, nil
}

func parseFloat(text string) (value, error) {
	if strings.HasSuffix(text, "j") || strings.HasSuffix(text, "J") {
		return parseImaginary(text)
	}
	f, err := parseDecimal(text)
	if err != nil {
		return nil, err
	}
	return floatValue(f), nil
}

func parseImaginary(text string) (value, error) {
	f, err := parseDecimal(text[:len(text)-1])
	if err != nil {
		return nil, err
	}
	return complexValue(complex(0, f)), nil
}

// parseDecimal parses a decimal float; out-of-range values become ±Inf as
// in Python.
func parseDecimal(text string) (float64, error) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(text, "_", ""), 64)
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		return f, nil
	}
	if err != nil {
		return 0, fmt.Errorf("invalid float literal %q", text)
	}
	return f, nil
}
