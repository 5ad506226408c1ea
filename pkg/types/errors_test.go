// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileAccessError(t *testing.T) {
	err := error(&FileAccessError{Path: "mod.py", Err: fs.ErrNotExist})

	assert.Equal(t, "reading mod.py: file does not exist", err.Error())
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestSyntaxParseError(t *testing.T) {
	tests := []struct {
		name string
		err  SyntaxParseError
		want string
	}{
		{"positioned", SyntaxParseError{Path: "mod.py", Line: 3, Column: 9, Msg: "invalid syntax"}, "mod.py:3:9: invalid syntax"},
		{"unpositioned", SyntaxParseError{Path: "mod.py", Msg: "source is not valid UTF-8"}, "mod.py: source is not valid UTF-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
