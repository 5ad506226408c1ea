// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitFiles(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(Config{WorkDir: dir})
	require.NoError(t, err)

	docPath := filepath.Join(dir, "docs", "greet.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(docPath), 0o755))
	require.NoError(t, os.WriteFile(docPath, []byte("# greet.py\n\n\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("leave me\n"), 0o644))

	msg := GenerateMessage("greet.py", []string{"docs/greet.md"})
	require.NoError(t, repo.CommitFiles([]string{docPath}, msg))

	count, err := repo.commitCount()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	last, err := repo.lastCommitMessage()
	require.NoError(t, err)
	assert.Equal(t, "docs: regenerate docs/greet.md from greet.py", firstLineOf(last))

	content, err := repo.At("HEAD").ReadFile(docPath)
	require.NoError(t, err)
	assert.Equal(t, "# greet.py\n\n\n", string(content))

	_, err = repo.At("HEAD").ReadFile(filepath.Join(dir, "unrelated.txt"))
	assert.Error(t, err, "only the given files are committed")
}

func TestCommitFiles_Author(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(Config{WorkDir: dir})
	require.NoError(t, err)

	out := filepath.Join(dir, "API.md")
	require.NoError(t, os.WriteFile(out, []byte("doc\n"), 0o644))
	require.NoError(t, repo.CommitFiles([]string{out}, "docs: regenerate API.md from greet.py"))

	r, err := gogit.PlainOpen(dir)
	require.NoError(t, err)
	head, err := r.Head()
	require.NoError(t, err)
	commit, err := r.CommitObject(head.Hash())
	require.NoError(t, err)
	assert.Equal(t, authorName, commit.Author.Name)
	assert.Equal(t, authorEmail, commit.Author.Email)
}

func TestCommitFiles_OutsideRepo(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(Config{WorkDir: dir})
	require.NoError(t, err)

	err = repo.CommitFiles([]string{filepath.Join(t.TempDir(), "x.md")}, "msg")
	assert.ErrorIs(t, err, ErrOutsideRepo)
}

func TestGenerateMessage(t *testing.T) {
	t.Run("single output", func(t *testing.T) {
		msg := GenerateMessage("greet.py", []string{"greet.md"})
		assert.Equal(t, "docs: regenerate greet.md from greet.py", msg)
	})

	t.Run("several outputs", func(t *testing.T) {
		msg := GenerateMessage("greet.py", []string{"greet.md", "greet.html"})
		assert.Equal(t, "docs: regenerate documentation from greet.py", firstLineOf(msg))
		assert.Contains(t, msg, "Source: greet.py\n")
		assert.Contains(t, msg, "- greet.md\n")
		assert.Contains(t, msg, "- greet.html\n")
	})

	t.Run("long subject truncated", func(t *testing.T) {
		long := strings.Repeat("deep/", 15) + "module.py"
		msg := GenerateMessage(long, []string{"out.md"})

		subject := firstLineOf(msg)
		assert.Len(t, subject, maxSubjectLength)
		assert.True(t, strings.HasSuffix(subject, "..."))
		assert.Contains(t, msg, "Source: "+long)
	})

	t.Run("no outputs", func(t *testing.T) {
		msg := GenerateMessage("greet.py", nil)
		assert.Equal(t, "docs: regenerate documentation from greet.py", msg)
	})
}
