// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
)

// Revision reads files as they exist in one commit. It satisfies
// docgen.Source.
type Revision struct {
	repo *Repo
	rev  string
}

// At returns a reader for the commit named by rev ("HEAD", a branch, a
// tag, a hash, or an expression like "HEAD~2").
func (r *Repo) At(rev string) *Revision {
	return &Revision{repo: r, rev: rev}
}

// ReadFile returns the contents of path in the revision's tree.
func (v *Revision) ReadFile(path string) ([]byte, error) {
	rel, err := v.repo.relPath(path)
	if err != nil {
		return nil, err
	}

	hash, err := v.repo.repo.ResolveRevision(plumbing.Revision(v.rev))
	if err != nil {
		return nil, fmt.Errorf("resolving revision %s: %w", v.rev, err)
	}
	commit, err := v.repo.repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("getting commit %s: %w", hash, err)
	}

	file, err := commit.File(rel)
	if err != nil {
		return nil, fmt.Errorf("%s at %s: %w", rel, v.rev, err)
	}
	contents, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("reading %s at %s: %w", rel, v.rev, err)
	}
	return []byte(contents), nil
}
