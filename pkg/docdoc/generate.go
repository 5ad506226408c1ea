// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package docdoc

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/petar-djukic/docdoc/internal/docgen"
	"github.com/petar-djukic/docdoc/internal/git"
	"github.com/petar-djukic/docdoc/pkg/types"
)

// Config configures a Generate call.
type Config struct {
	Path     string             // Python source file (required)
	Format   Format             // FormatMarkdown (default) or FormatHTML
	Revision string             // Git revision to read Path at; empty reads the file system
	RepoDir  string             // Directory inside the repository (default: Path's directory)
	Logger   logrus.FieldLogger // Debug output; nil discards
}

// Result holds the generated document.
type Result struct {
	Text    string        // Rendered document
	Entries []types.Entry // Entries in document order
}

// Generate documents one file according to cfg.
func Generate(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	applyDefaults(&cfg)

	opts := []docgen.Option{docgen.WithLogger(cfg.Logger)}
	if cfg.Revision != "" {
		repo, err := git.Open(git.Config{WorkDir: cfg.RepoDir})
		if err != nil {
			return nil, &types.FileAccessError{Path: cfg.Path, Err: err}
		}
		opts = append(opts, docgen.WithSource(repo.At(cfg.Revision)))
	}

	doc, err := docgen.NewExtractor(opts...).Document(ctx, cfg.Path)
	if err != nil {
		return nil, err
	}

	text := doc.Markdown()
	if cfg.Format == FormatHTML {
		if text, err = doc.HTML(); err != nil {
			return nil, err
		}
	}
	return &Result{Text: text, Entries: doc.Entries()}, nil
}

// validateConfig checks that required fields are present.
func validateConfig(cfg Config) error {
	if cfg.Path == "" {
		return fmt.Errorf("Path is required")
	}
	switch cfg.Format {
	case "", FormatMarkdown, FormatHTML:
	default:
		return fmt.Errorf("unknown format %q (want %q or %q)", cfg.Format, FormatMarkdown, FormatHTML)
	}
	if cfg.RepoDir != "" && cfg.Revision == "" {
		return fmt.Errorf("RepoDir requires Revision")
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Format == "" {
		cfg.Format = FormatMarkdown
	}
	if cfg.Revision != "" && cfg.RepoDir == "" {
		cfg.RepoDir = filepath.Dir(cfg.Path)
	}
}
