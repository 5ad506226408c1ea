// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	gitpkg "github.com/petar-djukic/docdoc/internal/git"
	"github.com/petar-djukic/docdoc/internal/output"
	"github.com/petar-djukic/docdoc/internal/watch"
	"github.com/petar-djukic/docdoc/pkg/docdoc"
)

// runGenerate documents the file named by the single argument.
func runGenerate(cmd *cobra.Command, args []string) error {
	log := newLogger(viper.GetBool("verbose"))

	cfg := docdoc.Config{
		Path:     args[0],
		Format:   docdoc.Format(viper.GetString("format")),
		Revision: viper.GetString("rev"),
		RepoDir:  viper.GetString("repo"),
		Logger:   log,
	}
	outPath := viper.GetString("output")
	checkPath := viper.GetString("check")
	watchMode := viper.GetBool("watch")
	commit := viper.GetBool("commit")

	if (watchMode || commit) && outPath == "" {
		return errors.New("--watch and --commit require --output")
	}
	if watchMode && (checkPath != "" || cfg.Revision != "") {
		return errors.New("--watch cannot be combined with --check or --rev")
	}
	if checkPath != "" && outPath != "" {
		return errors.New("--check and --output are mutually exclusive")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	generate := func(ctx context.Context) error {
		result, err := docdoc.Generate(ctx, cfg)
		if err != nil {
			return err
		}
		switch {
		case checkPath != "":
			return output.Check(checkPath, []byte(result.Text))
		case outPath != "":
			return output.WriteFile(outPath, []byte(result.Text))
		default:
			_, err := fmt.Fprint(cmd.OutOrStdout(), result.Text)
			return err
		}
	}

	if watchMode {
		log.WithField("file", cfg.Path).Info("watching for changes")
		return watch.New(watch.Config{Path: cfg.Path, Log: log}, generate).Run(ctx)
	}

	if err := generate(ctx); err != nil {
		var stale *output.StaleError
		if errors.As(err, &stale) {
			fmt.Fprint(cmd.OutOrStdout(), stale.Diff)
		}
		return err
	}

	if commit {
		return commitOutput(cfg.Path, outPath)
	}
	return nil
}

// commitOutput commits the generated document to the repository that
// contains it.
func commitOutput(source, outPath string) error {
	repo, err := gitpkg.Open(gitpkg.Config{WorkDir: filepath.Dir(outPath)})
	if err != nil {
		return fmt.Errorf("opening repository: %w", err)
	}
	msg := gitpkg.GenerateMessage(source, []string{outPath})
	if err := repo.CommitFiles([]string{outPath}, msg); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}

// newLogger builds the stderr logger; verbose enables debug output.
func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
