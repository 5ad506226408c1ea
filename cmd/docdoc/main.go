// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command docdoc prints Markdown documentation for a Python source file,
// built from its module, class and function docstrings.
//
//	docdoc mymodule.py > mymodule.md
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree and binds its flags to viper.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docdoc <file.py>",
		Short: "Generate Markdown documentation from Python docstrings",
		Long: "docdoc parses one Python source file and renders its module, class and function\n" +
			"docstrings, with signatures, as a nested Markdown document on standard output.",
		Args:          cobra.ExactArgs(1),
		RunE:          runGenerate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.Flags()
	flags.StringP("output", "o", "", "Write the document to this file instead of stdout")
	flags.String("format", "md", "Output format: md or html")
	flags.String("rev", "", "Document the file as of this git revision")
	flags.String("repo", "", "Directory inside the git repository (default: the file's directory)")
	flags.String("check", "", "Compare with this existing document and fail with a diff if it is stale")
	flags.Bool("watch", false, "Regenerate --output whenever the source file changes")
	flags.Bool("commit", false, "Commit --output to git after writing it")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	// Bind flags to viper.
	for _, name := range []string{"output", "format", "rev", "repo", "check", "watch", "commit", "verbose"} {
		viper.BindPFlag(name, flags.Lookup(name))
	}

	// Env vars: DOCDOC_FORMAT, DOCDOC_OUTPUT, etc.
	viper.SetEnvPrefix("DOCDOC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".docdoc")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print docdoc version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "docdoc %s\n", version)
		},
	}
}
