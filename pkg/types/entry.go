// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across docdoc packages.
package types

// Heading levels assigned by the extractor.
const (
	LevelModule = 1 // The file itself
	LevelTop    = 2 // Top-level class or function
	LevelMember = 3 // Method or class nested in a class; deeper nesting stays here
)

// Entry is one documented construct: the module, a class or a function.
type Entry struct {
	Name        string   // File path for the module entry, identifier otherwise
	Signature   string   // Parameter or base-class list, e.g. "(a, b=1)"; empty when none
	Body        string   // Cleaned docstring text; empty when absent
	Level       int      // Heading level (1-3)
	Annotations []string // Decorator source lines in declaration order (classes only)
}
