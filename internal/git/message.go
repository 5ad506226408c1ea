// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"fmt"
	"strings"
)

const maxSubjectLength = 72

// GenerateMessage creates a conventional "docs:" commit message for
// documentation regenerated from source.
func GenerateMessage(source string, outputs []string) string {
	msg := buildSubject(source, outputs)
	if body := buildBody(source, outputs); body != "" {
		msg += "\n\n" + body
	}
	return msg
}

// buildSubject creates the first line of the commit message.
// Format: "docs: regenerate <output> from <source>" (max 72 chars).
func buildSubject(source string, outputs []string) string {
	target := "documentation"
	if len(outputs) == 1 {
		target = outputs[0]
	}
	subject := fmt.Sprintf("docs: regenerate %s from %s", target, source)
	if len(subject) > maxSubjectLength {
		subject = subject[:maxSubjectLength-3] + "..."
	}
	return subject
}

// buildBody lists the generated files when there is more than one or when
// the subject had to be truncated.
func buildBody(source string, outputs []string) string {
	if len(outputs) == 0 {
		return ""
	}
	if len(outputs) == 1 && !strings.HasSuffix(buildSubject(source, outputs), "...") {
		return ""
	}

	var buf strings.Builder
	buf.WriteString("Source: " + source + "\n")
	buf.WriteString("Generated files:\n")
	for _, f := range outputs {
		buf.WriteString(fmt.Sprintf("- %s\n", f))
	}
	return buf.String()
}
