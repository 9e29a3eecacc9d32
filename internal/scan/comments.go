// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import "strings"

// stripComment returns line with its comment portion removed. A comment
// starts at the first % that is not preceded by a backslash; \% is an
// escaped percent sign and stays part of the text.
func stripComment(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] == '%' && (i == 0 || line[i-1] != '\\') {
			return line[:i]
		}
	}
	return line
}

// stripComments applies stripComment to every line of content, preserving
// line boundaries so line numbers are unaffected.
func stripComments(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = stripComment(line)
	}
	return strings.Join(lines, "\n")
}
