// Package util provides small string helpers shared by the views and CLI.
package util

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DisplayName turns an API name such as "mr-mime" into "Mr-Mime".
// Each hyphen-separated part gets an upper-case first letter.
func DisplayName(name string) string {
	parts := strings.Split(name, "-")
	for i, p := range parts {
		r, size := utf8.DecodeRuneInString(p)
		if r == utf8.RuneError {
			continue
		}
		parts[i] = string(unicode.ToUpper(r)) + p[size:]
	}
	return strings.Join(parts, "-")
}

// Truncate shortens s to maxWidth visual columns, ending in "..." when cut.
// ANSI escape codes and wide characters are measured by their rendered width.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "...")
}
