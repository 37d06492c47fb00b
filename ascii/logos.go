// Package ascii provides the ASCII art logos printed by omnifetch.
// Logos carry the display package's color placeholders rather than raw ANSI
// codes, so they degrade to plain text when color is disabled.
package ascii

import (
	_ "embed"
	"strings"
)

//go:embed fenix.txt
var fenixText string

//go:embed omnios.txt
var omniosText string

// Split once at startup; never modified afterwards.
var (
	fenixLines  = splitLines(fenixText)
	omniosLines = splitLines(omniosText)
)

// Fenix returns the primary logo, the phoenix printed down the left side.
//
// Returns:
//   - A slice of strings, one per line of the logo
//
// The slice is a copy; callers may modify it freely.
func Fenix() []string {
	return append([]string(nil), fenixLines...)
}

// OmniOS returns the wordmark printed above the banner.
func OmniOS() []string {
	return append([]string(nil), omniosLines...)
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
