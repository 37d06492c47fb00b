// Package display lays the collected facts out next to the logo and turns the
// color placeholders embedded in the text into ANSI escape sequences.
package display

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// Color placeholders understood by Colorizer.
const (
	Reset     = "$(c0)" // reset color/formatting
	Primary   = "$(c1)" // orange
	Secondary = "$(c2)" // dim gray
)

// ANSI sequences substituted for the placeholders. The accents reset first so
// applying one never stacks on top of a previous color.
const (
	ansiReset     = "\x1B[0m"
	ansiPrimary   = ansiReset + "\x1B[38;5;208m"
	ansiSecondary = ansiReset + "\x1B[38;5;8m"
)

var (
	colorReplacer = strings.NewReplacer(
		Reset, ansiReset,
		Primary, ansiPrimary,
		Secondary, ansiSecondary,
	)
	plainReplacer = strings.NewReplacer(
		Reset, "",
		Primary, "",
		Secondary, "",
	)
)

// Colorizer replaces color placeholders. The zero value strips them.
type Colorizer struct {
	Enabled bool
}

// Colorize returns line with every placeholder replaced by its escape
// sequence, or removed when the colorizer is disabled.
func (c Colorizer) Colorize(line string) string {
	if c.Enabled {
		return colorReplacer.Replace(line)
	}
	return plainReplacer.Replace(line)
}

// ShouldColorize reports whether stdout is a terminal and NO_COLOR is unset.
// NO_COLOR disables color even when set to the empty string.
func ShouldColorize() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
