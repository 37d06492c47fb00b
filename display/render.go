package display

import (
	"fmt"
	"strings"

	"omnifetch/sysinfo"
)

// OutputBlock builds the lines shown to the right of the primary logo: the
// secondary logo, a user@host banner underlined with one dash per byte, and
// one "Label: value" line per fact. Lines carry color placeholders.
//
// Parameters:
//   - user: Login name for the banner
//   - host: Host name for the banner
//   - facts: Collected facts in display order
//   - logo: Secondary logo, printed above the banner
//
// Returns:
//   - The block, one string per line
func OutputBlock(user, host string, facts sysinfo.Facts, logo []string) []string {
	block := make([]string, 0, len(logo)+4+len(facts))
	block = append(block, logo...)
	block = append(block, "")

	block = append(block, fmt.Sprintf("%s%s%s@%s%s", Primary, user, Secondary, Primary, host))
	width := len(user) + 1 + len(host)
	block = append(block, Secondary+strings.Repeat("-", width))
	block = append(block, "")

	for _, f := range facts {
		block = append(block, fmt.Sprintf("%s%s:%s %s", Primary, f.Label, Reset, f.Value))
	}
	return block
}

// Render interleaves the primary logo with the output block and colorizes
// every line. The result starts and ends with an empty line.
//
// Each logo line is followed by a space and the block line at the same index.
// Block lines past the end of the logo are not shown, so the logo must be at
// least as tall as the block.
func Render(c Colorizer, user, host string, facts sysinfo.Facts, primary, secondary []string) []string {
	block := OutputBlock(user, host, facts, secondary)

	lines := make([]string, 0, len(primary)+2)
	lines = append(lines, "")
	for i, logoLine := range primary {
		var right string
		if i < len(block) {
			right = block[i]
		}
		lines = append(lines, c.Colorize(logoLine+" "+right))
	}
	lines = append(lines, "")
	return lines
}
