package pretty

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	separator = ", "
	indent    = "  "

	// slack reserved on every line for a trailing separator and bracket.
	slack = 3
)

// shape is the uniform form every composite is reduced to before folding.
// items are already rendered chunks; a chunk spanning several lines forces
// the composite onto several lines too.
type shape struct {
	prefix string
	suffix string
	items  []string

	// padded puts a space inside the brackets when the body fits on one line.
	padded bool
}

// layout folds the shape's items greedily into lines no wider than width
// and wraps them in the prefix and suffix. A single folded line stays inline;
// several lines are indented under the prefix with the suffix on its own line.
func layout(s shape, width int) string {
	lines := fold(s.items, width)
	switch len(lines) {
	case 0:
		return s.prefix + s.suffix
	case 1:
		inner := strings.TrimSuffix(lines[0], separator)
		if s.padded {
			inner = " " + inner + " "
		}
		return s.prefix + inner + s.suffix
	}

	var b strings.Builder
	b.WriteString(s.prefix)
	b.WriteByte('\n')
	last := len(lines) - 1
	for i, line := range lines {
		if i == last {
			line = collapseSeparator(line)
		}
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(s.suffix)
	return b.String()
}

// fold packs single-line chunks onto a running line until the next one would
// overflow width. Multi-line chunks close the running line and are copied
// through verbatim, since sharing a line with them would break indentation.
func fold(items []string, width int) []string {
	var lines []string
	current := ""
	for _, item := range items {
		itemLines := strings.Split(item+separator, "\n")
		if len(itemLines) == 1 {
			text := itemLines[0]
			if current != "" && displayWidth(current)+displayWidth(text)+slack > width {
				lines = append(lines, collapseSeparator(current))
				current = text
			} else {
				current += text
			}
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		lines = append(lines, itemLines...)
		current = ""
	}
	if current != "" {
		lines = append(lines, current)
	}
	return dropBlank(lines)
}

// collapseSeparator turns a trailing ", " into ",".
func collapseSeparator(line string) string {
	if strings.HasSuffix(line, separator) {
		return line[:len(line)-1]
	}
	return line
}

func dropBlank(lines []string) []string {
	out := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// displayWidth measures terminal columns rather than bytes.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
