package document

import (
	"strings"
)

// Kind classifies a line of a page.
type Kind int

const (
	KindPlain Kind = iota
	KindHeading
	KindFence
	KindCode
	KindQuote
	KindListItem
)

// Line is a source line of a page.
type Line struct {
	Kind Kind
	// Level is the heading level for headings.
	Level int
	// Text is the line's text without markup that is expressed by its kind
	// (e.g. the leading hashes of a heading).
	Text string
}

func classify(raw []string) []Line {
	lines := make([]Line, 0, len(raw))
	inFence := false
	for _, r := range raw {
		trimmed := strings.TrimSpace(r)
		switch {
		case strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~"):
			inFence = !inFence
			lines = append(lines, Line{Kind: KindFence, Text: strings.TrimLeft(trimmed, "`~")})
		case inFence:
			lines = append(lines, Line{Kind: KindCode, Text: strings.ReplaceAll(r, "\t", "    ")})
		case headingLevel(trimmed) > 0:
			level := headingLevel(trimmed)
			lines = append(lines, Line{Kind: KindHeading, Level: level, Text: strings.TrimSpace(trimmed[level:])})
		case strings.HasPrefix(trimmed, ">"):
			lines = append(lines, Line{Kind: KindQuote, Text: strings.TrimSpace(strings.TrimPrefix(trimmed, ">"))})
		case isListItem(trimmed):
			lines = append(lines, Line{Kind: KindListItem, Text: r})
		default:
			lines = append(lines, Line{Kind: KindPlain, Text: trimmed})
		}
	}
	return lines
}

func headingLevel(s string) int {
	level := 0
	for level < len(s) && s[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0
	}
	if level < len(s) && s[level] != ' ' {
		return 0
	}
	return level
}

func isListItem(s string) bool {
	if strings.HasPrefix(s, "- ") || strings.HasPrefix(s, "* ") || strings.HasPrefix(s, "+ ") {
		return true
	}
	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	return digits > 0 && strings.HasPrefix(s[digits:], ". ")
}
