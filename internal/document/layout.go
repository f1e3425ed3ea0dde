package document

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Row is a line of display output, a (part of a) source line fitted to a
// width.
type Row struct {
	Kind  Kind
	Level int
	Text  string
	// Source is the index of the line the row belongs to.
	Source int
	// Continued is set for all but the first row of a wrapped line.
	Continued bool
}

// Wrap lays out the document for display at the given width.
// Code is truncated rather than wrapped, everything else is wrapped at word
// boundaries where possible. Empty lines are kept.
func (d *Document) Wrap(width int) []Row {
	if width < 1 {
		width = 1
	}

	rows := []Row{}
	for i, l := range d.Lines {
		switch l.Kind {
		case KindCode:
			rows = append(rows, Row{Kind: l.Kind, Text: runewidth.Truncate(l.Text, width, "…"), Source: i})
		default:
			for n, text := range wrapText(l.Text, width) {
				rows = append(rows, Row{Kind: l.Kind, Level: l.Level, Text: text, Source: i, Continued: n > 0})
			}
		}
	}
	return rows
}

// wrapText wraps text to the given display width.
func wrapText(text string, width int) []string {
	if runewidth.StringWidth(text) <= width {
		return []string{text}
	}

	result := []string{}
	current := strings.Builder{}
	currentWidth := 0
	flush := func() {
		result = append(result, current.String())
		current.Reset()
		currentWidth = 0
	}

	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		if currentWidth > 0 && currentWidth+1+w > width {
			flush()
		}
		if currentWidth > 0 {
			current.WriteRune(' ')
			currentWidth++
		}
		for w > width-currentWidth {
			// split words that don't fit a row on their own
			head := runewidth.Truncate(word, width-currentWidth, "")
			if head == "" {
				_, size := utf8.DecodeRuneInString(word)
				head = word[:size]
			}
			current.WriteString(head)
			word = word[len(head):]
			w = runewidth.StringWidth(word)
			flush()
		}
		current.WriteString(word)
		currentWidth += w
	}
	if currentWidth > 0 || len(result) == 0 {
		flush()
	}
	return result
}

// Search returns the indices of the rows containing query, ignoring case.
func Search(rows []Row, query string) []int {
	if query == "" {
		return nil
	}
	query = strings.ToLower(query)
	matches := []int{}
	for i, r := range rows {
		if strings.Contains(strings.ToLower(r.Text), query) {
			matches = append(matches, i)
		}
	}
	return matches
}
