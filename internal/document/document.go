// Package document loads documentation pages and lays them out as lines of
// text for display.
package document

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the metadata block at the top of a page.
//
// Prev and Next are nil unless the page sets them; `prev: false` removes the
// link to the previous page.
type FrontMatter struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Prev        *PageLink `yaml:"prev"`
	Next        *PageLink `yaml:"next"`
}

// PageLink is the value of a page's prev or next field. Only `false` has an
// effect here; a custom label (`prev: Label` or `prev: {link: ..., label: ...}`)
// is accepted and ignored.
type PageLink struct {
	Disabled bool
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *PageLink) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.ShortTag() == "!!bool" {
		var enabled bool
		if err := value.Decode(&enabled); err != nil {
			return err
		}
		l.Disabled = !enabled
	}
	return nil
}

// PrevDisabled reports whether the page opts out of a previous-page link.
func (f FrontMatter) PrevDisabled() bool {
	return f.Prev != nil && f.Prev.Disabled
}

// NextDisabled reports whether the page opts out of a next-page link.
func (f FrontMatter) NextDisabled() bool {
	return f.Next != nil && f.Next.Disabled
}

// Document is a loaded page.
type Document struct {
	Path     string
	Meta     FrontMatter
	Lines    []Line
	Modified time.Time
	Size     int64
}

// Load reads and parses the page at the given path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read page: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not stat page: %w", err)
	}

	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse page '%s': %w", path, err)
	}
	d.Path = path
	d.Modified = info.ModTime()
	d.Size = info.Size()
	return d, nil
}

// Parse parses page contents.
func Parse(data []byte) (*Document, error) {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))

	d := &Document{}
	body, meta, err := splitFrontMatter(data)
	if err != nil {
		return nil, err
	}
	if meta != nil {
		if err := yaml.Unmarshal(meta, &d.Meta); err != nil {
			return nil, fmt.Errorf("invalid front matter: %w", err)
		}
	}

	d.Lines = classify(strings.Split(strings.TrimRight(string(body), "\n"), "\n"))
	return d, nil
}

// Placeholder returns a document with the given notice, for pages that
// cannot be shown.
func Placeholder(title string, notice ...string) *Document {
	lines := []string{"# " + title, ""}
	lines = append(lines, notice...)
	return &Document{
		Meta:  FrontMatter{Title: title},
		Lines: classify(lines),
	}
}

// Title returns the title of the page, falling back to its first heading.
func (d *Document) Title() string {
	if d.Meta.Title != "" {
		return d.Meta.Title
	}
	for _, l := range d.Lines {
		if l.Kind == KindHeading {
			return l.Text
		}
	}
	return ""
}

func splitFrontMatter(data []byte) (body []byte, meta []byte, err error) {
	if !bytes.HasPrefix(data, []byte("---\n")) {
		return data, nil, nil
	}
	rest := data[len("---\n"):]
	if bytes.HasPrefix(rest, []byte("---\n")) || bytes.Equal(rest, []byte("---")) {
		return bytes.TrimPrefix(rest[3:], []byte("\n")), []byte{}, nil
	}
	end := bytes.Index(rest, []byte("\n---\n"))
	switch {
	case end >= 0:
		return rest[end+len("\n---\n"):], rest[:end+1], nil
	case bytes.HasSuffix(rest, []byte("\n---")):
		return []byte{}, rest[:len(rest)-len("---")], nil
	default:
		return nil, nil, fmt.Errorf("unterminated front matter")
	}
}
