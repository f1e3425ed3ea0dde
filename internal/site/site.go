// Package site describes a documentation site: the sidebar tree, the pages it
// contains in reading order, and the files backing those pages.
package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is an entry of the sidebar.
// Exactly one of Slug (a page), Items (a group) and Link (an external link)
// is set.
type Entry struct {
	Label     string  `yaml:"label"`
	Slug      string  `yaml:"slug,omitempty"`
	Link      string  `yaml:"link,omitempty"`
	Items     []Entry `yaml:"items,omitempty"`
	Collapsed bool    `yaml:"collapsed,omitempty"`
}

// Kind is the kind of an entry.
type Kind int

const (
	// KindPage is a page of the site.
	KindPage Kind = iota
	// KindGroup groups other entries.
	KindGroup
	// KindLink points outside of the site.
	KindLink
)

// Kind returns the kind of the entry.
func (e *Entry) Kind() Kind {
	switch {
	case e.Items != nil:
		return KindGroup
	case e.Link != "":
		return KindLink
	default:
		return KindPage
	}
}

// file is the sidebar file format.
type file struct {
	Title   string  `yaml:"title"`
	Root    string  `yaml:"root"`
	Sidebar []Entry `yaml:"sidebar"`
}

// Page is a page of the site in reading order.
type Page struct {
	Slug  string
	Label string
	// Trail are the labels of the groups containing the page, outermost first.
	Trail []string
	// Path is the file backing the page, empty if none could be found.
	Path string
}

// Resolved reports whether a file backs the page.
func (p *Page) Resolved() bool {
	return p.Path != ""
}

// Site is a loaded documentation site.
type Site struct {
	Title string
	// Root is the directory the page files are looked up in.
	Root string
	// Source is the sidebar file the site was loaded from, as a clean path
	// (the form Watcher reports changes in).
	Source  string
	Sidebar []Entry

	pages []*Page
	index map[string]int
}

// Load reads the sidebar file at the given path and resolves its pages.
func Load(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read sidebar file: %w", err)
	}
	return Parse(data, filepath.Dir(path), path)
}

// Parse parses sidebar data, resolving the root relative to baseDir.
// The source is only kept for reference (e.g. to watch it for changes).
func Parse(data []byte, baseDir string, source string) (*Site, error) {
	f := file{}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("could not parse sidebar (%s): %w", source, err)
	}

	root := f.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		root = filepath.Join(baseDir, root)
	}

	if source != "" {
		source = filepath.Clean(source)
	}

	s := &Site{
		Title:   f.Title,
		Root:    root,
		Source:  source,
		Sidebar: f.Sidebar,
		index:   map[string]int{},
	}
	if err := s.flatten(f.Sidebar, nil); err != nil {
		return nil, err
	}
	for _, p := range s.pages {
		p.Path = s.resolve(p.Slug)
	}

	return s, nil
}

func (s *Site) flatten(entries []Entry, trail []string) error {
	for i := range entries {
		e := &entries[i]
		where := strings.Join(append(append([]string{}, trail...), fmt.Sprintf("%s (#%d)", e.Label, i+1)), " > ")

		set := 0
		for _, present := range []bool{e.Slug != "", e.Items != nil, e.Link != ""} {
			if present {
				set++
			}
		}
		if set != 1 {
			return fmt.Errorf("sidebar entry '%s' must have exactly one of slug, items, link (has %d)", where, set)
		}

		switch e.Kind() {
		case KindGroup:
			if err := s.flatten(e.Items, append(append([]string{}, trail...), e.Label)); err != nil {
				return err
			}
		case KindPage:
			slug := strings.Trim(e.Slug, "/")
			if _, ok := s.index[slug]; ok {
				return fmt.Errorf("sidebar entry '%s' duplicates slug '%s'", where, slug)
			}
			label := e.Label
			if label == "" {
				label = slug
			}
			s.index[slug] = len(s.pages)
			s.pages = append(s.pages, &Page{
				Slug:  slug,
				Label: label,
				Trail: append([]string{}, trail...),
			})
		}
	}
	return nil
}

// candidates returns the files a slug may be backed by, in order of
// preference.
func (s *Site) candidates(slug string) []string {
	base := filepath.Join(s.Root, filepath.FromSlash(slug))
	return []string{
		base + ".md",
		base + ".mdx",
		filepath.Join(base, "index.md"),
	}
}

func (s *Site) resolve(slug string) string {
	for _, c := range s.candidates(slug) {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c
		}
	}
	return ""
}

// Pages returns the pages in reading order.
func (s *Site) Pages() []*Page {
	return s.pages
}

// Page returns the page for the given slug, or nil if there is none.
func (s *Site) Page(slug string) *Page {
	i, ok := s.index[strings.Trim(slug, "/")]
	if !ok {
		return nil
	}
	return s.pages[i]
}

// IndexOf returns the position of the page with the given slug in reading
// order, or -1.
func (s *Site) IndexOf(slug string) int {
	i, ok := s.index[strings.Trim(slug, "/")]
	if !ok {
		return -1
	}
	return i
}

// Neighbours returns the pages before and after the given page in reading
// order. Either is nil where there is none.
func (s *Site) Neighbours(slug string) (prev, next *Page) {
	i := s.IndexOf(slug)
	if i < 0 {
		return nil, nil
	}
	if i > 0 {
		prev = s.pages[i-1]
	}
	if i < len(s.pages)-1 {
		next = s.pages[i+1]
	}
	return prev, next
}
