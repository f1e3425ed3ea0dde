package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ja-he/docnav/internal/config"
	"github.com/ja-he/docnav/internal/site"
)

// PagesCommand prints the pages of a site in reading order.
type PagesCommand struct {
	Sidebar string `short:"s" long:"sidebar" description:"Specify the sidebar file of the site" value-name:"<file>"`
}

// Execute prints the pages.
func (command *PagesCommand) Execute(args []string) error {
	cfg := readConfig(config.Dark)
	s, err := site.Load(sidebarPath(command.Sidebar, cfg))
	if err != nil {
		return err
	}
	return writePages(os.Stdout, s, time.Now())
}

// writePages writes one line per page: its position, slug, label and either
// the backing file's size and age or that it is missing.
func writePages(w io.Writer, s *site.Site, now time.Time) error {
	pages := s.Pages()
	width := len(fmt.Sprint(len(pages)))
	for i, p := range pages {
		label := p.Label
		if len(p.Trail) > 0 {
			label = strings.Join(p.Trail, " › ") + " › " + label
		}
		status := "missing"
		if p.Resolved() {
			info, err := os.Stat(p.Path)
			if err != nil {
				status = fmt.Sprintf("unreadable (%s)", err.Error())
			} else {
				status = fmt.Sprintf("%s, %s", humanize.Bytes(uint64(info.Size())), humanize.RelTime(info.ModTime(), now, "ago", "from now"))
			}
		}
		if _, err := fmt.Fprintf(w, "%*d  %-24s  %s  [%s]\n", width, i+1, p.Slug, label, status); err != nil {
			return err
		}
	}
	return nil
}
