package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ja-he/docnav/internal/config"
	"github.com/ja-he/docnav/internal/input"
	"github.com/ja-he/docnav/internal/keynav"
)

// KeysCommand writes the key binding reference.
type KeysCommand struct {
	Output string `short:"o" long:"output" description:"write the reference to a file instead of stdout" value-name:"<file>"`
}

// Execute writes the reference table.
func (command *KeysCommand) Execute(args []string) error {
	cfg := readConfig(config.Dark)

	var w io.Writer = os.Stdout
	if command.Output != "" {
		file, err := os.Create(command.Output)
		if err != nil {
			return fmt.Errorf("could not create '%s': %w", command.Output, err)
		}
		defer file.Close()
		w = file
	}
	return writeKeys(w, cfg.Keys)
}

// writeKeys writes the Markdown key binding reference: the navigation keys
// followed by the viewer and prompt key maps.
func writeKeys(w io.Writer, keys input.InputConfig) error {
	p := &printer{w: w}

	p.printf("# Keys\n\n## Navigation\n\n")
	p.printf("| keys | action |\n|---|---|\n")
	help := keynav.Help()
	for _, k := range sortedKeys(help) {
		p.printf("| `%s` | %s |\n", k, help[k])
	}
	p.printf("\nA chord must be completed within %s. ", humanDuration(keynav.SequenceTimeout))
	p.printf("Held motion keys scroll by %.1f rows per frame (at most one frame every %s), ", keynav.BaseScrollDistance, humanDuration(keynav.MinFrameInterval))
	p.printf("accelerating by %.2fx per repeat up to %.0fx.\n", keynav.ScrollAcceleration, keynav.MaxScrollSpeed)

	writeMappings(p, "Viewer", keys.Viewer)
	writeMappings(p, "Search prompt", keys.Prompt)
	return p.err
}

func writeMappings(p *printer, title string, mappings map[input.Keyspec]input.Actionspec) {
	p.printf("\n## %s\n\n| keys | action |\n|---|---|\n", title)
	specs := make([]string, 0, len(mappings))
	for k, a := range mappings {
		if a != config.NoAction {
			specs = append(specs, string(k))
		}
	}
	sort.Strings(specs)
	for _, k := range specs {
		p.printf("| `%s` | %s |\n", k, mappings[input.Keyspec(k)])
	}
}

// humanDuration renders a duration with SI prefixes, e.g. "16 ms".
func humanDuration(d time.Duration) string {
	return humanize.SIWithDigits(d.Seconds(), 0, "s")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// printer writes formatted output, remembering the first error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
