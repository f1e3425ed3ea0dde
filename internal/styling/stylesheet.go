package styling

import (
	"fmt"

	"github.com/ja-he/docnav/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal DrawStyling
	Header DrawStyling

	Heading    DrawStyling
	Subheading DrawStyling
	Code       DrawStyling
	Quote      DrawStyling
	ListItem   DrawStyling
	Match      DrawStyling
	Missing    DrawStyling

	Sidebar        DrawStyling
	SidebarGroup   DrawStyling
	SidebarCurrent DrawStyling
	SidebarLink    DrawStyling

	Status        DrawStyling
	StatusPending DrawStyling

	LogDefault  DrawStyling
	LogTitleBox DrawStyling

	LogEntryTypeError DrawStyling
	LogEntryTypeWarn  DrawStyling
	LogEntryTypeInfo  DrawStyling
	LogEntryTypeDebug DrawStyling
	LogEntryTypeTrace DrawStyling

	LogEntryLocation DrawStyling
	LogEntryTime     DrawStyling

	Help DrawStyling

	Editor DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(cfg config.Stylesheet) (*Stylesheet, error) {
	stylesheet := Stylesheet{}

	for _, s := range []struct {
		name   string
		target *DrawStyling
		source config.Styling
	}{
		{"normal", &stylesheet.Normal, cfg.Normal},
		{"header", &stylesheet.Header, cfg.Header},
		{"heading", &stylesheet.Heading, cfg.Heading},
		{"subheading", &stylesheet.Subheading, cfg.Subheading},
		{"code", &stylesheet.Code, cfg.Code},
		{"quote", &stylesheet.Quote, cfg.Quote},
		{"list-item", &stylesheet.ListItem, cfg.ListItem},
		{"match", &stylesheet.Match, cfg.Match},
		{"missing", &stylesheet.Missing, cfg.Missing},
		{"sidebar", &stylesheet.Sidebar, cfg.Sidebar},
		{"sidebar-group", &stylesheet.SidebarGroup, cfg.SidebarGroup},
		{"sidebar-current", &stylesheet.SidebarCurrent, cfg.SidebarCurrent},
		{"sidebar-link", &stylesheet.SidebarLink, cfg.SidebarLink},
		{"status", &stylesheet.Status, cfg.Status},
		{"status-pending", &stylesheet.StatusPending, cfg.StatusPending},
		{"log-default", &stylesheet.LogDefault, cfg.LogDefault},
		{"log-title-box", &stylesheet.LogTitleBox, cfg.LogTitleBox},
		{"log-entry-type-error", &stylesheet.LogEntryTypeError, cfg.LogEntryTypeError},
		{"log-entry-type-warn", &stylesheet.LogEntryTypeWarn, cfg.LogEntryTypeWarn},
		{"log-entry-type-info", &stylesheet.LogEntryTypeInfo, cfg.LogEntryTypeInfo},
		{"log-entry-type-debug", &stylesheet.LogEntryTypeDebug, cfg.LogEntryTypeDebug},
		{"log-entry-type-trace", &stylesheet.LogEntryTypeTrace, cfg.LogEntryTypeTrace},
		{"log-entry-location", &stylesheet.LogEntryLocation, cfg.LogEntryLocation},
		{"log-entry-time", &stylesheet.LogEntryTime, cfg.LogEntryTime},
		{"help", &stylesheet.Help, cfg.Help},
		{"editor", &stylesheet.Editor, cfg.Editor},
	} {
		style, err := StyleFromConfig(s.source)
		if err != nil {
			return nil, fmt.Errorf("invalid style '%s': %w", s.name, err)
		}
		*s.target = style
	}

	return &stylesheet, nil
}

// StyleFromConfig converts a styling as given in the config file.
func StyleFromConfig(c config.Styling) (DrawStyling, error) {
	s, err := StyleFromHex(c.Fg, c.Bg)
	if err != nil {
		return nil, err
	}
	if c.Style != nil {
		s.bold = c.Style.Bold
		s.italic = c.Style.Italic
		s.underlined = c.Style.Underlined
	}
	return s, nil
}

// ForHeading returns the styling for a heading of the given level.
func (s *Stylesheet) ForHeading(level int) DrawStyling {
	if level <= 1 {
		return s.Heading
	}
	return s.Subheading
}
