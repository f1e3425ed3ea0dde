package config

import "github.com/ja-he/docnav/internal/input"

// Default returns the default configuration for the given type of
// colorscheme (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	return Config{
		Stylesheet: defaultStylesheet(colorschemeType),
		Keys:       defaultKeys(),
	}
}

// NoAction can be mapped to a key sequence to remove a default mapping.
const NoAction input.Actionspec = "none"

func defaultKeys() input.InputConfig {
	return input.InputConfig{
		Viewer: map[input.Keyspec]input.Actionspec{
			"q":     "quit",
			"<c-c>": "quit",
			"?":     "toggle-help",
			"W":     "toggle-log",
			"t":     "toggle-sidebar",
			"P":     "toggle-performance",
			"/":     "search",
			"n":     "next-match",
			"N":     "prev-match",
			"gg":    "scroll-top",
			"G":     "scroll-bottom",
			"<c-d>": "half-page-down",
			"<c-u>": "half-page-up",
			"<c-f>": "page-down",
			"<c-b>": "page-up",
			"r":     "reload",
			"<esc>": "close-overlay",
		},
		Prompt: map[input.Keyspec]input.Actionspec{
			"<cr>":    "commit",
			"<esc>":   "cancel",
			"<bs>":    "backspace",
			"<c-bs>":  "backspace",
			"<del>":   "delete-rune",
			"<left>":  "move-cursor-left",
			"<right>": "move-cursor-right",
			"<home>":  "move-cursor-to-beginning",
			"<end>":   "move-cursor-to-end",
			"<c-a>":   "move-cursor-to-beginning",
			"<c-e>":   "move-cursor-to-end",
			"<c-w>":   "move-cursor-to-prev-word-beginning",
			"<c-u>":   "backspace-to-beginning",
			"<c-k>":   "delete-to-end",
		},
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Light {
		return Stylesheet{
			Normal:            Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			Header:            Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
			Heading:           Styling{Fg: "#0065a3", Bg: "#ffffff", Style: &FontStyle{Bold: true}},
			Subheading:        Styling{Fg: "#3a751a", Bg: "#ffffff", Style: &FontStyle{Bold: true}},
			Code:              Styling{Fg: "#404040", Bg: "#f0f0f0", Style: &FontStyle{}},
			Quote:             Styling{Fg: "#808080", Bg: "#ffffff", Style: &FontStyle{Italic: true}},
			ListItem:          Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			Match:             Styling{Fg: "#000000", Bg: "#fff0cc", Style: &FontStyle{}},
			Missing:           Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{}},
			Sidebar:           Styling{Fg: "#404040", Bg: "#f0f0f0", Style: &FontStyle{}},
			SidebarGroup:      Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
			SidebarCurrent:    Styling{Fg: "#ffffff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
			SidebarLink:       Styling{Fg: "#808080", Bg: "#f0f0f0", Style: &FontStyle{Italic: true}},
			Status:            Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			StatusPending:     Styling{Fg: "#cc8f00", Bg: "#fff0cc", Style: &FontStyle{Bold: true}},
			LogDefault:        Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			LogTitleBox:       Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
			LogEntryTypeError: Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
			LogEntryTypeWarn:  Styling{Fg: "#cc8f00", Bg: "#fff0cc", Style: &FontStyle{Bold: true}},
			LogEntryTypeInfo:  Styling{Fg: "#3a751a", Bg: "#c2edab", Style: &FontStyle{Bold: true}},
			LogEntryTypeDebug: Styling{Fg: "#0065a3", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
			LogEntryTypeTrace: Styling{Fg: "#a3008b", Bg: "#ffccf7", Style: &FontStyle{Bold: true}},
			LogEntryLocation:  Styling{Fg: "#cccccc", Bg: "#ffffff", Style: &FontStyle{}},
			LogEntryTime:      Styling{Fg: "#c0c0c0", Bg: "#ffffff", Style: &FontStyle{}},
			Help:              Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			Editor:            Styling{Fg: "#000000", Bg: "#cccccc", Style: &FontStyle{}},
		}
	}
	return Stylesheet{
		Normal:            Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		Header:            Styling{Fg: "#ffffff", Bg: "#202020", Style: &FontStyle{Bold: true}},
		Heading:           Styling{Fg: "#ccebff", Bg: "#000000", Style: &FontStyle{Bold: true}},
		Subheading:        Styling{Fg: "#c2edab", Bg: "#000000", Style: &FontStyle{Bold: true}},
		Code:              Styling{Fg: "#f0f0f0", Bg: "#202020", Style: &FontStyle{}},
		Quote:             Styling{Fg: "#c0c0c0", Bg: "#000000", Style: &FontStyle{Italic: true}},
		ListItem:          Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		Match:             Styling{Fg: "#fff0cc", Bg: "#734700", Style: &FontStyle{}},
		Missing:           Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{}},
		Sidebar:           Styling{Fg: "#c0c0c0", Bg: "#101010", Style: &FontStyle{}},
		SidebarGroup:      Styling{Fg: "#ffffff", Bg: "#101010", Style: &FontStyle{Bold: true}},
		SidebarCurrent:    Styling{Fg: "#ffffff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
		SidebarLink:       Styling{Fg: "#808080", Bg: "#101010", Style: &FontStyle{Italic: true}},
		Status:            Styling{Fg: "#f0f0f0", Bg: "#202020", Style: &FontStyle{}},
		StatusPending:     Styling{Fg: "#fff0cc", Bg: "#cc8f00", Style: &FontStyle{Bold: true}},
		LogDefault:        Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		LogTitleBox:       Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{Bold: true}},
		LogEntryTypeError: Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
		LogEntryTypeWarn:  Styling{Fg: "#fff0cc", Bg: "#cc8f00", Style: &FontStyle{Bold: true}},
		LogEntryTypeInfo:  Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{Bold: true}},
		LogEntryTypeDebug: Styling{Fg: "#ccebff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
		LogEntryTypeTrace: Styling{Fg: "#ffccf7", Bg: "#a3008b", Style: &FontStyle{Bold: true}},
		LogEntryLocation:  Styling{Fg: "#c0c0c0", Bg: "#000000", Style: &FontStyle{}},
		LogEntryTime:      Styling{Fg: "#808080", Bg: "#000000", Style: &FontStyle{}},
		Help:              Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},
		Editor:            Styling{Fg: "#ffffff", Bg: "#606060", Style: &FontStyle{}},
	}
}
