package cli

import (
	"fmt"
	"sort"

	"github.com/ja-he/docnav/internal/config"
	"github.com/ja-he/docnav/internal/control/action"
	"github.com/ja-he/docnav/internal/input"
	"github.com/ja-he/docnav/internal/keynav"
)

// resolveMappings binds the configured key sequences to the named actions.
// Sequences mapped to config.NoAction are left unbound.
//
// It also returns warnings for bindings that can never trigger, because the
// key interpreter handles their first key.
func resolveMappings(
	spec map[input.Keyspec]input.Actionspec,
	actions map[input.Actionspec]action.Action,
) (map[input.Keyspec]action.Action, []string, error) {
	result := map[input.Keyspec]action.Action{}
	warnings := []string{}

	for keyspec, actionspec := range spec {
		if actionspec == config.NoAction {
			continue
		}
		a, ok := actions[actionspec]
		if !ok {
			return nil, nil, fmt.Errorf("unknown action '%s' (mapped to '%s')", actionspec, keyspec)
		}
		keys, err := input.ConfigKeyspecToKeys(keyspec)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid key sequence '%s': %w", keyspec, err)
		}
		if len(keys) > 0 && keynav.Handles(keys[0]) {
			warnings = append(warnings, fmt.Sprintf("mapping '%s' to '%s' has no effect, '%s' is a navigation key", keyspec, actionspec, input.ToConfigIdentifierString(keys[0])))
			continue
		}
		result[keyspec] = a
	}

	sort.Strings(warnings)
	return result, warnings, nil
}

// viewerActions are the actions available to the viewer's key map.
func (c *Controller) viewerActions() map[input.Actionspec]action.Action {
	v := c.viewer
	return map[input.Actionspec]action.Action{
		"quit":               action.Named("quit", func() { c.quit = true }),
		"toggle-help":        action.Named("toggle help", func() { c.showHelp = !c.showHelp }),
		"toggle-log":         action.Named("toggle log", func() { c.showLog = !c.showLog }),
		"toggle-sidebar":     action.Named("toggle sidebar", v.ToggleSidebar),
		"toggle-performance": action.Named("toggle performance info", func() { c.showPerformance = !c.showPerformance }),
		"search":             action.Named("search in page", c.openSearch),
		"next-match":         action.Named("go to next match", v.NextMatch),
		"prev-match":         action.Named("go to previous match", v.PrevMatch),
		"scroll-top":         action.Named("scroll to top", v.ScrollToTop),
		"scroll-bottom":      action.Named("scroll to bottom", v.ScrollToBottom),
		"half-page-down":     action.Named("scroll half a page down", func() { v.ScrollPages(0.5) }),
		"half-page-up":       action.Named("scroll half a page up", func() { v.ScrollPages(-0.5) }),
		"page-down":          action.Named("scroll a page down", func() { v.ScrollPages(1) }),
		"page-up":            action.Named("scroll a page up", func() { v.ScrollPages(-1) }),
		"reload":             action.Named("reload page", c.reload),
		"close-overlay":      action.Named("close help and log", func() { c.showHelp, c.showLog = false, false }),
	}
}

// promptActions are the actions available while the search prompt is open.
func (c *Controller) promptActions() map[input.Actionspec]action.Action {
	edit := func(explanation string, f func()) action.Action {
		return action.Named(explanation, func() {
			if c.prompt != nil {
				f()
			}
		})
	}
	return map[input.Actionspec]action.Action{
		"commit":                             edit("search", func() { c.prompt.Commit() }),
		"cancel":                             edit("cancel search", func() { c.prompt.Cancel() }),
		"backspace":                          edit("delete previous character", func() { c.prompt.BackspaceRune() }),
		"delete-rune":                        edit("delete character", func() { c.prompt.DeleteRune() }),
		"backspace-to-beginning":             edit("delete to beginning", func() { c.prompt.BackspaceToBeginning() }),
		"delete-to-end":                      edit("delete to end", func() { c.prompt.DeleteToEnd() }),
		"move-cursor-left":                   edit("move cursor left", func() { c.prompt.MoveCursorLeft() }),
		"move-cursor-right":                  edit("move cursor right", func() { c.prompt.MoveCursorRightA() }),
		"move-cursor-to-beginning":           edit("move cursor to beginning", func() { c.prompt.MoveCursorToBeginning() }),
		"move-cursor-to-end":                 edit("move cursor to end", func() { c.prompt.MoveCursorPastEnd() }),
		"move-cursor-to-prev-word-beginning": edit("move cursor to previous word", func() { c.prompt.MoveCursorPrevWordBeginning() }),
	}
}
