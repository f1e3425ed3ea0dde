// Package config holds the configuration file format and its defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/ja-he/docnav/internal/input"
)

// Config is the configuration data as present in a config file at
// '${DOCNAV_HOME}/config.yaml' or '${XDG_CONFIG_HOME}/docnav/config.yaml'.
type Config struct {
	Stylesheet Stylesheet `yaml:"stylesheet"`
	// Sidebar is the sidebar file to use when none is given on the command
	// line.
	Sidebar string `yaml:"sidebar"`
	// Keys can override the default key mappings.
	Keys input.InputConfig `yaml:"keys"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal            Styling `yaml:"normal"`
	Header            Styling `yaml:"header"`
	Heading           Styling `yaml:"heading"`
	Subheading        Styling `yaml:"subheading"`
	Code              Styling `yaml:"code"`
	Quote             Styling `yaml:"quote"`
	ListItem          Styling `yaml:"list-item"`
	Match             Styling `yaml:"match"`
	Missing           Styling `yaml:"missing"`
	Sidebar           Styling `yaml:"sidebar"`
	SidebarGroup      Styling `yaml:"sidebar-group"`
	SidebarCurrent    Styling `yaml:"sidebar-current"`
	SidebarLink       Styling `yaml:"sidebar-link"`
	Status            Styling `yaml:"status"`
	StatusPending     Styling `yaml:"status-pending"`
	LogDefault        Styling `yaml:"log-default"`
	LogTitleBox       Styling `yaml:"log-title-box"`
	LogEntryTypeError Styling `yaml:"log-entry-type-error"`
	LogEntryTypeWarn  Styling `yaml:"log-entry-type-warn"`
	LogEntryTypeInfo  Styling `yaml:"log-entry-type-info"`
	LogEntryTypeDebug Styling `yaml:"log-entry-type-debug"`
	LogEntryTypeTrace Styling `yaml:"log-entry-type-trace"`
	LogEntryLocation  Styling `yaml:"log-entry-location"`
	LogEntryTime      Styling `yaml:"log-entry-time"`
	Help              Styling `yaml:"help"`
	Editor            Styling `yaml:"editor"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	defaultConfig := Default(defaultTheme)

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml: %w", err)
	}

	return defaultConfig.augmentWith(parsedConfig), nil
}

// HomeEnvVar names the environment variable that can point to the directory
// containing the config file.
const HomeEnvVar = "DOCNAV_HOME"

// ErrNotFound is returned (wrapped) by Locate and Read when there is no config
// file, which is not a problem: the defaults apply.
var ErrNotFound = errors.New("no config file found")

// Locate returns the path of the config file.
// If DOCNAV_HOME is set, the file is expected there, otherwise it is searched
// for in the XDG config directories.
func Locate() (string, error) {
	if home := os.Getenv(HomeEnvVar); home != "" {
		return filepath.Join(strings.TrimRight(home, "/"), "config.yaml"), nil
	}
	path, err := xdg.SearchConfigFile(filepath.Join("docnav", "config.yaml"))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, err.Error())
	}
	return path, nil
}

// Read locates, reads and parses the config file.
// When there is no readable config file, the defaults are returned along with
// the error.
func Read(defaultTheme ColorschemeType) (Config, error) {
	path, err := Locate()
	if err != nil {
		return Default(defaultTheme), err
	}
	yamlData, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(defaultTheme), fmt.Errorf("%w at '%s'", ErrNotFound, path)
	}
	if err != nil {
		return Default(defaultTheme), fmt.Errorf("can't read config file: %w", err)
	}
	return ParseConfigAugmentDefaults(defaultTheme, yamlData)
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	if augment.Sidebar != "" {
		result.Sidebar = augment.Sidebar
	}

	result.Keys = input.InputConfig{
		Viewer: mergeMappings(base.Keys.Viewer, augment.Keys.Viewer),
		Prompt: mergeMappings(base.Keys.Prompt, augment.Keys.Prompt),
	}

	return result
}

func mergeMappings(base, augment map[input.Keyspec]input.Actionspec) map[input.Keyspec]input.Actionspec {
	result := map[input.Keyspec]input.Actionspec{}
	for k, a := range base {
		result[k] = a
	}
	for k, a := range augment {
		result[k] = a
	}
	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.Header.overwriteIfDefined(augment.Header)
	result.Heading.overwriteIfDefined(augment.Heading)
	result.Subheading.overwriteIfDefined(augment.Subheading)
	result.Code.overwriteIfDefined(augment.Code)
	result.Quote.overwriteIfDefined(augment.Quote)
	result.ListItem.overwriteIfDefined(augment.ListItem)
	result.Match.overwriteIfDefined(augment.Match)
	result.Missing.overwriteIfDefined(augment.Missing)
	result.Sidebar.overwriteIfDefined(augment.Sidebar)
	result.SidebarGroup.overwriteIfDefined(augment.SidebarGroup)
	result.SidebarCurrent.overwriteIfDefined(augment.SidebarCurrent)
	result.SidebarLink.overwriteIfDefined(augment.SidebarLink)
	result.Status.overwriteIfDefined(augment.Status)
	result.StatusPending.overwriteIfDefined(augment.StatusPending)
	result.LogDefault.overwriteIfDefined(augment.LogDefault)
	result.LogTitleBox.overwriteIfDefined(augment.LogTitleBox)
	result.LogEntryTypeError.overwriteIfDefined(augment.LogEntryTypeError)
	result.LogEntryTypeWarn.overwriteIfDefined(augment.LogEntryTypeWarn)
	result.LogEntryTypeInfo.overwriteIfDefined(augment.LogEntryTypeInfo)
	result.LogEntryTypeDebug.overwriteIfDefined(augment.LogEntryTypeDebug)
	result.LogEntryTypeTrace.overwriteIfDefined(augment.LogEntryTypeTrace)
	result.LogEntryLocation.overwriteIfDefined(augment.LogEntryLocation)
	result.LogEntryTime.overwriteIfDefined(augment.LogEntryTime)
	result.Help.overwriteIfDefined(augment.Help)
	result.Editor.overwriteIfDefined(augment.Editor)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		s.Style = &FontStyle{
			Bold:       augment.Style.Bold,
			Italic:     augment.Style.Italic,
			Underlined: augment.Style.Underlined,
		}
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
