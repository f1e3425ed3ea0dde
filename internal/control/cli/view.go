package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/docnav/internal/config"
	"github.com/ja-he/docnav/internal/potatolog"
	"github.com/ja-he/docnav/internal/site"
	"github.com/ja-he/docnav/internal/styling"
)

const defaultSidebarFile = "sidebar.yaml"

// ViewCommand runs the TUI.
type ViewCommand struct {
	Sidebar       string `short:"s" long:"sidebar" description:"Specify the sidebar file of the site" value-name:"<file>"`
	Page          string `short:"p" long:"page" description:"Specify the slug of the page to open" value-name:"<slug>"`
	NoFrame       bool   `long:"no-frame" description:"Render without a content frame, scrolling the whole page"`
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `long:"log-pretty" description:"prettify logs to file"`
}

// Execute runs the TUI until the user quits.
func (command *ViewCommand) Execute(args []string) error {
	// set up dual logger
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("could not open file '%s' for logging: %w", command.LogOutputFile, err)
		}
		defer file.Close()
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, &potatolog.GlobalMemoryLogReaderWriter)
	} else {
		logWriter = &potatolog.GlobalMemoryLogReaderWriter
	}
	log.Logger = zerolog.New(logWriter).With().Timestamp().Caller().Logger()
	log.Debug().Msg("logger set up")

	cfg := readConfig(themeFromFlag(command.Theme))

	stylesheet, err := styling.NewStylesheetFromConfig(cfg.Stylesheet)
	if err != nil {
		return fmt.Errorf("invalid stylesheet: %w", err)
	}

	s, err := site.Load(sidebarPath(command.Sidebar, cfg))
	if err != nil {
		return err
	}
	log.Info().Str("site", s.Title).Int("pages", len(s.Pages())).Msg("loaded site")

	controller, err := NewController(ControllerOptions{
		Site:       s,
		StartSlug:  command.Page,
		Framed:     !command.NoFrame,
		Keys:       cfg.Keys,
		Stylesheet: *stylesheet,
	}, log.Logger)
	if err != nil {
		return err
	}
	controller.Run()
	return nil
}

// readConfig reads the config file, falling back to the defaults.
// Only a config file that exists but cannot be used is worth a warning.
func readConfig(theme config.ColorschemeType) config.Config {
	cfg, err := config.Read(theme)
	switch {
	case errors.Is(err, config.ErrNotFound):
		log.Debug().Err(err).Msg("using default config")
	case err != nil:
		log.Warn().Err(err).Msg("ignoring config file, using default config")
	}
	return cfg
}

func themeFromFlag(flag string) config.ColorschemeType {
	switch flag {
	case "light":
		return config.Light
	default:
		return config.Dark
	}
}

// sidebarPath picks the sidebar file: the flag, then the config, then the
// working directory.
func sidebarPath(flag string, cfg config.Config) string {
	switch {
	case flag != "":
		return flag
	case cfg.Sidebar != "":
		return cfg.Sidebar
	default:
		return defaultSidebarFile
	}
}
