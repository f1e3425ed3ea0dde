// Package cli provides the command-line interface for docnav.
package cli

type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	ViewCommand    ViewCommand    `command:"view" subcommands-optional:"true"`
	PagesCommand   PagesCommand   `command:"pages" subcommands-optional:"true"`
	KeysCommand    KeysCommand    `command:"keys" subcommands-optional:"true"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true"`
}

var Opts CommandLineOpts
