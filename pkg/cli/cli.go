// Package cli provides the command-line interface for the element demo
// runner.
package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to config.yaml (default: ./config.yaml if present)",
		EnvVars: []string{"ELEMENT_CONFIG"},
	},
	&cli.StringFlag{
		Name:    "driver",
		Aliases: []string{"d"},
		Usage:   "Driver backend (webdriver, playwright)",
		EnvVars: []string{"ELEMENT_DRIVER"},
	},
	&cli.StringFlag{
		Name:    "browser",
		Aliases: []string{"b"},
		Usage:   "Browser to drive (chrome, firefox, webkit)",
		EnvVars: []string{"ELEMENT_BROWSER"},
	},
	&cli.StringFlag{
		Name:    "remote-url",
		Usage:   "WebDriver endpoint URL (webdriver backend only)",
		EnvVars: []string{"ELEMENT_REMOTE_URL"},
	},
	&cli.BoolFlag{
		Name:    "headless",
		Usage:   "Run the browser without a visible window",
		EnvVars: []string{"ELEMENT_HEADLESS"},
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Enable verbose logging",
		EnvVars: []string{"ELEMENT_VERBOSE"},
	},
}

// NewApp builds the CLI application.
func NewApp() *cli.App {
	return &cli.App{
		Name:    "element",
		Usage:   "Page-object demo runner for the element engine",
		Version: Version,
		Description: `Drives a live browser through a declared page-object tree, using
polling-based conditions instead of manual waits.

Examples:
  element demo --url https://www.google.com/ --query "page objects"
  element --driver playwright --headless demo --url https://duckduckgo.com/
  element check config.yaml`,
		Flags: GlobalFlags,
		Commands: []*cli.Command{
			demoCommand,
			checkCommand,
		},
	}
}

// Execute runs the CLI.
func Execute() {
	if err := NewApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
