package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/azlan-mn/element/pkg/config"
)

var checkCommand = &cli.Command{
	Name:      "check",
	Usage:     "Validate a config file",
	ArgsUsage: "<config.yaml>",
	Action: func(c *cli.Context) error {
		path := c.Args().First()
		if path == "" {
			path = "config.yaml"
		}

		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		driverName := cfg.Driver
		if driverName == "" {
			driverName = "webdriver"
		}
		fmt.Printf("%s: ok (driver=%s)\n", path, driverName)
		return nil
	},
}
