package corncraft

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/configs"
)

const configFile = "corncraft.yml"

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Output default configuration file",
		Description: `Output the default configuration file to stdout or a file.
You can redirect to a file or use the --write flag:

	corncraft config > corncraft.yml
	corncraft config --write              # Writes to corncraft.yml

Available config types:
  - full (default): Full configuration with all options
  - minimal: Only the server and username`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Config type: full or minimal",
				Value:   "full",
			},
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write config to " + configFile + " instead of stdout",
			},
		},
		Action: func(c *cli.Context) error {
			var configBytes []byte
			switch configType := c.String("type"); configType {
			case "full":
				configBytes = configs.DefaultConfigBytes
			case "minimal":
				configBytes = configs.MinimalConfigBytes
			default:
				return cli.Exit(fmt.Sprintf("unknown config type: %s (valid types: full, minimal)", configType), 1)
			}

			if c.Bool("write") {
				if err := os.WriteFile(configFile, configBytes, 0644); err != nil {
					return cli.Exit(fmt.Errorf("error writing config to %q: %w", configFile, err), 1)
				}
				_, _ = fmt.Fprintf(c.App.Writer, "Configuration written to %s\n", configFile)
				return nil
			}

			if _, err := c.App.Writer.Write(configBytes); err != nil {
				return cli.Exit(fmt.Errorf("error writing config: %w", err), 1)
			}
			return nil
		},
	}
}
