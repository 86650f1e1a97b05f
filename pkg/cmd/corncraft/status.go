package corncraft

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/gookit/color"
	"github.com/urfave/cli/v2"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/ping"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
)

func statusCommand() *cli.Command {
	return &cli.Command{
		Name:      "status",
		Usage:     "Show the server list entry of a server",
		ArgsUsage: "[address]",
		Description: `Queries the server like the multiplayer screen does and prints
its version, player count, latency and message of the day.
The address defaults to the configured server.`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "version", Usage: "game version announced in the handshake, overrides the config"},
			&cli.DurationFlag{Name: "timeout", Value: 5 * time.Second, Usage: "time limit of the whole query"},
			&cli.StringFlag{Name: "favicon", Usage: "write the server icon to this png file"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return cli.Exit(err, 1)
			}
			if c.Args().Len() > 1 {
				return cli.Exit("expected at most one address", 1)
			}
			if c.Args().Present() {
				cfg.Server = c.Args().First()
			}
			if c.IsSet("version") {
				cfg.Version = c.String("version")
			}
			v, err := cfg.ProtocolVersion()
			if err != nil {
				return cli.Exit(err, 1)
			}
			tr, err := loadTranslations(cfg.LangFile)
			if err != nil {
				return cli.Exit(err, 1)
			}
			log, err := newLogger(cfg.Debug, c.Int("verbosity"))
			if err != nil {
				return cli.Exit(fmt.Errorf("error initializing logger: %w", err), 1)
			}

			res, err := ping.Ping(logr.NewContext(c.Context, log), ping.Options{
				Address: cfg.Server,
				Version: v,
				Timeout: c.Duration("timeout"),
			})
			if err != nil {
				return cli.Exit(fmt.Errorf("could not query %s: %w", cfg.Server, err), 1)
			}
			printStatus(c.App.Writer, cfg.Server, res, tr)

			if file := c.String("favicon"); file != "" {
				png, err := res.FaviconPNG()
				if err != nil {
					return cli.Exit(err, 1)
				}
				if png == nil {
					return cli.Exit("server has no icon", 1)
				}
				if err = os.WriteFile(file, png, 0644); err != nil {
					return cli.Exit(fmt.Errorf("error writing favicon: %w", err), 1)
				}
			}
			return nil
		},
	}
}

func printStatus(out io.Writer, server string, res *ping.Result, tr util.Translations) {
	players := "?"
	if res.Players != nil {
		players = fmt.Sprintf("%d/%d", res.Players.Online, res.Players.Max)
	}
	color.Fprintf(out, "%s  %s (protocol %d)  %s players  %s\n",
		color.Bold.Sprint(server), res.Version.Name, res.Version.Protocol,
		players, res.Latency.Round(time.Millisecond))
	if motd := res.MOTD(tr); motd != "" {
		color.Fprintln(out, ansiFromLegacy(motd))
	}
	if res.Players != nil {
		for _, p := range res.Players.Sample {
			color.Fprintf(out, "  %s\n", ansiFromLegacy(p.Name))
		}
	}
}
