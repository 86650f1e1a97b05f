// Package corncraft is the command line interface of the corncraft client.
package corncraft

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/config"
)

// Execute runs the app with the process arguments and exits on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()
	if err := App().RunContext(ctx, os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// App returns the corncraft command line app.
func App() *cli.App {
	return &cli.App{
		Name:  "corncraft",
		Usage: "A headless Minecraft Java Edition client.",
		Description: `Connects to offline mode servers of Minecraft 1.20.5 to 1.21.1
and inspects the item data exchanged with them.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file (default: ./corncraft.yml)",
				EnvVars: []string{config.EnvPrefix + "_CONFIG"},
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "enable debug logging",
				EnvVars: []string{config.EnvPrefix + "_DEBUG"},
			},
			&cli.IntFlag{
				Name:    "verbosity",
				Aliases: []string{"v"},
				Usage:   "log verbosity in debug mode, 2 also logs unhandled packets",
			},
		},
		Commands: []*cli.Command{
			connectCommand(),
			statusCommand(),
			decodeSlotCommand(),
			componentsCommand(),
			configCommand(),
		},
	}
}

// loadConfig reads the config file given by flag, or corncraft.yml if it exists.
func loadConfig(c *cli.Context) (*config.Config, error) {
	v := viper.New()
	if file := c.String("config"); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("corncraft")
		v.SetConfigType("yml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config: %w", err)
			}
		}
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}
	return cfg, nil
}

// validate logs warnings and fails on config errors.
func validate(log logr.Logger, cfg *config.Config) error {
	warns, errs := cfg.Validate()
	for _, err := range warns {
		log.Info("config warning", "warning", err.Error())
	}
	if len(errs) == 0 {
		return nil
	}
	for _, err := range errs {
		log.Error(err, "config error")
	}
	a, s := "are", "s"
	if len(errs) == 1 {
		a, s = "is", ""
	}
	return cli.Exit(fmt.Sprintf("there %s %d config validation error%s", a, len(errs), s), 1)
}
