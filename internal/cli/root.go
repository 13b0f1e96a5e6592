// Package cli implements the panelctl command line: one command per console panel plus a command
// to read back the transition journal.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

const (
	name = "panelctl"

	flagConfig         = "config"
	flagBaseURL        = "base-url"
	flagToken          = "token"
	flagTimeout        = "timeout"
	flagLogLevel       = "log-level"
	flagLogFormat      = "log-format"
	flagRedisAddress   = "redis-address"
	flagMetricsAddress = "metrics-address"
	flagInteractive    = "interactive"
)

// overridden during build with ldflags
var version = "dev"

// Command returns the root command.
func Command() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Package registry console panels",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Usage:   "path to a YAML config file",
				Sources: cli.EnvVars("PANEL_CONFIG"),
			},
			&cli.StringFlag{
				Name:  flagBaseURL,
				Usage: "registry base URL that API paths are resolved against",
			},
			&cli.StringFlag{
				Name:  flagToken,
				Usage: "API session token",
			},
			&cli.DurationFlag{
				Name:  flagTimeout,
				Usage: "per-request timeout",
			},
			&cli.StringFlag{
				Name:  flagLogLevel,
				Usage: "log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  flagLogFormat,
				Usage: "log format (console, json)",
			},
			&cli.StringFlag{
				Name:  flagRedisAddress,
				Usage: "Redis address of the transition journal; empty disables it",
			},
			&cli.StringFlag{
				Name:  flagMetricsAddress,
				Usage: "address to serve Prometheus metrics on; empty disables it",
			},
		},
		Commands: []*cli.Command{
			profileCmd(),
			channelsCmd(),
			journalCmd(),
		},
	}
}

// Execute runs the root command with the process arguments and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Command().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func stderr(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
