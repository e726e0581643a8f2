// Package cli is the command line front end of the food catalog. Each
// command drives one of the catalog views against a running API.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/tuanvumaihuynh/food-catalog/internal/catalogclient"
	"github.com/tuanvumaihuynh/food-catalog/internal/config"
)

const (
	name = "fc-cli"

	flagServer  = "server"
	flagTimeout = "timeout"
	flagFormat  = "format"
)

// ErrViewFailed is returned when a view ends in its error state. The view,
// error message included, has been written to the output already.
var ErrViewFailed = errors.New("view failed")

// NewCommand builds the root command. Defaults for the global flags come
// from cfg; output is written to out.
func NewCommand(cfg config.Client, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Browse the food catalog from the terminal",
		EnableShellCompletion: true,
		Writer:                out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagServer,
				Usage: "base URL of the catalog API",
				Value: cfg.BaseURL,
			},
			&cli.DurationFlag{
				Name:  flagTimeout,
				Usage: "timeout of a single API request",
				Value: cfg.Timeout,
			},
			&cli.StringFlag{
				Name:    flagFormat,
				Aliases: []string{"f"},
				Usage:   "output format: table, json or yaml",
				Value:   string(FormatTable),
			},
		},
		Commands: []*cli.Command{
			gridCmd(),
			tableCmd(),
			foodCmd(),
		},
	}
}

// Run parses args and runs the matching command.
func Run(ctx context.Context, cfg config.Client, out io.Writer, args []string) error {
	return NewCommand(cfg, out).Run(ctx, args)
}

func newClient(cmd *cli.Command) (*catalogclient.Client, error) {
	timeout := cmd.Duration(flagTimeout)
	if timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", timeout)
	}

	c := catalogclient.New(
		catalogclient.WithBaseURL(cmd.String(flagServer)),
		catalogclient.WithTimeout(timeout),
		catalogclient.WithUserAgent(name),
	)
	return c, nil
}

// prepare resolves the client and output format shared by every command.
func prepare(cmd *cli.Command) (*catalogclient.Client, Format, error) {
	format, err := parseFormat(cmd)
	if err != nil {
		return nil, "", err
	}

	c, err := newClient(cmd)
	if err != nil {
		return nil, "", err
	}

	return c, format, nil
}

func viewErr(msg string) error {
	return fmt.Errorf("%w: %s", ErrViewFailed, msg)
}
