package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tuanvumaihuynh/food-catalog/internal/cli"
	"github.com/tuanvumaihuynh/food-catalog/internal/config"
	"github.com/tuanvumaihuynh/food-catalog/pkg/cmdutil"
)

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, cli.ErrViewFailed) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		<-cmdutil.InterruptChan()
		cancel()
	}()

	cfg, err := config.New[config.Client]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	return cli.Run(ctx, cfg, os.Stdout, os.Args)
}
