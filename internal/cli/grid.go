package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/tuanvumaihuynh/food-catalog/internal/config"
	"github.com/tuanvumaihuynh/food-catalog/internal/view"
)

func gridCmd() *cli.Command {
	return &cli.Command{
		Name:  "grid",
		Usage: "List food cards, or search them by product name",
		Description: `Without --search the grid shows the preview list. With a term it shows
every food whose product name contains the term, ignoring case.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "search",
				Aliases: []string{"s"},
				Usage:   "product name search term",
			},
			&cli.StringFlag{
				Name:  "placeholder",
				Usage: "cover image used for foods without a picture",
				Value: config.DefaultPlaceholderImageURL,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, format, err := prepare(cmd)
			if err != nil {
				return err
			}

			grid := view.NewGrid(client, cmd.String("placeholder"))
			st := grid.Load(ctx, cmd.String("search"))

			if err := write(cmd.Root().Writer, format, gridOutput(st)); err != nil {
				return err
			}
			if st.Status == view.StatusError {
				return viewErr(st.Error)
			}
			return nil
		},
	}
}

type gridOutput view.GridState

func (g gridOutput) writeTable(w io.Writer) error {
	if _, err := fmt.Fprintln(w, g.Title); err != nil {
		return err
	}

	switch {
	case g.Status == view.StatusError:
		_, err := fmt.Fprintln(w, g.Error)
		return err
	case g.Empty != "":
		_, err := fmt.Fprintln(w, g.Empty)
		return err
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "CODE\tNAME\tCOVER")
	for _, c := range g.Cards {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, c.Name, c.Cover)
	}
	return tw.Flush()
}
