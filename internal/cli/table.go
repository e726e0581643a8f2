package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/tuanvumaihuynh/food-catalog/internal/view"
)

func tableCmd() *cli.Command {
	return &cli.Command{
		Name:  "table",
		Usage: "Show the food table with local filtering, sorting and paging",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "filter",
				Usage: "keep rows whose product name contains this text",
			},
			&cli.StringFlag{
				Name:  "sort",
				Usage: "sort column: name, pnns, score, brand or categories",
				Value: string(view.SortByName),
			},
			&cli.StringFlag{
				Name:  "order",
				Usage: "sort direction: asc or desc",
				Value: string(view.OrderAsc),
			},
			&cli.IntFlag{
				Name:  "page",
				Usage: "page to show, starting at 1",
				Value: 1,
			},
			&cli.IntFlag{
				Name:  "rows",
				Usage: "rows per page: 5, 10 or 25",
				Value: view.RowsPerPageOptions[0],
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, format, err := prepare(cmd)
			if err != nil {
				return err
			}

			table := view.NewTable(client)
			if err := configureTable(table, cmd); err != nil {
				return err
			}

			st := table.Load(ctx)
			if err := write(cmd.Root().Writer, format, tableOutput(st)); err != nil {
				return err
			}
			if st.Status == view.StatusError {
				return viewErr(st.Error)
			}
			return nil
		},
	}
}

// tableOptions mirrors the table flags. Field names match the flag names.
type tableOptions struct {
	Filter string         `validate:"max=200,printable"`
	Sort   view.SortField `validate:"enum"`
	Order  view.Order     `validate:"enum"`
	Page   int            `validate:"gte=1"`
	Rows   int
}

// configureTable applies the flags before loading so invalid input fails
// without a request.
func configureTable(table *view.Table, cmd *cli.Command) error {
	opts := tableOptions{
		Filter: cmd.String("filter"),
		Sort:   view.SortField(cmd.String("sort")),
		Order:  view.Order(cmd.String("order")),
		Page:   int(cmd.Int("page")),
		Rows:   int(cmd.Int("rows")),
	}
	if err := validateOptions(opts); err != nil {
		return err
	}

	if _, err := table.SetOrder(opts.Sort, opts.Order); err != nil {
		return err
	}
	if _, err := table.SetRowsPerPage(opts.Rows); err != nil {
		return err
	}

	// SetFilter resets the page, so it goes first.
	table.SetFilter(opts.Filter)

	if _, err := table.SetPage(opts.Page - 1); err != nil {
		return err
	}

	return nil
}

type tableOutput view.TableState

func (t tableOutput) writeTable(w io.Writer) error {
	switch {
	case t.Status == view.StatusError:
		_, err := fmt.Fprintln(w, t.Error)
		return err
	case t.NotFound:
		_, err := fmt.Fprintf(w, "Not found\nNo results found for \"%s\".\n", t.Filter)
		return err
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "CODE\tNAME\tPNNS GROUP\tNUTRISCORE\tBRAND\tCATEGORIES")
	for _, r := range t.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Code, r.Name, r.PnnsGroup, r.NutriScore, r.Brand, r.Categories)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	pages := max(1, (t.Total+t.RowsPerPage-1)/t.RowsPerPage)
	_, err := fmt.Fprintf(w, "\npage %d of %d, %d rows, sorted by %s %s\n", t.Page+1, pages, t.Total, t.SortBy, t.Order)
	return err
}
