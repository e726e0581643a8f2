package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/tuanvumaihuynh/food-catalog/internal/view"
)

func foodCmd() *cli.Command {
	return &cli.Command{
		Name:      "food",
		Usage:     "Show the nutrient breakdown of one food",
		ArgsUsage: "<code>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return errors.New("expected exactly one food code")
			}

			client, format, err := prepare(cmd)
			if err != nil {
				return err
			}

			detail := view.NewDetail(client)
			st := detail.Load(ctx, cmd.Args().First())

			if err := write(cmd.Root().Writer, format, foodOutput(st)); err != nil {
				return err
			}
			if st.Status == view.StatusError {
				return viewErr(st.Error)
			}
			return nil
		},
	}
}

type foodOutput view.DetailState

func (f foodOutput) writeTable(w io.Writer) error {
	if _, err := fmt.Fprintln(w, f.Title); err != nil {
		return err
	}
	if f.Status == view.StatusError {
		_, err := fmt.Fprintln(w, f.Error)
		return err
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw)
	for _, s := range f.Breakdown {
		fmt.Fprintf(tw, "%s\t%s\n", s.Label, formatFloat(s.Value))
	}

	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Calories\t%s\n", optionalFloat(f.Summary.Calories))
	fmt.Fprintf(tw, "Nutri-Score\t%s\n", optionalInt(f.Summary.NutriScore))
	fmt.Fprintf(tw, "Sugars (g)\t%s\n", optionalFloat(f.Summary.Sugars))
	fmt.Fprintf(tw, "Salt (g)\t%s\n", optionalFloat(f.Summary.Salt))

	fmt.Fprintln(tw)
	for _, s := range f.Profile {
		fmt.Fprintf(tw, "%s\t%s\n", s.Label, formatFloat(s.Value))
	}

	return tw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func optionalFloat(v *float64) string {
	if v == nil {
		return view.NotAvailable
	}
	return formatFloat(*v)
}

func optionalInt(v *int) string {
	if v == nil {
		return view.NotAvailable
	}
	return strconv.Itoa(*v)
}
