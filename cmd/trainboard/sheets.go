package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/source"
)

func newSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets",
		Short: "List the worksheets of the configured source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			names := models.SheetNames()
			if l, ok := a.src.(source.Lister); ok {
				if names, err = l.SheetNames(cmd.Context()); err != nil {
					return err
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SHEET\tROWS")
			for _, name := range names {
				sheet, err := a.src.FetchSheet(cmd.Context(), name)
				switch {
				case errors.Is(err, source.ErrSheetNotFound):
					fmt.Fprintf(w, "%s\tmissing\n", name)
				case err != nil:
					return err
				default:
					fmt.Fprintf(w, "%s\t%d\n", name, len(sheet.Rows))
				}
			}
			return w.Flush()
		},
	}
}
