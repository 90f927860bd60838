package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/trainboard-go/internal/preview"
	"github.com/ukaji3/trainboard-go/pkg/trainboard"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/view"
)

func newPreviewCmd() *cobra.Command {
	var (
		width int
		tab   string
		sel   view.Selection
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print a dashboard tab in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			snap, err := trainboard.Fetch(cmd.Context(), a.src)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cols := preview.TerminalColumns(out)
			vp := preview.ViewportForColumns(cols)
			if width > 0 {
				vp = view.Viewport{Width: width}
			}
			sel.DaysSet = cmd.Flags().Changed("day")
			sel.TypesSet = cmd.Flags().Changed("type")
			if len(sel.Days) > 0 {
				sel.Day = sel.Days[0]
			}

			r := preview.NewRenderer(cols, preview.IsTerminal(out))
			_, err = fmt.Fprint(out, r.Render(snap, tab, sel, view.ModeFor(vp)))
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "Viewport width in pixels (default: terminal columns × 8)")
	cmd.Flags().StringVar(&tab, "tab", models.TabWeekly, "Tab to print: weekly, library, body, notes")
	cmd.Flags().StringSliceVar(&sel.Days, "day", nil, "Training days to show")
	cmd.Flags().StringSliceVar(&sel.Types, "type", nil, "Exercise types to show")
	return cmd
}
