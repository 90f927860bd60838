package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/trainboard-go/pkg/trainboard"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/render"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/view"
)

func newRenderCmd() *cobra.Command {
	var (
		outputPath string
		width      int
		sel        view.Selection
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the dashboard to a static HTML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			sel.DaysSet = cmd.Flags().Changed("day")
			sel.TypesSet = cmd.Flags().Changed("type")
			if len(sel.Days) > 0 {
				sel.Day = sel.Days[0]
			}

			page, buildErr := trainboard.Build(cmd.Context(), a.src, sel, view.Viewport{Width: width}, a.cfg.Options())
			var buf bytes.Buffer
			if err := render.RenderPage(&buf, page); err != nil {
				return fmt.Errorf("render failed: %w", err)
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			} else {
				if _, err := buf.WriteTo(cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			return buildErr
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().IntVar(&width, "width", 0, "Viewport width in pixels (0: desktop)")
	cmd.Flags().StringVar(&sel.Tab, "tab", "", "Initially selected tab: weekly, library, body, notes")
	cmd.Flags().StringSliceVar(&sel.Days, "day", nil, "Training days to show")
	cmd.Flags().StringSliceVar(&sel.Types, "type", nil, "Exercise types to show")
	return cmd
}
