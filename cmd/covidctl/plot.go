package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/chart"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/service"
)

func newPlotCmd(opts *options) *cobra.Command {
	var outDir, format string
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Save the global trend and regional impact charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := chart.ParseFormat(format)
			if err != nil {
				return err
			}
			services, _, err := loadServices(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			files := []struct {
				name string
				kind chart.Kind
			}{
				{name: "global_trends", kind: chart.KindTrend},
				{name: "regional_impact", kind: chart.KindRegions},
			}
			for _, file := range files {
				img, err := services.Charts.Render(cmd.Context(), service.ChartRequest{Kind: file.kind, Format: f})
				if err != nil {
					return fmt.Errorf("render %s: %w", file.name, err)
				}
				path := filepath.Join(outDir, file.name+"."+string(f))
				if err := os.WriteFile(path, img.Data, 0o644); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "saved", path)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory for the chart files")
	cmd.Flags().StringVar(&format, "format", "png", "png or svg")
	return cmd
}
