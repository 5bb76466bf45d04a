package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

func newExportCmd(opts *options) *cobra.Command {
	var out string
	var sel domain.Selection
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a selection of the dataset with derived ratios to xlsx",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, _, err := loadServices(cmd.Context(), opts)
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := services.Exports.Table(cmd.Context(), sel, f); err != nil {
				f.Close()
				os.Remove(out)
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "saved", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "covid_19.xlsx", "output file")
	cmd.Flags().StringVar(&sel.Country, "country", "", "Country/Region")
	cmd.Flags().StringVar(&sel.WHORegion, "region", "", "WHO Region")
	cmd.Flags().StringVar(&sel.From, "from", "", "first date, YYYY-MM-DD")
	cmd.Flags().StringVar(&sel.To, "to", "", "last date, YYYY-MM-DD")
	return cmd
}
