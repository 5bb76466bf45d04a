package main

import (
	"github.com/spf13/cobra"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

func newSummaryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print basic statistics of the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, _, err := loadServices(cmd.Context(), opts)
			if err != nil {
				return err
			}
			overview, err := services.Overview.Get(cmd.Context())
			if err != nil {
				return err
			}
			info := services.Dataset.Info(cmd.Context())

			out := cmd.OutOrStdout()
			printer.Fprintf(out, "Basic Statistics:\n")
			printer.Fprintf(out, "Total number of countries/regions: %d\n", info.Countries)
			printer.Fprintf(out, "Date range: from %s to %s\n", info.From.Format(domain.DateLayout), info.To.Format(domain.DateLayout))
			printer.Fprintf(out, "Total confirmed cases: %d\n", overview.Latest.Confirmed)
			printer.Fprintf(out, "Total deaths: %d\n", overview.Latest.Deaths)
			printer.Fprintf(out, "Total recovered: %d\n", overview.Latest.Recovered)
			printer.Fprintf(out, "Total active: %d\n", overview.Latest.Active)
			printer.Fprintf(out, "Case fatality rate: %.2f%%\n", overview.Rates.CFR)
			printer.Fprintf(out, "Recovery rate: %.2f%%\n", overview.Rates.RecoveryRate)
			printer.Fprintf(out, "Active case ratio: %.2f%%\n", overview.Rates.ActiveRatio)

			printer.Fprintf(out, "\nBy WHO region:\n")
			for _, r := range overview.Regions {
				printer.Fprintf(out, "  %-24s %12d confirmed %10d deaths\n", r.Region, r.Confirmed, r.Deaths)
			}
			return nil
		},
	}
}
