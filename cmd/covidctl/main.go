package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/config"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/repository"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/service"
	"github.com/kaustubh03-ks/covid-19-analysis/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	dataPath string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "covidctl",
		Short: "Batch analysis of the COVID-19 dataset",
		Long: `covidctl runs the dashboard's analysis without the web server.

It prints summary statistics, saves the global trend and regional impact
charts, exports selections to xlsx and imports the CSV into MySQL.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			logger.SetupLogger("local", level)
		},
	}
	root.PersistentFlags().StringVarP(&opts.dataPath, "data", "d", envOr("DATASET_PATH", "covid_19_clean_complete.csv"), "path to the CSV dataset")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newSummaryCmd(opts),
		newPlotCmd(opts),
		newExportCmd(opts),
		newImportCmd(opts),
	)
	return root
}

// loadServices reads the configuration and loads the CSV at opts.dataPath.
func loadServices(ctx context.Context, opts *options) (*service.Services, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	cfg.Dataset.Source = config.SourceCSV
	cfg.Dataset.Path = opts.dataPath

	services := service.NewServices(service.Deps{
		Config: cfg,
		Store:  repository.NewStore(repository.NewCSVSource(opts.dataPath)),
	})
	if err := services.Dataset.Reload(ctx); err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", opts.dataPath, err)
	}
	return services, cfg, nil
}

var printer = message.NewPrinter(language.English)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
