package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/config"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/dataset"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/db"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/repository"
)

var errNoDatabase = errors.New("DB_SERVER, DB_NAME and DB_USER must be set to import")

func newImportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Replace the MySQL observations table with the CSV contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Database.Server == "" || cfg.Database.DBName == "" || cfg.Database.User == "" {
				return errNoDatabase
			}

			t, err := dataset.LoadFile(opts.dataPath)
			if err != nil {
				return err
			}

			conn, err := db.New(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer conn.Close()

			repo := repository.NewObservationRepository(conn)
			if err := repo.EnsureSchema(cmd.Context()); err != nil {
				return err
			}
			n, err := repo.Replace(cmd.Context(), t, cfg.Database.ImportBatchSize)
			if err != nil {
				return err
			}
			printer.Fprintf(cmd.OutOrStdout(), "imported %d observations into %s\n", n, cfg.Database.DBName)
			return nil
		},
	}
}
